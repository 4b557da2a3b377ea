package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const localLogger = "logger"

// HTTPMetrics lo implementa metrics.Metrics.
type HTTPMetrics interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// requestLogger devuelve el sublogger de la petición (con request_id) o uno descartado.
func requestLogger(c *fiber.Ctx) *zerolog.Logger {
	if l, ok := c.Locals(localLogger).(*zerolog.Logger); ok {
		return l
	}
	nop := zerolog.Nop()
	return &nop
}

// handled resuelve err con el ErrorHandler de la app para que el status quede fijado
// antes de registrar la petición.
func handled(c *fiber.Ctx, err error) {
	if err == nil {
		return
	}
	if herr := c.App().ErrorHandler(c, err); herr != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
	}
}

// RequestLogger asigna un X-Request-ID y registra método, ruta, status y latencia.
func RequestLogger(log *logger.Logger) fiber.Handler {
	base := log.Zerolog()
	return func(c *fiber.Ctx) error {
		start := time.Now()
		rid := c.Get(fiber.HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, rid)
		l := base.With().Str("request_id", rid).Logger()
		c.Locals(localLogger, &l)

		handled(c, c.Next())

		status := c.Response().StatusCode()
		ev := l.Info()
		if status >= fiber.StatusInternalServerError {
			ev = l.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = l.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("request")
		return nil
	}
}

// MetricsMiddleware registra cada petición con la plantilla de ruta (no el path real).
func MetricsMiddleware(m HTTPMetrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		handled(c, c.Next())
		route := c.Route().Path
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(c.Method(), route, c.Response().StatusCode(), time.Since(start))
		return nil
	}
}

// RateLimit limita peticiones por IP con ulule/limiter en memoria; rate en formato "10-M".
func RateLimit(rate string) (fiber.Handler, error) {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, err
	}
	instance := limiter.New(memory.NewStore(), r)
	return func(c *fiber.Ctx) error {
		lctx, err := instance.Get(c.Context(), c.IP())
		if err != nil {
			return writeError(c, err)
		}
		c.Set("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))
		if lctx.Reached {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "demasiadas peticiones, intente más tarde",
			})
		}
		return c.Next()
	}, nil
}
