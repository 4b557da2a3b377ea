package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/Hospital-api/internal/application/analytics"
	"github.com/jhoicas/Hospital-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del panel principal.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats devuelve los indicadores del panel.
// GET /api/dashboard/stats
//
// Respuesta: DashboardStatsResponse (active_patients, today_consultations, emergencies,
// active_hospitalizations, bed_capacity, occupancy_rate, low_stock_alerts).
// Se recalcula en cada llamada; "hoy" es el día en la zona horaria del hospital.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stats)
}

// GetActivity devuelve los eventos recientes del feed.
// GET /api/dashboard/activity?limit=10
func (h *DashboardHandler) GetActivity(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "limit debe ser un entero positivo"})
		}
		limit = n
	}
	events, err := h.uc.GetActivity(c.Context(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"items": events})
}
