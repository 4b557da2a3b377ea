package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Hospital-api/internal/application/activity"
	appanalytics "github.com/jhoicas/Hospital-api/internal/application/analytics"
	"github.com/jhoicas/Hospital-api/internal/application/auth"
	"github.com/jhoicas/Hospital-api/internal/application/inventory"
	"github.com/jhoicas/Hospital-api/internal/application/reports"
	"github.com/jhoicas/Hospital-api/internal/application/seed"
	"github.com/jhoicas/Hospital-api/internal/application/usecase"
	"github.com/jhoicas/Hospital-api/internal/bootstrap"
	"github.com/jhoicas/Hospital-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Hospital-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Hospital-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Hospital-api/internal/interfaces/http"
	"github.com/jhoicas/Hospital-api/pkg/config"
	"github.com/jhoicas/Hospital-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.App.StoreBackend).
		Msg("iniciando aplicación")

	loc, err := cfg.Hospital.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria del hospital")
	}

	ctx := context.Background()
	storage, err := bootstrap.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer storage.Close()

	// En memoria no hay datos previos: sin cuentas iniciales no se podría iniciar sesión.
	if storage.Backend == config.StoreMemory {
		res, err := seed.NewSeeder(storage.Users, storage.Patients, storage.Items, log.Component("seed").Zerolog()).Run(ctx, true)
		if err != nil {
			log.Fatal().Err(err).Msg("datos iniciales")
		}
		log.Warn().Int("users", res.Users).Int("patients", res.Patients).Int("items", res.Items).
			Msg("store en memoria con cuentas por defecto (no usar en producción)")
	}

	m := metrics.New()
	recorder := activity.NewRecorder(storage.Activity, log.Component("activity"))

	authUC := auth.NewAuthUseCase(storage.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	ledger := inventory.NewLedgerUseCase(storage.TxRunner, storage.Items, storage.Movements, recorder, m, log.Component("inventory"))
	reportsUC := reports.NewUseCase(
		storage.Transactions, storage.Items,
		xlsx.NewExporter(), infrapdf.NewMarotoPDFGenerator(),
		cfg.Hospital.Name, cfg.Hospital.Currency, loc,
	)
	dashboardUC := appanalytics.NewDashboardUseCase(
		storage.Patients, storage.Appointments, storage.Hospitalizations, storage.Items,
		storage.Activity, cfg.Hospital.BedCapacity, loc,
	)

	loginLimiter, err := httpRouter.RateLimit(cfg.RateLimit.Login)
	if err != nil {
		log.Fatal().Err(err).Str("rate", cfg.RateLimit.Login).Msg("RATE_LIMIT_LOGIN inválido")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	if cfg.App.MetricsEnabled {
		app.Use(httpRouter.MetricsMiddleware(m))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "HNSM Hospital API",
		}))
	} else {
		log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	deps := httpRouter.RouterDeps{
		AuthUC:            authUC,
		UserUC:            usecase.NewUserUseCase(storage.Users),
		PatientUC:         usecase.NewPatientUseCase(storage.Patients, recorder),
		MedicalRecordUC:   usecase.NewMedicalRecordUseCase(storage.MedicalRecords, storage.Patients, storage.Users),
		AppointmentUC:     usecase.NewAppointmentUseCase(storage.Appointments, storage.Patients, storage.Users, recorder, loc),
		StaffScheduleUC:   usecase.NewStaffScheduleUseCase(storage.Schedules, storage.Users),
		ItemUC:            inventory.NewItemUseCase(storage.Items, loc),
		Ledger:            ledger,
		LaboratoryUC:      usecase.NewLaboratoryUseCase(storage.LabTests, storage.Patients, storage.Users, recorder),
		FinanceUC:         usecase.NewFinanceUseCase(storage.Transactions, storage.Patients, recorder, cfg.Hospital.Currency),
		HospitalizationUC: usecase.NewHospitalizationUseCase(storage.Hospitalizations, storage.Patients, storage.Users, recorder),
		DashboardUC:       dashboardUC,
		ReportsUC:         reportsUC,
		JWTSecret:         cfg.JWT.Secret,
		ServiceName:       cfg.App.Name,
		LoginLimiter:      loginLimiter,
	}
	if cfg.App.MetricsEnabled {
		deps.MetricsHandler = m.Handler()
	}
	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
