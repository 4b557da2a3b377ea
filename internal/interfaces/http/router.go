package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	appanalytics "github.com/jhoicas/Hospital-api/internal/application/analytics"
	"github.com/jhoicas/Hospital-api/internal/application/auth"
	"github.com/jhoicas/Hospital-api/internal/application/inventory"
	"github.com/jhoicas/Hospital-api/internal/application/reports"
	"github.com/jhoicas/Hospital-api/internal/application/usecase"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC            *auth.AuthUseCase
	UserUC            *usecase.UserUseCase
	PatientUC         *usecase.PatientUseCase
	MedicalRecordUC   *usecase.MedicalRecordUseCase
	AppointmentUC     *usecase.AppointmentUseCase
	StaffScheduleUC   *usecase.StaffScheduleUseCase
	ItemUC            *inventory.ItemUseCase
	Ledger            *inventory.LedgerUseCase
	LaboratoryUC      *usecase.LaboratoryUseCase
	FinanceUC         *usecase.FinanceUseCase
	HospitalizationUC *usecase.HospitalizationUseCase
	DashboardUC       *appanalytics.DashboardUseCase
	ReportsUC         *reports.UseCase
	JWTSecret         string
	ServiceName       string

	// Opcionales
	LoginLimiter   fiber.Handler // nil = sin límite
	MetricsHandler http.Handler  // nil = sin /metrics
}

// Grupos de roles por área (mismo criterio que el menú lateral de la aplicación).
var (
	rolesFrontDesk  = []string{entity.RoleAdmin, entity.RoleDoctor, entity.RoleNurse, entity.RoleSecretary}
	rolesWards      = []string{entity.RoleAdmin, entity.RoleDoctor, entity.RoleNurse}
	rolesClinical   = []string{entity.RoleAdmin, entity.RoleDoctor}
	rolesStaff      = []string{entity.RoleAdmin}
	rolesInventory  = []string{entity.RoleAdmin, entity.RolePharmacist}
	rolesLaboratory = []string{entity.RoleAdmin, entity.RoleDoctor, entity.RoleLaborant}
	rolesFinance    = []string{entity.RoleAdmin}
	rolesReports    = []string{entity.RoleAdmin, entity.RoleDoctor}
)

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})
	if deps.MetricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.MetricsHandler))
	}

	api := app.Group("/api")

	// Auth (público salvo /me)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	if deps.LoginLimiter != nil {
		authGroup.Post("/login", deps.LoginLimiter, authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	users := protected.Group("/users", RequireRole(rolesStaff...))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)

	patients := protected.Group("/patients", RequireRole(rolesFrontDesk...))
	patientHandler := NewPatientHandler(deps.PatientUC, deps.MedicalRecordUC)
	patients.Get("/", patientHandler.List)
	patients.Post("/", patientHandler.Create)
	patients.Get("/:id", patientHandler.Get)
	patients.Put("/:id", patientHandler.Update)
	patients.Get("/:id/medical-records", RequireRole(rolesClinical...), patientHandler.ListMedicalRecords)

	records := protected.Group("/medical-records", RequireRole(rolesClinical...))
	recordHandler := NewMedicalRecordHandler(deps.MedicalRecordUC)
	records.Post("/", recordHandler.Create)
	records.Get("/:id", recordHandler.Get)

	appointments := protected.Group("/appointments", RequireRole(rolesFrontDesk...))
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	appointments.Get("/", appointmentHandler.List)
	appointments.Post("/", appointmentHandler.Create)
	appointments.Get("/:id", appointmentHandler.Get)
	appointments.Put("/:id", appointmentHandler.Update)

	schedules := protected.Group("/staff-schedules", RequireRole(rolesStaff...))
	scheduleHandler := NewStaffScheduleHandler(deps.StaffScheduleUC)
	schedules.Get("/", scheduleHandler.List)
	schedules.Post("/", scheduleHandler.Create)

	// Inventario: /expiring antes de /:id
	inventoryHandler := NewInventoryHandler(deps.ItemUC, deps.Ledger)
	inv := protected.Group("/inventory", RequireRole(rolesInventory...))
	inv.Get("/", inventoryHandler.List)
	inv.Post("/", inventoryHandler.Create)
	inv.Get("/expiring", inventoryHandler.ListExpiring)
	inv.Get("/:id", inventoryHandler.Get)
	inv.Put("/:id", inventoryHandler.Update)
	inv.Get("/:id/movements", inventoryHandler.ListMovements)
	protected.Post("/inventory-movements", RequireRole(rolesInventory...), inventoryHandler.RecordMovement)

	labs := protected.Group("/laboratory-tests", RequireRole(rolesLaboratory...))
	labHandler := NewLaboratoryHandler(deps.LaboratoryUC)
	labs.Get("/", labHandler.List)
	labs.Post("/", labHandler.Create)
	labs.Get("/:id", labHandler.Get)
	labs.Put("/:id", labHandler.Update)

	financeHandler := NewFinanceHandler(deps.FinanceUC, deps.ReportsUC)
	txs := protected.Group("/financial-transactions", RequireRole(rolesFinance...))
	txs.Get("/", financeHandler.List)
	txs.Post("/", financeHandler.Create)
	txs.Get("/:id", financeHandler.Get)
	txs.Put("/:id", financeHandler.Update)
	protected.Get("/finances/summary", RequireRole(rolesFinance...), financeHandler.Summary)

	stays := protected.Group("/hospitalizations", RequireRole(rolesWards...))
	stayHandler := NewHospitalizationHandler(deps.HospitalizationUC)
	stays.Get("/", stayHandler.List)
	stays.Post("/", stayHandler.Create)
	stays.Get("/:id", stayHandler.Get)
	stays.Put("/:id", stayHandler.Update)

	// Dashboard: cualquier usuario autenticado
	dashboard := protected.Group("/dashboard", RequireRole())
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.GetStats)
	dashboard.Get("/activity", dashboardHandler.GetActivity)

	rep := protected.Group("/reports", RequireRole(rolesReports...))
	reportHandler := NewReportHandler(deps.ReportsUC)
	rep.Get("/transactions.xlsx", reportHandler.TransactionsXLSX)
	rep.Get("/inventory.xlsx", reportHandler.InventoryXLSX)
	rep.Get("/financial.pdf", reportHandler.FinancialPDF)
}
