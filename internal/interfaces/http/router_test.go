package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Hospital-api/internal/application/activity"
	appanalytics "github.com/jhoicas/Hospital-api/internal/application/analytics"
	"github.com/jhoicas/Hospital-api/internal/application/auth"
	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/application/inventory"
	"github.com/jhoicas/Hospital-api/internal/application/reports"
	"github.com/jhoicas/Hospital-api/internal/application/seed"
	"github.com/jhoicas/Hospital-api/internal/application/usecase"
	"github.com/jhoicas/Hospital-api/internal/infrastructure/memory"
	"github.com/jhoicas/Hospital-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Hospital-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Hospital-api/internal/infrastructure/xlsx"
	apphttp "github.com/jhoicas/Hospital-api/internal/interfaces/http"
	"github.com/jhoicas/Hospital-api/pkg/logger"
)

// newHospitalApp monta la API completa sobre el store en memoria con las cuentas y datos de ejemplo.
func newHospitalApp(t *testing.T, loginRate string) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	t.Cleanup(store.Close)

	users := memory.NewUserRepository(store)
	patients := memory.NewPatientRepository(store)
	records := memory.NewMedicalRecordRepository(store)
	appointments := memory.NewAppointmentRepository(store)
	schedules := memory.NewStaffScheduleRepository(store)
	items := memory.NewInventoryItemRepository(store)
	movements := memory.NewInventoryMovementRepository(store)
	labs := memory.NewLaboratoryTestRepository(store)
	txs := memory.NewFinancialTransactionRepository(store)
	stays := memory.NewHospitalizationRepository(store)
	feed := memory.NewActivityFeed(50)

	_, err := seed.NewSeeder(users, patients, items, zerolog.Nop()).Run(context.Background(), true)
	require.NoError(t, err)

	log := logger.Nop()
	recorder := activity.NewRecorder(feed, log)
	m := metrics.New()

	deps := apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(users, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		UserUC:            usecase.NewUserUseCase(users),
		PatientUC:         usecase.NewPatientUseCase(patients, recorder),
		MedicalRecordUC:   usecase.NewMedicalRecordUseCase(records, patients, users),
		AppointmentUC:     usecase.NewAppointmentUseCase(appointments, patients, users, recorder, time.UTC),
		StaffScheduleUC:   usecase.NewStaffScheduleUseCase(schedules, users),
		ItemUC:            inventory.NewItemUseCase(items, time.UTC),
		Ledger:            inventory.NewLedgerUseCase(memory.NewTxRunner(store), items, movements, recorder, m, log),
		LaboratoryUC:      usecase.NewLaboratoryUseCase(labs, patients, users, recorder),
		FinanceUC:         usecase.NewFinanceUseCase(txs, patients, recorder, "XOF"),
		HospitalizationUC: usecase.NewHospitalizationUseCase(stays, patients, users, recorder),
		DashboardUC:       appanalytics.NewDashboardUseCase(patients, appointments, stays, items, feed, 200, time.UTC),
		ReportsUC:         reports.NewUseCase(txs, items, xlsx.NewExporter(), pdf.NewMarotoPDFGenerator(), "HNSM", "XOF", time.UTC),
		JWTSecret:         testJWTSecret,
		ServiceName:       "hnsm-test",
		MetricsHandler:    m.Handler(),
	}
	if loginRate != "" {
		limiter, err := apphttp.RateLimit(loginRate)
		require.NoError(t, err)
		deps.LoginLimiter = limiter
	}

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Use(apphttp.RequestLogger(log))
	app.Use(apphttp.MetricsMiddleware(m))
	apphttp.Router(app, deps)
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func loginAdmin(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "admin", Password: seed.DefaultPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.LoginResponse](t, resp)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "admin", out.User.Role)
	return "Bearer " + out.Token
}

func TestLogin(t *testing.T) {
	app := newHospitalApp(t, "")

	t.Run("credenciales válidas", func(t *testing.T) {
		token := loginAdmin(t, app)
		resp := call(t, app, http.MethodGet, "/api/auth/me", token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		me := decode[dto.UserResponse](t, resp)
		assert.Equal(t, "admin", me.Username)
	})

	t.Run("contraseña incorrecta", func(t *testing.T) {
		resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "admin", Password: "nope"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", decode[dto.ErrorResponse](t, resp).Code)
	})

	t.Run("cuerpo inválido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLogin_RateLimited(t *testing.T) {
	app := newHospitalApp(t, "2-M")
	body := dto.LoginRequest{Username: "admin", Password: "nope"}

	assert.Equal(t, http.StatusUnauthorized, call(t, app, http.MethodPost, "/api/auth/login", "", body).StatusCode)
	assert.Equal(t, http.StatusUnauthorized, call(t, app, http.MethodPost, "/api/auth/login", "", body).StatusCode)

	resp := call(t, app, http.MethodPost, "/api/auth/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "RATE_LIMITED", decode[dto.ErrorResponse](t, resp).Code)
	assert.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))
}

func TestRoleMatrix(t *testing.T) {
	app := newHospitalApp(t, "")

	cases := []struct {
		role string
		path string
		want int
	}{
		{"secretary", "/api/patients", http.StatusOK},
		{"nurse", "/api/appointments", http.StatusOK},
		{"pharmacist", "/api/patients", http.StatusForbidden},
		{"nurse", "/api/hospitalizations", http.StatusOK},
		{"secretary", "/api/hospitalizations", http.StatusForbidden},
		{"pharmacist", "/api/inventory", http.StatusOK},
		{"nurse", "/api/inventory", http.StatusForbidden},
		{"laborant", "/api/laboratory-tests", http.StatusOK},
		{"nurse", "/api/laboratory-tests", http.StatusForbidden},
		{"doctor", "/api/financial-transactions", http.StatusForbidden},
		{"admin", "/api/finances/summary", http.StatusOK},
		{"doctor", "/api/users", http.StatusForbidden},
		{"laborant", "/api/dashboard/stats", http.StatusOK},
		{"secretary", "/api/dashboard/activity", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.role+" "+tc.path, func(t *testing.T) {
			resp := call(t, app, http.MethodGet, tc.path, tokenForRole(t, tc.role), nil)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}

	t.Run("historia clínica restringida a médicos", func(t *testing.T) {
		list := decode[dto.ListResponse[dto.PatientResponse]](t,
			call(t, app, http.MethodGet, "/api/patients", tokenForRole(t, "doctor"), nil))
		require.NotEmpty(t, list.Items)
		path := "/api/patients/" + list.Items[0].ID + "/medical-records"

		assert.Equal(t, http.StatusForbidden, call(t, app, http.MethodGet, path, tokenForRole(t, "secretary"), nil).StatusCode)
		assert.Equal(t, http.StatusOK, call(t, app, http.MethodGet, path, tokenForRole(t, "doctor"), nil).StatusCode)
	})
}

func TestPatients(t *testing.T) {
	app := newHospitalApp(t, "")
	token := loginAdmin(t, app)

	resp := call(t, app, http.MethodPost, "/api/patients", token, dto.CreatePatientRequest{
		FirstName: "Ousmane", LastName: "Embaló", DateOfBirth: "1990-02-14", Gender: "M",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.PatientResponse](t, resp)

	resp = call(t, app, http.MethodGet, "/api/patients?search=embalo", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	found := decode[dto.ListResponse[dto.PatientResponse]](t, resp)
	require.Len(t, found.Items, 1)
	assert.Equal(t, created.ID, found.Items[0].ID)

	resp = call(t, app, http.MethodPost, "/api/patients", token, dto.CreatePatientRequest{FirstName: "Sin", LastName: "Fecha", Gender: "X"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)

	resp = call(t, app, http.MethodGet, "/api/patients/no-existe", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)

	resp = call(t, app, http.MethodGet, "/api/patients?limit=abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInventoryLedgerOverHTTP(t *testing.T) {
	app := newHospitalApp(t, "")
	token := loginAdmin(t, app)

	resp := call(t, app, http.MethodPost, "/api/inventory", token, dto.CreateInventoryItemRequest{
		Name: "Ceftriaxone 1g", Category: "medication", CurrentStock: 10, MinimumStock: 5, Unit: "vials",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	item := decode[dto.InventoryItemResponse](t, resp)
	assert.False(t, item.LowStock)

	resp = call(t, app, http.MethodPost, "/api/inventory-movements", token, dto.RecordMovementRequest{
		ItemID: item.ID, Type: "out", Quantity: 7, Reason: "Urgences",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	rec := decode[dto.RecordMovementResponse](t, resp)
	assert.Equal(t, 10, rec.Movement.PreviousStock)
	assert.Equal(t, 3, rec.Movement.NewStock)
	assert.True(t, rec.Item.LowStock)

	// La salida mayor que el stock deja el artículo en 0
	resp = call(t, app, http.MethodPost, "/api/inventory-movements", token, dto.RecordMovementRequest{
		ItemID: item.ID, Type: "out", Quantity: 50,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	rec = decode[dto.RecordMovementResponse](t, resp)
	assert.Equal(t, 0, rec.Item.CurrentStock)
	assert.True(t, rec.Item.OutOfStock)

	resp = call(t, app, http.MethodPost, "/api/inventory-movements", token, dto.RecordMovementRequest{
		ItemID: item.ID, Type: "in", Quantity: 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/inventory-movements", token, dto.RecordMovementRequest{
		ItemID: item.ID, Type: "in", Quantity: math.MaxInt,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = call(t, app, http.MethodGet, "/api/inventory/"+item.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, decode[dto.InventoryItemResponse](t, resp).CurrentStock, "la cantidad desbordada no toca el stock")

	resp = call(t, app, http.MethodPost, "/api/inventory-movements", token, dto.RecordMovementRequest{
		ItemID: "desconocido", Type: "in", Quantity: 1,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/inventory/"+item.ID+"/movements", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	history := decode[dto.ListResponse[dto.InventoryMovementResponse]](t, resp)
	require.Len(t, history.Items, 2)
	assert.Equal(t, 0, history.Items[0].NewStock, "el más reciente primero")

	resp = call(t, app, http.MethodGet, "/api/inventory?lowStock=true", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	low := decode[dto.ListResponse[dto.InventoryItemResponse]](t, resp)
	ids := make([]string, 0, len(low.Items))
	for _, it := range low.Items {
		assert.True(t, it.LowStock)
		ids = append(ids, it.ID)
	}
	assert.Contains(t, ids, item.ID)
	assert.IsIncreasing(t, ids)
	assert.Equal(t, dto.DefaultLimit, low.Page.Limit)

	resp = call(t, app, http.MethodGet, "/api/inventory?lowStock=true&limit=1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	low = decode[dto.ListResponse[dto.InventoryItemResponse]](t, resp)
	assert.Len(t, low.Items, 1)
	assert.Equal(t, ids[0], low.Items[0].ID)
	assert.Equal(t, 1, low.Page.Limit)

	resp = call(t, app, http.MethodGet, "/api/inventory?lowStock=true&offset=1000", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	low = decode[dto.ListResponse[dto.InventoryItemResponse]](t, resp)
	assert.Empty(t, low.Items)
	assert.Equal(t, dto.DefaultLimit, low.Page.Limit, "una página vacía conserva el límite pedido")
	assert.Equal(t, 1000, low.Page.Offset)

	resp = call(t, app, http.MethodGet, "/api/inventory/expiring?days=abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = call(t, app, http.MethodGet, "/api/inventory/expiring?days=3650", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `hnsm_inventory_movements_total{type="out"} 2`)
	assert.Contains(t, string(body), `hnsm_inventory_movements_rejected_total{reason="validation"} 2`)
}

func TestDashboardStats(t *testing.T) {
	app := newHospitalApp(t, "")
	resp := call(t, app, http.MethodGet, "/api/dashboard/stats", tokenForRole(t, "nurse"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stats := decode[dto.DashboardStatsResponse](t, resp)
	assert.Equal(t, 3, stats.ActivePatients)
	assert.Equal(t, 200, stats.BedCapacity)
	assert.Equal(t, 0, stats.OccupancyRate)
	assert.Equal(t, 1, stats.LowStockAlerts)
}

func TestReports(t *testing.T) {
	app := newHospitalApp(t, "")
	token := tokenForRole(t, "doctor")

	resp := call(t, app, http.MethodGet, "/api/reports/inventory.xlsx", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventory_")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("PK")), "un XLSX es un zip")

	resp = call(t, app, http.MethodGet, "/api/reports/financial.pdf?from=2026-01-01&to=2026-01-31", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	resp = call(t, app, http.MethodGet, "/api/reports/transactions.xlsx?from=2026-02-01&to=2026-01-01", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthMetricsAndUnknownRoute(t *testing.T) {
	app := newHospitalApp(t, "")

	resp := call(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	resp = call(t, app, http.MethodGet, "/api/nada", tokenForRole(t, "admin"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)

	resp = call(t, app, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `route="/health"`)
}

func TestErrorHandler_FiberErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Get("/grande", func(c *fiber.Ctx) error { return fiber.ErrRequestEntityTooLarge })
	app.Get("/rota", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusUnprocessableEntity, "no procesable") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/grande", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.Equal(t, "REQUEST_ENTITY_TOO_LARGE", decode[dto.ErrorResponse](t, resp).Code)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/rota", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "UNPROCESSABLE_ENTITY", body.Code)
	assert.Equal(t, "no procesable", body.Message)
}
