package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/application/reports"
	"github.com/jhoicas/Hospital-api/internal/application/usecase"
)

// FinanceHandler transacciones y resumen financiero (solo admin).
type FinanceHandler struct {
	uc      *usecase.FinanceUseCase
	reports *reports.UseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *usecase.FinanceUseCase, summary *reports.UseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc, reports: summary}
}

// List godoc
// @Summary      Listar transacciones
// @Tags         finances
// @Security     Bearer
// @Produce      json
// @Param        patientId  query  string  false  "Filtrar por paciente"
// @Param        limit      query  int     false  "Máximo 100 (por defecto 20)"
// @Param        offset     query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.FinancialTransactionResponse]
// @Router       /api/financial-transactions [get]
func (h *FinanceHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.Context(), c.Query("patientId"), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar transacción
// @Tags         finances
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFinancialTransactionRequest  true  "patient_id, type, amount, payment_method"
// @Success      201   {object}  dto.FinancialTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/financial-transactions [post]
func (h *FinanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFinancialTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener transacción
// @Tags         finances
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.FinancialTransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/financial-transactions/{id} [get]
func (h *FinanceHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar transacción (estado, método de pago)
// @Tags         finances
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                                 true  "ID de la transacción"
// @Param        body  body  dto.UpdateFinancialTransactionRequest  true  "campos a modificar"
// @Success      200   {object}  dto.FinancialTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/financial-transactions/{id} [put]
func (h *FinanceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFinancialTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen financiero del período
// @Description  Sin fechas: del primer día del mes en curso hasta hoy (zona horaria del hospital).
// @Tags         finances
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde (YYYY-MM-DD, inclusivo)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD, inclusivo)"
// @Success      200  {object}  dto.FinancialSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/finances/summary [get]
func (h *FinanceHandler) Summary(c *fiber.Ctx) error {
	p, err := h.reports.ResolvePeriod(c.Query("from"), c.Query("to"))
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.reports.Summary(c.Context(), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
