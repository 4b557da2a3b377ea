package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/application/usecase"
)

// LaboratoryHandler solicitudes y resultados de laboratorio.
type LaboratoryHandler struct {
	uc *usecase.LaboratoryUseCase
}

// NewLaboratoryHandler construye el handler.
func NewLaboratoryHandler(uc *usecase.LaboratoryUseCase) *LaboratoryHandler {
	return &LaboratoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar análisis
// @Tags         laboratory
// @Security     Bearer
// @Produce      json
// @Param        patientId  query  string  false  "Filtrar por paciente"
// @Param        limit      query  int     false  "Máximo 100 (por defecto 20)"
// @Param        offset     query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.LaboratoryTestResponse]
// @Router       /api/laboratory-tests [get]
func (h *LaboratoryHandler) List(c *fiber.Ctx) error {
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
// @Summary      Solicitar análisis
// @Tags         laboratory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLaboratoryTestRequest  true  "patient_id, doctor_id, test_type"
// @Success      201   {object}  dto.LaboratoryTestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/laboratory-tests [post]
func (h *LaboratoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLaboratoryTestRequest
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
// @Summary      Obtener análisis
// @Tags         laboratory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del análisis"
// @Success      200  {object}  dto.LaboratoryTestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/laboratory-tests/{id} [get]
func (h *LaboratoryHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar análisis (resultados, estado)
// @Tags         laboratory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "ID del análisis"
// @Param        body  body  dto.UpdateLaboratoryTestRequest  true  "campos a modificar"
// @Success      200   {object}  dto.LaboratoryTestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/laboratory-tests/{id} [put]
func (h *LaboratoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLaboratoryTestRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
