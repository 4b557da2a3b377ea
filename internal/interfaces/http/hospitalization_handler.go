package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/application/usecase"
)

// HospitalizationHandler ingresos y altas.
type HospitalizationHandler struct {
	uc *usecase.HospitalizationUseCase
}

// NewHospitalizationHandler construye el handler.
func NewHospitalizationHandler(uc *usecase.HospitalizationUseCase) *HospitalizationHandler {
	return &HospitalizationHandler{uc: uc}
}

// List godoc
// @Summary      Listar hospitalizaciones
// @Tags         hospitalizations
// @Security     Bearer
// @Produce      json
// @Param        active     query  bool    false  "Solo ingresos activos"
// @Param        patientId  query  string  false  "Filtrar por paciente"
// @Param        limit      query  int     false  "Máximo 100 (por defecto 20)"
// @Param        offset     query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.HospitalizationResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/hospitalizations [get]
func (h *HospitalizationHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	active := false
	if raw := c.Query("active"); raw != "" {
		if active, err = strconv.ParseBool(raw); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "active debe ser true o false"})
		}
	}
	out, err := h.uc.List(c.Context(), active, c.Query("patientId"), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar ingreso
// @Tags         hospitalizations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateHospitalizationRequest  true  "patient_id, doctor_id, room, bed, reason"
// @Success      201   {object}  dto.HospitalizationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/hospitalizations [post]
func (h *HospitalizationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateHospitalizationRequest
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
// @Summary      Obtener hospitalización
// @Tags         hospitalizations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la hospitalización"
// @Success      200  {object}  dto.HospitalizationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hospitalizations/{id} [get]
func (h *HospitalizationHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar hospitalización (alta, traslado)
// @Tags         hospitalizations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                            true  "ID de la hospitalización"
// @Param        body  body  dto.UpdateHospitalizationRequest  true  "campos a modificar"
// @Success      200   {object}  dto.HospitalizationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/hospitalizations/{id} [put]
func (h *HospitalizationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateHospitalizationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
