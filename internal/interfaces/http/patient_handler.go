package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/application/usecase"
)

// PatientHandler pacientes y su historia clínica.
type PatientHandler struct {
	uc      *usecase.PatientUseCase
	records *usecase.MedicalRecordUseCase
}

// NewPatientHandler construye el handler.
func NewPatientHandler(uc *usecase.PatientUseCase, records *usecase.MedicalRecordUseCase) *PatientHandler {
	return &PatientHandler{uc: uc, records: records}
}

// List godoc
// @Summary      Listar o buscar pacientes
// @Description  search compara sin acentos ni mayúsculas contra nombre, apellido y teléfono.
// @Tags         patients
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Texto a buscar"
// @Param        limit   query  int     false  "Máximo 100 (por defecto 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.PatientResponse]
// @Router       /api/patients [get]
func (h *PatientHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.Context(), c.Query("search"), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar paciente
// @Tags         patients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePatientRequest  true  "datos del paciente"
// @Success      201   {object}  dto.PatientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/patients [post]
func (h *PatientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePatientRequest
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
// @Summary      Obtener paciente
// @Tags         patients
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del paciente"
// @Success      200  {object}  dto.PatientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/patients/{id} [get]
func (h *PatientHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar paciente
// @Tags         patients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del paciente"
// @Param        body  body  dto.UpdatePatientRequest  true  "campos a modificar"
// @Success      200   {object}  dto.PatientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/patients/{id} [put]
func (h *PatientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePatientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListMedicalRecords godoc
// @Summary      Historia clínica del paciente
// @Tags         medical-records
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del paciente"
// @Param        limit   query  int     false  "Máximo 100 (por defecto 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.MedicalRecordResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/patients/{id}/medical-records [get]
func (h *PatientHandler) ListMedicalRecords(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.records.ListByPatient(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
