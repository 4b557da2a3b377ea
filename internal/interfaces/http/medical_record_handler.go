package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/application/usecase"
)

// MedicalRecordHandler consultas clínicas (admin y médicos).
type MedicalRecordHandler struct {
	uc *usecase.MedicalRecordUseCase
}

// NewMedicalRecordHandler construye el handler.
func NewMedicalRecordHandler(uc *usecase.MedicalRecordUseCase) *MedicalRecordHandler {
	return &MedicalRecordHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar consulta
// @Tags         medical-records
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMedicalRecordRequest  true  "patient_id, doctor_id, visit_date, diagnóstico, signos vitales"
// @Success      201   {object}  dto.MedicalRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/medical-records [post]
func (h *MedicalRecordHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMedicalRecordRequest
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
// @Summary      Obtener consulta
// @Tags         medical-records
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la consulta"
// @Success      200  {object}  dto.MedicalRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medical-records/{id} [get]
func (h *MedicalRecordHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
