package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/application/usecase"
)

// StaffScheduleHandler turnos del personal.
type StaffScheduleHandler struct {
	uc *usecase.StaffScheduleUseCase
}

// NewStaffScheduleHandler construye el handler.
func NewStaffScheduleHandler(uc *usecase.StaffScheduleUseCase) *StaffScheduleHandler {
	return &StaffScheduleHandler{uc: uc}
}

// List godoc
// @Summary      Listar turnos
// @Tags         staff
// @Security     Bearer
// @Produce      json
// @Param        userId  query  string  false  "Filtrar por usuario"
// @Param        date    query  string  false  "Día (YYYY-MM-DD)"
// @Param        limit   query  int     false  "Máximo 100 (por defecto 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.StaffScheduleResponse]
// @Router       /api/staff-schedules [get]
func (h *StaffScheduleHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.Context(), c.Query("userId"), c.Query("date"), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar turno
// @Tags         staff
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStaffScheduleRequest  true  "user_id, date, start_time, end_time"
// @Success      201   {object}  dto.StaffScheduleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/staff-schedules [post]
func (h *StaffScheduleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStaffScheduleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
