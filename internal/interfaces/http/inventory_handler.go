package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/application/inventory"
)

const defaultExpiringDays = 30

// InventoryHandler maneja artículos y movimientos de inventario (protegido).
type InventoryHandler struct {
	items  *inventory.ItemUseCase
	ledger *inventory.LedgerUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(items *inventory.ItemUseCase, ledger *inventory.LedgerUseCase) *InventoryHandler {
	return &InventoryHandler{items: items, ledger: ledger}
}

// List godoc
// @Summary      Listar artículos
// @Description  lowStock=true devuelve solo los artículos con stock <= mínimo (ordenados por id, sin paginar).
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        lowStock  query  bool    false  "Solo stock bajo"
// @Param        category  query  string  false  "medication, supply, equipment"
// @Param        limit     query  int     false  "Máximo 100 (por defecto 20)"
// @Param        offset    query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.InventoryItemResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	if raw := c.Query("lowStock"); raw != "" {
		low, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lowStock debe ser true o false"})
		}
		if low {
			items, err := h.ledger.ListLowStock(c.Context())
			if err != nil {
				return writeError(c, err)
			}
			return c.JSON(dto.ListResponse[dto.InventoryItemResponse]{
				Items: pageOf(items, page),
				Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
			})
		}
	}
	out, err := h.items.List(c.Context(), c.Query("category"), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear artículo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryItemRequest  true  "name, category, unit, stock inicial y mínimo"
// @Success      201   {object}  dto.InventoryItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.items.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener artículo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.InventoryItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	out, err := h.items.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar artículo
// @Description  El stock no se modifica aquí: solo cambia mediante movimientos.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID del artículo"
// @Param        body  body  dto.UpdateInventoryItemRequest  true  "campos a modificar"
// @Success      200   {object}  dto.InventoryItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.items.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Historial de movimientos de un artículo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del artículo"
// @Param        limit   query  int     false  "Máximo 100 (por defecto 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ListResponse[dto.InventoryMovementResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.ledger.ListMovements(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListExpiring godoc
// @Summary      Artículos próximos a caducar
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Ventana en días (por defecto 30)"
// @Success      200  {array}   dto.InventoryItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/expiring [get]
func (h *InventoryHandler) ListExpiring(c *fiber.Ctx) error {
	days := defaultExpiringDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "days debe ser un entero"})
		}
		days = n
	}
	out, err := h.items.ListExpiring(c.Context(), days)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RecordMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  in/out: quantity > 0. adjustment: delta con signo distinto de cero. El stock nunca baja de 0.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "item_id, type, quantity, reason"
// @Success      201   {object}  dto.RecordMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory-movements [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.ledger.RecordMovementFromRequest(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
