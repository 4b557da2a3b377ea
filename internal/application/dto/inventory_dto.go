package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest entrada para dar de alta un artículo.
type CreateInventoryItemRequest struct {
	Name           string           `json:"name" validate:"required,max=200"`
	Category       string           `json:"category" validate:"required,oneof=medication supply equipment"`
	Description    string           `json:"description"`
	CurrentStock   int              `json:"current_stock" validate:"min=0,max=2147483647"`
	MinimumStock   int              `json:"minimum_stock" validate:"min=0,max=2147483647"`
	Unit           string           `json:"unit" validate:"required,max=30"`
	UnitPrice      *decimal.Decimal `json:"unit_price" swaggertype:"string"`
	Supplier       string           `json:"supplier"`
	ExpirationDate string           `json:"expiration_date" validate:"omitempty,datetime=2006-01-02"`
	BatchNumber    string           `json:"batch_number"`
	Location       string           `json:"location"`
}

// UpdateInventoryItemRequest actualización parcial (sin stock: el stock solo cambia por movimientos).
type UpdateInventoryItemRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category       *string          `json:"category" validate:"omitempty,oneof=medication supply equipment"`
	Description    *string          `json:"description"`
	MinimumStock   *int             `json:"minimum_stock" validate:"omitempty,min=0,max=2147483647"`
	Unit           *string          `json:"unit" validate:"omitempty,min=1,max=30"`
	UnitPrice      *decimal.Decimal `json:"unit_price" swaggertype:"string"`
	Supplier       *string          `json:"supplier"`
	ExpirationDate *string          `json:"expiration_date" validate:"omitempty,datetime=2006-01-02"`
	BatchNumber    *string          `json:"batch_number"`
	Location       *string          `json:"location"`
}

// InventoryItemResponse salida de un artículo con los indicadores derivados.
type InventoryItemResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Category       string           `json:"category"`
	Description    string           `json:"description"`
	CurrentStock   int              `json:"current_stock"`
	MinimumStock   int              `json:"minimum_stock"`
	Unit           string           `json:"unit"`
	UnitPrice      *decimal.Decimal `json:"unit_price,omitempty" swaggertype:"string"`
	Supplier       string           `json:"supplier"`
	ExpirationDate string           `json:"expiration_date"`
	BatchNumber    string           `json:"batch_number"`
	Location       string           `json:"location"`
	LowStock       bool             `json:"low_stock"`
	OutOfStock     bool             `json:"out_of_stock"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// RecordMovementRequest body para POST /api/inventory-movements.
// Quantity > 0 en in/out; en adjustment es un delta con signo distinto de cero.
type RecordMovementRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=in out adjustment"`
	Quantity int    `json:"quantity" validate:"min=-2147483647,max=2147483647"`
	Reason   string `json:"reason" validate:"max=500"`
}

// InventoryMovementResponse salida de un movimiento.
type InventoryMovementResponse struct {
	ID            string    `json:"id"`
	ItemID        string    `json:"item_id"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	Reason        string    `json:"reason"`
	UserID        string    `json:"user_id"`
	PreviousStock int       `json:"previous_stock"`
	NewStock      int       `json:"new_stock"`
	CreatedAt     time.Time `json:"created_at"`
}

// RecordMovementResponse movimiento registrado y estado resultante del artículo.
type RecordMovementResponse struct {
	Movement InventoryMovementResponse `json:"movement"`
	Item     InventoryItemResponse     `json:"item"`
}
