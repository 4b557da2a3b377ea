package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de artículo de inventario.
const (
	CategoryMedication = "medication"
	CategorySupply     = "supply"
	CategoryEquipment  = "equipment"
)

// InventoryItem representa un artículo de farmacia o almacén.
// CurrentStock solo cambia a través de movimientos (ver inventory.Apply).
type InventoryItem struct {
	ID             string
	Name           string
	Category       string
	Description    string
	CurrentStock   int
	MinimumStock   int
	Unit           string // pieces, boxes, ml, mg
	UnitPrice      *decimal.Decimal
	Supplier       string
	ExpirationDate string // YYYY-MM-DD
	BatchNumber    string
	Location       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ValidCategory indica si c es una categoría conocida.
func ValidCategory(c string) bool {
	switch c {
	case CategoryMedication, CategorySupply, CategoryEquipment:
		return true
	}
	return false
}
