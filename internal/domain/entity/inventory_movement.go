package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN         = "in"         // entrada
	MovementTypeOUT        = "out"        // salida
	MovementTypeADJUSTMENT = "adjustment" // ajuste (delta con signo)
)

// InventoryMovement representa un movimiento de inventario. Solo se inserta, nunca se modifica.
// PreviousStock/NewStock dejan constancia del efecto real (la salida se recorta en cero).
type InventoryMovement struct {
	ID            string
	ItemID        string
	Type          string
	Quantity      int // positivo en in/out; con signo en adjustment
	Reason        string
	UserID        string
	PreviousStock int
	NewStock      int
	CreatedAt     time.Time
}
