package inventory

import (
	"fmt"
	"math"

	"github.com/jhoicas/Hospital-api/internal/domain"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
)

// MaxStock límite de cantidades y existencias (columna INTEGER de postgres).
const MaxStock = math.MaxInt32

// ValidateMovement comprueba tipo y cantidad de un movimiento (servicio de dominio).
// in/out exigen cantidad > 0; adjustment es un delta con signo distinto de cero.
func ValidateMovement(movementType string, quantity int) error {
	if quantity > MaxStock || quantity < -MaxStock {
		return fmt.Errorf("%w: la cantidad excede el máximo permitido (%d)", domain.ErrInvalidInput, MaxStock)
	}
	switch movementType {
	case entity.MovementTypeIN, entity.MovementTypeOUT:
		if quantity <= 0 {
			return fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
		}
	case entity.MovementTypeADJUSTMENT:
		if quantity == 0 {
			return fmt.Errorf("%w: el ajuste no puede ser cero", domain.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: tipo de movimiento %q desconocido", domain.ErrInvalidInput, movementType)
	}
	return nil
}

// Apply devuelve el stock resultante de aplicar el movimiento a current.
// El resultado nunca es negativo: salidas y ajustes se recortan en cero.
func Apply(current int, movementType string, quantity int) (int, error) {
	if err := ValidateMovement(movementType, quantity); err != nil {
		return current, err
	}
	var next int
	switch movementType {
	case entity.MovementTypeIN:
		next = current + quantity
	case entity.MovementTypeOUT:
		next = current - quantity
	case entity.MovementTypeADJUSTMENT:
		next = current + quantity
	}
	if next < 0 {
		next = 0
	}
	if next > MaxStock {
		return current, fmt.Errorf("%w: el stock resultante excede el máximo permitido (%d)", domain.ErrInvalidInput, MaxStock)
	}
	return next, nil
}

// IsLowStock stock en o por debajo del mínimo.
func IsLowStock(item *entity.InventoryItem) bool {
	return item.CurrentStock <= item.MinimumStock
}

// IsOutOfStock sin existencias.
func IsOutOfStock(item *entity.InventoryItem) bool {
	return item.CurrentStock == 0
}
