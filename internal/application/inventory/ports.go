package inventory

import (
	"context"

	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el libro de inventario: movimiento y stock se confirman juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.InventoryItemRepository,
		movRepo repository.InventoryMovementRepository,
	) error) error
}

// Metrics contadores del libro de inventario.
type Metrics interface {
	MovementRecorded(movementType string)
	MovementRejected(reason string)
	LowStockReached(itemID string)
}

type noopMetrics struct{}

func (noopMetrics) MovementRecorded(string) {}
func (noopMetrics) MovementRejected(string) {}
func (noopMetrics) LowStockReached(string)  {}
