package repository

import (
	"context"

	"github.com/jhoicas/Hospital-api/internal/domain/entity"
)

// InventoryMovementRepository define el puerto de persistencia para movimientos de inventario.
// Solo inserción: no hay Update ni Delete.
type InventoryMovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error
	// ListByItem ordena del más reciente al más antiguo.
	ListByItem(ctx context.Context, itemID string, limit, offset int) ([]*entity.InventoryMovement, error)
}
