package repository

import (
	"context"

	"github.com/jhoicas/Hospital-api/internal/domain/entity"
)

// InventoryItemRepository define el puerto de persistencia para artículos de inventario.
// Usado también dentro de transacciones (ver TxRunner del caso de uso de inventario).
type InventoryItemRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	// UpdateStock solo toca current_stock y updated_at.
	UpdateStock(ctx context.Context, item *entity.InventoryItem) error
	List(ctx context.Context, category string, limit, offset int) ([]*entity.InventoryItem, error)
	// ListLowStock devuelve los artículos con current_stock <= minimum_stock ordenados por id.
	ListLowStock(ctx context.Context) ([]*entity.InventoryItem, error)
	// ListExpiring devuelve los artículos con fecha de caducidad <= until (YYYY-MM-DD).
	ListExpiring(ctx context.Context, until string) ([]*entity.InventoryItem, error)
	ListAll(ctx context.Context) ([]*entity.InventoryItem, error)
}
