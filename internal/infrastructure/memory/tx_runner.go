package memory

import (
	"context"

	"github.com/jhoicas/Hospital-api/internal/domain"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

// TxRunner ejecuta una unidad de trabajo de inventario con el lock exclusivo del Store.
// Los cambios se preparan en la transacción y solo se aplican si fn no devuelve error.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run implementa el puerto TxRunner del caso de uso de inventario.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.InventoryItemRepository,
	movRepo repository.InventoryMovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	tx := &memTx{store: r.store, items: make(map[string]entity.InventoryItem)}
	if err := fn(&txItemRepo{tx: tx}, &txMovementRepo{tx: tx}); err != nil {
		return err // rollback: nada de lo preparado se aplica
	}
	for id, it := range tx.items {
		r.store.state.items[id] = it
	}
	r.store.state.movements = append(r.store.state.movements, tx.movements...)
	return nil
}

type memTx struct {
	store     *Store
	items     map[string]entity.InventoryItem
	movements []entity.InventoryMovement
}

func (tx *memTx) item(id string) (entity.InventoryItem, bool) {
	if it, ok := tx.items[id]; ok {
		return it, true
	}
	it, ok := tx.store.state.items[id]
	return it, ok
}

// txItemRepo ve el estado del Store más lo preparado; el lock ya lo tiene Run.
type txItemRepo struct {
	tx *memTx
}

var _ repository.InventoryItemRepository = (*txItemRepo)(nil)

func (r *txItemRepo) Create(_ context.Context, it *entity.InventoryItem) error {
	it.ID = r.tx.store.ensureID(it.ID)
	if _, ok := r.tx.item(it.ID); ok {
		return domain.ErrDuplicate
	}
	r.tx.items[it.ID] = cloneItem(*it)
	return nil
}

func (r *txItemRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	it, ok := r.tx.item(id)
	if !ok {
		return nil, nil
	}
	it = cloneItem(it)
	return &it, nil
}

func (r *txItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.GetByID(ctx, id)
}

func (r *txItemRepo) Update(_ context.Context, it *entity.InventoryItem) error {
	cur, ok := r.tx.item(it.ID)
	if !ok {
		return domain.ErrNotFound
	}
	next := cloneItem(*it)
	next.CurrentStock = cur.CurrentStock
	r.tx.items[it.ID] = next
	return nil
}

func (r *txItemRepo) UpdateStock(_ context.Context, it *entity.InventoryItem) error {
	cur, ok := r.tx.item(it.ID)
	if !ok {
		return domain.ErrNotFound
	}
	cur.CurrentStock = it.CurrentStock
	cur.UpdatedAt = it.UpdatedAt
	r.tx.items[it.ID] = cur
	return nil
}

func (r *txItemRepo) merged() map[string]entity.InventoryItem {
	m := make(map[string]entity.InventoryItem, len(r.tx.store.state.items))
	for id, it := range r.tx.store.state.items {
		m[id] = it
	}
	for id, it := range r.tx.items {
		m[id] = it
	}
	return m
}

func (r *txItemRepo) List(_ context.Context, category string, limit, offset int) ([]*entity.InventoryItem, error) {
	out := collect(r.merged(),
		func(it *entity.InventoryItem) bool { return category == "" || it.Category == category },
		itemLess)
	return cloneAll(paginate(out, limit, offset)), nil
}

func (r *txItemRepo) ListLowStock(_ context.Context) ([]*entity.InventoryItem, error) {
	return cloneAll(collect(r.merged(), isLow, itemByID)), nil
}

func (r *txItemRepo) ListExpiring(_ context.Context, until string) ([]*entity.InventoryItem, error) {
	return cloneAll(collect(r.merged(), expiringBefore(until), expiringLess)), nil
}

func (r *txItemRepo) ListAll(_ context.Context) ([]*entity.InventoryItem, error) {
	return cloneAll(collect(r.merged(), nil, itemLess)), nil
}

type txMovementRepo struct {
	tx *memTx
}

var _ repository.InventoryMovementRepository = (*txMovementRepo)(nil)

func (r *txMovementRepo) Create(_ context.Context, m *entity.InventoryMovement) error {
	if _, ok := r.tx.item(m.ItemID); !ok {
		return domain.ErrNotFound
	}
	m.ID = r.tx.store.ensureID(m.ID)
	r.tx.movements = append(r.tx.movements, *m)
	return nil
}

func (r *txMovementRepo) ListByItem(_ context.Context, itemID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	return paginate(movementsByItem(r.tx.store.state.movements, r.tx.movements, itemID), limit, offset), nil
}
