package memory

import (
	"context"

	"github.com/jhoicas/Hospital-api/internal/domain"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

func cloneItem(it entity.InventoryItem) entity.InventoryItem {
	if it.UnitPrice != nil {
		p := *it.UnitPrice
		it.UnitPrice = &p
	}
	return it
}

func itemLess(a, b *entity.InventoryItem) bool {
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.ID < b.ID
}

func itemByID(a, b *entity.InventoryItem) bool {
	return a.ID < b.ID
}

func isLow(it *entity.InventoryItem) bool {
	return it.CurrentStock <= it.MinimumStock
}

func expiringBefore(until string) func(*entity.InventoryItem) bool {
	return func(it *entity.InventoryItem) bool {
		return it.ExpirationDate != "" && it.ExpirationDate <= until
	}
}

func expiringLess(a, b *entity.InventoryItem) bool {
	if a.ExpirationDate != b.ExpirationDate {
		return a.ExpirationDate < b.ExpirationDate
	}
	return a.ID < b.ID
}

func cloneAll(xs []*entity.InventoryItem) []*entity.InventoryItem {
	for i, it := range xs {
		c := cloneItem(*it)
		xs[i] = &c
	}
	return xs
}

// ItemRepo implementación en memoria de repository.InventoryItemRepository fuera de transacción.
type ItemRepo struct {
	store *Store
}

// NewInventoryItemRepository construye el repositorio.
func NewInventoryItemRepository(store *Store) *ItemRepo {
	return &ItemRepo{store: store}
}

var _ repository.InventoryItemRepository = (*ItemRepo)(nil)

func (r *ItemRepo) Create(_ context.Context, it *entity.InventoryItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	it.ID = r.store.ensureID(it.ID)
	if _, ok := r.store.state.items[it.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.state.items[it.ID] = cloneItem(*it)
	return nil
}

func (r *ItemRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	it, ok := r.store.state.items[id]
	if !ok {
		return nil, nil
	}
	it = cloneItem(it)
	return &it, nil
}

// GetForUpdate fuera de transacción equivale a GetByID; el bloqueo lo da TxRunner.
func (r *ItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.GetByID(ctx, id)
}

func (r *ItemRepo) Update(_ context.Context, it *entity.InventoryItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cur, ok := r.store.state.items[it.ID]
	if !ok {
		return domain.ErrNotFound
	}
	next := cloneItem(*it)
	next.CurrentStock = cur.CurrentStock
	r.store.state.items[it.ID] = next
	return nil
}

func (r *ItemRepo) UpdateStock(_ context.Context, it *entity.InventoryItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cur, ok := r.store.state.items[it.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.CurrentStock = it.CurrentStock
	cur.UpdatedAt = it.UpdatedAt
	r.store.state.items[it.ID] = cur
	return nil
}

func (r *ItemRepo) List(_ context.Context, category string, limit, offset int) ([]*entity.InventoryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := collect(r.store.state.items,
		func(it *entity.InventoryItem) bool { return category == "" || it.Category == category },
		itemLess)
	return cloneAll(paginate(out, limit, offset)), nil
}

func (r *ItemRepo) ListLowStock(_ context.Context) ([]*entity.InventoryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return cloneAll(collect(r.store.state.items, isLow, itemByID)), nil
}

func (r *ItemRepo) ListExpiring(_ context.Context, until string) ([]*entity.InventoryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return cloneAll(collect(r.store.state.items, expiringBefore(until), expiringLess)), nil
}

func (r *ItemRepo) ListAll(_ context.Context) ([]*entity.InventoryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return cloneAll(collect(r.store.state.items, nil, itemLess)), nil
}

// MovementRepo implementación en memoria de repository.InventoryMovementRepository.
type MovementRepo struct {
	store *Store
}

// NewInventoryMovementRepository construye el repositorio.
func NewInventoryMovementRepository(store *Store) *MovementRepo {
	return &MovementRepo{store: store}
}

var _ repository.InventoryMovementRepository = (*MovementRepo)(nil)

func (r *MovementRepo) Create(_ context.Context, m *entity.InventoryMovement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.state.items[m.ItemID]; !ok {
		return domain.ErrNotFound
	}
	m.ID = r.store.ensureID(m.ID)
	r.store.state.movements = append(r.store.state.movements, *m)
	return nil
}

func (r *MovementRepo) ListByItem(_ context.Context, itemID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return paginate(movementsByItem(r.store.state.movements, nil, itemID), limit, offset), nil
}

// movementsByItem recorre committed y staged del más reciente al más antiguo.
func movementsByItem(committed, staged []entity.InventoryMovement, itemID string) []*entity.InventoryMovement {
	out := make([]*entity.InventoryMovement, 0)
	for i := len(staged) - 1; i >= 0; i-- {
		if staged[i].ItemID == itemID {
			m := staged[i]
			out = append(out, &m)
		}
	}
	for i := len(committed) - 1; i >= 0; i-- {
		if committed[i].ItemID == itemID {
			m := committed[i]
			out = append(out, &m)
		}
	}
	return out
}
