package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Hospital-api/internal/domain"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

const itemSelect = `
	SELECT id, name, category, description, current_stock, minimum_stock, unit, unit_price,
		supplier, COALESCE(to_char(expiration_date, 'YYYY-MM-DD'), ''), batch_number, location,
		created_at, updated_at
	FROM inventory_items`

func scanItem(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(&it.ID, &it.Name, &it.Category, &it.Description, &it.CurrentStock, &it.MinimumStock,
		&it.Unit, &it.UnitPrice, &it.Supplier, &it.ExpirationDate, &it.BatchNumber, &it.Location,
		&it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *InventoryItemRepo) Create(ctx context.Context, it *entity.InventoryItem) error {
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_items (id, name, category, description, current_stock, minimum_stock, unit,
			unit_price, supplier, expiration_date, batch_number, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10::text, '')::date, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.Name, it.Category, it.Description, it.CurrentStock, it.MinimumStock, it.Unit,
		it.UnitPrice, it.Supplier, it.ExpirationDate, it.BatchNumber, it.Location, it.CreatedAt, it.UpdatedAt,
	)
	return mapError("insert inventory item", err)
}

func (r *InventoryItemRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.getOne(ctx, itemSelect+` WHERE id = $1`, id)
}

// GetForUpdate obtiene el artículo y bloquea la fila (SELECT FOR UPDATE). Solo tiene efecto dentro de una tx.
func (r *InventoryItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.getOne(ctx, itemSelect+` WHERE id = $1 FOR UPDATE`, id)
}

func (r *InventoryItemRepo) getOne(ctx context.Context, query, id string) (*entity.InventoryItem, error) {
	if !isUUID(id) {
		return nil, nil
	}
	it, err := scanItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("get inventory item", err)
	}
	return it, nil
}

// Update actualiza los datos descriptivos; current_stock no se toca (solo cambia vía movimientos).
func (r *InventoryItemRepo) Update(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items SET name = $2, category = $3, description = $4, minimum_stock = $5,
			unit = $6, unit_price = $7, supplier = $8, expiration_date = NULLIF($9::text, '')::date,
			batch_number = $10, location = $11, updated_at = $12
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		it.ID, it.Name, it.Category, it.Description, it.MinimumStock, it.Unit, it.UnitPrice,
		it.Supplier, it.ExpirationDate, it.BatchNumber, it.Location, it.UpdatedAt,
	)
	if err != nil {
		return mapError("update inventory item", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock solo toca current_stock y updated_at.
func (r *InventoryItemRepo) UpdateStock(ctx context.Context, it *entity.InventoryItem) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE inventory_items SET current_stock = $2, updated_at = $3 WHERE id = $1`,
		it.ID, it.CurrentStock, it.UpdatedAt)
	if err != nil {
		return mapError("update stock", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InventoryItemRepo) List(ctx context.Context, category string, limit, offset int) ([]*entity.InventoryItem, error) {
	return queryList(ctx, r.q, "list inventory items", scanItem,
		itemSelect+` WHERE ($1 = '' OR category = $1) ORDER BY name, id LIMIT $2 OFFSET $3`,
		category, limit, offset)
}

// ListLowStock current_stock <= minimum_stock, ordenados por id.
func (r *InventoryItemRepo) ListLowStock(ctx context.Context) ([]*entity.InventoryItem, error) {
	return queryList(ctx, r.q, "list low stock", scanItem,
		itemSelect+` WHERE current_stock <= minimum_stock ORDER BY id`)
}

func (r *InventoryItemRepo) ListExpiring(ctx context.Context, until string) ([]*entity.InventoryItem, error) {
	return queryList(ctx, r.q, "list expiring items", scanItem,
		itemSelect+` WHERE expiration_date IS NOT NULL AND to_char(expiration_date, 'YYYY-MM-DD') <= $1
		ORDER BY expiration_date, id`, until)
}

func (r *InventoryItemRepo) ListAll(ctx context.Context) ([]*entity.InventoryItem, error) {
	return queryList(ctx, r.q, "list inventory items", scanItem, itemSelect+` ORDER BY name, id`)
}

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación sobre PostgreSQL (usable con pool o tx). Solo inserción.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un movimiento. seq (BIGSERIAL) fija el orden de inserción.
func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_movements (id, item_id, type, quantity, reason, user_id,
			previous_stock, new_stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ItemID, m.Type, m.Quantity, m.Reason, nullable(m.UserID),
		m.PreviousStock, m.NewStock, m.CreatedAt,
	)
	return mapError("create inventory movement", err)
}

// ListByItem del más reciente al más antiguo.
func (r *InventoryMovementRepo) ListByItem(ctx context.Context, itemID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	if !isUUID(itemID) {
		return []*entity.InventoryMovement{}, nil
	}
	query := `
		SELECT id, item_id, type, quantity, reason, user_id, previous_stock, new_stock, created_at
		FROM inventory_movements WHERE item_id = $1
		ORDER BY seq DESC LIMIT $2 OFFSET $3`
	return queryList(ctx, r.q, "list movements", func(row pgx.Row) (*entity.InventoryMovement, error) {
		var m entity.InventoryMovement
		var userID *string
		if err := row.Scan(&m.ID, &m.ItemID, &m.Type, &m.Quantity, &m.Reason, &userID,
			&m.PreviousStock, &m.NewStock, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.UserID = deref(userID)
		return &m, nil
	}, query, itemID, limit, offset)
}
