package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/domain"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/inventory"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para artículos. El stock solo cambia vía movimientos.
type ItemUseCase struct {
	repo repository.InventoryItemRepository
	loc  *time.Location
	now  func() time.Time
}

// NewItemUseCase construye el caso de uso; loc es la zona horaria del hospital (caducidades).
func NewItemUseCase(repo repository.InventoryItemRepository, loc *time.Location) *ItemUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ItemUseCase{repo: repo, loc: loc, now: time.Now}
}

// Create da de alta un artículo con su stock inicial.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit_price no puede ser negativo", domain.ErrInvalidInput)
	}
	now := uc.now().UTC()
	item := &entity.InventoryItem{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(in.Name),
		Category:       in.Category,
		Description:    in.Description,
		CurrentStock:   in.CurrentStock,
		MinimumStock:   in.MinimumStock,
		Unit:           in.Unit,
		UnitPrice:      in.UnitPrice,
		Supplier:       in.Supplier,
		ExpirationDate: in.ExpirationDate,
		BatchNumber:    in.BatchNumber,
		Location:       in.Location,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// GetByID obtiene un artículo por ID.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// Update actualiza un artículo. No permite modificar current_stock.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.MinimumStock != nil {
		item.MinimumStock = *in.MinimumStock
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unit_price no puede ser negativo", domain.ErrInvalidInput)
		}
		item.UnitPrice = in.UnitPrice
	}
	if in.Supplier != nil {
		item.Supplier = *in.Supplier
	}
	if in.ExpirationDate != nil {
		item.ExpirationDate = *in.ExpirationDate
	}
	if in.BatchNumber != nil {
		item.BatchNumber = *in.BatchNumber
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	item.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// List lista artículos con paginación; category vacío = todas.
func (uc *ItemUseCase) List(ctx context.Context, category string, limit, offset int) (*dto.ListResponse[dto.InventoryItemResponse], error) {
	if category != "" && !entity.ValidCategory(category) {
		return nil, fmt.Errorf("%w: categoría %q", domain.ErrInvalidInput, category)
	}
	list, err := uc.repo.List(ctx, category, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.ListResponse[dto.InventoryItemResponse]{
		Items: toItemResponses(list),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListExpiring artículos que caducan en los próximos withinDays días (incluye los ya caducados).
func (uc *ItemUseCase) ListExpiring(ctx context.Context, withinDays int) ([]dto.InventoryItemResponse, error) {
	if withinDays < 0 {
		return nil, fmt.Errorf("%w: days no puede ser negativo", domain.ErrInvalidInput)
	}
	until := uc.now().In(uc.loc).AddDate(0, 0, withinDays).Format("2006-01-02")
	list, err := uc.repo.ListExpiring(ctx, until)
	if err != nil {
		return nil, err
	}
	return toItemResponses(list), nil
}

func toItemResponse(it *entity.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:             it.ID,
		Name:           it.Name,
		Category:       it.Category,
		Description:    it.Description,
		CurrentStock:   it.CurrentStock,
		MinimumStock:   it.MinimumStock,
		Unit:           it.Unit,
		UnitPrice:      it.UnitPrice,
		Supplier:       it.Supplier,
		ExpirationDate: it.ExpirationDate,
		BatchNumber:    it.BatchNumber,
		Location:       it.Location,
		LowStock:       inventory.IsLowStock(it),
		OutOfStock:     inventory.IsOutOfStock(it),
		CreatedAt:      it.CreatedAt,
		UpdatedAt:      it.UpdatedAt,
	}
}

func toItemResponses(list []*entity.InventoryItem) []dto.InventoryItemResponse {
	out := make([]dto.InventoryItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, toItemResponse(it))
	}
	return out
}

func toMovementResponse(m *entity.InventoryMovement) dto.InventoryMovementResponse {
	return dto.InventoryMovementResponse{
		ID:            m.ID,
		ItemID:        m.ItemID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		Reason:        m.Reason,
		UserID:        m.UserID,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		CreatedAt:     m.CreatedAt,
	}
}
