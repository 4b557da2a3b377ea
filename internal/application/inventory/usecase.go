package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Hospital-api/internal/application/activity"
	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/domain"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/inventory"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
	"github.com/jhoicas/Hospital-api/pkg/logger"
)

// LedgerUseCase registra movimientos de inventario de forma transaccional
// (in, out, adjustment) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type LedgerUseCase struct {
	txRunner TxRunner
	movRepo  repository.InventoryMovementRepository
	itemRepo repository.InventoryItemRepository
	activity *activity.Recorder
	metrics  Metrics
	log      *logger.Logger
	now      func() time.Time
}

// NewLedgerUseCase construye el caso de uso. recorder, metrics y log pueden ser nil.
func NewLedgerUseCase(
	txRunner TxRunner,
	itemRepo repository.InventoryItemRepository,
	movRepo repository.InventoryMovementRepository,
	recorder *activity.Recorder,
	metrics Metrics,
	log *logger.Logger,
) *LedgerUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &LedgerUseCase{
		txRunner: txRunner,
		itemRepo: itemRepo,
		movRepo:  movRepo,
		activity: recorder,
		metrics:  metrics,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// MovementInput entrada para registrar un movimiento de inventario.
// Quantity > 0 en in/out; en adjustment es un delta con signo distinto de cero.
type MovementInput struct {
	UserID   string
	ItemID   string
	Type     string
	Quantity int
	Reason   string
}

// RecordMovement inicia una transacción, bloquea el artículo (SELECT FOR UPDATE), calcula el
// nuevo stock, lo guarda y añade el movimiento. Si algo falla no queda rastro (Rollback).
func (uc *LedgerUseCase) RecordMovement(ctx context.Context, input MovementInput) (*entity.InventoryMovement, *entity.InventoryItem, error) {
	if input.ItemID == "" {
		uc.metrics.MovementRejected("validation")
		return nil, nil, fmt.Errorf("%w: item_id es obligatorio", domain.ErrInvalidInput)
	}
	if err := inventory.ValidateMovement(input.Type, input.Quantity); err != nil {
		uc.metrics.MovementRejected("validation")
		return nil, nil, err
	}

	var (
		movement *entity.InventoryMovement
		item     *entity.InventoryItem
	)
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		movRepo repository.InventoryMovementRepository,
	) error {
		// Bloquea la fila del artículo para serializar movimientos concurrentes
		locked, err := itemRepo.GetForUpdate(ctx, input.ItemID)
		if err != nil {
			return err
		}
		if locked == nil {
			return fmt.Errorf("%w: artículo %s", domain.ErrNotFound, input.ItemID)
		}
		next, err := inventory.Apply(locked.CurrentStock, input.Type, input.Quantity)
		if err != nil {
			return err
		}
		now := uc.now()
		m := &entity.InventoryMovement{
			ID:            uuid.New().String(),
			ItemID:        locked.ID,
			Type:          input.Type,
			Quantity:      input.Quantity,
			Reason:        input.Reason,
			UserID:        input.UserID,
			PreviousStock: locked.CurrentStock,
			NewStock:      next,
			CreatedAt:     now,
		}
		locked.CurrentStock = next
		locked.UpdatedAt = now
		if err := itemRepo.UpdateStock(ctx, locked); err != nil {
			return err
		}
		if err := movRepo.Create(ctx, m); err != nil {
			return err
		}
		movement, item = m, locked
		return nil
	})
	if err != nil {
		uc.metrics.MovementRejected(rejectReason(err))
		return nil, nil, err
	}

	uc.metrics.MovementRecorded(movement.Type)
	uc.log.Info().
		Str("item_id", item.ID).
		Str("type", movement.Type).
		Int("quantity", movement.Quantity).
		Int("previous_stock", movement.PreviousStock).
		Int("new_stock", movement.NewStock).
		Msg("movimiento de inventario registrado")
	if inventory.IsLowStock(item) && movement.PreviousStock > item.MinimumStock {
		uc.metrics.LowStockReached(item.ID)
		uc.log.Warn().Str("item_id", item.ID).Str("name", item.Name).
			Int("stock", item.CurrentStock).Int("minimum", item.MinimumStock).
			Msg("artículo en stock bajo")
	}
	uc.activity.Record(ctx, entity.ActivityMovementRecorded,
		fmt.Sprintf("Mouvement %s: %s (%d → %d)", movement.Type, item.Name, movement.PreviousStock, movement.NewStock),
		item.ID, input.UserID)
	return movement, item, nil
}

// ListLowStock devuelve los artículos con current_stock <= minimum_stock, ordenados por id.
func (uc *LedgerUseCase) ListLowStock(ctx context.Context) ([]dto.InventoryItemResponse, error) {
	items, err := uc.itemRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

// ListMovements historial de un artículo, del más reciente al más antiguo.
func (uc *LedgerUseCase) ListMovements(ctx context.Context, itemID string, limit, offset int) (*dto.ListResponse[dto.InventoryMovementResponse], error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: artículo %s", domain.ErrNotFound, itemID)
	}
	list, err := uc.movRepo.ListByItem(ctx, itemID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovementResponse(m))
	}
	return &dto.ListResponse[dto.InventoryMovementResponse]{
		Items: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidInput):
		return "validation"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}
