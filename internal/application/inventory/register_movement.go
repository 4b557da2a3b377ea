package inventory

import (
	"context"

	"github.com/jhoicas/Hospital-api/internal/application/dto"
)

// RecordMovementFromRequest adapta el request HTTP al caso de uso RecordMovement(ctx, MovementInput).
// userID es el usuario autenticado que registra el movimiento.
func (uc *LedgerUseCase) RecordMovementFromRequest(ctx context.Context, userID string, in dto.RecordMovementRequest) (*dto.RecordMovementResponse, error) {
	if err := dto.Validate(in); err != nil {
		uc.metrics.MovementRejected("validation")
		return nil, err
	}
	movement, item, err := uc.RecordMovement(ctx, MovementInput{
		UserID:   userID,
		ItemID:   in.ItemID,
		Type:     in.Type,
		Quantity: in.Quantity,
		Reason:   in.Reason,
	})
	if err != nil {
		return nil, err
	}
	return &dto.RecordMovementResponse{
		Movement: toMovementResponse(movement),
		Item:     toItemResponse(item),
	}, nil
}
