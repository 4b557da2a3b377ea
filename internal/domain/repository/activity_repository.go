package repository

import (
	"context"

	"github.com/jhoicas/Hospital-api/internal/domain/entity"
)

// ActivityFeed almacena los eventos recientes del dashboard (lista acotada, más reciente primero).
type ActivityFeed interface {
	Push(ctx context.Context, activity *entity.Activity) error
	Recent(ctx context.Context, limit int) ([]*entity.Activity, error)
}
