package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

var _ repository.ActivityFeed = (*ActivityFeed)(nil)

// ActivityFeed feed persistente en la tabla activities; conserva los últimos size eventos.
type ActivityFeed struct {
	q    Querier
	size int
}

// NewActivityFeed construye el feed.
func NewActivityFeed(q Querier, size int) *ActivityFeed {
	if size <= 0 {
		size = 100
	}
	return &ActivityFeed{q: q, size: size}
}

// Push inserta el evento y poda los más antiguos que excedan size.
func (f *ActivityFeed) Push(ctx context.Context, a *entity.Activity) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	_, err := f.q.Exec(ctx, `
		INSERT INTO activities (id, kind, message, entity_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.Kind, a.Message, a.EntityID, a.UserID, a.CreatedAt)
	if err != nil {
		return mapError("insert activity", err)
	}
	_, err = f.q.Exec(ctx, `
		DELETE FROM activities WHERE seq <= (SELECT max(seq) FROM activities) - $1`, f.size)
	return mapError("trim activities", err)
}

// Recent del más reciente al más antiguo.
func (f *ActivityFeed) Recent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	if limit <= 0 || limit > f.size {
		limit = f.size
	}
	return queryList(ctx, f.q, "list activities", func(row pgx.Row) (*entity.Activity, error) {
		var a entity.Activity
		if err := row.Scan(&a.ID, &a.Kind, &a.Message, &a.EntityID, &a.UserID, &a.CreatedAt); err != nil {
			return nil, err
		}
		return &a, nil
	}, `SELECT id, kind, message, entity_id, user_id, created_at FROM activities ORDER BY seq DESC LIMIT $1`, limit)
}
