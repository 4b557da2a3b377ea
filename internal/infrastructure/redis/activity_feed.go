package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

// DefaultFeedKey clave de la lista de actividad.
const DefaultFeedKey = "hnsm:activity"

var _ repository.ActivityFeed = (*ActivityFeed)(nil)

// ActivityFeed lista acotada: LPUSH + LTRIM en un pipeline MULTI, más reciente en el índice 0.
type ActivityFeed struct {
	rdb  goredis.Cmdable
	key  string
	size int
}

// NewActivityFeed construye el feed sobre rdb (cliente, cluster o mock que implemente Cmdable).
func NewActivityFeed(rdb goredis.Cmdable, key string, size int) *ActivityFeed {
	if key == "" {
		key = DefaultFeedKey
	}
	if size <= 0 {
		size = 100
	}
	return &ActivityFeed{rdb: rdb, key: key, size: size}
}

type activityJSON struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	EntityID  string    `json:"entity_id"`
	UserID    string    `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (f *ActivityFeed) Push(ctx context.Context, a *entity.Activity) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	payload, err := json.Marshal(activityJSON{
		ID: a.ID, Kind: a.Kind, Message: a.Message, EntityID: a.EntityID, UserID: a.UserID,
		CreatedAt: a.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("redis feed: encode: %w", err)
	}
	_, err = f.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.LPush(ctx, f.key, payload)
		p.LTrim(ctx, f.key, 0, int64(f.size-1))
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis feed: push: %w", err)
	}
	return nil
}

func (f *ActivityFeed) Recent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	if limit <= 0 || limit > f.size {
		limit = f.size
	}
	raw, err := f.rdb.LRange(ctx, f.key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis feed: lrange: %w", err)
	}
	out := make([]*entity.Activity, 0, len(raw))
	for _, s := range raw {
		var a activityJSON
		if err := json.Unmarshal([]byte(s), &a); err != nil {
			// entrada corrupta: se ignora
			continue
		}
		out = append(out, &entity.Activity{
			ID: a.ID, Kind: a.Kind, Message: a.Message, EntityID: a.EntityID, UserID: a.UserID,
			CreatedAt: a.CreatedAt,
		})
	}
	return out, nil
}
