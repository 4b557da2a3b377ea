package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

// DefaultFeedSize eventos retenidos por el feed.
const DefaultFeedSize = 100

// ActivityFeed feed de actividad acotado en memoria (un solo proceso).
type ActivityFeed struct {
	mu     sync.Mutex
	size   int
	events []entity.Activity // más reciente al final
}

// NewActivityFeed crea un feed que retiene como máximo size eventos.
func NewActivityFeed(size int) *ActivityFeed {
	if size <= 0 {
		size = DefaultFeedSize
	}
	return &ActivityFeed{size: size}
}

var _ repository.ActivityFeed = (*ActivityFeed)(nil)

func (f *ActivityFeed) Push(_ context.Context, a *entity.Activity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, *a)
	if len(f.events) > f.size {
		f.events = f.events[len(f.events)-f.size:]
	}
	return nil
}

func (f *ActivityFeed) Recent(_ context.Context, limit int) ([]*entity.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if limit <= 0 || limit > len(f.events) {
		limit = len(f.events)
	}
	out := make([]*entity.Activity, 0, limit)
	for i := len(f.events) - 1; i >= 0 && len(out) < limit; i-- {
		a := f.events[i]
		out = append(out, &a)
	}
	return out, nil
}
