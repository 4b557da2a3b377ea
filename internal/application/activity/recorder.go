// Package activity publica eventos recientes para el feed del dashboard.
// Es un efecto secundario: un fallo se registra en el log y no interrumpe la operación.
package activity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
	"github.com/jhoicas/Hospital-api/pkg/logger"
)

// Recorder envuelve el ActivityFeed. Un *Recorder nil no hace nada.
type Recorder struct {
	feed repository.ActivityFeed
	log  *logger.Logger
}

// NewRecorder construye el publicador.
func NewRecorder(feed repository.ActivityFeed, log *logger.Logger) *Recorder {
	if log == nil {
		log = logger.Nop()
	}
	return &Recorder{feed: feed, log: log}
}

// Record publica un evento.
func (r *Recorder) Record(ctx context.Context, kind, message, entityID, userID string) {
	if r == nil || r.feed == nil {
		return
	}
	a := &entity.Activity{
		ID:        uuid.New().String(),
		Kind:      kind,
		Message:   message,
		EntityID:  entityID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.feed.Push(ctx, a); err != nil {
		r.log.Warn().Err(err).Str("kind", kind).Str("entity_id", entityID).Msg("no se pudo publicar la actividad")
	}
}
