package repository

import (
	"context"

	"github.com/jhoicas/Hospital-api/internal/domain/entity"
)

// HospitalizationFilter filtros opcionales.
type HospitalizationFilter struct {
	ActiveOnly bool
	PatientID  string
}

// HospitalizationRepository define el puerto de persistencia para hospitalizaciones.
type HospitalizationRepository interface {
	Create(ctx context.Context, h *entity.Hospitalization) error
	GetByID(ctx context.Context, id string) (*entity.Hospitalization, error)
	Update(ctx context.Context, h *entity.Hospitalization) error
	// List ordena por fecha de ingreso descendente.
	List(ctx context.Context, filter HospitalizationFilter, limit, offset int) ([]*entity.Hospitalization, error)
	CountActive(ctx context.Context) (int, error)
}
