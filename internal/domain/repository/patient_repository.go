package repository

import (
	"context"

	"github.com/jhoicas/Hospital-api/internal/domain/entity"
)

// PatientRepository define el puerto de persistencia para Patient.
type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	GetByID(ctx context.Context, id string) (*entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
	List(ctx context.Context, limit, offset int) ([]*entity.Patient, error)
	// Search coincidencia parcial sin distinguir mayúsculas ni acentos sobre nombre, apellido y teléfono.
	Search(ctx context.Context, query string, limit, offset int) ([]*entity.Patient, error)
	Count(ctx context.Context) (int, error)
}
