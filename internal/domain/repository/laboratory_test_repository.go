package repository

import (
	"context"

	"github.com/jhoicas/Hospital-api/internal/domain/entity"
)

// LaboratoryTestRepository define el puerto de persistencia para análisis de laboratorio.
type LaboratoryTestRepository interface {
	Create(ctx context.Context, test *entity.LaboratoryTest) error
	GetByID(ctx context.Context, id string) (*entity.LaboratoryTest, error)
	Update(ctx context.Context, test *entity.LaboratoryTest) error
	// List filtra por paciente si patientID no está vacío; ordena por fecha de orden descendente.
	List(ctx context.Context, patientID string, limit, offset int) ([]*entity.LaboratoryTest, error)
}
