package repository

import (
	"context"

	"github.com/jhoicas/Hospital-api/internal/domain/entity"
)

// MedicalRecordRepository define el puerto de persistencia para historias clínicas.
type MedicalRecordRepository interface {
	Create(ctx context.Context, record *entity.MedicalRecord) error
	GetByID(ctx context.Context, id string) (*entity.MedicalRecord, error)
	// ListByPatient ordena por fecha de visita descendente.
	ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*entity.MedicalRecord, error)
}
