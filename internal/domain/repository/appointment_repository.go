package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Hospital-api/internal/domain/entity"
)

// AppointmentFilter filtros opcionales; From/To es un rango semiabierto [From, To).
type AppointmentFilter struct {
	From      *time.Time
	To        *time.Time
	PatientID string
	DoctorID  string
	Type      string
}

// AppointmentRepository define el puerto de persistencia para citas.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	// List ordena por fecha de cita ascendente.
	List(ctx context.Context, filter AppointmentFilter, limit, offset int) ([]*entity.Appointment, error)
	Count(ctx context.Context, filter AppointmentFilter) (int, error)
}
