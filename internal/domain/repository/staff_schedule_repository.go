package repository

import (
	"context"

	"github.com/jhoicas/Hospital-api/internal/domain/entity"
)

// StaffScheduleFilter filtros opcionales por usuario y fecha (YYYY-MM-DD).
type StaffScheduleFilter struct {
	UserID string
	Date   string
}

// StaffScheduleRepository define el puerto de persistencia para turnos.
type StaffScheduleRepository interface {
	Create(ctx context.Context, schedule *entity.StaffSchedule) error
	List(ctx context.Context, filter StaffScheduleFilter, limit, offset int) ([]*entity.StaffSchedule, error)
}
