package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

// StaffScheduleUseCase turnos del personal.
type StaffScheduleUseCase struct {
	repo     repository.StaffScheduleRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewStaffScheduleUseCase construye el caso de uso.
func NewStaffScheduleUseCase(repo repository.StaffScheduleRepository, userRepo repository.UserRepository) *StaffScheduleUseCase {
	return &StaffScheduleUseCase{repo: repo, userRepo: userRepo, now: time.Now}
}

// Create registra un turno; end_time debe ser posterior a start_time.
func (uc *StaffScheduleUseCase) Create(ctx context.Context, in dto.CreateStaffScheduleRequest) (*dto.StaffScheduleResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	// HH:MM con ceros a la izquierda: la comparación lexicográfica es cronológica.
	if in.EndTime <= in.StartTime {
		return nil, invalid("end_time debe ser posterior a start_time")
	}
	if err := ensureUser(ctx, uc.userRepo, in.UserID); err != nil {
		return nil, err
	}
	typ := in.Type
	if typ == "" {
		typ = entity.ShiftRegular
	}
	s := &entity.StaffSchedule{
		ID:         uuid.New().String(),
		UserID:     in.UserID,
		Date:       in.Date,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		Type:       typ,
		Department: in.Department,
		CreatedAt:  uc.now().UTC(),
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toStaffScheduleResponse(s), nil
}

// List lista turnos, opcionalmente por usuario y/o fecha.
func (uc *StaffScheduleUseCase) List(ctx context.Context, userID, date string, limit, offset int) (*dto.ListResponse[dto.StaffScheduleResponse], error) {
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return nil, invalid("fecha %q (se espera YYYY-MM-DD)", date)
		}
	}
	list, err := uc.repo.List(ctx, repository.StaffScheduleFilter{UserID: userID, Date: date}, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StaffScheduleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStaffScheduleResponse(s))
	}
	return &dto.ListResponse[dto.StaffScheduleResponse]{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func toStaffScheduleResponse(s *entity.StaffSchedule) *dto.StaffScheduleResponse {
	return &dto.StaffScheduleResponse{
		ID:         s.ID,
		UserID:     s.UserID,
		Date:       s.Date,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		Type:       s.Type,
		Department: s.Department,
		CreatedAt:  s.CreatedAt,
	}
}
