package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Hospital-api/internal/application/activity"
	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

// AppointmentUseCase agenda de citas.
type AppointmentUseCase struct {
	repo        repository.AppointmentRepository
	patientRepo repository.PatientRepository
	userRepo    repository.UserRepository
	activity    *activity.Recorder
	loc         *time.Location
	now         func() time.Time
}

// NewAppointmentUseCase construye el caso de uso; loc es la zona horaria del hospital.
func NewAppointmentUseCase(
	repo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	recorder *activity.Recorder,
	loc *time.Location,
) *AppointmentUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &AppointmentUseCase{repo: repo, patientRepo: patientRepo, userRepo: userRepo, activity: recorder, loc: loc, now: time.Now}
}

// Create agenda una cita. Duración por defecto 30 min, estado por defecto scheduled.
func (uc *AppointmentUseCase) Create(ctx context.Context, actorID string, in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := ensurePatient(ctx, uc.patientRepo, in.PatientID); err != nil {
		return nil, err
	}
	if err := ensureUser(ctx, uc.userRepo, in.DoctorID); err != nil {
		return nil, err
	}
	duration := in.Duration
	if duration == 0 {
		duration = entity.DefaultAppointmentDuration
	}
	status := in.Status
	if status == "" {
		status = entity.AppointmentStatusScheduled
	}
	now := uc.now().UTC()
	a := &entity.Appointment{
		ID:              uuid.New().String(),
		PatientID:       in.PatientID,
		DoctorID:        in.DoctorID,
		AppointmentDate: in.AppointmentDate.UTC(),
		Duration:        duration,
		Type:            in.Type,
		Status:          status,
		Reason:          in.Reason,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	uc.activity.Record(ctx, entity.ActivityAppointmentBooked,
		fmt.Sprintf("Rendez-vous (%s) programmé le %s", a.Type, a.AppointmentDate.In(uc.loc).Format("02/01/2006 15:04")),
		a.ID, actorID)
	return toAppointmentResponse(a), nil
}

// GetByID obtiene una cita.
func (uc *AppointmentUseCase) GetByID(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, notFound("cita", id)
	}
	return toAppointmentResponse(a), nil
}

// Update fusiona los campos recibidos y refresca updated_at.
func (uc *AppointmentUseCase) Update(ctx context.Context, id string, in dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, notFound("cita", id)
	}
	if in.DoctorID != nil && *in.DoctorID != a.DoctorID {
		if err := ensureUser(ctx, uc.userRepo, *in.DoctorID); err != nil {
			return nil, err
		}
		a.DoctorID = *in.DoctorID
	}
	if in.AppointmentDate != nil {
		a.AppointmentDate = in.AppointmentDate.UTC()
	}
	if in.Duration != nil {
		a.Duration = *in.Duration
	}
	setString(&a.Type, in.Type)
	setString(&a.Status, in.Status)
	setString(&a.Reason, in.Reason)
	setString(&a.Notes, in.Notes)
	a.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return toAppointmentResponse(a), nil
}

// List lista citas con filtros opcionales; la fecha se interpreta en la zona horaria del hospital.
func (uc *AppointmentUseCase) List(ctx context.Context, f dto.AppointmentFilterRequest, limit, offset int) (*dto.ListResponse[dto.AppointmentResponse], error) {
	if err := dto.Validate(f); err != nil {
		return nil, err
	}
	filter := repository.AppointmentFilter{PatientID: f.PatientID, DoctorID: f.DoctorID}
	if f.Date != "" {
		from, to, err := DayRange(f.Date, uc.loc)
		if err != nil {
			return nil, err
		}
		filter.From, filter.To = &from, &to
	}
	list, err := uc.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AppointmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAppointmentResponse(a))
	}
	return &dto.ListResponse[dto.AppointmentResponse]{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:              a.ID,
		PatientID:       a.PatientID,
		DoctorID:        a.DoctorID,
		AppointmentDate: a.AppointmentDate,
		Duration:        a.Duration,
		Type:            a.Type,
		Status:          a.Status,
		Reason:          a.Reason,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
