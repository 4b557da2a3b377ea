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

// HospitalizationUseCase ingresos, traslados y altas.
type HospitalizationUseCase struct {
	repo        repository.HospitalizationRepository
	patientRepo repository.PatientRepository
	userRepo    repository.UserRepository
	activity    *activity.Recorder
	now         func() time.Time
}

// NewHospitalizationUseCase construye el caso de uso.
func NewHospitalizationUseCase(
	repo repository.HospitalizationRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	recorder *activity.Recorder,
) *HospitalizationUseCase {
	return &HospitalizationUseCase{repo: repo, patientRepo: patientRepo, userRepo: userRepo, activity: recorder, now: time.Now}
}

// Create ingresa un paciente (estado active).
func (uc *HospitalizationUseCase) Create(ctx context.Context, actorID string, in dto.CreateHospitalizationRequest) (*dto.HospitalizationResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := ensurePatient(ctx, uc.patientRepo, in.PatientID); err != nil {
		return nil, err
	}
	if err := ensureUser(ctx, uc.userRepo, in.DoctorID); err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	admission := now
	if in.AdmissionDate != nil {
		admission = in.AdmissionDate.UTC()
	}
	h := &entity.Hospitalization{
		ID:              uuid.New().String(),
		PatientID:       in.PatientID,
		DoctorID:        in.DoctorID,
		RoomNumber:      in.RoomNumber,
		BedNumber:       in.BedNumber,
		AdmissionDate:   admission,
		Status:          entity.HospitalizationActive,
		AdmissionReason: in.AdmissionReason,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	uc.activity.Record(ctx, entity.ActivityPatientAdmitted,
		fmt.Sprintf("Admission chambre %s, lit %s", h.RoomNumber, h.BedNumber), h.ID, actorID)
	return toHospitalizationResponse(h), nil
}

// GetByID obtiene una hospitalización.
func (uc *HospitalizationUseCase) GetByID(ctx context.Context, id string) (*dto.HospitalizationResponse, error) {
	h, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, notFound("hospitalización", id)
	}
	return toHospitalizationResponse(h), nil
}

// Update fusiona los campos; el alta (discharged) fija discharge_date si no viene.
func (uc *HospitalizationUseCase) Update(ctx context.Context, id string, in dto.UpdateHospitalizationRequest) (*dto.HospitalizationResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	h, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, notFound("hospitalización", id)
	}
	now := uc.now().UTC()
	setString(&h.RoomNumber, in.RoomNumber)
	setString(&h.BedNumber, in.BedNumber)
	setString(&h.DischargeNotes, in.DischargeNotes)
	if in.DischargeDate != nil {
		v := in.DischargeDate.UTC()
		if v.Before(h.AdmissionDate) {
			return nil, invalid("discharge_date anterior a admission_date")
		}
		h.DischargeDate = &v
	}
	if in.Status != nil {
		h.Status = *in.Status
		if h.Status == entity.HospitalizationDischarged && h.DischargeDate == nil {
			h.DischargeDate = &now
		}
	}
	h.UpdatedAt = now
	if err := uc.repo.Update(ctx, h); err != nil {
		return nil, err
	}
	return toHospitalizationResponse(h), nil
}

// List lista hospitalizaciones; activeOnly limita a las activas.
func (uc *HospitalizationUseCase) List(ctx context.Context, activeOnly bool, patientID string, limit, offset int) (*dto.ListResponse[dto.HospitalizationResponse], error) {
	list, err := uc.repo.List(ctx, repository.HospitalizationFilter{ActiveOnly: activeOnly, PatientID: patientID}, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HospitalizationResponse, 0, len(list))
	for _, h := range list {
		items = append(items, *toHospitalizationResponse(h))
	}
	return &dto.ListResponse[dto.HospitalizationResponse]{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func toHospitalizationResponse(h *entity.Hospitalization) *dto.HospitalizationResponse {
	return &dto.HospitalizationResponse{
		ID:              h.ID,
		PatientID:       h.PatientID,
		DoctorID:        h.DoctorID,
		RoomNumber:      h.RoomNumber,
		BedNumber:       h.BedNumber,
		AdmissionDate:   h.AdmissionDate,
		DischargeDate:   h.DischargeDate,
		Status:          h.Status,
		AdmissionReason: h.AdmissionReason,
		DischargeNotes:  h.DischargeNotes,
		CreatedAt:       h.CreatedAt,
		UpdatedAt:       h.UpdatedAt,
	}
}
