package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Hospital-api/internal/application/activity"
	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

// PatientUseCase registro y búsqueda de pacientes.
type PatientUseCase struct {
	repo     repository.PatientRepository
	activity *activity.Recorder
	now      func() time.Time
}

// NewPatientUseCase construye el caso de uso.
func NewPatientUseCase(repo repository.PatientRepository, recorder *activity.Recorder) *PatientUseCase {
	return &PatientUseCase{repo: repo, activity: recorder, now: time.Now}
}

// Create registra un paciente.
func (uc *PatientUseCase) Create(ctx context.Context, actorID string, in dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	p := &entity.Patient{
		ID:                uuid.New().String(),
		FirstName:         strings.TrimSpace(in.FirstName),
		LastName:          strings.TrimSpace(in.LastName),
		DateOfBirth:       in.DateOfBirth,
		Gender:            in.Gender,
		Phone:             in.Phone,
		Address:           in.Address,
		EmergencyContact:  in.EmergencyContact,
		EmergencyPhone:    in.EmergencyPhone,
		BloodType:         in.BloodType,
		Allergies:         in.Allergies,
		ChronicConditions: in.ChronicConditions,
		Insurance:         in.Insurance,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.activity.Record(ctx, entity.ActivityPatientRegistered, "Nouveau patient enregistré: "+p.FirstName+" "+p.LastName, p.ID, actorID)
	return toPatientResponse(p), nil
}

// GetByID obtiene un paciente.
func (uc *PatientUseCase) GetByID(ctx context.Context, id string) (*dto.PatientResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, notFound("paciente", id)
	}
	return toPatientResponse(p), nil
}

// Update fusiona los campos recibidos y refresca updated_at.
func (uc *PatientUseCase) Update(ctx context.Context, id string, in dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, notFound("paciente", id)
	}
	setString(&p.FirstName, in.FirstName)
	setString(&p.LastName, in.LastName)
	setString(&p.DateOfBirth, in.DateOfBirth)
	setString(&p.Gender, in.Gender)
	setString(&p.Phone, in.Phone)
	setString(&p.Address, in.Address)
	setString(&p.EmergencyContact, in.EmergencyContact)
	setString(&p.EmergencyPhone, in.EmergencyPhone)
	setString(&p.BloodType, in.BloodType)
	setString(&p.Allergies, in.Allergies)
	setString(&p.ChronicConditions, in.ChronicConditions)
	setString(&p.Insurance, in.Insurance)
	p.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPatientResponse(p), nil
}

// List lista pacientes; con query no vacío aplica la búsqueda sin acentos ni mayúsculas.
func (uc *PatientUseCase) List(ctx context.Context, query string, limit, offset int) (*dto.ListResponse[dto.PatientResponse], error) {
	var (
		list []*entity.Patient
		err  error
	)
	if q := strings.TrimSpace(query); q != "" {
		list, err = uc.repo.Search(ctx, q, limit, offset)
	} else {
		list, err = uc.repo.List(ctx, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.PatientResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPatientResponse(p))
	}
	return &dto.ListResponse[dto.PatientResponse]{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func toPatientResponse(p *entity.Patient) *dto.PatientResponse {
	return &dto.PatientResponse{
		ID:                p.ID,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		DateOfBirth:       p.DateOfBirth,
		Gender:            p.Gender,
		Phone:             p.Phone,
		Address:           p.Address,
		EmergencyContact:  p.EmergencyContact,
		EmergencyPhone:    p.EmergencyPhone,
		BloodType:         p.BloodType,
		Allergies:         p.Allergies,
		ChronicConditions: p.ChronicConditions,
		Insurance:         p.Insurance,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
