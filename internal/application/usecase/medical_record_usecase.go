package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

// MedicalRecordUseCase historias clínicas (consultas).
type MedicalRecordUseCase struct {
	repo        repository.MedicalRecordRepository
	patientRepo repository.PatientRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

// NewMedicalRecordUseCase construye el caso de uso.
func NewMedicalRecordUseCase(
	repo repository.MedicalRecordRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
) *MedicalRecordUseCase {
	return &MedicalRecordUseCase{repo: repo, patientRepo: patientRepo, userRepo: userRepo, now: time.Now}
}

// Create registra una consulta. Sin doctor_id se asigna al usuario autenticado.
func (uc *MedicalRecordUseCase) Create(ctx context.Context, actorID string, in dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if len(in.Vitals) > 0 && !json.Valid(in.Vitals) {
		return nil, invalid("vitals no es JSON válido")
	}
	doctorID := in.DoctorID
	if doctorID == "" {
		doctorID = actorID
	}
	if err := ensurePatient(ctx, uc.patientRepo, in.PatientID); err != nil {
		return nil, err
	}
	if err := ensureUser(ctx, uc.userRepo, doctorID); err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	visit := now
	if in.VisitDate != nil {
		visit = in.VisitDate.UTC()
	}
	rec := &entity.MedicalRecord{
		ID:           uuid.New().String(),
		PatientID:    in.PatientID,
		DoctorID:     doctorID,
		VisitDate:    visit,
		Diagnosis:    in.Diagnosis,
		Symptoms:     in.Symptoms,
		Treatment:    in.Treatment,
		Prescription: in.Prescription,
		Notes:        in.Notes,
		Vitals:       in.Vitals,
		CreatedAt:    now,
	}
	if err := uc.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return toMedicalRecordResponse(rec), nil
}

// GetByID obtiene una historia clínica.
func (uc *MedicalRecordUseCase) GetByID(ctx context.Context, id string) (*dto.MedicalRecordResponse, error) {
	rec, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, notFound("historia clínica", id)
	}
	return toMedicalRecordResponse(rec), nil
}

// ListByPatient historias de un paciente, de la visita más reciente a la más antigua.
func (uc *MedicalRecordUseCase) ListByPatient(ctx context.Context, patientID string, limit, offset int) (*dto.ListResponse[dto.MedicalRecordResponse], error) {
	if err := ensurePatient(ctx, uc.patientRepo, patientID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByPatient(ctx, patientID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MedicalRecordResponse, 0, len(list))
	for _, rec := range list {
		items = append(items, *toMedicalRecordResponse(rec))
	}
	return &dto.ListResponse[dto.MedicalRecordResponse]{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func ensurePatient(ctx context.Context, repo repository.PatientRepository, id string) error {
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return notFound("paciente", id)
	}
	return nil
}

func ensureUser(ctx context.Context, repo repository.UserRepository, id string) error {
	if id == "" {
		return invalid("usuario obligatorio")
	}
	u, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return notFound("usuario", id)
	}
	return nil
}

func toMedicalRecordResponse(m *entity.MedicalRecord) *dto.MedicalRecordResponse {
	return &dto.MedicalRecordResponse{
		ID:           m.ID,
		PatientID:    m.PatientID,
		DoctorID:     m.DoctorID,
		VisitDate:    m.VisitDate,
		Diagnosis:    m.Diagnosis,
		Symptoms:     m.Symptoms,
		Treatment:    m.Treatment,
		Prescription: m.Prescription,
		Notes:        m.Notes,
		Vitals:       m.Vitals,
		CreatedAt:    m.CreatedAt,
	}
}
