package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Hospital-api/internal/application/activity"
	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

// LaboratoryUseCase solicitudes y resultados de laboratorio.
type LaboratoryUseCase struct {
	repo        repository.LaboratoryTestRepository
	patientRepo repository.PatientRepository
	userRepo    repository.UserRepository
	activity    *activity.Recorder
	now         func() time.Time
}

// NewLaboratoryUseCase construye el caso de uso.
func NewLaboratoryUseCase(
	repo repository.LaboratoryTestRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	recorder *activity.Recorder,
) *LaboratoryUseCase {
	return &LaboratoryUseCase{repo: repo, patientRepo: patientRepo, userRepo: userRepo, activity: recorder, now: time.Now}
}

// Create solicita un análisis (estado ordered).
func (uc *LaboratoryUseCase) Create(ctx context.Context, actorID string, in dto.CreateLaboratoryTestRequest) (*dto.LaboratoryTestResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	orderedBy := in.OrderedBy
	if orderedBy == "" {
		orderedBy = actorID
	}
	if err := ensurePatient(ctx, uc.patientRepo, in.PatientID); err != nil {
		return nil, err
	}
	if err := ensureUser(ctx, uc.userRepo, orderedBy); err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	orderDate := now
	if in.OrderDate != nil {
		orderDate = in.OrderDate.UTC()
	}
	t := &entity.LaboratoryTest{
		ID:          uuid.New().String(),
		PatientID:   in.PatientID,
		OrderedBy:   orderedBy,
		TestType:    in.TestType,
		Status:      entity.LabStatusOrdered,
		OrderDate:   orderDate,
		NormalRange: in.NormalRange,
		Notes:       in.Notes,
		CreatedAt:   now,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	uc.activity.Record(ctx, entity.ActivityLabTestOrdered, "Analyse demandée: "+t.TestType, t.ID, actorID)
	return toLaboratoryTestResponse(t), nil
}

// GetByID obtiene un análisis.
func (uc *LaboratoryUseCase) GetByID(ctx context.Context, id string) (*dto.LaboratoryTestResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, notFound("análisis", id)
	}
	return toLaboratoryTestResponse(t), nil
}

// Update fusiona los campos. Pasar a in_progress fija sample_collected_at y a completed
// fija completed_at cuando aún no tienen valor.
func (uc *LaboratoryUseCase) Update(ctx context.Context, id string, in dto.UpdateLaboratoryTestRequest) (*dto.LaboratoryTestResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, notFound("análisis", id)
	}
	now := uc.now().UTC()
	if in.SampleCollectedAt != nil {
		v := in.SampleCollectedAt.UTC()
		t.SampleCollectedAt = &v
	}
	if in.CompletedAt != nil {
		v := in.CompletedAt.UTC()
		t.CompletedAt = &v
	}
	if in.Status != nil {
		t.Status = *in.Status
		switch t.Status {
		case entity.LabStatusInProgress:
			if t.SampleCollectedAt == nil {
				t.SampleCollectedAt = &now
			}
		case entity.LabStatusCompleted:
			if t.SampleCollectedAt == nil {
				t.SampleCollectedAt = &now
			}
			if t.CompletedAt == nil {
				t.CompletedAt = &now
			}
		}
	}
	setString(&t.Results, in.Results)
	setString(&t.NormalRange, in.NormalRange)
	setString(&t.Notes, in.Notes)
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return toLaboratoryTestResponse(t), nil
}

// List lista análisis, opcionalmente de un paciente.
func (uc *LaboratoryUseCase) List(ctx context.Context, patientID string, limit, offset int) (*dto.ListResponse[dto.LaboratoryTestResponse], error) {
	list, err := uc.repo.List(ctx, patientID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LaboratoryTestResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toLaboratoryTestResponse(t))
	}
	return &dto.ListResponse[dto.LaboratoryTestResponse]{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func toLaboratoryTestResponse(t *entity.LaboratoryTest) *dto.LaboratoryTestResponse {
	return &dto.LaboratoryTestResponse{
		ID:                t.ID,
		PatientID:         t.PatientID,
		OrderedBy:         t.OrderedBy,
		TestType:          t.TestType,
		Status:            t.Status,
		OrderDate:         t.OrderDate,
		SampleCollectedAt: t.SampleCollectedAt,
		CompletedAt:       t.CompletedAt,
		Results:           t.Results,
		NormalRange:       t.NormalRange,
		Notes:             t.Notes,
		CreatedAt:         t.CreatedAt,
	}
}
