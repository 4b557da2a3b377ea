package memory

import (
	"context"

	"github.com/jhoicas/Hospital-api/internal/domain"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
	"github.com/jhoicas/Hospital-api/pkg/textfold"
)

// PatientRepo implementación en memoria de repository.PatientRepository.
type PatientRepo struct {
	store *Store
}

// NewPatientRepository construye el repositorio.
func NewPatientRepository(store *Store) *PatientRepo {
	return &PatientRepo{store: store}
}

var _ repository.PatientRepository = (*PatientRepo)(nil)

func patientLess(a, b *entity.Patient) bool {
	if a.LastName != b.LastName {
		return a.LastName < b.LastName
	}
	if a.FirstName != b.FirstName {
		return a.FirstName < b.FirstName
	}
	return a.ID < b.ID
}

func (r *PatientRepo) Create(_ context.Context, p *entity.Patient) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p.ID = r.store.ensureID(p.ID)
	if _, ok := r.store.state.patients[p.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.state.patients[p.ID] = *p
	return nil
}

func (r *PatientRepo) GetByID(_ context.Context, id string) (*entity.Patient, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p, ok := r.store.state.patients[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PatientRepo) Update(_ context.Context, p *entity.Patient) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.state.patients[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.state.patients[p.ID] = *p
	return nil
}

func (r *PatientRepo) List(_ context.Context, limit, offset int) ([]*entity.Patient, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return paginate(collect(r.store.state.patients, nil, patientLess), limit, offset), nil
}

func (r *PatientRepo) Search(_ context.Context, query string, limit, offset int) ([]*entity.Patient, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	needle := textfold.Fold(query)
	match := func(p *entity.Patient) bool {
		return textfold.Contains(p.FirstName, needle) ||
			textfold.Contains(p.LastName, needle) ||
			textfold.Contains(p.Phone, needle)
	}
	return paginate(collect(r.store.state.patients, match, patientLess), limit, offset), nil
}

func (r *PatientRepo) Count(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.state.patients), nil
}
