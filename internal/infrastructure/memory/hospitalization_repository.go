package memory

import (
	"context"

	"github.com/jhoicas/Hospital-api/internal/domain"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

// HospitalizationRepo implementación en memoria de repository.HospitalizationRepository.
type HospitalizationRepo struct {
	store *Store
}

// NewHospitalizationRepository construye el repositorio.
func NewHospitalizationRepository(store *Store) *HospitalizationRepo {
	return &HospitalizationRepo{store: store}
}

var _ repository.HospitalizationRepository = (*HospitalizationRepo)(nil)

func cloneHospitalization(h entity.Hospitalization) entity.Hospitalization {
	h.DischargeDate = cloneTime(h.DischargeDate)
	return h
}

func (r *HospitalizationRepo) Create(_ context.Context, h *entity.Hospitalization) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.state.patients[h.PatientID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.store.state.users[h.DoctorID]; !ok {
		return domain.ErrNotFound
	}
	h.ID = r.store.ensureID(h.ID)
	r.store.state.hospitalizations[h.ID] = cloneHospitalization(*h)
	return nil
}

func (r *HospitalizationRepo) GetByID(_ context.Context, id string) (*entity.Hospitalization, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	h, ok := r.store.state.hospitalizations[id]
	if !ok {
		return nil, nil
	}
	h = cloneHospitalization(h)
	return &h, nil
}

func (r *HospitalizationRepo) Update(_ context.Context, h *entity.Hospitalization) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.state.hospitalizations[h.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.state.hospitalizations[h.ID] = cloneHospitalization(*h)
	return nil
}

func (r *HospitalizationRepo) List(_ context.Context, f repository.HospitalizationFilter, limit, offset int) ([]*entity.Hospitalization, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := collect(r.store.state.hospitalizations,
		func(h *entity.Hospitalization) bool {
			if f.ActiveOnly && h.Status != entity.HospitalizationActive {
				return false
			}
			return f.PatientID == "" || h.PatientID == f.PatientID
		},
		func(a, b *entity.Hospitalization) bool {
			if !a.AdmissionDate.Equal(b.AdmissionDate) {
				return a.AdmissionDate.After(b.AdmissionDate)
			}
			return a.ID < b.ID
		})
	for i, h := range out {
		c := cloneHospitalization(*h)
		out[i] = &c
	}
	return paginate(out, limit, offset), nil
}

func (r *HospitalizationRepo) CountActive(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	n := 0
	for _, h := range r.store.state.hospitalizations {
		if h.Status == entity.HospitalizationActive {
			n++
		}
	}
	return n, nil
}
