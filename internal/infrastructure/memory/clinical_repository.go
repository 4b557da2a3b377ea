package memory

import (
	"context"

	"github.com/jhoicas/Hospital-api/internal/domain"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

// MedicalRecordRepo implementación en memoria de repository.MedicalRecordRepository.
type MedicalRecordRepo struct {
	store *Store
}

// NewMedicalRecordRepository construye el repositorio.
func NewMedicalRecordRepository(store *Store) *MedicalRecordRepo {
	return &MedicalRecordRepo{store: store}
}

var _ repository.MedicalRecordRepository = (*MedicalRecordRepo)(nil)

func (r *MedicalRecordRepo) Create(_ context.Context, m *entity.MedicalRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.state.patients[m.PatientID]; !ok {
		return domain.ErrNotFound
	}
	m.ID = r.store.ensureID(m.ID)
	c := *m
	c.Vitals = cloneRaw(m.Vitals)
	r.store.state.medicalRecords[m.ID] = c
	return nil
}

func (r *MedicalRecordRepo) GetByID(_ context.Context, id string) (*entity.MedicalRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	m, ok := r.store.state.medicalRecords[id]
	if !ok {
		return nil, nil
	}
	m.Vitals = cloneRaw(m.Vitals)
	return &m, nil
}

func (r *MedicalRecordRepo) ListByPatient(_ context.Context, patientID string, limit, offset int) ([]*entity.MedicalRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := collect(r.store.state.medicalRecords,
		func(m *entity.MedicalRecord) bool { return m.PatientID == patientID },
		func(a, b *entity.MedicalRecord) bool {
			if !a.VisitDate.Equal(b.VisitDate) {
				return a.VisitDate.After(b.VisitDate)
			}
			return a.ID < b.ID
		})
	for _, m := range out {
		m.Vitals = cloneRaw(m.Vitals)
	}
	return paginate(out, limit, offset), nil
}

// AppointmentRepo implementación en memoria de repository.AppointmentRepository.
type AppointmentRepo struct {
	store *Store
}

// NewAppointmentRepository construye el repositorio.
func NewAppointmentRepository(store *Store) *AppointmentRepo {
	return &AppointmentRepo{store: store}
}

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

func appointmentMatcher(f repository.AppointmentFilter) func(*entity.Appointment) bool {
	return func(a *entity.Appointment) bool {
		if f.From != nil && a.AppointmentDate.Before(*f.From) {
			return false
		}
		if f.To != nil && !a.AppointmentDate.Before(*f.To) {
			return false
		}
		if f.PatientID != "" && a.PatientID != f.PatientID {
			return false
		}
		if f.DoctorID != "" && a.DoctorID != f.DoctorID {
			return false
		}
		if f.Type != "" && a.Type != f.Type {
			return false
		}
		return true
	}
}

func (r *AppointmentRepo) Create(_ context.Context, a *entity.Appointment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.state.patients[a.PatientID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.store.state.users[a.DoctorID]; !ok {
		return domain.ErrNotFound
	}
	a.ID = r.store.ensureID(a.ID)
	r.store.state.appointments[a.ID] = *a
	return nil
}

func (r *AppointmentRepo) GetByID(_ context.Context, id string) (*entity.Appointment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	a, ok := r.store.state.appointments[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AppointmentRepo) Update(_ context.Context, a *entity.Appointment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.state.appointments[a.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.state.appointments[a.ID] = *a
	return nil
}

func (r *AppointmentRepo) List(_ context.Context, f repository.AppointmentFilter, limit, offset int) ([]*entity.Appointment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := collect(r.store.state.appointments, appointmentMatcher(f), func(a, b *entity.Appointment) bool {
		if !a.AppointmentDate.Equal(b.AppointmentDate) {
			return a.AppointmentDate.Before(b.AppointmentDate)
		}
		return a.ID < b.ID
	})
	return paginate(out, limit, offset), nil
}

func (r *AppointmentRepo) Count(_ context.Context, f repository.AppointmentFilter) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	match := appointmentMatcher(f)
	n := 0
	for _, a := range r.store.state.appointments {
		if match(&a) {
			n++
		}
	}
	return n, nil
}

// StaffScheduleRepo implementación en memoria de repository.StaffScheduleRepository.
type StaffScheduleRepo struct {
	store *Store
}

// NewStaffScheduleRepository construye el repositorio.
func NewStaffScheduleRepository(store *Store) *StaffScheduleRepo {
	return &StaffScheduleRepo{store: store}
}

var _ repository.StaffScheduleRepository = (*StaffScheduleRepo)(nil)

func (r *StaffScheduleRepo) Create(_ context.Context, s *entity.StaffSchedule) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.state.users[s.UserID]; !ok {
		return domain.ErrNotFound
	}
	s.ID = r.store.ensureID(s.ID)
	r.store.state.schedules[s.ID] = *s
	return nil
}

func (r *StaffScheduleRepo) List(_ context.Context, f repository.StaffScheduleFilter, limit, offset int) ([]*entity.StaffSchedule, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := collect(r.store.state.schedules,
		func(s *entity.StaffSchedule) bool {
			return (f.UserID == "" || s.UserID == f.UserID) && (f.Date == "" || s.Date == f.Date)
		},
		func(a, b *entity.StaffSchedule) bool {
			if a.Date != b.Date {
				return a.Date < b.Date
			}
			if a.StartTime != b.StartTime {
				return a.StartTime < b.StartTime
			}
			return a.ID < b.ID
		})
	return paginate(out, limit, offset), nil
}

// LaboratoryTestRepo implementación en memoria de repository.LaboratoryTestRepository.
type LaboratoryTestRepo struct {
	store *Store
}

// NewLaboratoryTestRepository construye el repositorio.
func NewLaboratoryTestRepository(store *Store) *LaboratoryTestRepo {
	return &LaboratoryTestRepo{store: store}
}

var _ repository.LaboratoryTestRepository = (*LaboratoryTestRepo)(nil)

func cloneLabTest(t entity.LaboratoryTest) entity.LaboratoryTest {
	t.SampleCollectedAt = cloneTime(t.SampleCollectedAt)
	t.CompletedAt = cloneTime(t.CompletedAt)
	return t
}

func (r *LaboratoryTestRepo) Create(_ context.Context, t *entity.LaboratoryTest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.state.patients[t.PatientID]; !ok {
		return domain.ErrNotFound
	}
	t.ID = r.store.ensureID(t.ID)
	r.store.state.labTests[t.ID] = cloneLabTest(*t)
	return nil
}

func (r *LaboratoryTestRepo) GetByID(_ context.Context, id string) (*entity.LaboratoryTest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	t, ok := r.store.state.labTests[id]
	if !ok {
		return nil, nil
	}
	t = cloneLabTest(t)
	return &t, nil
}

func (r *LaboratoryTestRepo) Update(_ context.Context, t *entity.LaboratoryTest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.state.labTests[t.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.state.labTests[t.ID] = cloneLabTest(*t)
	return nil
}

func (r *LaboratoryTestRepo) List(_ context.Context, patientID string, limit, offset int) ([]*entity.LaboratoryTest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := collect(r.store.state.labTests,
		func(t *entity.LaboratoryTest) bool { return patientID == "" || t.PatientID == patientID },
		func(a, b *entity.LaboratoryTest) bool {
			if !a.OrderDate.Equal(b.OrderDate) {
				return a.OrderDate.After(b.OrderDate)
			}
			return a.ID < b.ID
		})
	for i, t := range out {
		c := cloneLabTest(*t)
		out[i] = &c
	}
	return paginate(out, limit, offset), nil
}
