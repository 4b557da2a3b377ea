package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Hospital-api/internal/domain"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

// ── Historias clínicas ───────────────────────────────────────────────────────

var _ repository.MedicalRecordRepository = (*MedicalRecordRepo)(nil)

// MedicalRecordRepo implementación sobre PostgreSQL.
type MedicalRecordRepo struct {
	q Querier
}

// NewMedicalRecordRepository construye el adaptador.
func NewMedicalRecordRepository(q Querier) *MedicalRecordRepo {
	return &MedicalRecordRepo{q: q}
}

const medicalRecordSelect = `
	SELECT id, patient_id, doctor_id, visit_date, diagnosis, symptoms, treatment,
		prescription, notes, vitals, created_at
	FROM medical_records`

func scanMedicalRecord(row pgx.Row) (*entity.MedicalRecord, error) {
	var m entity.MedicalRecord
	var vitals []byte
	err := row.Scan(&m.ID, &m.PatientID, &m.DoctorID, &m.VisitDate, &m.Diagnosis, &m.Symptoms,
		&m.Treatment, &m.Prescription, &m.Notes, &vitals, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(vitals) > 0 {
		m.Vitals = vitals
	}
	return &m, nil
}

func (r *MedicalRecordRepo) Create(ctx context.Context, m *entity.MedicalRecord) error {
	var vitals any
	if len(m.Vitals) > 0 {
		vitals = string(m.Vitals)
	}
	query := `
		INSERT INTO medical_records (id, patient_id, doctor_id, visit_date, diagnosis, symptoms,
			treatment, prescription, notes, vitals, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::jsonb, $11)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.PatientID, m.DoctorID, m.VisitDate, m.Diagnosis, m.Symptoms,
		m.Treatment, m.Prescription, m.Notes, vitals, m.CreatedAt,
	)
	return mapError("insert medical record", err)
}

func (r *MedicalRecordRepo) GetByID(ctx context.Context, id string) (*entity.MedicalRecord, error) {
	if !isUUID(id) {
		return nil, nil
	}
	m, err := scanMedicalRecord(r.q.QueryRow(ctx, medicalRecordSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("get medical record", err)
	}
	return m, nil
}

func (r *MedicalRecordRepo) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*entity.MedicalRecord, error) {
	if !isUUID(patientID) {
		return []*entity.MedicalRecord{}, nil
	}
	return queryList(ctx, r.q, "list medical records", scanMedicalRecord,
		medicalRecordSelect+` WHERE patient_id = $1 ORDER BY visit_date DESC, id LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
}

// ── Citas ────────────────────────────────────────────────────────────────────

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo implementación sobre PostgreSQL.
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository construye el adaptador.
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

const appointmentSelect = `
	SELECT id, patient_id, doctor_id, appointment_date, duration, type, status, reason, notes,
		created_at, updated_at
	FROM appointments`

func scanAppointment(row pgx.Row) (*entity.Appointment, error) {
	var a entity.Appointment
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.AppointmentDate, &a.Duration, &a.Type,
		&a.Status, &a.Reason, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// appointmentWhere construye la cláusula WHERE y sus argumentos a partir del filtro.
func appointmentWhere(f repository.AppointmentFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.From != nil {
		add("appointment_date >= $%d", *f.From)
	}
	if f.To != nil {
		add("appointment_date < $%d", *f.To)
	}
	if f.PatientID != "" {
		add("patient_id::text = $%d", f.PatientID)
	}
	if f.DoctorID != "" {
		add("doctor_id::text = $%d", f.DoctorID)
	}
	if f.Type != "" {
		add("type = $%d", f.Type)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *AppointmentRepo) Create(ctx context.Context, a *entity.Appointment) error {
	query := `
		INSERT INTO appointments (id, patient_id, doctor_id, appointment_date, duration, type, status,
			reason, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.PatientID, a.DoctorID, a.AppointmentDate, a.Duration, a.Type, a.Status,
		a.Reason, a.Notes, a.CreatedAt, a.UpdatedAt,
	)
	return mapError("insert appointment", err)
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	if !isUUID(id) {
		return nil, nil
	}
	a, err := scanAppointment(r.q.QueryRow(ctx, appointmentSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("get appointment", err)
	}
	return a, nil
}

func (r *AppointmentRepo) Update(ctx context.Context, a *entity.Appointment) error {
	query := `
		UPDATE appointments SET doctor_id = $2, appointment_date = $3, duration = $4, type = $5,
			status = $6, reason = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		a.ID, a.DoctorID, a.AppointmentDate, a.Duration, a.Type, a.Status, a.Reason, a.Notes, a.UpdatedAt,
	)
	if err != nil {
		return mapError("update appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AppointmentRepo) List(ctx context.Context, f repository.AppointmentFilter, limit, offset int) ([]*entity.Appointment, error) {
	where, args := appointmentWhere(f)
	n := len(args)
	query := appointmentSelect + where + fmt.Sprintf(" ORDER BY appointment_date, id LIMIT $%d OFFSET $%d", n+1, n+2)
	return queryList(ctx, r.q, "list appointments", scanAppointment, query, append(args, limit, offset)...)
}

func (r *AppointmentRepo) Count(ctx context.Context, f repository.AppointmentFilter) (int, error) {
	where, args := appointmentWhere(f)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM appointments`+where, args...).Scan(&n); err != nil {
		return 0, mapError("count appointments", err)
	}
	return n, nil
}

// ── Turnos ───────────────────────────────────────────────────────────────────

var _ repository.StaffScheduleRepository = (*StaffScheduleRepo)(nil)

// StaffScheduleRepo implementación sobre PostgreSQL.
type StaffScheduleRepo struct {
	q Querier
}

// NewStaffScheduleRepository construye el adaptador.
func NewStaffScheduleRepository(q Querier) *StaffScheduleRepo {
	return &StaffScheduleRepo{q: q}
}

func scanStaffSchedule(row pgx.Row) (*entity.StaffSchedule, error) {
	var s entity.StaffSchedule
	err := row.Scan(&s.ID, &s.UserID, &s.Date, &s.StartTime, &s.EndTime, &s.Type, &s.Department, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffScheduleRepo) Create(ctx context.Context, s *entity.StaffSchedule) error {
	query := `
		INSERT INTO staff_schedules (id, user_id, date, start_time, end_time, type, department, created_at)
		VALUES ($1, $2, $3::text::date, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, s.ID, s.UserID, s.Date, s.StartTime, s.EndTime, s.Type, s.Department, s.CreatedAt)
	return mapError("insert staff schedule", err)
}

func (r *StaffScheduleRepo) List(ctx context.Context, f repository.StaffScheduleFilter, limit, offset int) ([]*entity.StaffSchedule, error) {
	query := `
		SELECT id, user_id, to_char(date, 'YYYY-MM-DD'), start_time, end_time, type, department, created_at
		FROM staff_schedules
		WHERE ($1 = '' OR user_id::text = $1) AND ($2 = '' OR to_char(date, 'YYYY-MM-DD') = $2)
		ORDER BY date, start_time, id LIMIT $3 OFFSET $4`
	return queryList(ctx, r.q, "list staff schedules", scanStaffSchedule, query, f.UserID, f.Date, limit, offset)
}

// ── Laboratorio ──────────────────────────────────────────────────────────────

var _ repository.LaboratoryTestRepository = (*LaboratoryTestRepo)(nil)

// LaboratoryTestRepo implementación sobre PostgreSQL.
type LaboratoryTestRepo struct {
	q Querier
}

// NewLaboratoryTestRepository construye el adaptador.
func NewLaboratoryTestRepository(q Querier) *LaboratoryTestRepo {
	return &LaboratoryTestRepo{q: q}
}

const labSelect = `
	SELECT id, patient_id, ordered_by, test_type, status, order_date, sample_collected_at,
		completed_at, results, normal_range, notes, created_at
	FROM laboratory_tests`

func scanLabTest(row pgx.Row) (*entity.LaboratoryTest, error) {
	var t entity.LaboratoryTest
	err := row.Scan(&t.ID, &t.PatientID, &t.OrderedBy, &t.TestType, &t.Status, &t.OrderDate,
		&t.SampleCollectedAt, &t.CompletedAt, &t.Results, &t.NormalRange, &t.Notes, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *LaboratoryTestRepo) Create(ctx context.Context, t *entity.LaboratoryTest) error {
	query := `
		INSERT INTO laboratory_tests (id, patient_id, ordered_by, test_type, status, order_date,
			sample_collected_at, completed_at, results, normal_range, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.PatientID, t.OrderedBy, t.TestType, t.Status, t.OrderDate,
		t.SampleCollectedAt, t.CompletedAt, t.Results, t.NormalRange, t.Notes, t.CreatedAt,
	)
	return mapError("insert laboratory test", err)
}

func (r *LaboratoryTestRepo) GetByID(ctx context.Context, id string) (*entity.LaboratoryTest, error) {
	if !isUUID(id) {
		return nil, nil
	}
	t, err := scanLabTest(r.q.QueryRow(ctx, labSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("get laboratory test", err)
	}
	return t, nil
}

func (r *LaboratoryTestRepo) Update(ctx context.Context, t *entity.LaboratoryTest) error {
	query := `
		UPDATE laboratory_tests SET status = $2, sample_collected_at = $3, completed_at = $4,
			results = $5, normal_range = $6, notes = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		t.ID, t.Status, t.SampleCollectedAt, t.CompletedAt, t.Results, t.NormalRange, t.Notes,
	)
	if err != nil {
		return mapError("update laboratory test", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LaboratoryTestRepo) List(ctx context.Context, patientID string, limit, offset int) ([]*entity.LaboratoryTest, error) {
	return queryList(ctx, r.q, "list laboratory tests", scanLabTest,
		labSelect+` WHERE ($1 = '' OR patient_id::text = $1) ORDER BY order_date DESC, id LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
}

// queryList ejecuta una consulta y escanea cada fila con scan.
func queryList[T any](ctx context.Context, q Querier, op string, scan func(pgx.Row) (*T, error), query string, args ...any) ([]*T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(op, err)
	}
	defer rows.Close()
	list := []*T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, mapError(op, err)
		}
		list = append(list, item)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(op, err)
	}
	return list, nil
}
