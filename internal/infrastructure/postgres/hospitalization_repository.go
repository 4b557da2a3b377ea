package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Hospital-api/internal/domain"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

var _ repository.HospitalizationRepository = (*HospitalizationRepo)(nil)

// HospitalizationRepo implementación sobre PostgreSQL.
type HospitalizationRepo struct {
	q Querier
}

// NewHospitalizationRepository construye el adaptador.
func NewHospitalizationRepository(q Querier) *HospitalizationRepo {
	return &HospitalizationRepo{q: q}
}

const hospitalizationSelect = `
	SELECT id, patient_id, doctor_id, room_number, bed_number, admission_date, discharge_date,
		status, admission_reason, discharge_notes, created_at, updated_at
	FROM hospitalizations`

func scanHospitalization(row pgx.Row) (*entity.Hospitalization, error) {
	var h entity.Hospitalization
	err := row.Scan(&h.ID, &h.PatientID, &h.DoctorID, &h.RoomNumber, &h.BedNumber, &h.AdmissionDate,
		&h.DischargeDate, &h.Status, &h.AdmissionReason, &h.DischargeNotes, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HospitalizationRepo) Create(ctx context.Context, h *entity.Hospitalization) error {
	query := `
		INSERT INTO hospitalizations (id, patient_id, doctor_id, room_number, bed_number, admission_date,
			discharge_date, status, admission_reason, discharge_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		h.ID, h.PatientID, h.DoctorID, h.RoomNumber, h.BedNumber, h.AdmissionDate,
		h.DischargeDate, h.Status, h.AdmissionReason, h.DischargeNotes, h.CreatedAt, h.UpdatedAt,
	)
	return mapError("insert hospitalization", err)
}

func (r *HospitalizationRepo) GetByID(ctx context.Context, id string) (*entity.Hospitalization, error) {
	if !isUUID(id) {
		return nil, nil
	}
	h, err := scanHospitalization(r.q.QueryRow(ctx, hospitalizationSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("get hospitalization", err)
	}
	return h, nil
}

func (r *HospitalizationRepo) Update(ctx context.Context, h *entity.Hospitalization) error {
	query := `
		UPDATE hospitalizations SET room_number = $2, bed_number = $3, discharge_date = $4, status = $5,
			admission_reason = $6, discharge_notes = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		h.ID, h.RoomNumber, h.BedNumber, h.DischargeDate, h.Status, h.AdmissionReason, h.DischargeNotes, h.UpdatedAt,
	)
	if err != nil {
		return mapError("update hospitalization", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *HospitalizationRepo) List(ctx context.Context, f repository.HospitalizationFilter, limit, offset int) ([]*entity.Hospitalization, error) {
	return queryList(ctx, r.q, "list hospitalizations", scanHospitalization,
		hospitalizationSelect+` WHERE (NOT $1 OR status = 'active') AND ($2 = '' OR patient_id::text = $2)
		ORDER BY admission_date DESC, id LIMIT $3 OFFSET $4`,
		f.ActiveOnly, f.PatientID, limit, offset)
}

func (r *HospitalizationRepo) CountActive(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM hospitalizations WHERE status = 'active'`).Scan(&n); err != nil {
		return 0, mapError("count active hospitalizations", err)
	}
	return n, nil
}
