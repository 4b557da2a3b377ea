package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Hospital-api/internal/domain"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

var _ repository.PatientRepository = (*PatientRepo)(nil)

// PatientRepo implementación sobre PostgreSQL.
type PatientRepo struct {
	q Querier
}

// NewPatientRepository construye el adaptador.
func NewPatientRepository(q Querier) *PatientRepo {
	return &PatientRepo{q: q}
}

// date_of_birth es DATE: se lee como texto YYYY-MM-DD con to_char.
const patientSelect = `
	SELECT id, first_name, last_name, to_char(date_of_birth, 'YYYY-MM-DD'), gender, phone, address,
		emergency_contact, emergency_phone, blood_type, allergies, chronic_conditions,
		insurance, created_at, updated_at
	FROM patients`

func scanPatient(row pgx.Row) (*entity.Patient, error) {
	var p entity.Patient
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Gender, &p.Phone, &p.Address,
		&p.EmergencyContact, &p.EmergencyPhone, &p.BloodType, &p.Allergies, &p.ChronicConditions,
		&p.Insurance, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PatientRepo) Create(ctx context.Context, p *entity.Patient) error {
	query := `
		INSERT INTO patients (id, first_name, last_name, date_of_birth, gender, phone, address,
			emergency_contact, emergency_phone, blood_type, allergies, chronic_conditions,
			insurance, created_at, updated_at)
		VALUES ($1, $2, $3, $4::text::date, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.FirstName, p.LastName, p.DateOfBirth, p.Gender, p.Phone, p.Address,
		p.EmergencyContact, p.EmergencyPhone, p.BloodType, p.Allergies, p.ChronicConditions,
		p.Insurance, p.CreatedAt, p.UpdatedAt,
	)
	return mapError("insert patient", err)
}

func (r *PatientRepo) GetByID(ctx context.Context, id string) (*entity.Patient, error) {
	if !isUUID(id) {
		return nil, nil
	}
	p, err := scanPatient(r.q.QueryRow(ctx, patientSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("get patient", err)
	}
	return p, nil
}

func (r *PatientRepo) Update(ctx context.Context, p *entity.Patient) error {
	query := `
		UPDATE patients SET first_name = $2, last_name = $3, date_of_birth = $4::text::date, gender = $5,
			phone = $6, address = $7, emergency_contact = $8, emergency_phone = $9, blood_type = $10,
			allergies = $11, chronic_conditions = $12, insurance = $13, updated_at = $14
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.FirstName, p.LastName, p.DateOfBirth, p.Gender, p.Phone, p.Address,
		p.EmergencyContact, p.EmergencyPhone, p.BloodType, p.Allergies, p.ChronicConditions,
		p.Insurance, p.UpdatedAt,
	)
	if err != nil {
		return mapError("update patient", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PatientRepo) List(ctx context.Context, limit, offset int) ([]*entity.Patient, error) {
	return queryList(ctx, r.q, "list patients", scanPatient,
		patientSelect+` ORDER BY last_name, first_name, id LIMIT $1 OFFSET $2`, limit, offset)
}

// Search usa unaccent(lower(...)) en ambos lados: "jose" encuentra "José".
func (r *PatientRepo) Search(ctx context.Context, query string, limit, offset int) ([]*entity.Patient, error) {
	sql := patientSelect + `
		WHERE unaccent(lower(first_name)) LIKE unaccent(lower($1))
		   OR unaccent(lower(last_name)) LIKE unaccent(lower($1))
		   OR phone LIKE $1
		ORDER BY last_name, first_name, id LIMIT $2 OFFSET $3`
	return queryList(ctx, r.q, "search patients", scanPatient, sql, likePattern(query), limit, offset)
}

func (r *PatientRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM patients`).Scan(&n); err != nil {
		return 0, mapError("count patients", err)
	}
	return n, nil
}
