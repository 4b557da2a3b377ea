package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Hospital-api/internal/domain"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

var _ repository.FinancialTransactionRepository = (*FinancialTransactionRepo)(nil)

// FinancialTransactionRepo implementación sobre PostgreSQL. amount es NUMERIC (shopspring/decimal).
type FinancialTransactionRepo struct {
	q Querier
}

// NewFinancialTransactionRepository construye el adaptador.
func NewFinancialTransactionRepository(q Querier) *FinancialTransactionRepo {
	return &FinancialTransactionRepo{q: q}
}

const transactionSelect = `
	SELECT id, patient_id, type, amount, currency, status, payment_method, description,
		user_id, transaction_date, created_at
	FROM financial_transactions`

func scanTransaction(row pgx.Row) (*entity.FinancialTransaction, error) {
	var t entity.FinancialTransaction
	var patientID, userID *string
	err := row.Scan(&t.ID, &patientID, &t.Type, &t.Amount, &t.Currency, &t.Status, &t.PaymentMethod,
		&t.Description, &userID, &t.TransactionDate, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	t.PatientID = deref(patientID)
	t.UserID = deref(userID)
	return &t, nil
}

func (r *FinancialTransactionRepo) Create(ctx context.Context, t *entity.FinancialTransaction) error {
	query := `
		INSERT INTO financial_transactions (id, patient_id, type, amount, currency, status,
			payment_method, description, user_id, transaction_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		t.ID, nullable(t.PatientID), t.Type, t.Amount, t.Currency, t.Status,
		t.PaymentMethod, t.Description, nullable(t.UserID), t.TransactionDate, t.CreatedAt,
	)
	return mapError("insert financial transaction", err)
}

func (r *FinancialTransactionRepo) GetByID(ctx context.Context, id string) (*entity.FinancialTransaction, error) {
	if !isUUID(id) {
		return nil, nil
	}
	t, err := scanTransaction(r.q.QueryRow(ctx, transactionSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("get financial transaction", err)
	}
	return t, nil
}

func (r *FinancialTransactionRepo) Update(ctx context.Context, t *entity.FinancialTransaction) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE financial_transactions SET status = $2, payment_method = $3, description = $4 WHERE id = $1`,
		t.ID, t.Status, t.PaymentMethod, t.Description)
	if err != nil {
		return mapError("update financial transaction", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *FinancialTransactionRepo) List(ctx context.Context, patientID string, limit, offset int) ([]*entity.FinancialTransaction, error) {
	return queryList(ctx, r.q, "list financial transactions", scanTransaction,
		transactionSelect+` WHERE ($1 = '' OR patient_id::text = $1)
		ORDER BY transaction_date DESC, id LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
}

func (r *FinancialTransactionRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.FinancialTransaction, error) {
	return queryList(ctx, r.q, "list financial transactions", scanTransaction,
		transactionSelect+` WHERE transaction_date >= $1 AND transaction_date < $2
		ORDER BY transaction_date DESC, id`,
		from, to)
}
