package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Hospital-api/internal/domain/entity"
)

// FinancialTransactionRepository define el puerto de persistencia para transacciones financieras.
type FinancialTransactionRepository interface {
	Create(ctx context.Context, tx *entity.FinancialTransaction) error
	GetByID(ctx context.Context, id string) (*entity.FinancialTransaction, error)
	Update(ctx context.Context, tx *entity.FinancialTransaction) error
	// List filtra por paciente si patientID no está vacío; ordena por fecha descendente.
	List(ctx context.Context, patientID string, limit, offset int) ([]*entity.FinancialTransaction, error)
	// ListBetween devuelve las transacciones con transaction_date en [from, to), para reportes.
	ListBetween(ctx context.Context, from, to time.Time) ([]*entity.FinancialTransaction, error)
}
