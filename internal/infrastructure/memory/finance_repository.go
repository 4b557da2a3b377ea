package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Hospital-api/internal/domain"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
)

// FinancialTransactionRepo implementación en memoria de repository.FinancialTransactionRepository.
type FinancialTransactionRepo struct {
	store *Store
}

// NewFinancialTransactionRepository construye el repositorio.
func NewFinancialTransactionRepository(store *Store) *FinancialTransactionRepo {
	return &FinancialTransactionRepo{store: store}
}

var _ repository.FinancialTransactionRepository = (*FinancialTransactionRepo)(nil)

func transactionLess(a, b *entity.FinancialTransaction) bool {
	if !a.TransactionDate.Equal(b.TransactionDate) {
		return a.TransactionDate.After(b.TransactionDate)
	}
	return a.ID < b.ID
}

func (r *FinancialTransactionRepo) Create(_ context.Context, t *entity.FinancialTransaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if t.PatientID != "" {
		if _, ok := r.store.state.patients[t.PatientID]; !ok {
			return domain.ErrNotFound
		}
	}
	t.ID = r.store.ensureID(t.ID)
	r.store.state.transactions[t.ID] = *t
	return nil
}

func (r *FinancialTransactionRepo) GetByID(_ context.Context, id string) (*entity.FinancialTransaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	t, ok := r.store.state.transactions[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *FinancialTransactionRepo) Update(_ context.Context, t *entity.FinancialTransaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.state.transactions[t.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.state.transactions[t.ID] = *t
	return nil
}

func (r *FinancialTransactionRepo) List(_ context.Context, patientID string, limit, offset int) ([]*entity.FinancialTransaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := collect(r.store.state.transactions,
		func(t *entity.FinancialTransaction) bool { return patientID == "" || t.PatientID == patientID },
		transactionLess)
	return paginate(out, limit, offset), nil
}

func (r *FinancialTransactionRepo) ListBetween(_ context.Context, from, to time.Time) ([]*entity.FinancialTransaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return collect(r.store.state.transactions,
		func(t *entity.FinancialTransaction) bool {
			return !t.TransactionDate.Before(from) && t.TransactionDate.Before(to)
		},
		transactionLess), nil
}
