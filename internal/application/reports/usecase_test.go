package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/domain"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/infrastructure/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

type fakeSheets struct{ rows, items int }

func (f *fakeSheets) TransactionsXLSX(_ context.Context, rows []*entity.FinancialTransaction) ([]byte, error) {
	f.rows = len(rows)
	return []byte("xlsx"), nil
}

func (f *fakeSheets) InventoryXLSX(_ context.Context, items []*entity.InventoryItem) ([]byte, error) {
	f.items = len(items)
	return []byte("xlsx"), nil
}

type fakePDF struct{ got *dto.FinancialSummaryResponse }

func (f *fakePDF) FinancialSummaryPDF(_ context.Context, _ string, s *dto.FinancialSummaryResponse) ([]byte, error) {
	f.got = s
	return []byte("%PDF"), nil
}

func newReports(t *testing.T) (*UseCase, *fakeSheets, *fakePDF) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	txRepo := memory.NewFinancialTransactionRepository(store)
	itemRepo := memory.NewInventoryItemRepository(store)

	add := func(typ, status, amount string, at time.Time) {
		require.NoError(t, txRepo.Create(ctx, &entity.FinancialTransaction{
			Type: typ, Status: status, Amount: decimal.RequireFromString(amount),
			Currency: "XOF", TransactionDate: at,
		}))
	}
	add(entity.TransactionTypeConsultation, entity.TransactionStatusPaid, "15000", fixedNow.Add(-time.Hour))
	add(entity.TransactionTypeConsultation, entity.TransactionStatusPending, "15000", fixedNow.AddDate(0, 0, -3))
	add(entity.TransactionTypeMedication, entity.TransactionStatusPaid, "2500.50", fixedNow.AddDate(0, 0, -5))
	add(entity.TransactionTypeTest, entity.TransactionStatusCancelled, "8000", fixedNow.AddDate(0, 0, -2))
	add(entity.TransactionTypeTest, entity.TransactionStatusPaid, "99999", fixedNow.AddDate(0, -2, 0)) // fuera del mes
	require.NoError(t, itemRepo.Create(ctx, &entity.InventoryItem{Name: "Paracétamol", CurrentStock: 3, MinimumStock: 10}))

	sheets, pdf := &fakeSheets{}, &fakePDF{}
	uc := NewUseCase(txRepo, itemRepo, sheets, pdf, "HNSM", "", time.UTC)
	uc.now = func() time.Time { return fixedNow }
	return uc, sheets, pdf
}

func TestResolvePeriod(t *testing.T) {
	uc, _, _ := newReports(t)

	p, err := uc.ResolvePeriod("", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), p.From)
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), p.To)

	_, err = uc.ResolvePeriod("2026-10-10", "2026-10-01")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.ResolvePeriod("10/01/2026", "")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestSummary(t *testing.T) {
	uc, _, _ := newReports(t)
	p, err := uc.ResolvePeriod("", "")
	require.NoError(t, err)

	s, err := uc.Summary(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "XOF", s.Currency)
	assert.True(t, decimal.RequireFromString("17500.50").Equal(s.TotalRevenue), s.TotalRevenue.String())
	assert.True(t, decimal.RequireFromString("15000").Equal(s.PendingAmount))
	assert.True(t, decimal.RequireFromString("15000").Equal(s.TodayRevenue))
	assert.Equal(t, map[string]int{"paid": 2, "pending": 1, "cancelled": 1}, s.CountByStatus)

	require.Len(t, s.ByType, 3)
	assert.Equal(t, "consultation", s.ByType[0].Type)
	assert.Equal(t, 2, s.ByType[0].Count)
	assert.True(t, decimal.RequireFromString("30000").Equal(s.ByType[0].Total))
	assert.Equal(t, "test", s.ByType[2].Type)
	assert.True(t, s.ByType[2].Total.IsZero())
}

func TestExports(t *testing.T) {
	uc, sheets, pdf := newReports(t)
	ctx := context.Background()
	p, err := uc.ResolvePeriod("2026-10-01", "2026-10-19")
	require.NoError(t, err)

	data, name, err := uc.TransactionsXLSX(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
	assert.Equal(t, "transactions_20261001_20261019.xlsx", name)
	assert.Equal(t, 4, sheets.rows)

	_, name, err = uc.InventoryXLSX(ctx)
	require.NoError(t, err)
	assert.Equal(t, "inventory_20261019.xlsx", name)
	assert.Equal(t, 1, sheets.items)

	_, name, err = uc.FinancialPDF(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "financial_20261001_20261019.pdf", name)
	require.NotNil(t, pdf.got)
	assert.Equal(t, 4, pdf.got.CountByStatus["paid"]+pdf.got.CountByStatus["pending"]+pdf.got.CountByStatus["cancelled"])
}

func TestExports_NotConfigured(t *testing.T) {
	uc := NewUseCase(nil, nil, nil, nil, "HNSM", "XOF", nil)
	_, _, err := uc.InventoryXLSX(context.Background())
	assert.True(t, errors.Is(err, domain.ErrConflict))
	_, _, err = uc.FinancialPDF(context.Background(), Period{})
	assert.True(t, errors.Is(err, domain.ErrConflict))
}
