package xlsx

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestTransactionsXLSX(t *testing.T) {
	data, err := NewExporter().TransactionsXLSX(context.Background(), []*entity.FinancialTransaction{
		{ID: "t1", Type: entity.TransactionTypeConsultation, Amount: decimal.RequireFromString("15000"),
			Currency: "XOF", Status: entity.TransactionStatusPaid, PaymentMethod: entity.PaymentCash,
			TransactionDate: time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetTransactions)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Montant", rows[0][3])
	assert.Equal(t, "t1", rows[1][0])
	assert.Equal(t, "2026-10-19 09:30", rows[1][1])
	assert.Equal(t, "15000", rows[1][3])
}

func TestInventoryXLSX_Flags(t *testing.T) {
	price := decimal.RequireFromString("500")
	data, err := NewExporter().InventoryXLSX(context.Background(), []*entity.InventoryItem{
		{ID: "a", Name: "Gants", CurrentStock: 0, MinimumStock: 10, Unit: "boxes"},
		{ID: "b", Name: "Paracétamol", CurrentStock: 50, MinimumStock: 10, Unit: "boxes", UnitPrice: &price},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetInventory)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"oui", "oui"}, rows[1][10:12])
	assert.Equal(t, []string{"non", "non"}, rows[2][10:12])
	assert.Equal(t, "500", rows[2][6])
}

func TestInventoryXLSX_Empty(t *testing.T) {
	data, err := NewExporter().InventoryXLSX(context.Background(), nil)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows(sheetInventory)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
