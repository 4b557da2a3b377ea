package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "0", formatThousands("0"))
	assert.Equal(t, "999", formatThousands("999"))
	assert.Equal(t, "25 000", formatThousands("25000"))
	assert.Equal(t, "1 000 000", formatThousands("1000000"))
	assert.Equal(t, "-1 500", formatThousands("-1500"))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "17 501 XOF", money(decimal.RequireFromString("17500.50"), "XOF"))
}

func TestFinancialSummaryPDF(t *testing.T) {
	g := NewMarotoPDFGenerator()
	g.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }

	data, err := g.FinancialSummaryPDF(context.Background(), "Hôpital National Simão Mendes", &dto.FinancialSummaryResponse{
		From:          time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		To:            time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		Currency:      "XOF",
		TotalRevenue:  decimal.RequireFromString("17500.50"),
		PendingAmount: decimal.RequireFromString("15000"),
		TodayRevenue:  decimal.Zero,
		CountByStatus: map[string]int{"paid": 2, "pending": 1},
		ByType: []dto.TypeTotalDTO{
			{Type: "consultation", Count: 2, Total: decimal.RequireFromString("30000")},
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
