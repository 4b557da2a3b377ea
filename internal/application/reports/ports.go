// Package reports agrupa el resumen financiero y las exportaciones (XLSX, PDF).
package reports

import (
	"context"

	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
)

// SpreadsheetExporter genera libros XLSX. Implementado en infrastructure/xlsx.
type SpreadsheetExporter interface {
	TransactionsXLSX(ctx context.Context, rows []*entity.FinancialTransaction) ([]byte, error)
	InventoryXLSX(ctx context.Context, items []*entity.InventoryItem) ([]byte, error)
}

// SummaryPDFGenerator genera el PDF del resumen financiero. Implementado en infrastructure/pdf.
type SummaryPDFGenerator interface {
	FinancialSummaryPDF(ctx context.Context, hospitalName string, summary *dto.FinancialSummaryResponse) ([]byte, error)
}
