// Package xlsx genera las exportaciones Excel (transacciones e inventario) con excelize.
package xlsx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jhoicas/Hospital-api/internal/application/reports"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/inventory"
	"github.com/xuri/excelize/v2"
)

var _ reports.SpreadsheetExporter = (*Exporter)(nil)

const (
	sheetTransactions = "Transactions"
	sheetInventory    = "Inventaire"
)

// Exporter implementa reports.SpreadsheetExporter. Sin estado: cada llamada crea su libro.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// TransactionsXLSX una fila por transacción, importes como números.
func (e *Exporter) TransactionsXLSX(_ context.Context, rows []*entity.FinancialTransaction) ([]byte, error) {
	header := []any{"ID", "Date", "Type", "Montant", "Devise", "Statut", "Paiement", "Patient", "Description"}
	return e.build(sheetTransactions, header, len(rows), func(i int) ([]any, bool) {
		t := rows[i]
		return []any{
			t.ID,
			t.TransactionDate.Format("2006-01-02 15:04"),
			t.Type,
			t.Amount.InexactFloat64(),
			t.Currency,
			t.Status,
			t.PaymentMethod,
			t.PatientID,
			t.Description,
		}, false
	})
}

// InventoryXLSX una fila por artículo; las filas en stock bajo o agotado se resaltan.
func (e *Exporter) InventoryXLSX(_ context.Context, items []*entity.InventoryItem) ([]byte, error) {
	header := []any{"ID", "Nom", "Catégorie", "Stock", "Stock minimum", "Unité", "Prix unitaire",
		"Fournisseur", "Expiration", "Lot", "Stock bas", "Rupture"}
	return e.build(sheetInventory, header, len(items), func(i int) ([]any, bool) {
		it := items[i]
		var price any = ""
		if it.UnitPrice != nil {
			price = it.UnitPrice.InexactFloat64()
		}
		low := inventory.IsLowStock(it)
		return []any{
			it.ID,
			it.Name,
			it.Category,
			it.CurrentStock,
			it.MinimumStock,
			it.Unit,
			price,
			it.Supplier,
			it.ExpirationDate,
			it.BatchNumber,
			yesNo(low),
			yesNo(inventory.IsOutOfStock(it)),
		}, low
	})
}

// build escribe cabecera + n filas; row(i) devuelve los valores y si la fila se resalta.
func (e *Exporter) build(sheet string, header []any, n int, row func(i int) ([]any, bool)) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	alertStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FDE2E1"}},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: cabecera: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return nil, fmt.Errorf("xlsx: columnas: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}

	for i := 0; i < n; i++ {
		values, highlight := row(i)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
		if highlight {
			if err := f.SetCellStyle(sheet, cell, fmt.Sprintf("%s%d", lastCol, i+2), alertStyle); err != nil {
				return nil, fmt.Errorf("xlsx: estilo fila: %w", err)
			}
		}
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		return nil, fmt.Errorf("xlsx: ancho: %w", err)
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func yesNo(b bool) string {
	if b {
		return "oui"
	}
	return "non"
}
