package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/application/usecase"
	"github.com/jhoicas/Hospital-api/internal/domain"
	"github.com/jhoicas/Hospital-api/internal/domain/entity"
	"github.com/jhoicas/Hospital-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Period rango [From, To) en la zona horaria del hospital.
type Period struct {
	From time.Time
	To   time.Time
}

// UseCase resumen financiero y exportaciones.
type UseCase struct {
	txRepo       repository.FinancialTransactionRepository
	itemRepo     repository.InventoryItemRepository
	sheets       SpreadsheetExporter
	pdf          SummaryPDFGenerator
	hospitalName string
	currency     string
	loc          *time.Location
	now          func() time.Time
}

// NewUseCase construye el caso de uso. sheets y pdf pueden ser nil si la exportación no está disponible.
func NewUseCase(
	txRepo repository.FinancialTransactionRepository,
	itemRepo repository.InventoryItemRepository,
	sheets SpreadsheetExporter,
	pdf SummaryPDFGenerator,
	hospitalName, currency string,
	loc *time.Location,
) *UseCase {
	if loc == nil {
		loc = time.UTC
	}
	if currency == "" {
		currency = entity.DefaultCurrency
	}
	return &UseCase{
		txRepo:       txRepo,
		itemRepo:     itemRepo,
		sheets:       sheets,
		pdf:          pdf,
		hospitalName: hospitalName,
		currency:     currency,
		loc:          loc,
		now:          time.Now,
	}
}

// ResolvePeriod convierte fechas YYYY-MM-DD (inclusivas) en un Period.
// Sin fromDate: primer día del mes en curso. Sin toDate: hoy.
func (uc *UseCase) ResolvePeriod(fromDate, toDate string) (Period, error) {
	now := uc.now().In(uc.loc)
	if fromDate == "" {
		fromDate = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, uc.loc).Format("2006-01-02")
	}
	if toDate == "" {
		toDate = usecase.Today(now, uc.loc)
	}
	from, _, err := usecase.DayRange(fromDate, uc.loc)
	if err != nil {
		return Period{}, err
	}
	_, to, err := usecase.DayRange(toDate, uc.loc)
	if err != nil {
		return Period{}, err
	}
	if !to.After(from) {
		return Period{}, fmt.Errorf("%w: el rango de fechas está invertido", domain.ErrInvalidInput)
	}
	return Period{From: from, To: to}, nil
}

// Summary calcula el resumen del período:
//   - TotalRevenue: suma de transacciones pagadas
//   - PendingAmount: suma de transacciones pendientes
//   - TodayRevenue: pagadas hoy (independiente del período)
//   - CountByStatus y ByType (las canceladas no suman al total por tipo)
func (uc *UseCase) Summary(ctx context.Context, p Period) (*dto.FinancialSummaryResponse, error) {
	txs, err := uc.txRepo.ListBetween(ctx, p.From, p.To)
	if err != nil {
		return nil, fmt.Errorf("reportes: listar transacciones: %w", err)
	}
	todayFrom, todayTo, err := usecase.DayRange(usecase.Today(uc.now(), uc.loc), uc.loc)
	if err != nil {
		return nil, err
	}
	today, err := uc.txRepo.ListBetween(ctx, todayFrom, todayTo)
	if err != nil {
		return nil, fmt.Errorf("reportes: transacciones de hoy: %w", err)
	}

	out := &dto.FinancialSummaryResponse{
		From:          p.From,
		To:            p.To,
		Currency:      uc.currency,
		TotalRevenue:  decimal.Zero,
		PendingAmount: decimal.Zero,
		TodayRevenue:  decimal.Zero,
		CountByStatus: map[string]int{},
		ByType:        []dto.TypeTotalDTO{},
	}
	byType := map[string]*dto.TypeTotalDTO{}
	for _, t := range txs {
		out.CountByStatus[t.Status]++
		switch t.Status {
		case entity.TransactionStatusPaid:
			out.TotalRevenue = out.TotalRevenue.Add(t.Amount)
		case entity.TransactionStatusPending:
			out.PendingAmount = out.PendingAmount.Add(t.Amount)
		}
		agg, ok := byType[t.Type]
		if !ok {
			agg = &dto.TypeTotalDTO{Type: t.Type, Total: decimal.Zero}
			byType[t.Type] = agg
		}
		agg.Count++
		if t.Status != entity.TransactionStatusCancelled {
			agg.Total = agg.Total.Add(t.Amount)
		}
	}
	for _, t := range today {
		if t.Status == entity.TransactionStatusPaid {
			out.TodayRevenue = out.TodayRevenue.Add(t.Amount)
		}
	}
	for _, agg := range byType {
		out.ByType = append(out.ByType, *agg)
	}
	sort.Slice(out.ByType, func(i, j int) bool { return out.ByType[i].Type < out.ByType[j].Type })
	return out, nil
}

// TransactionsXLSX exporta las transacciones del período.
func (uc *UseCase) TransactionsXLSX(ctx context.Context, p Period) ([]byte, string, error) {
	if uc.sheets == nil {
		return nil, "", fmt.Errorf("%w: exportación XLSX no configurada", domain.ErrConflict)
	}
	txs, err := uc.txRepo.ListBetween(ctx, p.From, p.To)
	if err != nil {
		return nil, "", fmt.Errorf("reportes: listar transacciones: %w", err)
	}
	data, err := uc.sheets.TransactionsXLSX(ctx, txs)
	if err != nil {
		return nil, "", fmt.Errorf("reportes: generar xlsx: %w", err)
	}
	return data, fmt.Sprintf("transactions_%s_%s.xlsx", p.From.Format("20060102"), p.To.AddDate(0, 0, -1).Format("20060102")), nil
}

// InventoryXLSX exporta el inventario completo con sus alertas de stock.
func (uc *UseCase) InventoryXLSX(ctx context.Context) ([]byte, string, error) {
	if uc.sheets == nil {
		return nil, "", fmt.Errorf("%w: exportación XLSX no configurada", domain.ErrConflict)
	}
	items, err := uc.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("reportes: listar inventario: %w", err)
	}
	data, err := uc.sheets.InventoryXLSX(ctx, items)
	if err != nil {
		return nil, "", fmt.Errorf("reportes: generar xlsx: %w", err)
	}
	return data, fmt.Sprintf("inventory_%s.xlsx", uc.now().In(uc.loc).Format("20060102")), nil
}

// FinancialPDF genera el PDF del resumen del período.
func (uc *UseCase) FinancialPDF(ctx context.Context, p Period) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("%w: exportación PDF no configurada", domain.ErrConflict)
	}
	summary, err := uc.Summary(ctx, p)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.pdf.FinancialSummaryPDF(ctx, uc.hospitalName, summary)
	if err != nil {
		return nil, "", fmt.Errorf("reportes: generar pdf: %w", err)
	}
	return data, fmt.Sprintf("financial_%s_%s.pdf", p.From.Format("20060102"), p.To.AddDate(0, 0, -1).Format("20060102")), nil
}
