// Package pdf genera el resumen financiero imprimible con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del hospital │ Período + fecha de emisión    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INDICADORES: Ingresos │ Pendiente │ Ingresos de hoy         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA POR TIPO: Tipo | Cantidad | Total                     │
//	│  TABLA POR ESTADO: Estado | Cantidad                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Hospital-api/internal/application/dto"
	"github.com/jhoicas/Hospital-api/internal/application/reports"
)

var _ reports.SummaryPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// etiquetas de la interfaz (francés, como el resto de la UI del hospital)
var typeLabels = map[string]string{
	"consultation":    "Consultations",
	"medication":      "Médicaments",
	"test":            "Analyses",
	"hospitalization": "Hospitalisations",
}

var statusLabels = map[string]string{
	"paid":      "Payées",
	"pending":   "En attente",
	"cancelled": "Annulées",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa reports.SummaryPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	now func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{now: time.Now} }

// FinancialSummaryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) FinancialSummaryPDF(
	_ context.Context,
	hospitalName string,
	s *dto.FinancialSummaryResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Rapport financier", true).
		WithAuthor(hospitalName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(hospitalName, s, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("Répartition par type"))
	m.AddRows(tableHeaderRow("Type", "Nombre", "Total"))
	for _, t := range s.ByType {
		m.AddRows(tableRow(label(typeLabels, t.Type), fmt.Sprint(t.Count), money(t.Total, s.Currency)))
	}

	m.AddRows(row.New(4))
	m.AddRows(sectionTitle("Transactions par statut"))
	m.AddRows(tableHeaderRow("Statut", "Nombre", ""))
	for _, status := range sortedKeys(s.CountByStatus) {
		m.AddRows(tableRow(label(statusLabels, status), fmt.Sprint(s.CountByStatus[status]), ""))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: hospital (izq) y período + emisión (der). El período es [From, To): se muestra To-1 día.
func headerRow(hospitalName string, s *dto.FinancialSummaryResponse, issued time.Time) core.Row {
	period := fmt.Sprintf("%s au %s", s.From.Format("02/01/2006"), s.To.AddDate(0, 0, -1).Format("02/01/2006"))
	return row.New(18).Add(
		col.New(7).Add(
			text.New(hospitalName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Rapport financier", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("PÉRIODE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(period, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7}),
			text.New("Émis le "+issued.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// kpiRow: tres indicadores principales.
func kpiRow(s *dto.FinancialSummaryResponse) core.Row {
	kpi := func(title string, value decimal.Decimal) core.Col {
		return col.New(4).Add(
			text.New(title, props.Text{Size: 8, Color: colorGray, Top: 2, Align: align.Center}),
			text.New(money(value, s.Currency), props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 8, Align: align.Center,
			}),
		)
	}
	return row.New(20).Add(
		kpi("Revenus encaissés", s.TotalRevenue),
		kpi("Montants en attente", s.PendingAmount),
		kpi("Revenus du jour", s.TodayRevenue),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2}),
	))
}

func tableHeaderRow(a, b, c string) core.Row {
	h := func(s string, size int, al align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: al, Color: colorGray, Top: 1,
		}))
	}
	return row.New(6).Add(h(a, 6, align.Left), h(b, 2, align.Center), h(c, 4, align.Right))
}

func tableRow(a, b, c string) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(a, props.Text{Size: 9, Top: 1})),
		col.New(2).Add(text.New(b, props.Text{Size: 9, Align: align.Center, Top: 1})),
		col.New(4).Add(text.New(c, props.Text{Size: 9, Align: align.Right, Top: 1})),
	)
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Montants calculés sur les transactions enregistrées pour la période. "+
			"Les transactions annulées ne sont pas comptabilisées dans les totaux.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func label(labels map[string]string, key string) string {
	if l, ok := labels[key]; ok {
		return l
	}
	return key
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// money formatea un importe entero con separador de miles: 1500000 XOF → "1 500 000 XOF".
func money(d decimal.Decimal, currency string) string {
	return formatThousands(d.Round(0).StringFixed(0)) + " " + currency
}

// formatThousands inserta espacios de miles en un string numérico sin decimales.
// Ej: "25000" → "25 000", "-1000000" → "-1 000 000"
func formatThousands(s string) string {
	sign := ""
	if len(s) > 0 && s[0] == '-' {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
