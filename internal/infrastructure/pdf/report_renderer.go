// Package pdf renderiza el reporte de movimientos de stock como PDF (A4 horizontal).
//
//	┌──────────────────────────────────────────────────────────────────────┐
//	│  Company: <empresa>                                                   │
//	│  <bodega> Stock Movement Report         From <inicio> to <fin>        │
//	│  ─────────────────────────────────────────────────────────────────── │
//	│  No. | Product | UoM | Starting | Received | Removed | Final (Q / V) │
//	│  Total                                                               │
//	│  una fila por producto                                               │
//	└──────────────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/stock-movement-report/internal/application/report"
	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
)

// Constantes del archivo generado.
const (
	ContentType = "application/pdf"
	FileName    = "Stock_Movement_Report.pdf"

	// grilla de 24: No.(1) Product(5) UoM(2) y ocho columnas numéricas de 2.
	gridSize   = 24
	dateLayout = "2006-01-02"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 235, Green: 241, Blue: 248}
)

var _ report.Renderer = (*ReportRenderer)(nil)

// ReportRenderer implementa report.Renderer usando Maroto v2.
type ReportRenderer struct {
	printer *message.Printer
}

// NewReportRenderer construye el renderer; lang define separadores de miles y decimales.
func NewReportRenderer(lang language.Tag) *ReportRenderer {
	return &ReportRenderer{printer: message.NewPrinter(lang)}
}

func (g *ReportRenderer) Format() string      { return report.FormatPDF }
func (g *ReportRenderer) ContentType() string { return ContentType }
func (g *ReportRenderer) FileName() string    { return FileName }

// Render genera el PDF y devuelve sus bytes.
func (g *ReportRenderer) Render(ctx context.Context, doc report.ReportDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(gridSize).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(doc.WarehouseName+" Stock Movement Report", true).
		WithAuthor(doc.CompanyName, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(g.titleRows(doc)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(groupHeaderRow(), subHeaderRow())
	m.AddRows(g.totalsRow(doc.Totals))
	for i, r := range doc.Rows {
		m.AddRows(g.detailRow(r, i%2 == 1))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *ReportRenderer) titleRows(doc report.ReportDocument) []core.Row {
	period := "From " + doc.StartDate.Format(dateLayout) + " to " + doc.EndDate.Format(dateLayout)
	return []core.Row{
		row.New(7).Add(col.New(gridSize).Add(
			text.New("Company: "+doc.CompanyName, props.Text{Size: 9, Color: colorGray, Top: 1}),
		)),
		row.New(10).Add(
			col.New(16).Add(text.New(doc.WarehouseName+" Stock Movement Report", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			})),
			col.New(8).Add(text.New(period, props.Text{
				Size: 9, Align: align.Right, Top: 3,
			})),
		),
	}
}

func headerCell(label string, size int) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorWhite, Top: 1.5,
	}))
}

// groupHeaderRow primera fila de encabezados con los cuatro grupos.
func groupHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell("No.", 1),
		headerCell("Product", 5),
		headerCell("UoM", 2),
		headerCell("Starting Stock", 4),
		headerCell("Received", 4),
		headerCell("Removed", 4),
		headerCell("Final Stock", 4),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// subHeaderRow Quantity/Value y las anotaciones de cada columna.
func subHeaderRow() core.Row {
	labels := []string{"(1)", "(2)", "(3)", "(4)", "(5)", "(6)", "(7)=(1)+(3)-(5)", "(8)=(2)+(4)-(6)"}
	cols := []core.Col{col.New(8)}
	for i, l := range labels {
		kind := "Quantity"
		if i%2 == 1 {
			kind = "Value"
		}
		cols = append(cols, col.New(2).Add(
			text.New(kind, props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Center}),
			text.New(l, props.Text{Style: fontstyle.Italic, Size: 6, Align: align.Center, Top: 4, Color: colorGray}),
		))
	}
	return row.New(9).Add(cols...)
}

func (g *ReportRenderer) totalsRow(t entity.MovementReportTotals) core.Row {
	cols := []core.Col{
		col.New(8).Add(text.New("Total", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1})),
	}
	for _, v := range []decimal.Decimal{
		t.StartQty, t.StartValue, t.ReceivedQty, t.ReceivedValue,
		t.DeliveredQty, t.DeliveredValue, t.EndQty, t.EndValue,
	} {
		cols = append(cols, col.New(2).Add(text.New(g.formatNumber(v), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func (g *ReportRenderer) detailRow(r entity.MovementReportRow, striped bool) core.Row {
	cell := props.Text{Size: 7.5, Top: 1}
	num := props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1}

	cols := []core.Col{
		col.New(1).Add(text.New(strconv.Itoa(r.Index), props.Text{Size: 7.5, Align: align.Center, Top: 1})),
		col.New(5).Add(text.New(r.ProductName, cell)),
		col.New(2).Add(text.New(r.UnitMeasure, props.Text{Size: 7.5, Align: align.Center, Top: 1})),
	}
	for _, v := range []decimal.Decimal{
		r.StartQty, r.StartValue, r.ReceivedQty, r.ReceivedValue,
		r.DeliveredQty, r.DeliveredValue, r.EndQty, r.EndValue,
	} {
		cols = append(cols, col.New(2).Add(text.New(g.formatNumber(v), num)))
	}
	out := row.New(6).Add(cols...)
	if striped {
		out = out.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return out
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatNumber dos decimales con separadores de miles del idioma configurado.
func (g *ReportRenderer) formatNumber(d decimal.Decimal) string {
	return g.printer.Sprint(number.Decimal(d.InexactFloat64(),
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
