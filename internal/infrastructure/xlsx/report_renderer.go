// Package xlsx renderiza el reporte de movimientos de stock como libro de Excel.
//
// Distribución de la hoja:
//
//	fila 1      Company: <empresa>
//	fila 4      <bodega> Stock Movement Report
//	fila 5      From <inicio> to <fin>
//	filas 7-8   encabezados (No., Product, UoM y cuatro grupos Quantity/Value)
//	fila 9      anotaciones (1)..(8)
//	fila 10     totales con fórmulas SUM
//	fila 11+    una fila por producto
package xlsx

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stock-movement-report/internal/application/report"
	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
)

// Constantes de la hoja.
const (
	SheetName   = "Stock Movement Report"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	FileName    = "Stock_Movement_Report.xlsx"

	headerRow  = 7
	labelRow   = 9
	totalsRow  = 10
	firstRow   = 11
	colWidth   = 20
	dateLayout = "2006-01-02"
)

var _ report.Renderer = (*ReportRenderer)(nil)

// ReportRenderer implementa report.Renderer con excelize.
type ReportRenderer struct{}

// NewReportRenderer construye el renderer.
func NewReportRenderer() *ReportRenderer { return &ReportRenderer{} }

func (r *ReportRenderer) Format() string      { return report.FormatXLSX }
func (r *ReportRenderer) ContentType() string { return ContentType }
func (r *ReportRenderer) FileName() string    { return FileName }

// Render arma el libro y devuelve sus bytes.
func (r *ReportRenderer) Render(ctx context.Context, doc report.ReportDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	w := &sheetWriter{f: f, sheet: SheetName}
	styles := w.styles()

	w.err = firstErr(w.err, f.SetColWidth(SheetName, "A", "K", colWidth))
	w.set("A1", "Company: "+doc.CompanyName)
	w.set("A4", doc.WarehouseName+" Stock Movement Report")
	w.set("A5", "From "+doc.StartDate.Format(dateLayout)+" to "+doc.EndDate.Format(dateLayout))
	w.style("A4", "A4", styles.title)

	w.header(styles.header)
	w.labels(styles.label)
	w.totals(doc, styles.number)
	for i, row := range doc.Rows {
		w.dataRow(firstRow+i, row, styles.number)
	}

	if w.err != nil {
		return nil, fmt.Errorf("xlsx: escribir hoja: %w", w.err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter acumula el primer error para no cortar el flujo en cada celda.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

type sheetStyles struct {
	title, header, label, number int
}

func (w *sheetWriter) styles() sheetStyles {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}
	var s sheetStyles
	var err error
	if s.title, err = w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}}); err != nil {
		w.err = firstErr(w.err, err)
	}
	if s.header, err = w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, Alignment: center, Border: border}); err != nil {
		w.err = firstErr(w.err, err)
	}
	if s.label, err = w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Italic: true}, Alignment: center, Border: border}); err != nil {
		w.err = firstErr(w.err, err)
	}
	if s.number, err = w.f.NewStyle(&excelize.Style{NumFmt: 4, Border: border}); err != nil {
		w.err = firstErr(w.err, err)
	}
	return s
}

func (w *sheetWriter) set(cell string, v any) {
	w.err = firstErr(w.err, w.f.SetCellValue(w.sheet, cell, v))
}

func (w *sheetWriter) style(from, to string, id int) {
	w.err = firstErr(w.err, w.f.SetCellStyle(w.sheet, from, to, id))
}

func (w *sheetWriter) merge(from, to string) {
	w.err = firstErr(w.err, w.f.MergeCell(w.sheet, from, to))
}

func (w *sheetWriter) header(style int) {
	top, sub := headerRow, headerRow+1
	fixed := []struct{ col, title string }{
		{"A", "No."},
		{"B", "Product"},
		{"C", "UoM"},
	}
	for _, h := range fixed {
		w.set(cell(h.col, top), h.title)
		w.merge(cell(h.col, top), cell(h.col, sub))
	}
	groups := []struct{ from, to, title string }{
		{"D", "E", "Starting Stock"},
		{"F", "G", "Received"},
		{"H", "I", "Removed"},
		{"J", "K", "Final Stock"},
	}
	for _, g := range groups {
		w.set(cell(g.from, top), g.title)
		w.merge(cell(g.from, top), cell(g.to, top))
		w.set(cell(g.from, sub), "Quantity")
		w.set(cell(g.to, sub), "Value")
	}
	w.style(cell("A", top), cell("K", sub), style)
}

func (w *sheetWriter) labels(style int) {
	for i, col := range numericCols {
		label := fmt.Sprintf("(%d)", i+1)
		switch col {
		case "J":
			label = "(7)=(1)+(3)-(5)"
		case "K":
			label = "(8)=(2)+(4)-(6)"
		}
		w.set(cell(col, labelRow), label)
	}
	w.style(cell("A", labelRow), cell("K", labelRow), style)
}

// totals escribe el valor calculado y, si hay filas, la fórmula SUM sobre ellas.
func (w *sheetWriter) totals(doc report.ReportDocument, style int) {
	w.set(cell("B", totalsRow), "Total")
	values := totalValues(doc.Totals)
	last := firstRow + len(doc.Rows) - 1
	for i, col := range numericCols {
		at := cell(col, totalsRow)
		w.set(at, values[i].InexactFloat64())
		if len(doc.Rows) > 0 {
			formula := fmt.Sprintf("SUM(%s:%s)", cell(col, firstRow), cell(col, last))
			w.err = firstErr(w.err, w.f.SetCellFormula(w.sheet, at, formula))
		}
	}
	w.style(cell("A", totalsRow), cell("K", totalsRow), style)
}

func (w *sheetWriter) dataRow(n int, r entity.MovementReportRow, style int) {
	w.set(cell("A", n), r.Index)
	w.set(cell("B", n), r.ProductName)
	w.set(cell("C", n), r.UnitMeasure)
	for i, v := range rowValues(r) {
		w.set(cell(numericCols[i], n), v.InexactFloat64())
	}
	w.style(cell("A", n), cell("K", n), style)
}

var numericCols = []string{"D", "E", "F", "G", "H", "I", "J", "K"}

func rowValues(r entity.MovementReportRow) []decimal.Decimal {
	return []decimal.Decimal{
		r.StartQty, r.StartValue, r.ReceivedQty, r.ReceivedValue,
		r.DeliveredQty, r.DeliveredValue, r.EndQty, r.EndValue,
	}
}

func totalValues(t entity.MovementReportTotals) []decimal.Decimal {
	return []decimal.Decimal{
		t.StartQty, t.StartValue, t.ReceivedQty, t.ReceivedValue,
		t.DeliveredQty, t.DeliveredValue, t.EndQty, t.EndValue,
	}
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func firstErr(current, next error) error {
	if current != nil {
		return current
	}
	return next
}
