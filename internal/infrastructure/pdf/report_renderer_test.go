package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/stock-movement-report/internal/application/report"
	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
)

func TestRender_GeneraPDF(t *testing.T) {
	d := decimal.NewFromInt
	rows := []entity.MovementReportRow{
		{Index: 1, ProductID: "P", ProductName: "[P-001] Producto P", UnitMeasure: "Units",
			StartQty: d(10), StartValue: d(50), ReceivedQty: d(4), ReceivedValue: d(20),
			DeliveredQty: d(3), DeliveredValue: d(15), EndQty: d(11), EndValue: d(55)},
		{Index: 2, ProductID: "Q", ProductName: "Sin movimiento", UnitMeasure: "kg"},
	}
	doc := report.ReportDocument{
		CompanyName:   "Acme S.A.S.",
		WarehouseName: "Bodega Principal",
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Rows:          rows,
		Totals:        entity.SumMovementRows(rows),
	}

	data, err := NewReportRenderer(language.Spanish).Render(context.Background(), doc)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRender_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewReportRenderer(language.English).Render(ctx, report.ReportDocument{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatNumber(t *testing.T) {
	g := NewReportRenderer(language.English)
	assert.Equal(t, "1,234,567.50", g.formatNumber(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "0.00", g.formatNumber(decimal.Zero))
	assert.Equal(t, "-15.25", g.formatNumber(decimal.RequireFromString("-15.25")))
}

func TestRenderer_Metadatos(t *testing.T) {
	g := NewReportRenderer(language.English)
	assert.Equal(t, report.FormatPDF, g.Format())
	assert.Equal(t, "application/pdf", g.ContentType())
	assert.Equal(t, "Stock_Movement_Report.pdf", g.FileName())
}
