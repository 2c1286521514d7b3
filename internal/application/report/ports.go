package report

import (
	"context"
	"time"

	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
)

// Formatos de exportación soportados.
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// ReportDocument contenido listo para renderizar: encabezado, filas y totales.
type ReportDocument struct {
	CompanyName   string
	WarehouseName string
	StartDate     time.Time
	EndDate       time.Time
	Rows          []entity.MovementReportRow
	Totals        entity.MovementReportTotals
}

// Renderer convierte un ReportDocument en un archivo descargable (DIP: implementación en infrastructure).
type Renderer interface {
	Format() string
	ContentType() string
	FileName() string
	Render(ctx context.Context, doc ReportDocument) ([]byte, error)
}

// RowGenerator calcula las filas del reporte. Lo implementa inventory.Engine.
type RowGenerator interface {
	Generate(ctx context.Context, warehouse *entity.Warehouse, start, end time.Time) ([]entity.MovementReportRow, error)
	Mode() string
}
