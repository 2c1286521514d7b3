package dto

import "github.com/shopspring/decimal"

// GenerateReportRequest parámetros del reporte de movimientos. Fechas en formato YYYY-MM-DD.
type GenerateReportRequest struct {
	WarehouseID string `query:"warehouse_id" json:"warehouse_id"`
	StartDate   string `query:"start_date" json:"start_date"`
	EndDate     string `query:"end_date" json:"end_date"`
}

// ExportReportRequest igual que GenerateReportRequest más el formato (xlsx | pdf).
type ExportReportRequest struct {
	WarehouseID string `json:"warehouse_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Format      string `json:"format"`
}

// StockMovementRowResponse una fila del reporte.
type StockMovementRowResponse struct {
	Index          int             `json:"index"`
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	UnitMeasure    string          `json:"uom"`
	StartQty       decimal.Decimal `json:"start_qty"`
	StartValue     decimal.Decimal `json:"start_value"`
	ReceivedQty    decimal.Decimal `json:"received_qty"`
	ReceivedValue  decimal.Decimal `json:"received_value"`
	DeliveredQty   decimal.Decimal `json:"delivered_qty"`
	DeliveredValue decimal.Decimal `json:"delivered_value"`
	EndQty         decimal.Decimal `json:"end_qty"`
	EndValue       decimal.Decimal `json:"end_value"`
}

// StockMovementTotalsResponse suma de columnas del reporte.
type StockMovementTotalsResponse struct {
	StartQty       decimal.Decimal `json:"start_qty"`
	StartValue     decimal.Decimal `json:"start_value"`
	ReceivedQty    decimal.Decimal `json:"received_qty"`
	ReceivedValue  decimal.Decimal `json:"received_value"`
	DeliveredQty   decimal.Decimal `json:"delivered_qty"`
	DeliveredValue decimal.Decimal `json:"delivered_value"`
	EndQty         decimal.Decimal `json:"end_qty"`
	EndValue       decimal.Decimal `json:"end_value"`
}

// StockMovementReportResponse reporte completo para pantalla.
type StockMovementReportResponse struct {
	CompanyName   string                      `json:"company_name"`
	WarehouseID   string                      `json:"warehouse_id"`
	WarehouseName string                      `json:"warehouse_name"`
	StartDate     string                      `json:"start_date"`
	EndDate       string                      `json:"end_date"`
	BalanceMode   string                      `json:"balance_mode"`
	Rows          []StockMovementRowResponse  `json:"rows"`
	Totals        StockMovementTotalsResponse `json:"totals"`
}

// ExportReportResponse referencia de descarga del archivo generado.
type ExportReportResponse struct {
	AttachmentID string `json:"attachment_id"`
	FileName     string `json:"file_name"`
	MimeType     string `json:"mime_type"`
	Size         int    `json:"size"`
	URL          string `json:"url"`
}
