package entity

import "github.com/shopspring/decimal"

// MovementReportRow es el resultado calculado por producto para una bodega y rango.
// Invariante: EndQty = StartQty + ReceivedQty - DeliveredQty (igual para valores).
type MovementReportRow struct {
	Index          int // posición 1-based en la enumeración de productos
	ProductID      string
	ProductName    string
	UnitMeasure    string
	StartQty       decimal.Decimal
	StartValue     decimal.Decimal
	ReceivedQty    decimal.Decimal
	ReceivedValue  decimal.Decimal
	DeliveredQty   decimal.Decimal
	DeliveredValue decimal.Decimal
	EndQty         decimal.Decimal
	EndValue       decimal.Decimal
}

// MovementReportTotals suma de columnas sobre todas las filas.
type MovementReportTotals struct {
	StartQty       decimal.Decimal
	StartValue     decimal.Decimal
	ReceivedQty    decimal.Decimal
	ReceivedValue  decimal.Decimal
	DeliveredQty   decimal.Decimal
	DeliveredValue decimal.Decimal
	EndQty         decimal.Decimal
	EndValue       decimal.Decimal
}

// SumMovementRows calcula la fila de totales.
func SumMovementRows(rows []MovementReportRow) MovementReportTotals {
	var t MovementReportTotals
	for _, r := range rows {
		t.StartQty = t.StartQty.Add(r.StartQty)
		t.StartValue = t.StartValue.Add(r.StartValue)
		t.ReceivedQty = t.ReceivedQty.Add(r.ReceivedQty)
		t.ReceivedValue = t.ReceivedValue.Add(r.ReceivedValue)
		t.DeliveredQty = t.DeliveredQty.Add(r.DeliveredQty)
		t.DeliveredValue = t.DeliveredValue.Add(r.DeliveredValue)
		t.EndQty = t.EndQty.Add(r.EndQty)
		t.EndValue = t.EndValue.Add(r.EndValue)
	}
	return t
}
