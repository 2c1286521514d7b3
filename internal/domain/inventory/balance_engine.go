// Package inventory contiene el motor de conciliación de saldos de stock:
// saldo inicial, entradas, salidas y saldo final por producto para una bodega.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-movement-report/internal/domain"
	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
	"github.com/jhoicas/stock-movement-report/internal/domain/repository"
)

// Modos de cálculo del saldo inicial.
const (
	// BalanceModeLatest toma una sola foto: la más reciente del conjunto de ubicaciones.
	BalanceModeLatest = "latest"
	// BalanceModeSumLocations toma la foto más reciente de cada ubicación y las suma.
	BalanceModeSumLocations = "sum_locations"
)

// Engine calcula saldos y movimientos sobre el libro de inventario. Solo lectura.
type Engine struct {
	locations repository.LocationRepository
	products  repository.ProductRepository
	quants    repository.QuantRepository
	moves     repository.StockMoveRepository
	mode      string
}

// NewEngine construye el motor. Un modo vacío o desconocido equivale a BalanceModeLatest.
func NewEngine(
	locations repository.LocationRepository,
	products repository.ProductRepository,
	quants repository.QuantRepository,
	moves repository.StockMoveRepository,
	mode string,
) *Engine {
	if mode != BalanceModeSumLocations {
		mode = BalanceModeLatest
	}
	return &Engine{
		locations: locations,
		products:  products,
		quants:    quants,
		moves:     moves,
		mode:      mode,
	}
}

// Mode devuelve el modo de saldo inicial efectivo.
func (e *Engine) Mode() string { return e.mode }

// BeginningBalance devuelve cantidad y valor del producto al cierre del día asOf.
// El valor usa el costo vigente del producto, no el costo a la fecha.
func (e *Engine) BeginningBalance(
	ctx context.Context,
	product *entity.Product,
	locationIDs []string,
	asOf time.Time,
) (qty, value decimal.Decimal, err error) {
	if product == nil || len(locationIDs) == 0 {
		return decimal.Zero, decimal.Zero, nil
	}
	filter := repository.QuantFilter{
		ProductID:    product.ID,
		LocationIDs:  locationIDs,
		InDateBefore: nextDay(asOf),
	}

	switch e.mode {
	case BalanceModeSumLocations:
		quants, err := e.quants.LatestPerLocation(ctx, filter)
		if err != nil {
			return decimal.Zero, decimal.Zero, fmt.Errorf("saldo inicial por ubicación: %w", err)
		}
		qty = decimal.Zero
		for _, q := range quants {
			qty = qty.Add(q.Quantity)
		}
	default:
		quant, err := e.quants.Latest(ctx, filter)
		if err != nil {
			return decimal.Zero, decimal.Zero, fmt.Errorf("saldo inicial: %w", err)
		}
		qty = decimal.Zero
		if quant != nil {
			qty = quant.Quantity
		}
	}
	return qty, qty.Mul(product.Cost), nil
}

// MovementTotals suma los movimientos "done" del producto entre start y end (ambos días
// incluidos) en la dirección indicada. Movimientos internos al conjunto no cuentan.
func (e *Engine) MovementTotals(
	ctx context.Context,
	product *entity.Product,
	locationIDs []string,
	start, end time.Time,
	direction string,
) (qty, value decimal.Decimal, err error) {
	if direction != entity.MoveDirectionIn && direction != entity.MoveDirectionOut {
		return decimal.Zero, decimal.Zero, fmt.Errorf("dirección %q: %w", direction, domain.ErrInvalidInput)
	}
	from, to := dayStart(start), nextDay(end)
	if product == nil || len(locationIDs) == 0 || !from.Before(to) {
		return decimal.Zero, decimal.Zero, nil
	}

	qty, err = e.moves.SumQuantity(ctx, repository.MoveSumFilter{
		ProductID:   product.ID,
		LocationIDs: locationIDs,
		DateFrom:    from,
		DateTo:      to,
		Direction:   direction,
	})
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("movimientos %s: %w", direction, err)
	}
	return qty, qty.Mul(product.Cost), nil
}

// ResolveLocations devuelve los IDs de las ubicaciones de almacenamiento bajo la
// ubicación vista de la bodega.
func (e *Engine) ResolveLocations(ctx context.Context, warehouse *entity.Warehouse) ([]string, error) {
	if warehouse == nil || warehouse.ViewLocationID == "" {
		return nil, nil
	}
	list, err := e.locations.ListStorageDescendants(ctx, warehouse.ViewLocationID)
	if err != nil {
		return nil, fmt.Errorf("resolver ubicaciones de bodega %s: %w", warehouse.ID, err)
	}
	ids := make([]string, 0, len(list))
	for _, l := range list {
		ids = append(ids, l.ID)
	}
	return ids, nil
}

// Generate calcula una fila por producto de la empresa de la bodega, en orden de
// enumeración. Una bodega nil produce un resultado vacío. Cualquier error de
// lectura aborta todo el reporte.
func (e *Engine) Generate(
	ctx context.Context,
	warehouse *entity.Warehouse,
	start, end time.Time,
) ([]entity.MovementReportRow, error) {
	rows := []entity.MovementReportRow{}
	if warehouse == nil {
		return rows, nil
	}

	locationIDs, err := e.ResolveLocations(ctx, warehouse)
	if err != nil {
		return nil, err
	}
	products, err := e.products.ListAllByCompany(ctx, warehouse.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}

	for i, p := range products {
		row, err := e.productRow(ctx, p, locationIDs, start, end)
		if err != nil {
			return nil, fmt.Errorf("producto %s: %w", p.ID, err)
		}
		row.Index = i + 1
		rows = append(rows, row)
	}
	return rows, nil
}

func (e *Engine) productRow(
	ctx context.Context,
	p *entity.Product,
	locationIDs []string,
	start, end time.Time,
) (entity.MovementReportRow, error) {
	startQty, startValue, err := e.BeginningBalance(ctx, p, locationIDs, start)
	if err != nil {
		return entity.MovementReportRow{}, err
	}
	receivedQty, receivedValue, err := e.MovementTotals(ctx, p, locationIDs, start, end, entity.MoveDirectionIn)
	if err != nil {
		return entity.MovementReportRow{}, err
	}
	deliveredQty, deliveredValue, err := e.MovementTotals(ctx, p, locationIDs, start, end, entity.MoveDirectionOut)
	if err != nil {
		return entity.MovementReportRow{}, err
	}

	return entity.MovementReportRow{
		ProductID:      p.ID,
		ProductName:    p.DisplayName(),
		UnitMeasure:    p.UnitMeasure,
		StartQty:       startQty,
		StartValue:     startValue,
		ReceivedQty:    receivedQty,
		ReceivedValue:  receivedValue,
		DeliveredQty:   deliveredQty,
		DeliveredValue: deliveredValue,
		EndQty:         startQty.Add(receivedQty).Sub(deliveredQty),
		EndValue:       startValue.Add(receivedValue).Sub(deliveredValue),
	}, nil
}

// dayStart trunca t a la medianoche de su propia zona horaria.
func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// nextDay devuelve la medianoche del día siguiente a t (límite exclusivo).
func nextDay(t time.Time) time.Time {
	return dayStart(t).AddDate(0, 0, 1)
}
