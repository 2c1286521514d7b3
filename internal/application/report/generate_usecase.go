// Package report orquesta el reporte de movimientos de stock: validación,
// cálculo con el motor de saldos y exportación a archivo.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/stock-movement-report/internal/application/dto"
	"github.com/jhoicas/stock-movement-report/internal/domain"
	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
	"github.com/jhoicas/stock-movement-report/internal/domain/repository"
	"github.com/jhoicas/stock-movement-report/pkg/logger"
)

// DateLayout formato de fechas en requests y respuestas.
const DateLayout = "2006-01-02"

// GenerateUseCase calcula el reporte para mostrarlo en pantalla. Las filas no se persisten.
type GenerateUseCase struct {
	warehouses repository.WarehouseRepository
	companies  repository.CompanyRepository
	engine     RowGenerator
	log        *logger.Logger
}

// NewGenerateUseCase construye el caso de uso.
func NewGenerateUseCase(
	warehouses repository.WarehouseRepository,
	companies repository.CompanyRepository,
	engine RowGenerator,
	log *logger.Logger,
) *GenerateUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &GenerateUseCase{
		warehouses: warehouses,
		companies:  companies,
		engine:     engine,
		log:        log.Component("report"),
	}
}

// Generate valida los parámetros, calcula las filas y agrega la fila de totales.
func (uc *GenerateUseCase) Generate(ctx context.Context, companyID string, in dto.GenerateReportRequest) (*dto.StockMovementReportResponse, error) {
	doc, err := uc.build(ctx, companyID, in.WarehouseID, in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(in.WarehouseID, doc), nil
}

// build es el paso común a pantalla y exportación.
func (uc *GenerateUseCase) build(ctx context.Context, companyID, warehouseID, startDate, endDate string) (*ReportDocument, error) {
	start, end, err := parseRange(warehouseID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	warehouse, err := uc.warehouses.GetByID(ctx, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("obtener bodega: %w", err)
	}
	if warehouse == nil {
		return nil, fmt.Errorf("bodega %s: %w", warehouseID, domain.ErrNotFound)
	}
	if warehouse.CompanyID != companyID {
		return nil, fmt.Errorf("bodega %s: %w", warehouseID, domain.ErrForbidden)
	}
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("obtener empresa: %w", err)
	}

	began := time.Now()
	rows, err := uc.engine.Generate(ctx, warehouse, start, end)
	if err != nil {
		uc.log.Error().Err(err).Str("warehouse_id", warehouse.ID).Msg("falló el cálculo del reporte")
		return nil, err
	}
	uc.log.Info().
		Str("warehouse_id", warehouse.ID).
		Str("start_date", startDate).
		Str("end_date", endDate).
		Str("balance_mode", uc.engine.Mode()).
		Int("rows", len(rows)).
		Dur("duration", time.Since(began)).
		Msg("reporte de movimientos generado")

	doc := &ReportDocument{
		WarehouseName: warehouse.Name,
		StartDate:     start,
		EndDate:       end,
		Rows:          rows,
		Totals:        entity.SumMovementRows(rows),
	}
	if company != nil {
		doc.CompanyName = company.Name
	}
	return doc, nil
}

func (uc *GenerateUseCase) toResponse(warehouseID string, doc *ReportDocument) *dto.StockMovementReportResponse {
	rows := make([]dto.StockMovementRowResponse, 0, len(doc.Rows))
	for _, r := range doc.Rows {
		rows = append(rows, dto.StockMovementRowResponse{
			Index:          r.Index,
			ProductID:      r.ProductID,
			ProductName:    r.ProductName,
			UnitMeasure:    r.UnitMeasure,
			StartQty:       r.StartQty,
			StartValue:     r.StartValue,
			ReceivedQty:    r.ReceivedQty,
			ReceivedValue:  r.ReceivedValue,
			DeliveredQty:   r.DeliveredQty,
			DeliveredValue: r.DeliveredValue,
			EndQty:         r.EndQty,
			EndValue:       r.EndValue,
		})
	}
	t := doc.Totals
	return &dto.StockMovementReportResponse{
		CompanyName:   doc.CompanyName,
		WarehouseID:   warehouseID,
		WarehouseName: doc.WarehouseName,
		StartDate:     doc.StartDate.Format(DateLayout),
		EndDate:       doc.EndDate.Format(DateLayout),
		BalanceMode:   uc.engine.Mode(),
		Rows:          rows,
		Totals: dto.StockMovementTotalsResponse{
			StartQty:       t.StartQty,
			StartValue:     t.StartValue,
			ReceivedQty:    t.ReceivedQty,
			ReceivedValue:  t.ReceivedValue,
			DeliveredQty:   t.DeliveredQty,
			DeliveredValue: t.DeliveredValue,
			EndQty:         t.EndQty,
			EndValue:       t.EndValue,
		},
	}
}

// parseRange valida los tres parámetros obligatorios antes de tocar datos.
// end < start se acepta: el motor devuelve movimientos en cero.
func parseRange(warehouseID, startDate, endDate string) (time.Time, time.Time, error) {
	var missing []string
	if strings.TrimSpace(warehouseID) == "" {
		missing = append(missing, "warehouse_id")
	}
	if strings.TrimSpace(startDate) == "" {
		missing = append(missing, "start_date")
	}
	if strings.TrimSpace(endDate) == "" {
		missing = append(missing, "end_date")
	}
	if len(missing) > 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: requerido %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}

	start, err := time.Parse(DateLayout, strings.TrimSpace(startDate))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
	}
	end, err := time.Parse(DateLayout, strings.TrimSpace(endDate))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return start, end, nil
}
