package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-movement-report/internal/application/dto"
	"github.com/jhoicas/stock-movement-report/internal/application/report"
)

// ReportHandler expone el reporte de movimientos de stock.
type ReportHandler struct {
	generate *report.GenerateUseCase
	export   *report.ExportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(generate *report.GenerateUseCase, export *report.ExportUseCase) *ReportHandler {
	return &ReportHandler{generate: generate, export: export}
}

// StockMovement godoc
// @Summary      Reporte de movimientos de stock
// @Description  Saldo inicial, entradas, salidas y saldo final por producto para una bodega y rango de fechas.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  true  "ID de la bodega"
// @Param        start_date    query  string  true  "Fecha inicial (YYYY-MM-DD)"
// @Param        end_date      query  string  true  "Fecha final (YYYY-MM-DD)"
// @Success      200  {object}  dto.StockMovementReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/stock-movement [get]
func (h *ReportHandler) StockMovement(c *fiber.Ctx) error {
	companyID, ok := requireCompany(c)
	if !ok {
		return nil
	}
	var in dto.GenerateReportRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.generate.Generate(c.UserContext(), companyID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar reporte de movimientos
// @Description  Genera el archivo (xlsx por defecto o pdf) y devuelve la URL de descarga.
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExportReportRequest  true  "Parámetros del reporte"
// @Success      201   {object}  dto.ExportReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/stock-movement/export [post]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	companyID, ok := requireCompany(c)
	if !ok {
		return nil
	}
	var in dto.ExportReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.export.Export(c.UserContext(), companyID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
