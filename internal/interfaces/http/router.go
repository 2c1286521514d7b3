package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-movement-report/internal/application/attachment"
	"github.com/jhoicas/stock-movement-report/internal/application/inventory"
	"github.com/jhoicas/stock-movement-report/internal/application/report"
	"github.com/jhoicas/stock-movement-report/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WarehouseUC   *usecase.WarehouseUseCase
	GenerateUC    *report.GenerateUseCase
	ExportUC      *report.ExportUseCase
	AttachmentUC  *attachment.UseCase
	StockPeriodUC *inventory.StockPeriodUseCase
	JWTSecret     string
	JWTIssuer     string
}

// Router registra las rutas de la API. Todo /api requiere Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Get("/:id/locations", warehouseHandler.Locations)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.GenerateUC, deps.ExportUC)
	reports.Get("/stock-movement", reportHandler.StockMovement)
	reports.Post("/stock-movement/export", reportHandler.Export)

	// Attachments
	attachmentHandler := NewAttachmentHandler(deps.AttachmentUC)
	api.Get("/attachments/:id", attachmentHandler.Download)

	// Stock periods (escritura solo admin / bodeguero)
	periods := api.Group("/stock-periods")
	periodHandler := NewStockPeriodHandler(deps.StockPeriodUC)
	periods.Post("/", RequireRole(RoleAdmin, RoleBodeguero), periodHandler.Create)
	periods.Get("/:id", periodHandler.GetByID)
}
