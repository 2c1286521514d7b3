package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/text/language"

	"github.com/jhoicas/stock-movement-report/internal/application/attachment"
	appinventory "github.com/jhoicas/stock-movement-report/internal/application/inventory"
	"github.com/jhoicas/stock-movement-report/internal/application/report"
	"github.com/jhoicas/stock-movement-report/internal/application/usecase"
	"github.com/jhoicas/stock-movement-report/internal/domain/inventory"
	infrapdf "github.com/jhoicas/stock-movement-report/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-movement-report/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/stock-movement-report/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/stock-movement-report/internal/interfaces/http"
	"github.com/jhoicas/stock-movement-report/pkg/config"
	"github.com/jhoicas/stock-movement-report/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("balance_mode", cfg.Report.BalanceMode).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	quantRepo := postgres.NewQuantRepository(pool)
	moveRepo := postgres.NewStockMoveRepository(pool)
	periodRepo := postgres.NewStockPeriodRepository(pool)
	attachmentRepo := postgres.NewAttachmentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Motor de saldos: solo lectura sobre quants y movimientos
	engine := inventory.NewEngine(locationRepo, productRepo, quantRepo, moveRepo, cfg.Report.BalanceMode)

	generateUC := report.NewGenerateUseCase(warehouseRepo, companyRepo, engine, log)
	exportUC := report.NewExportUseCase(
		generateUC, attachmentRepo, cfg.Report.DefaultFormat,
		infraxlsx.NewReportRenderer(),
		infrapdf.NewReportRenderer(language.Spanish),
	)
	attachmentUC := attachment.NewUseCase(attachmentRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, locationRepo)
	stockPeriodUC := appinventory.NewStockPeriodUseCase(txRunner, locationRepo, periodRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Movement Report API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		WarehouseUC:   warehouseUC,
		GenerateUC:    generateUC,
		ExportUC:      exportUC,
		AttachmentUC:  attachmentUC,
		StockPeriodUC: stockPeriodUC,
		JWTSecret:     cfg.JWT.Secret,
		JWTIssuer:     cfg.JWT.Issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
