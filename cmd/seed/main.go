// seed carga la bodega de demostración del reporte de movimientos:
// bodega WH con ubicaciones L1 y L2, un producto P a costo 5, una foto de 10
// unidades en L1 el 2024-01-01, una entrada de 4 el 2024-01-15 y una salida
// de 3 el 2024-01-20.
//
// Uso: go run ./cmd/seed
// Imprime un token de desarrollo para consultar la API con la empresa creada.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
	"github.com/jhoicas/stock-movement-report/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-movement-report/pkg/config"
	"github.com/jhoicas/stock-movement-report/pkg/jwt"
	"github.com/jhoicas/stock-movement-report/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("iniciar transacción")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	demo, err := seedDemo(ctx, tx)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar datos de demostración")
	}
	if err := tx.Commit(ctx); err != nil {
		log.Fatal().Err(err).Msg("confirmar transacción")
	}

	log.Info().
		Str("company_id", demo.companyID).
		Str("warehouse_id", demo.warehouseID).
		Msg("datos de demostración cargados")

	token, err := jwt.Generate(cfg.JWT.Secret, uuid.New().String(), demo.companyID, "admin", cfg.JWT.Issuer, 60*24)
	if err != nil {
		log.Fatal().Err(err).Msg("generar token")
	}
	fmt.Printf("Authorization: Bearer %s\n", token)
	fmt.Printf("GET /api/reports/stock-movement?warehouse_id=%s&start_date=2024-01-10&end_date=2024-01-31\n", demo.warehouseID)
}

type demoIDs struct {
	companyID   string
	warehouseID string
}

func seedDemo(ctx context.Context, tx pgx.Tx) (*demoIDs, error) {
	now := time.Now()
	day := func(d int) time.Time { return time.Date(2024, time.January, d, 12, 0, 0, 0, time.UTC) }

	company := &entity.Company{
		ID: uuid.New().String(), Name: "Demo S.A.S.", NIT: "900000000-1",
		Status: "active", CreatedAt: now, UpdatedAt: now,
	}
	if err := postgres.NewCompanyRepository(tx).Create(ctx, company); err != nil {
		return nil, fmt.Errorf("empresa: %w", err)
	}

	locRepo := postgres.NewLocationRepository(tx)
	newLocation := func(name, parentID, usage string) (*entity.Location, error) {
		l := &entity.Location{
			ID: uuid.New().String(), CompanyID: company.ID,
			Name: name, ParentID: parentID, Usage: usage,
		}
		if err := locRepo.Create(ctx, l); err != nil {
			return nil, fmt.Errorf("ubicación %s: %w", name, err)
		}
		return l, nil
	}

	view, err := newLocation("WH", "", entity.LocationUsageView)
	if err != nil {
		return nil, err
	}
	l1, err := newLocation("WH/L1", view.ID, entity.LocationUsageInternal)
	if err != nil {
		return nil, err
	}
	if _, err := newLocation("WH/L2", view.ID, entity.LocationUsageInternal); err != nil {
		return nil, err
	}
	supplier, err := newLocation("Partners/Vendors", "", entity.LocationUsageSupplier)
	if err != nil {
		return nil, err
	}
	customer, err := newLocation("Partners/Customers", "", entity.LocationUsageCustomer)
	if err != nil {
		return nil, err
	}

	warehouse := &entity.Warehouse{
		ID: uuid.New().String(), CompanyID: company.ID, Name: "WH", Code: "WH",
		ViewLocationID: view.ID, CreatedAt: now, UpdatedAt: now,
	}
	if err := postgres.NewWarehouseRepository(tx).Create(ctx, warehouse); err != nil {
		return nil, fmt.Errorf("bodega: %w", err)
	}

	product := &entity.Product{
		ID: uuid.New().String(), CompanyID: company.ID, SKU: "P", Name: "Producto P",
		UnitMeasure: "Units", Cost: decimal.NewFromInt(5), CreatedAt: now, UpdatedAt: now,
	}
	if err := postgres.NewProductRepository(tx).Create(ctx, product); err != nil {
		return nil, fmt.Errorf("producto: %w", err)
	}

	quant := &entity.Quant{
		ID: uuid.New().String(), ProductID: product.ID, LocationID: l1.ID,
		Quantity: decimal.NewFromInt(10), InDate: day(1),
	}
	if err := postgres.NewQuantRepository(tx).Create(ctx, quant); err != nil {
		return nil, fmt.Errorf("foto de stock: %w", err)
	}

	moveRepo := postgres.NewStockMoveRepository(tx)
	moves := []*entity.StockMove{
		{
			ID: uuid.New().String(), ProductID: product.ID,
			LocationID: supplier.ID, LocationDestID: l1.ID,
			Quantity: decimal.NewFromInt(4), State: entity.MoveStateDone,
			Date: day(15), Reference: "WH/IN/00001",
		},
		{
			ID: uuid.New().String(), ProductID: product.ID,
			LocationID: l1.ID, LocationDestID: customer.ID,
			Quantity: decimal.NewFromInt(3), State: entity.MoveStateDone,
			Date: day(20), Reference: "WH/OUT/00001",
		},
	}
	for _, m := range moves {
		if err := moveRepo.Create(ctx, m); err != nil {
			return nil, fmt.Errorf("movimiento %s: %w", m.Reference, err)
		}
	}

	return &demoIDs{companyID: company.ID, warehouseID: warehouse.ID}, nil
}
