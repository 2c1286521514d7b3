package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
)

// MoveSumFilter agrega movimientos "done" de un producto en [DateFrom, DateTo).
// Direction in: destino en LocationIDs y origen fuera; out: al revés.
type MoveSumFilter struct {
	ProductID   string
	LocationIDs []string
	DateFrom    time.Time
	DateTo      time.Time
	Direction   string
}

// StockMoveRepository define el puerto del libro de movimientos.
type StockMoveRepository interface {
	Create(ctx context.Context, move *entity.StockMove) error
	// SumQuantity devuelve la suma de cantidades que cumplen el filtro (cero si no hay).
	SumQuantity(ctx context.Context, filter MoveSumFilter) (decimal.Decimal, error)
}
