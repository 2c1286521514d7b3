package repository

import (
	"context"

	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
)

// StockPeriodRepository persiste periodos de stock con sus líneas.
type StockPeriodRepository interface {
	Create(ctx context.Context, period *entity.StockPeriod) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.StockPeriod, error)
}
