package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	UpdateCost(ctx context.Context, productID string, cost decimal.Decimal) error
	// ListAllByCompany enumera todos los productos de la empresa en orden estable (por ID).
	ListAllByCompany(ctx context.Context, companyID string) ([]*entity.Product, error)
}
