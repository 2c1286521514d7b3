package inventory

import (
	"context"

	"github.com/jhoicas/stock-movement-report/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que un periodo y sus líneas se guarden juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		quantRepo repository.QuantRepository,
		periodRepo repository.StockPeriodRepository,
	) error) error
}
