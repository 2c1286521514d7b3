package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
)

// QuantFilter selecciona fotos de stock de un producto en un conjunto de ubicaciones
// con InDate estrictamente anterior a InDateBefore.
type QuantFilter struct {
	ProductID    string
	LocationIDs  []string
	InDateBefore time.Time
}

// QuantRepository define el puerto de lectura/escritura de quants.
type QuantRepository interface {
	Create(ctx context.Context, quant *entity.Quant) error
	// Latest devuelve la foto más reciente (InDate desc, LocationID asc); nil si no hay.
	Latest(ctx context.Context, filter QuantFilter) (*entity.Quant, error)
	// LatestPerLocation devuelve la foto más reciente de cada ubicación del filtro.
	LatestPerLocation(ctx context.Context, filter QuantFilter) ([]*entity.Quant, error)
}
