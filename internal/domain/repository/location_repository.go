package repository

import (
	"context"

	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
)

// LocationRepository define el puerto para la jerarquía de ubicaciones.
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	// ListStorageDescendants devuelve todas las ubicaciones "internal" bajo rootID
	// (a cualquier profundidad, sin incluir la raíz), ordenadas por ID.
	ListStorageDescendants(ctx context.Context, rootID string) ([]*entity.Location, error)
}
