package postgres

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/stock-movement-report/internal/domain"
	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
	"github.com/jhoicas/stock-movement-report/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador para la jerarquía de ubicaciones.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una ubicación. ParentID vacío se guarda como NULL.
func (r *LocationRepo) Create(ctx context.Context, location *entity.Location) error {
	query := `
		INSERT INTO locations (id, company_id, name, parent_id, usage)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)`
	_, err := r.q.Exec(ctx, query,
		location.ID, location.CompanyID, location.Name, location.ParentID, location.Usage,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("ubicación padre %s: %w", location.ParentID, domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	query := `
		SELECT id, company_id, name, COALESCE(parent_id, '') AS parent_id, usage
		FROM locations WHERE id = $1`
	var l entity.Location
	if err := pgxscan.Get(ctx, r.q, &l, query, id); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// ListStorageDescendants recorre el árbol bajo rootID a cualquier profundidad y
// devuelve solo las ubicaciones internas, ordenadas por ID.
func (r *LocationRepo) ListStorageDescendants(ctx context.Context, rootID string) ([]*entity.Location, error) {
	query := `
		WITH RECURSIVE tree AS (
			SELECT id, company_id, name, parent_id, usage
			FROM locations WHERE parent_id = $1
			UNION ALL
			SELECT l.id, l.company_id, l.name, l.parent_id, l.usage
			FROM locations l
			JOIN tree t ON l.parent_id = t.id
		)
		SELECT id, company_id, name, COALESCE(parent_id, '') AS parent_id, usage
		FROM tree
		WHERE usage = $2
		ORDER BY id`
	var list []*entity.Location
	if err := pgxscan.Select(ctx, r.q, &list, query, rootID, entity.LocationUsageInternal); err != nil {
		return nil, fmt.Errorf("list storage locations under %s: %w", rootID, err)
	}
	return list, nil
}
