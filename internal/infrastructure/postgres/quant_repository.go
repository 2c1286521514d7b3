package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
	"github.com/jhoicas/stock-movement-report/internal/domain/repository"
)

const quantsTable = "stock_quants"

var _ repository.QuantRepository = (*QuantRepo)(nil)

// QuantRepo lee y escribe fotos de stock (stock_quants).
type QuantRepo struct {
	q Querier
}

// NewQuantRepository construye el adaptador. Acepta pool o tx (Querier).
func NewQuantRepository(q Querier) *QuantRepo {
	return &QuantRepo{q: q}
}

// Create inserta una foto de stock.
func (r *QuantRepo) Create(ctx context.Context, quant *entity.Quant) error {
	sql, args, err := psql.Insert(quantsTable).
		Columns("id", "product_id", "location_id", "quantity", "in_date").
		Values(quant.ID, quant.ProductID, quant.LocationID, quant.Quantity, quant.InDate).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert quant: %w", err)
	}
	return nil
}

func (r *QuantRepo) baseQuery(filter repository.QuantFilter) squirrel.SelectBuilder {
	return psql.Select("id", "product_id", "location_id", "quantity", "in_date").
		From(quantsTable).
		Where(squirrel.Eq{"product_id": filter.ProductID}).
		Where(squirrel.Eq{"location_id": filter.LocationIDs}).
		Where(squirrel.Lt{"in_date": filter.InDateBefore})
}

// Latest devuelve la foto más reciente del conjunto de ubicaciones; nil si no hay.
func (r *QuantRepo) Latest(ctx context.Context, filter repository.QuantFilter) (*entity.Quant, error) {
	if len(filter.LocationIDs) == 0 {
		return nil, nil
	}
	sql, args, err := r.baseQuery(filter).
		OrderBy("in_date DESC", "location_id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var q entity.Quant
	if err := pgxscan.Get(ctx, r.q, &q, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest quant: %w", err)
	}
	return &q, nil
}

// LatestPerLocation devuelve la foto más reciente de cada ubicación (DISTINCT ON).
func (r *QuantRepo) LatestPerLocation(ctx context.Context, filter repository.QuantFilter) ([]*entity.Quant, error) {
	if len(filter.LocationIDs) == 0 {
		return nil, nil
	}
	sql, args, err := r.baseQuery(filter).
		Options("DISTINCT ON (location_id)").
		OrderBy("location_id", "in_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var list []*entity.Quant
	if err := pgxscan.Select(ctx, r.q, &list, sql, args...); err != nil {
		return nil, fmt.Errorf("latest quants per location: %w", err)
	}
	return list, nil
}
