package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-movement-report/internal/domain"
	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
	"github.com/jhoicas/stock-movement-report/internal/domain/repository"
)

const movesTable = "stock_moves"

var _ repository.StockMoveRepository = (*StockMoveRepo)(nil)

// StockMoveRepo adaptador del libro de movimientos (stock_moves).
type StockMoveRepo struct {
	q Querier
}

// NewStockMoveRepository construye el adaptador. Acepta pool o tx (Querier).
func NewStockMoveRepository(q Querier) *StockMoveRepo {
	return &StockMoveRepo{q: q}
}

// Create inserta un movimiento.
func (r *StockMoveRepo) Create(ctx context.Context, move *entity.StockMove) error {
	sql, args, err := psql.Insert(movesTable).
		Columns("id", "product_id", "location_id", "location_dest_id", "quantity", "state", "date", "reference").
		Values(move.ID, move.ProductID, move.LocationID, move.LocationDestID,
			move.Quantity, move.State, move.Date, move.Reference).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert stock move: %w", err)
	}
	return nil
}

// SumQuantity suma las cantidades de los movimientos "done" que cruzan el borde del
// conjunto de ubicaciones en la dirección pedida, con date en [DateFrom, DateTo).
func (r *StockMoveRepo) SumQuantity(ctx context.Context, filter repository.MoveSumFilter) (decimal.Decimal, error) {
	if len(filter.LocationIDs) == 0 {
		return decimal.Zero, nil
	}

	q := psql.Select("COALESCE(SUM(quantity), 0)").
		From(movesTable).
		Where(squirrel.Eq{"product_id": filter.ProductID, "state": entity.MoveStateDone}).
		Where(squirrel.GtOrEq{"date": filter.DateFrom}).
		Where(squirrel.Lt{"date": filter.DateTo})

	switch filter.Direction {
	case entity.MoveDirectionIn:
		q = q.Where(squirrel.Eq{"location_dest_id": filter.LocationIDs}).
			Where(squirrel.NotEq{"location_id": filter.LocationIDs})
	case entity.MoveDirectionOut:
		q = q.Where(squirrel.Eq{"location_id": filter.LocationIDs}).
			Where(squirrel.NotEq{"location_dest_id": filter.LocationIDs})
	default:
		return decimal.Zero, fmt.Errorf("dirección %q: %w", filter.Direction, domain.ErrInvalidInput)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("build query: %w", err)
	}

	var sum decimal.Decimal
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum stock moves: %w", err)
	}
	return sum, nil
}
