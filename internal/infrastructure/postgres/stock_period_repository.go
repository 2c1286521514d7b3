package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
	"github.com/jhoicas/stock-movement-report/internal/domain/repository"
)

var _ repository.StockPeriodRepository = (*StockPeriodRepo)(nil)

// StockPeriodRepo persiste stock_periods y sus líneas stock_quant_periods.
// Create escribe en dos tablas: usarlo dentro de TxRunner.
type StockPeriodRepo struct {
	q Querier
}

// NewStockPeriodRepository construye el adaptador. Acepta pool o tx (Querier).
func NewStockPeriodRepository(q Querier) *StockPeriodRepo {
	return &StockPeriodRepo{q: q}
}

// Create inserta la cabecera del periodo y todas sus líneas.
func (r *StockPeriodRepo) Create(ctx context.Context, period *entity.StockPeriod) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_periods (id, company_id, location_id, date, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		period.ID, period.CompanyID, period.LocationID, period.Date, period.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock period: %w", err)
	}
	if len(period.Lines) == 0 {
		return nil
	}

	ins := psql.Insert("stock_quant_periods").Columns("id", "stock_period_id", "product_id", "quantity")
	for _, l := range period.Lines {
		ins = ins.Values(l.ID, period.ID, l.ProductID, l.Quantity)
	}
	sql, args, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert stock period lines: %w", err)
	}
	return nil
}

// GetByID obtiene el periodo con sus líneas ordenadas por producto.
func (r *StockPeriodRepo) GetByID(ctx context.Context, id string) (*entity.StockPeriod, error) {
	p, err := scanStockPeriod(r.q.QueryRow(ctx, `
		SELECT id, company_id, location_id, date, created_at
		FROM stock_periods WHERE id = $1`, id,
	))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock period: %w", err)
	}

	sql, args, err := psql.Select("id", "stock_period_id", "product_id", "quantity").
		From("stock_quant_periods").
		Where(squirrel.Eq{"stock_period_id": id}).
		OrderBy("product_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	if err := pgxscan.Select(ctx, r.q, &p.Lines, sql, args...); err != nil {
		return nil, fmt.Errorf("list stock period lines: %w", err)
	}
	return p, nil
}

// scanStockPeriod lee la cabecera. date es una fecha de calendario: se deja a
// medianoche UTC para que no dependa de la zona horaria del servidor.
func scanStockPeriod(row pgx.Row) (*entity.StockPeriod, error) {
	var p entity.StockPeriod
	if err := row.Scan(&p.ID, &p.CompanyID, &p.LocationID, &p.Date, &p.CreatedAt); err != nil {
		return nil, err
	}
	y, m, d := p.Date.Date()
	p.Date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &p, nil
}
