// Package inventory casos de uso de inventario: periodos de stock por ubicación.
package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-movement-report/internal/application/dto"
	"github.com/jhoicas/stock-movement-report/internal/domain"
	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
	"github.com/jhoicas/stock-movement-report/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// StockPeriodUseCase congela la cantidad de cada producto en una ubicación a una fecha.
type StockPeriodUseCase struct {
	txRunner  TxRunner
	locations repository.LocationRepository
	periods   repository.StockPeriodRepository
}

// NewStockPeriodUseCase construye el caso de uso.
func NewStockPeriodUseCase(
	txRunner TxRunner,
	locations repository.LocationRepository,
	periods repository.StockPeriodRepository,
) *StockPeriodUseCase {
	return &StockPeriodUseCase{txRunner: txRunner, locations: locations, periods: periods}
}

// CreatePeriod toma, para cada producto de la empresa, la foto más reciente en la
// ubicación con in_date hasta el fin del día indicado (0 si no hay) y guarda el
// periodo con sus líneas en una sola transacción.
func (uc *StockPeriodUseCase) CreatePeriod(ctx context.Context, companyID string, in dto.CreateStockPeriodRequest) (*dto.StockPeriodResponse, error) {
	if strings.TrimSpace(in.LocationID) == "" || strings.TrimSpace(in.Date) == "" {
		return nil, fmt.Errorf("%w: location_id y date son requeridos", domain.ErrInvalidInput)
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(in.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: date debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
	}

	location, err := uc.locations.GetByID(ctx, in.LocationID)
	if err != nil {
		return nil, fmt.Errorf("obtener ubicación: %w", err)
	}
	if location == nil {
		return nil, fmt.Errorf("ubicación %s: %w", in.LocationID, domain.ErrNotFound)
	}
	if location.CompanyID != companyID {
		return nil, fmt.Errorf("ubicación %s: %w", in.LocationID, domain.ErrForbidden)
	}

	period := &entity.StockPeriod{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		LocationID: location.ID,
		Date:       date,
		CreatedAt:  time.Now(),
	}
	cutoff := date.AddDate(0, 0, 1)

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		quantRepo repository.QuantRepository,
		periodRepo repository.StockPeriodRepository,
	) error {
		products, err := productRepo.ListAllByCompany(ctx, companyID)
		if err != nil {
			return fmt.Errorf("listar productos: %w", err)
		}
		period.Lines = make([]entity.StockQuantPeriod, 0, len(products))
		for _, p := range products {
			q, err := quantRepo.Latest(ctx, repository.QuantFilter{
				ProductID:    p.ID,
				LocationIDs:  []string{location.ID},
				InDateBefore: cutoff,
			})
			if err != nil {
				return fmt.Errorf("foto de %s: %w", p.ID, err)
			}
			qty := decimal.Zero
			if q != nil {
				qty = q.Quantity
			}
			period.Lines = append(period.Lines, entity.StockQuantPeriod{
				ID:            uuid.New().String(),
				StockPeriodID: period.ID,
				ProductID:     p.ID,
				Quantity:      qty,
			})
		}
		return periodRepo.Create(ctx, period)
	})
	if err != nil {
		return nil, err
	}
	return toStockPeriodResponse(period), nil
}

// GetPeriod devuelve el periodo con sus líneas.
func (uc *StockPeriodUseCase) GetPeriod(ctx context.Context, companyID, id string) (*dto.StockPeriodResponse, error) {
	period, err := uc.periods.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener periodo: %w", err)
	}
	if period == nil {
		return nil, fmt.Errorf("periodo %s: %w", id, domain.ErrNotFound)
	}
	if period.CompanyID != companyID {
		return nil, fmt.Errorf("periodo %s: %w", id, domain.ErrForbidden)
	}
	return toStockPeriodResponse(period), nil
}

func toStockPeriodResponse(p *entity.StockPeriod) *dto.StockPeriodResponse {
	lines := make([]dto.StockPeriodLineResponse, 0, len(p.Lines))
	for _, l := range p.Lines {
		lines = append(lines, dto.StockPeriodLineResponse{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return &dto.StockPeriodResponse{
		ID:         p.ID,
		LocationID: p.LocationID,
		Date:       p.Date.Format(dateLayout),
		CreatedAt:  p.CreatedAt,
		Lines:      lines,
	}
}
