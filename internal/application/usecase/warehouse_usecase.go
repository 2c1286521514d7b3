package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-movement-report/internal/application/dto"
	"github.com/jhoicas/stock-movement-report/internal/domain"
	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
	"github.com/jhoicas/stock-movement-report/internal/domain/repository"
)

// WarehouseUseCase consultas de bodegas y sus ubicaciones de almacenamiento.
type WarehouseUseCase struct {
	repo      repository.WarehouseRepository
	locations repository.LocationRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, locations repository.LocationRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, locations: locations}
}

// GetByID obtiene una bodega de la empresa.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista bodegas por empresa con paginación.
func (uc *WarehouseUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.WarehouseListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Locations devuelve las ubicaciones internas bajo la vista de la bodega:
// exactamente el conjunto que usa el reporte de movimientos.
func (uc *WarehouseUseCase) Locations(ctx context.Context, companyID, id string) (*dto.WarehouseLocationsResponse, error) {
	warehouse, err := uc.get(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	list, err := uc.locations.ListStorageDescendants(ctx, warehouse.ViewLocationID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, dto.LocationResponse{ID: l.ID, Name: l.Name, ParentID: l.ParentID, Usage: l.Usage})
	}
	return &dto.WarehouseLocationsResponse{WarehouseID: warehouse.ID, Items: items}, nil
}

func (uc *WarehouseUseCase) get(ctx context.Context, companyID, id string) (*entity.Warehouse, error) {
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, fmt.Errorf("bodega %s: %w", id, domain.ErrNotFound)
	}
	if warehouse.CompanyID != companyID {
		return nil, fmt.Errorf("bodega %s: %w", id, domain.ErrForbidden)
	}
	return warehouse, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:             w.ID,
		CompanyID:      w.CompanyID,
		Name:           w.Name,
		Code:           w.Code,
		ViewLocationID: w.ViewLocationID,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}
