package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-movement-report/internal/application/dto"
	"github.com/jhoicas/stock-movement-report/internal/application/usecase"
	"github.com/jhoicas/stock-movement-report/internal/domain"
	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
)

type stubWarehouses struct {
	list      []*entity.Warehouse
	gotLimit  int
	gotOffset int
}

func (s *stubWarehouses) Create(context.Context, *entity.Warehouse) error { return nil }
func (s *stubWarehouses) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	for _, w := range s.list {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, nil
}
func (s *stubWarehouses) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	s.gotLimit, s.gotOffset = limit, offset
	var out []*entity.Warehouse
	for _, w := range s.list {
		if w.CompanyID == companyID {
			out = append(out, w)
		}
	}
	return out, nil
}

type stubLocations struct{ root string }

func (s *stubLocations) Create(context.Context, *entity.Location) error { return nil }
func (s *stubLocations) GetByID(context.Context, string) (*entity.Location, error) {
	return nil, nil
}
func (s *stubLocations) ListStorageDescendants(_ context.Context, rootID string) ([]*entity.Location, error) {
	s.root = rootID
	return []*entity.Location{
		{ID: "L1", Name: "Stock", ParentID: rootID, Usage: entity.LocationUsageInternal},
		{ID: "L2", Name: "Shelf 1", ParentID: "L1", Usage: entity.LocationUsageInternal},
	}, nil
}

func newWarehouseUC() (*usecase.WarehouseUseCase, *stubWarehouses, *stubLocations) {
	wh := &stubWarehouses{list: []*entity.Warehouse{
		{ID: "WH", CompanyID: "C1", Name: "Principal", Code: "WH", ViewLocationID: "V"},
		{ID: "WX", CompanyID: "C2", Name: "Ajena", ViewLocationID: "VX"},
	}}
	locs := &stubLocations{}
	return usecase.NewWarehouseUseCase(wh, locs), wh, locs
}

func TestWarehouseUseCase_GetByID(t *testing.T) {
	uc, _, _ := newWarehouseUC()
	ctx := context.Background()

	out, err := uc.GetByID(ctx, "C1", "WH")
	require.NoError(t, err)
	assert.Equal(t, "V", out.ViewLocationID)

	_, err = uc.GetByID(ctx, "C1", "WX")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.GetByID(ctx, "C1", "NOPE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWarehouseUseCase_ListAplicaPaginaPorDefecto(t *testing.T) {
	uc, wh, _ := newWarehouseUC()
	out, err := uc.List(context.Background(), "C1", dto.PageRequest{Limit: 500, Offset: -3})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, 100, wh.gotLimit)
	assert.Equal(t, 0, wh.gotOffset)
}

func TestWarehouseUseCase_LocationsUsaLaVistaDeLaBodega(t *testing.T) {
	uc, _, locs := newWarehouseUC()
	out, err := uc.Locations(context.Background(), "C1", "WH")
	require.NoError(t, err)
	assert.Equal(t, "V", locs.root)
	assert.Equal(t, "WH", out.WarehouseID)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Shelf 1", out.Items[1].Name)
}
