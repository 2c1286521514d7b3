package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-movement-report/internal/application/attachment"
	"github.com/jhoicas/stock-movement-report/internal/application/dto"
	"github.com/jhoicas/stock-movement-report/internal/application/inventory"
	"github.com/jhoicas/stock-movement-report/internal/application/report"
	"github.com/jhoicas/stock-movement-report/internal/application/usecase"
	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
	"github.com/jhoicas/stock-movement-report/internal/domain/repository"
	apphttp "github.com/jhoicas/stock-movement-report/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memWarehouses map[string]*entity.Warehouse

func (m memWarehouses) Create(_ context.Context, w *entity.Warehouse) error {
	m[w.ID] = w
	return nil
}
func (m memWarehouses) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	return m[id], nil
}
func (m memWarehouses) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range m {
		if w.CompanyID == companyID {
			out = append(out, w)
		}
	}
	return out, nil
}

type memCompanies struct{}

func (memCompanies) Create(context.Context, *entity.Company) error { return nil }
func (memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return &entity.Company{ID: id, Name: "Acme"}, nil
}

type memLocations map[string]*entity.Location

func (m memLocations) Create(_ context.Context, l *entity.Location) error {
	m[l.ID] = l
	return nil
}
func (m memLocations) GetByID(_ context.Context, id string) (*entity.Location, error) {
	return m[id], nil
}
func (m memLocations) ListStorageDescendants(_ context.Context, rootID string) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range m {
		if l.ParentID == rootID && l.IsStorage() {
			out = append(out, l)
		}
	}
	return out, nil
}

type memAttachments map[string]*entity.Attachment

func (m memAttachments) Create(_ context.Context, a *entity.Attachment) error {
	m[a.ID] = a
	return nil
}
func (m memAttachments) GetByID(_ context.Context, id string) (*entity.Attachment, error) {
	return m[id], nil
}

type memPeriods map[string]*entity.StockPeriod

func (m memPeriods) Create(_ context.Context, p *entity.StockPeriod) error {
	m[p.ID] = p
	return nil
}
func (m memPeriods) GetByID(_ context.Context, id string) (*entity.StockPeriod, error) {
	return m[id], nil
}

type noProducts struct{}

func (noProducts) Create(context.Context, *entity.Product) error            { return nil }
func (noProducts) GetByID(context.Context, string) (*entity.Product, error) { return nil, nil }
func (noProducts) UpdateCost(context.Context, string, decimal.Decimal) error { return nil }
func (noProducts) ListAllByCompany(context.Context, string) ([]*entity.Product, error) {
	return []*entity.Product{{ID: "P", CompanyID: testCompanyID, Name: "P"}}, nil
}

type noQuants struct{}

func (noQuants) Create(context.Context, *entity.Quant) error { return nil }
func (noQuants) Latest(context.Context, repository.QuantFilter) (*entity.Quant, error) {
	return &entity.Quant{ProductID: "P", Quantity: decimal.NewFromInt(7)}, nil
}
func (noQuants) LatestPerLocation(context.Context, repository.QuantFilter) ([]*entity.Quant, error) {
	return nil, nil
}

type directTx struct{ periods memPeriods }

func (d directTx) Run(_ context.Context, fn func(
	repository.ProductRepository, repository.QuantRepository, repository.StockPeriodRepository,
) error) error {
	return fn(noProducts{}, noQuants{}, d.periods)
}

type staticRows struct{}

func (staticRows) Mode() string { return "latest" }
func (staticRows) Generate(context.Context, *entity.Warehouse, time.Time, time.Time) ([]entity.MovementReportRow, error) {
	d := decimal.NewFromInt
	return []entity.MovementReportRow{{
		Index: 1, ProductID: "P", ProductName: "[P-001] P", UnitMeasure: "Units",
		StartQty: d(10), StartValue: d(50), ReceivedQty: d(4), ReceivedValue: d(20),
		DeliveredQty: d(3), DeliveredValue: d(15), EndQty: d(11), EndValue: d(55),
	}}, nil
}

type bytesRenderer struct{}

func (bytesRenderer) Format() string      { return report.FormatXLSX }
func (bytesRenderer) ContentType() string { return "application/test" }
func (bytesRenderer) FileName() string    { return "Stock_Movement_Report.xlsx" }
func (bytesRenderer) Render(context.Context, report.ReportDocument) ([]byte, error) {
	return []byte("PK-fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App de prueba con el router real
// ──────────────────────────────────────────────────────────────────────────────

func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	warehouses := memWarehouses{
		"WH": {ID: "WH", CompanyID: testCompanyID, Name: "Principal", ViewLocationID: "V"},
		"WX": {ID: "WX", CompanyID: "otra", Name: "Ajena", ViewLocationID: "VX"},
	}
	locations := memLocations{
		"V":  {ID: "V", CompanyID: testCompanyID, Usage: entity.LocationUsageView},
		"L1": {ID: "L1", CompanyID: testCompanyID, Name: "Stock", ParentID: "V", Usage: entity.LocationUsageInternal},
	}
	attachments := memAttachments{}
	periods := memPeriods{}

	generate := report.NewGenerateUseCase(warehouses, memCompanies{}, staticRows{}, nil)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		WarehouseUC:   usecase.NewWarehouseUseCase(warehouses, locations),
		GenerateUC:    generate,
		ExportUC:      report.NewExportUseCase(generate, attachments, report.FormatXLSX, bytesRenderer{}),
		AttachmentUC:  attachment.NewUseCase(attachments),
		StockPeriodUC: inventory.NewStockPeriodUseCase(directTx{periods: periods}, locations, periods),
		JWTSecret:     testJWTSecret,
		JWTIssuer:     testIssuer,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, target, role string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestReport_StockMovement_OK(t *testing.T) {
	app := buildAPI(t)
	resp := call(t, app, http.MethodGet,
		"/api/reports/stock-movement?warehouse_id=WH&start_date=2024-01-01&end_date=2024-01-31", "vendedor", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.StockMovementReportResponse](t, resp)
	assert.Equal(t, "Principal", out.WarehouseName)
	require.Len(t, out.Rows, 1)
	assert.True(t, out.Rows[0].EndQty.Equal(decimal.NewFromInt(11)))
	assert.True(t, out.Totals.EndValue.Equal(decimal.NewFromInt(55)))
}

func TestReport_StockMovement_FaltanParametros_400(t *testing.T) {
	app := buildAPI(t)
	resp := call(t, app, http.MethodGet, "/api/reports/stock-movement?warehouse_id=WH", "admin", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
}

func TestReport_StockMovement_BodegaAjena_403(t *testing.T) {
	app := buildAPI(t)
	resp := call(t, app, http.MethodGet,
		"/api/reports/stock-movement?warehouse_id=WX&start_date=2024-01-01&end_date=2024-01-31", "admin", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestReport_StockMovement_BodegaInexistente_404(t *testing.T) {
	app := buildAPI(t)
	resp := call(t, app, http.MethodGet,
		"/api/reports/stock-movement?warehouse_id=NOPE&start_date=2024-01-01&end_date=2024-01-31", "admin", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReport_ExportYDescarga(t *testing.T) {
	app := buildAPI(t)
	resp := call(t, app, http.MethodPost, "/api/reports/stock-movement/export", "admin",
		dto.ExportReportRequest{WarehouseID: "WH", StartDate: "2024-01-01", EndDate: "2024-01-31"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decode[dto.ExportReportResponse](t, resp)
	assert.Equal(t, "/api/attachments/"+out.AttachmentID+"?download=true", out.URL)

	dl := call(t, app, http.MethodGet, out.URL, "admin", nil)
	defer dl.Body.Close()
	require.Equal(t, http.StatusOK, dl.StatusCode)
	assert.Equal(t, "application/test", dl.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Stock_Movement_Report.xlsx"`, dl.Header.Get("Content-Disposition"))
	body, _ := io.ReadAll(dl.Body)
	assert.Equal(t, "PK-fake", string(body))
}

func TestReport_ExportFormatoNoSoportado_400(t *testing.T) {
	app := buildAPI(t)
	resp := call(t, app, http.MethodPost, "/api/reports/stock-movement/export", "admin",
		dto.ExportReportRequest{WarehouseID: "WH", StartDate: "2024-01-01", EndDate: "2024-01-31", Format: "csv"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAttachment_Inexistente_404(t *testing.T) {
	app := buildAPI(t)
	resp := call(t, app, http.MethodGet, "/api/attachments/nope", "admin", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWarehouses_ListGetYUbicaciones(t *testing.T) {
	app := buildAPI(t)

	list := decode[dto.WarehouseListResponse](t, call(t, app, http.MethodGet, "/api/warehouses", "vendedor", nil))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "WH", list.Items[0].ID)

	one := decode[dto.WarehouseResponse](t, call(t, app, http.MethodGet, "/api/warehouses/WH", "vendedor", nil))
	assert.Equal(t, "V", one.ViewLocationID)

	locs := decode[dto.WarehouseLocationsResponse](t, call(t, app, http.MethodGet, "/api/warehouses/WH/locations", "vendedor", nil))
	require.Len(t, locs.Items, 1)
	assert.Equal(t, "L1", locs.Items[0].ID)
}

func TestStockPeriods_CrearYLeer(t *testing.T) {
	app := buildAPI(t)
	resp := call(t, app, http.MethodPost, "/api/stock-periods", "bodeguero",
		dto.CreateStockPeriodRequest{LocationID: "L1", Date: "2024-01-31"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.StockPeriodResponse](t, resp)
	require.Len(t, created.Lines, 1)
	assert.True(t, created.Lines[0].Quantity.Equal(decimal.NewFromInt(7)))

	got := decode[dto.StockPeriodResponse](t, call(t, app, http.MethodGet, "/api/stock-periods/"+created.ID, "vendedor", nil))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "2024-01-31", got.Date)
}

func TestStockPeriods_VendedorNoPuedeCrear_403(t *testing.T) {
	app := buildAPI(t)
	resp := call(t, app, http.MethodPost, "/api/stock-periods", "vendedor",
		dto.CreateStockPeriodRequest{LocationID: "L1", Date: "2024-01-31"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAPI_SinToken_401(t *testing.T) {
	app := buildAPI(t)
	req := httptest.NewRequest(http.MethodGet, "/api/warehouses", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
