package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockwatch/internal/application/alerts"
	"github.com/invorya/stockwatch/internal/application/bundle"
	"github.com/invorya/stockwatch/internal/application/catalog"
	"github.com/invorya/stockwatch/internal/application/inventory"
	"github.com/invorya/stockwatch/internal/application/usecase"
	"github.com/invorya/stockwatch/internal/domain/entity"
	"github.com/invorya/stockwatch/internal/domain/repository"
	internalhttp "github.com/invorya/stockwatch/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store en memoria detrás de los casos de uso reales. Los tests HTTP cubren
// el contrato de la API; la semántica commit/rollback ya está cubierta en
// los tests de application, así que aquí los runners ejecutan en directo.
// ──────────────────────────────────────────────────────────────────────────────

type apiStore struct {
	companies    map[string]*entity.Company
	warehouses   map[string]*entity.Warehouse
	suppliers    map[string]*entity.Supplier
	productTypes map[string]*entity.ProductType
	products     map[string]*entity.Product
	inventory    map[string]*entity.InventoryRecord
	entries      []*entity.ChangeLogEntry
	bundleEdges  map[string][]*entity.BundleComponent
	sales        []*entity.SalesActivity
	alertRows    []repository.LowStockRow

	productCreateErr error
}

func newAPIStore() *apiStore {
	return &apiStore{
		companies:    make(map[string]*entity.Company),
		warehouses:   make(map[string]*entity.Warehouse),
		suppliers:    make(map[string]*entity.Supplier),
		productTypes: make(map[string]*entity.ProductType),
		products:     make(map[string]*entity.Product),
		inventory:    make(map[string]*entity.InventoryRecord),
		bundleEdges:  make(map[string][]*entity.BundleComponent),
	}
}

type apiCompanyRepo struct{ s *apiStore }

func (r *apiCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.s.companies[c.ID] = c
	return nil
}

func (r *apiCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return r.s.companies[id], nil
}

func (r *apiCompanyRepo) List(_ context.Context, _, _ int) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(r.s.companies))
	for _, c := range r.s.companies {
		out = append(out, c)
	}
	return out, nil
}

func (r *apiCompanyRepo) Delete(_ context.Context, id string) error {
	delete(r.s.companies, id)
	return nil
}

type apiWarehouseRepo struct{ s *apiStore }

func (r *apiWarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	r.s.warehouses[w.ID] = w
	return nil
}

func (r *apiWarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	return r.s.warehouses[id], nil
}

func (r *apiWarehouseRepo) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.s.warehouses {
		if w.CompanyID == companyID {
			out = append(out, w)
		}
	}
	return out, nil
}

type apiSupplierRepo struct{ s *apiStore }

func (r *apiSupplierRepo) Create(_ context.Context, sp *entity.Supplier) error {
	r.s.suppliers[sp.ID] = sp
	return nil
}

func (r *apiSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	return r.s.suppliers[id], nil
}

func (r *apiSupplierRepo) Delete(_ context.Context, id string) error {
	delete(r.s.suppliers, id)
	return nil
}

type apiProductTypeRepo struct{ s *apiStore }

func (r *apiProductTypeRepo) Create(_ context.Context, t *entity.ProductType) error {
	r.s.productTypes[t.ID] = t
	return nil
}

func (r *apiProductTypeRepo) GetByID(_ context.Context, id string) (*entity.ProductType, error) {
	return r.s.productTypes[id], nil
}

type apiProductRepo struct{ s *apiStore }

func (r *apiProductRepo) Create(_ context.Context, p *entity.Product) error {
	if r.s.productCreateErr != nil {
		return r.s.productCreateErr
	}
	r.s.products[p.ID] = p
	return nil
}

func (r *apiProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.s.products[id], nil
}

func (r *apiProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *apiProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}

type apiInventoryRepo struct{ s *apiStore }

func (r *apiInventoryRepo) Create(_ context.Context, rec *entity.InventoryRecord) error {
	r.s.inventory[rec.ID] = rec
	return nil
}

func (r *apiInventoryRepo) GetByID(_ context.Context, id string) (*entity.InventoryRecord, error) {
	return r.s.inventory[id], nil
}

func (r *apiInventoryRepo) GetForUpdate(_ context.Context, id string) (*entity.InventoryRecord, error) {
	return r.s.inventory[id], nil
}

func (r *apiInventoryRepo) UpdateQuantity(_ context.Context, id string, quantity int64) error {
	cp := *r.s.inventory[id]
	cp.Quantity = quantity
	r.s.inventory[id] = &cp
	return nil
}

type apiLedgerRepo struct{ s *apiStore }

func (r *apiLedgerRepo) Append(_ context.Context, e *entity.ChangeLogEntry) error {
	r.s.entries = append(r.s.entries, e)
	return nil
}

func (r *apiLedgerRepo) ListByInventory(_ context.Context, inventoryID string) ([]*entity.ChangeLogEntry, error) {
	var out []*entity.ChangeLogEntry
	for _, e := range r.s.entries {
		if e.InventoryID == inventoryID {
			out = append(out, e)
		}
	}
	return out, nil
}

type apiBundleRepo struct{ s *apiStore }

func (r *apiBundleRepo) ListComponents(_ context.Context, bundleID string) ([]*entity.BundleComponent, error) {
	return r.s.bundleEdges[bundleID], nil
}

func (r *apiBundleRepo) ReplaceComponents(_ context.Context, bundleID string, components []*entity.BundleComponent) error {
	// bundleID llega respaldado por el búfer de params de fiber, que se
	// reutiliza entre peticiones; hay que copiarlo antes de retenerlo.
	r.s.bundleEdges[strings.Clone(bundleID)] = components
	return nil
}

type apiSalesRepo struct{ s *apiStore }

func (r *apiSalesRepo) Create(_ context.Context, sale *entity.SalesActivity) error {
	r.s.sales = append(r.s.sales, sale)
	return nil
}

type apiAlertsRepo struct{ s *apiStore }

func (r *apiAlertsRepo) FindLowStock(_ context.Context, _ string, _ time.Time) ([]repository.LowStockRow, error) {
	return r.s.alertRows, nil
}

type apiTxRunner struct{ s *apiStore }

func (r *apiTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	return fn(&apiProductRepo{s: r.s}, &apiInventoryRepo{s: r.s}, &apiLedgerRepo{s: r.s})
}

type apiLedgerTxRunner struct{ s *apiStore }

func (r *apiLedgerTxRunner) RunLedger(_ context.Context, fn func(
	invRepo repository.InventoryRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	return fn(&apiInventoryRepo{s: r.s}, &apiLedgerRepo{s: r.s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Builders y helpers de petición
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp monta el router real sobre el store en memoria.
func buildTestApp(t *testing.T) (*fiber.App, *apiStore) {
	t.Helper()
	store := newAPIStore()

	companyRepo := &apiCompanyRepo{s: store}
	warehouseRepo := &apiWarehouseRepo{s: store}
	productRepo := &apiProductRepo{s: store}
	inventoryRepo := &apiInventoryRepo{s: store}
	ledgerRepo := &apiLedgerRepo{s: store}

	app := fiber.New()
	internalhttp.Router(app, internalhttp.RouterDeps{
		CompanyUC:     usecase.NewCompanyUseCase(companyRepo),
		WarehouseUC:   usecase.NewWarehouseUseCase(warehouseRepo, companyRepo),
		SupplierUC:    usecase.NewSupplierUseCase(&apiSupplierRepo{s: store}),
		ProductTypeUC: usecase.NewProductTypeUseCase(&apiProductTypeRepo{s: store}),
		ProductUC:     usecase.NewProductUseCase(productRepo),
		SalesUC:       usecase.NewSalesUseCase(&apiSalesRepo{s: store}, productRepo, warehouseRepo),
		Onboarding:    catalog.NewOnboardingUseCase(&apiTxRunner{s: store}, warehouseRepo),
		Ledger:        inventory.NewLedgerUseCase(&apiLedgerTxRunner{s: store}, inventoryRepo, ledgerRepo),
		Bundles:       bundle.NewResolver(&apiBundleRepo{s: store}, productRepo),
		Alerts:        alerts.NewAlertsUseCase(&apiAlertsRepo{s: store}, nil, 30),
		Log:           zerolog.Nop(),
	})
	return app, store
}

// doRequest ejecuta una petición contra la app. body puede ser nil, un
// string crudo o cualquier valor serializable a JSON.
func doRequest(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

// Seeds con IDs fijos para aserciones legibles.
const (
	seedCompanyID   = "00000000-0000-0000-0000-0000000000c1"
	seedWarehouseID = "00000000-0000-0000-0000-0000000000a1"
	seedProductID   = "00000000-0000-0000-0000-0000000000b1"
	seedInventoryID = "00000000-0000-0000-0000-0000000000d1"
)

func seedCompanyAndWarehouse(store *apiStore) {
	store.companies[seedCompanyID] = &entity.Company{ID: seedCompanyID, Name: "Acme Ltda"}
	store.warehouses[seedWarehouseID] = &entity.Warehouse{
		ID:        seedWarehouseID,
		CompanyID: seedCompanyID,
		Name:      "Bodega Central",
	}
}

func seedProduct(store *apiStore, id, sku string) {
	store.products[id] = &entity.Product{
		ID:    id,
		SKU:   sku,
		Name:  "Producto " + sku,
		Price: decimal.NewFromInt(10),
	}
}

func seedInventory(store *apiStore, quantity int64) {
	store.inventory[seedInventoryID] = &entity.InventoryRecord{
		ID:          seedInventoryID,
		ProductID:   seedProductID,
		WarehouseID: seedWarehouseID,
		Quantity:    quantity,
	}
}

func lowStockRow(productID, warehouseID string, stock, threshold, sold int64, supplierID, supplierName, supplierEmail *string) repository.LowStockRow {
	return repository.LowStockRow{
		ProductID:     productID,
		ProductName:   "Producto " + productID,
		SKU:           "SKU-" + productID,
		WarehouseID:   warehouseID,
		WarehouseName: "Bodega " + warehouseID,
		CurrentStock:  stock,
		Threshold:     threshold,
		TotalSold:     sold,
		SupplierID:    supplierID,
		SupplierName:  supplierName,
		SupplierEmail: supplierEmail,
	}
}
