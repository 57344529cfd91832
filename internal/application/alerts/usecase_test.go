package alerts_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockwatch/internal/application/alerts"
	"github.com/invorya/stockwatch/internal/application/dto"
	"github.com/invorya/stockwatch/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

const testAlertCompanyID = "00000000-0000-0000-0000-000000000201"

type fakeAlertsRepo struct {
	rows       []repository.LowStockRow
	err        error
	calls      int
	gotCompany string
	gotSince   time.Time
}

func (f *fakeAlertsRepo) FindLowStock(_ context.Context, companyID string, since time.Time) ([]repository.LowStockRow, error) {
	f.calls++
	f.gotCompany = companyID
	f.gotSince = since
	return f.rows, f.err
}

type fakeAlertsCache struct {
	entries map[string]*dto.LowStockAlertsResponse
	gets    int
	sets    int
}

func newFakeAlertsCache() *fakeAlertsCache {
	return &fakeAlertsCache{entries: make(map[string]*dto.LowStockAlertsResponse)}
}

func (f *fakeAlertsCache) key(companyID string, windowDays int) string {
	return fmt.Sprintf("%s:%d", companyID, windowDays)
}

func (f *fakeAlertsCache) Get(_ context.Context, companyID string, windowDays int) (*dto.LowStockAlertsResponse, bool) {
	f.gets++
	res, ok := f.entries[f.key(companyID, windowDays)]
	return res, ok
}

func (f *fakeAlertsCache) Set(_ context.Context, companyID string, windowDays int, res *dto.LowStockAlertsResponse) {
	f.sets++
	f.entries[f.key(companyID, windowDays)] = res
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func strPtr(s string) *string { return &s }

func lowRow(productID, warehouseID string, stock, threshold, sold int64) repository.LowStockRow {
	return repository.LowStockRow{
		ProductID:     productID,
		ProductName:   "Producto " + productID,
		SKU:           "SKU-" + productID,
		WarehouseID:   warehouseID,
		WarehouseName: "Bodega " + warehouseID,
		CurrentStock:  stock,
		Threshold:     threshold,
		TotalSold:     sold,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de ComputeAlerts
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: fila completa con proveedor → alerta con todos los campos y la
// proyección del vector de referencia (100 unidades a 1.0/día → 100 días).
func TestComputeAlerts_MapeaFilaCompleta(t *testing.T) {
	row := lowRow("p-1", "w-1", 100, 120, 30)
	row.SupplierID = strPtr("s-1")
	row.SupplierName = strPtr("Proveedor Andino")
	row.SupplierEmail = strPtr("ventas@andino.co")
	repo := &fakeAlertsRepo{rows: []repository.LowStockRow{row}}
	uc := alerts.NewAlertsUseCase(repo, nil, 30)

	out, err := uc.ComputeAlerts(context.Background(), testAlertCompanyID, 30)
	require.NoError(t, err)
	require.Equal(t, 1, out.TotalAlerts)

	alert := out.Alerts[0]
	assert.Equal(t, "p-1", alert.ProductID)
	assert.Equal(t, "SKU-p-1", alert.SKU)
	assert.Equal(t, "w-1", alert.WarehouseID)
	assert.Equal(t, int64(100), alert.CurrentStock)
	assert.Equal(t, int64(120), alert.Threshold)
	assert.True(t, alert.AvgDailySales.Equal(decimal.NewFromInt(1)), "30 vendidas en 30 días es 1.0/día")
	require.NotNil(t, alert.DaysUntilStockout)
	assert.Equal(t, int64(100), *alert.DaysUntilStockout)
	require.NotNil(t, alert.Supplier.ID)
	assert.Equal(t, "s-1", *alert.Supplier.ID)
	assert.Equal(t, "Proveedor Andino", *alert.Supplier.Name)
	assert.Equal(t, "ventas@andino.co", *alert.Supplier.ContactEmail)
}

// Caso 2: la proyección trunca al piso (10 unidades a 1.5/día → 6 días).
func TestComputeAlerts_ProyeccionConPiso(t *testing.T) {
	repo := &fakeAlertsRepo{rows: []repository.LowStockRow{lowRow("p-1", "w-1", 10, 20, 45)}}
	uc := alerts.NewAlertsUseCase(repo, nil, 30)

	out, err := uc.ComputeAlerts(context.Background(), testAlertCompanyID, 30)
	require.NoError(t, err)

	alert := out.Alerts[0]
	assert.True(t, alert.AvgDailySales.Equal(decimal.NewFromFloat(1.5)))
	require.NotNil(t, alert.DaysUntilStockout)
	assert.Equal(t, int64(6), *alert.DaysUntilStockout)
}

// Caso 3: sin proveedor el objeto supplier viaja con sus tres claves en
// null; la clave nunca se omite.
func TestComputeAlerts_SinProveedorEmiteNulls(t *testing.T) {
	repo := &fakeAlertsRepo{rows: []repository.LowStockRow{lowRow("p-1", "w-1", 3, 20, 9)}}
	uc := alerts.NewAlertsUseCase(repo, nil, 30)

	out, err := uc.ComputeAlerts(context.Background(), testAlertCompanyID, 30)
	require.NoError(t, err)

	body, err := json.Marshal(out.Alerts[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), `"supplier":{"id":null,"name":null,"contact_email":null}`)
}

// Caso 4: empresa sin alertas (o inexistente) → lista vacía con total cero,
// nunca null ni error.
func TestComputeAlerts_SinFilasListaVacia(t *testing.T) {
	repo := &fakeAlertsRepo{}
	uc := alerts.NewAlertsUseCase(repo, nil, 30)

	out, err := uc.ComputeAlerts(context.Background(), testAlertCompanyID, 30)
	require.NoError(t, err)
	assert.Equal(t, 0, out.TotalAlerts)
	require.NotNil(t, out.Alerts)

	body, mErr := json.Marshal(out)
	require.NoError(t, mErr)
	assert.Contains(t, string(body), `"alerts":[]`, "la lista vacía debe serializar como [] y no null")
}

// Caso 5: el orden de salida es (producto, bodega) aunque el repositorio
// entregue las filas desordenadas.
func TestComputeAlerts_OrdenDeterminista(t *testing.T) {
	repo := &fakeAlertsRepo{rows: []repository.LowStockRow{
		lowRow("p-2", "w-1", 1, 5, 3),
		lowRow("p-1", "w-2", 1, 5, 3),
		lowRow("p-1", "w-1", 1, 5, 3),
	}}
	uc := alerts.NewAlertsUseCase(repo, nil, 30)

	out, err := uc.ComputeAlerts(context.Background(), testAlertCompanyID, 30)
	require.NoError(t, err)
	require.Len(t, out.Alerts, 3)
	assert.Equal(t, "p-1", out.Alerts[0].ProductID)
	assert.Equal(t, "w-1", out.Alerts[0].WarehouseID)
	assert.Equal(t, "p-1", out.Alerts[1].ProductID)
	assert.Equal(t, "w-2", out.Alerts[1].WarehouseID)
	assert.Equal(t, "p-2", out.Alerts[2].ProductID)
}

// Caso 6: windowDays <= 0 aplica la ventana configurada, tanto en el corte
// temporal de la consulta como en el denominador del promedio.
func TestComputeAlerts_VentanaPorDefecto(t *testing.T) {
	repo := &fakeAlertsRepo{rows: []repository.LowStockRow{lowRow("p-1", "w-1", 10, 20, 60)}}
	uc := alerts.NewAlertsUseCase(repo, nil, 30)

	out, err := uc.ComputeAlerts(context.Background(), testAlertCompanyID, 0)
	require.NoError(t, err)

	wantSince := time.Now().UTC().AddDate(0, 0, -30)
	assert.WithinDuration(t, wantSince, repo.gotSince, 5*time.Second)
	assert.True(t, out.Alerts[0].AvgDailySales.Equal(decimal.NewFromInt(2)), "60 vendidas / 30 días por defecto")
}

// Caso 7: el constructor normaliza una ventana por defecto inválida a 30.
func TestNewAlertsUseCase_VentanaInvalidaUsaTreinta(t *testing.T) {
	repo := &fakeAlertsRepo{rows: []repository.LowStockRow{lowRow("p-1", "w-1", 10, 20, 30)}}
	uc := alerts.NewAlertsUseCase(repo, nil, 0)

	out, err := uc.ComputeAlerts(context.Background(), testAlertCompanyID, 0)
	require.NoError(t, err)
	assert.True(t, out.Alerts[0].AvgDailySales.Equal(decimal.NewFromInt(1)))
}

// Caso 8: un hit de cache evita la consulta a la base.
func TestComputeAlerts_CacheHitEvitaConsulta(t *testing.T) {
	repo := &fakeAlertsRepo{}
	cache := newFakeAlertsCache()
	cached := &dto.LowStockAlertsResponse{Alerts: []dto.LowStockAlert{}, TotalAlerts: 0}
	cache.Set(context.Background(), testAlertCompanyID, 30, cached)
	uc := alerts.NewAlertsUseCase(repo, cache, 30)

	out, err := uc.ComputeAlerts(context.Background(), testAlertCompanyID, 30)
	require.NoError(t, err)
	assert.Same(t, cached, out)
	assert.Zero(t, repo.calls, "con hit de cache no debe tocarse el repositorio")
}

// Caso 9: un miss consulta y deja el resultado cacheado por (empresa,
// ventana); otra ventana es otra clave.
func TestComputeAlerts_MissConsultaYGuarda(t *testing.T) {
	repo := &fakeAlertsRepo{rows: []repository.LowStockRow{lowRow("p-1", "w-1", 2, 5, 10)}}
	cache := newFakeAlertsCache()
	uc := alerts.NewAlertsUseCase(repo, cache, 30)

	out, err := uc.ComputeAlerts(context.Background(), testAlertCompanyID, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, 1, cache.sets)

	stored, ok := cache.Get(context.Background(), testAlertCompanyID, 7)
	require.True(t, ok)
	assert.Same(t, out, stored)

	_, ok = cache.Get(context.Background(), testAlertCompanyID, 30)
	assert.False(t, ok, "cada ventana tiene su propia entrada")
}

// Caso 10: el error del repositorio se propaga envuelto, sin respuesta.
func TestComputeAlerts_ErrorDeConsultaSePropaga(t *testing.T) {
	repo := &fakeAlertsRepo{err: errors.New("replica caída")}
	uc := alerts.NewAlertsUseCase(repo, nil, 30)

	out, err := uc.ComputeAlerts(context.Background(), testAlertCompanyID, 30)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorContains(t, err, "find low stock")
}
