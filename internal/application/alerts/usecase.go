package alerts

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/invorya/stockwatch/internal/application/dto"
	"github.com/invorya/stockwatch/internal/domain/repository"
	"github.com/invorya/stockwatch/internal/domain/stock"
)

// DefaultWindowDays ventana de demanda reciente cuando ni la configuración
// ni la petición definen otra.
const DefaultWindowDays = 30

// AlertsUseCase calcula alertas de stock bajo para una empresa: agregación
// read-only sobre inventario, umbrales por tipo y ventas recientes. Nunca
// muta estado y es seguro ejecutarlo en paralelo con escrituras.
type AlertsUseCase struct {
	alertsRepo        repository.AlertsRepository
	cache             AlertsCache
	defaultWindowDays int
}

// NewAlertsUseCase construye el motor. cache en nil deshabilita el cacheo.
func NewAlertsUseCase(alertsRepo repository.AlertsRepository, cache AlertsCache, defaultWindowDays int) *AlertsUseCase {
	if defaultWindowDays <= 0 {
		defaultWindowDays = DefaultWindowDays
	}
	return &AlertsUseCase{
		alertsRepo:        alertsRepo,
		cache:             cache,
		defaultWindowDays: defaultWindowDays,
	}
}

// ComputeAlerts devuelve las alertas de la empresa: una por (producto,
// bodega) con cantidad <= umbral del tipo y al menos una venta en la
// ventana. windowDays <= 0 aplica el default configurado. Una empresa sin
// alertas o inexistente produce lista vacía, nunca error: el chequeo de
// existencia es problema de otro endpoint.
//
// El orden es determinista (producto, luego bodega) para un snapshot fijo.
// La cancelación del ctx aborta la consulta; un resultado parcial jamás se
// devuelve como final.
func (uc *AlertsUseCase) ComputeAlerts(ctx context.Context, companyID string, windowDays int) (*dto.LowStockAlertsResponse, error) {
	if windowDays <= 0 {
		windowDays = uc.defaultWindowDays
	}
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, companyID, windowDays); ok {
			return cached, nil
		}
	}

	since := time.Now().UTC().AddDate(0, 0, -windowDays)
	rows, err := uc.alertsRepo.FindLowStock(ctx, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("find low stock: %w", err)
	}

	alerts := make([]dto.LowStockAlert, 0, len(rows))
	for _, row := range rows {
		alerts = append(alerts, dto.LowStockAlert{
			ProductID:         row.ProductID,
			ProductName:       row.ProductName,
			SKU:               row.SKU,
			WarehouseID:       row.WarehouseID,
			WarehouseName:     row.WarehouseName,
			CurrentStock:      row.CurrentStock,
			Threshold:         row.Threshold,
			AvgDailySales:     stock.AvgDailySales(row.TotalSold, int64(windowDays)),
			DaysUntilStockout: stock.DaysUntilStockout(row.CurrentStock, row.TotalSold, int64(windowDays)),
			Supplier: dto.AlertSupplier{
				ID:           row.SupplierID,
				Name:         row.SupplierName,
				ContactEmail: row.SupplierEmail,
			},
		})
	}
	// La consulta ya ordena, pero el contrato de orden es del use case, no
	// del adaptador.
	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].ProductID != alerts[j].ProductID {
			return alerts[i].ProductID < alerts[j].ProductID
		}
		return alerts[i].WarehouseID < alerts[j].WarehouseID
	})

	res := &dto.LowStockAlertsResponse{Alerts: alerts, TotalAlerts: len(alerts)}
	if uc.cache != nil {
		uc.cache.Set(ctx, companyID, windowDays, res)
	}
	return res, nil
}
