package dto

import "github.com/shopspring/decimal"

// AlertSupplier referencia de proveedor dentro de una alerta. Siempre se
// emite el objeto completo: sin proveedor los tres campos van en null, nunca
// se omite la clave, para que el consumidor no necesite chequear presencia.
type AlertSupplier struct {
	ID           *string `json:"id"`
	Name         *string `json:"name"`
	ContactEmail *string `json:"contact_email"`
}

// LowStockAlert una alerta por combinación (producto, bodega) bajo umbral
// con demanda reciente. DaysUntilStockout en null significa sin proyección
// (cero ventas en la ventana jamás llega aquí, pero el contrato lo permite).
type LowStockAlert struct {
	ProductID         string          `json:"product_id"`
	ProductName       string          `json:"product_name"`
	SKU               string          `json:"sku"`
	WarehouseID       string          `json:"warehouse_id"`
	WarehouseName     string          `json:"warehouse_name"`
	CurrentStock      int64           `json:"current_stock"`
	Threshold         int64           `json:"threshold"`
	AvgDailySales     decimal.Decimal `json:"avg_daily_sales"`
	DaysUntilStockout *int64          `json:"days_until_stockout"`
	Supplier          AlertSupplier   `json:"supplier"`
}

// LowStockAlertsResponse respuesta completa del motor de alertas.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlert `json:"alerts"`
	TotalAlerts int             `json:"total_alerts"`
}
