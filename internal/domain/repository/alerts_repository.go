package repository

import (
	"context"
	"time"
)

// LowStockRow es el resultado crudo de la consulta de stock bajo para una
// combinación (producto, bodega). Lo produce la DB; el use case lo convierte
// en DTO con la proyección de agotamiento.
type LowStockRow struct {
	ProductID     string
	ProductName   string
	SKU           string
	WarehouseID   string
	WarehouseName string
	CurrentStock  int64
	Threshold     int64
	TotalSold     int64
	SupplierID    *string
	SupplierName  *string
	SupplierEmail *string
}

// AlertsRepository define la consulta de lectura del motor de alertas.
// Las implementaciones son read-only: ningún lock, ninguna mutación.
type AlertsRepository interface {
	// FindLowStock devuelve una fila por (producto, bodega) de la empresa con
	// cantidad <= umbral del tipo y al menos una venta desde `since`,
	// ordenadas por producto y bodega para un resultado determinista.
	FindLowStock(ctx context.Context, companyID string, since time.Time) ([]LowStockRow, error)
}
