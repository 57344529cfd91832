package dto

import "time"

// AdjustmentRequest body para POST /api/inventory/{id}/adjustments.
// ChangeAmount es el delta firmado; Reason es texto libre obligatorio para
// que cada entrada de bitácora diga por qué existe.
type AdjustmentRequest struct {
	ChangeAmount *int64 `json:"change_amount"`
	Reason       string `json:"reason" validate:"required,min=1"`
}

// AdjustmentResponse salida del ajuste: la cantidad resultante.
type AdjustmentResponse struct {
	InventoryID string `json:"inventory_id"`
	NewQuantity int64  `json:"new_quantity"`
}

// ChangeLogEntryResponse una entrada de la bitácora.
type ChangeLogEntryResponse struct {
	ID           string    `json:"id"`
	InventoryID  string    `json:"inventory_id"`
	ChangeAmount int64     `json:"change_amount"`
	NewQuantity  int64     `json:"new_quantity"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `json:"created_at"`
}

// ChangeLogResponse bitácora completa de un registro, en orden cronológico.
type ChangeLogResponse struct {
	InventoryID string                   `json:"inventory_id"`
	Entries     []ChangeLogEntryResponse `json:"entries"`
	Total       int                      `json:"total"`
}

// AuditResponse resultado de reconstruir la cantidad desde la bitácora.
// Consistent indica si la suma cronológica coincide con lo almacenado y si
// cada entrada registró la cantidad resultante correcta.
type AuditResponse struct {
	InventoryID      string `json:"inventory_id"`
	StoredQuantity   int64  `json:"stored_quantity"`
	ComputedQuantity int64  `json:"computed_quantity"`
	EntryCount       int    `json:"entry_count"`
	Consistent       bool   `json:"consistent"`
}

// RecordSaleRequest body del feed de ventas. SaleDate omitido usa ahora.
type RecordSaleRequest struct {
	ProductID    string     `json:"product_id" validate:"required,uuid"`
	WarehouseID  string     `json:"warehouse_id" validate:"required,uuid"`
	QuantitySold int64      `json:"quantity_sold" validate:"required,min=1"`
	SaleDate     *time.Time `json:"sale_date"`
}

// RecordSaleResponse salida del registro de venta.
type RecordSaleResponse struct {
	ID string `json:"id"`
}
