package entity

import "time"

// InventoryRecord representa el stock actual de un producto en una bodega.
// Hay a lo sumo un registro por par (producto, bodega) y la cantidad nunca es
// negativa: una mutación que la dejaría bajo cero se rechaza, no se recorta.
// Solo el ledger muta Quantity, siempre junto a su entrada de bitácora.
type InventoryRecord struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    int64
	LastUpdated time.Time
}
