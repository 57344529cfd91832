package entity

import "time"

// SalesActivity representa una venta registrada por el feed externo.
// El motor de alertas la consume en modo solo lectura para medir demanda
// reciente; nunca se actualiza ni se borra desde este sistema.
type SalesActivity struct {
	ID           string
	ProductID    string
	WarehouseID  string
	QuantitySold int64
	SaleDate     time.Time
}
