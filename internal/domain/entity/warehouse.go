package entity

import "time"

// Warehouse representa una bodega física de una empresa (multi-bodega).
// Cada registro de inventario vive en exactamente una bodega.
type Warehouse struct {
	ID        string
	CompanyID string
	Name      string
	Location  string
	CreatedAt time.Time
}
