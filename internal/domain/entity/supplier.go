package entity

import "time"

// Supplier representa un proveedor opcionalmente asociado a productos.
// Borrar un proveedor nunca borra sus productos: la referencia queda en nil.
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
	CreatedAt    time.Time
}
