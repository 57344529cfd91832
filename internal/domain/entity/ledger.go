package entity

import "time"

// ReasonInitialStock es el motivo de la primera entrada de bitácora escrita
// al dar de alta un producto con su inventario inicial.
const ReasonInitialStock = "initial_stock"

// ChangeLogEntry es una entrada inmutable de la bitácora de inventario.
// Registra el delta firmado y la cantidad resultante; la suma cronológica de
// los deltas desde cero debe igualar la cantidad almacenada del registro en
// todo momento.
type ChangeLogEntry struct {
	ID           string
	InventoryID  string
	ChangeAmount int64
	NewQuantity  int64
	Reason       string
	CreatedAt    time.Time
}
