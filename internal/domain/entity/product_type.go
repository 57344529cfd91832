package entity

import "time"

// DefaultLowStockThreshold es el umbral aplicado cuando el tipo no define uno
// (debe coincidir con el DEFAULT de la tabla product_types).
const DefaultLowStockThreshold int64 = 20

// ProductType agrupa productos y define el umbral de stock bajo que dispara
// alertas para todos los productos del tipo.
type ProductType struct {
	ID                string
	Name              string
	LowStockThreshold int64
	CreatedAt         time.Time
}
