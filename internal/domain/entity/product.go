package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto identificado por un SKU único en toda la
// plataforma (no por empresa). El precio es decimal de punto fijo, nunca
// flotante binario. Tipo y proveedor son opcionales; nil cuando no aplican.
type Product struct {
	ID            string
	SKU           string
	Name          string
	Price         decimal.Decimal
	ProductTypeID *string
	SupplierID    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
