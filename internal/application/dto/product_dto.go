package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para dar de alta un producto con su inventario
// inicial. Price y InitialQuantity se validan en el caso de uso, que acumula
// todos los campos faltantes o inválidos en un solo error.
// Price acepta número o string JSON; InitialQuantity debe ser entero.
type CreateProductRequest struct {
	Name            string           `json:"name" validate:"required,min=1,max=200"`
	SKU             string           `json:"sku" validate:"required,min=1,max=100"`
	Price           *decimal.Decimal `json:"price"`
	ProductTypeID   *string          `json:"product_type_id" validate:"omitempty,uuid"`
	SupplierID      *string          `json:"supplier_id" validate:"omitempty,uuid"`
	WarehouseID     string           `json:"warehouse_id" validate:"required,uuid"`
	InitialQuantity json.Number      `json:"initial_quantity"`
}

// CreateProductResponse salida del alta: solo el ID del producto creado.
type CreateProductResponse struct {
	ProductID string `json:"product_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	ProductTypeID *string         `json:"product_type_id"`
	SupplierID    *string         `json:"supplier_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// BundleComponentInput una arista bundle→componente del PUT de composición.
type BundleComponentInput struct {
	ComponentID      string `json:"component_id" validate:"required,uuid"`
	QuantityInBundle int64  `json:"quantity_in_bundle" validate:"required,min=1"`
}

// ReplaceComponentsRequest sustituye el conjunto de componentes del bundle.
type ReplaceComponentsRequest struct {
	Components []BundleComponentInput `json:"components"`
}

// ResolvedComponentsResponse aplanado de un bundle: cantidad total requerida
// por producto hoja (multiplicadores anidados ya aplicados).
type ResolvedComponentsResponse struct {
	BundleID   string           `json:"bundle_id"`
	Components map[string]int64 `json:"components"`
}
