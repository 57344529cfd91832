package dto

import "time"

// CreateProductTypeRequest entrada para crear un tipo de producto.
// LowStockThreshold omitido aplica el default de la plataforma (20).
type CreateProductTypeRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=200"`
	LowStockThreshold *int64 `json:"low_stock_threshold" validate:"omitempty,min=0"`
}

// ProductTypeResponse salida de un tipo de producto.
type ProductTypeResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	LowStockThreshold int64     `json:"low_stock_threshold"`
	CreatedAt         time.Time `json:"created_at"`
}
