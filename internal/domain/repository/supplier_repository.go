package repository

import (
	"context"

	"github.com/invorya/stockwatch/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	// Delete deja en nil la referencia de los productos asociados
	// (FK ON DELETE SET NULL); nunca borra productos.
	Delete(ctx context.Context, id string) error
}
