package repository

import (
	"context"

	"github.com/invorya/stockwatch/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para InventoryRecord.
// Quantity solo se muta a través del ledger, dentro de una transacción que
// escribe también la entrada de bitácora correspondiente.
type InventoryRepository interface {
	Create(ctx context.Context, record *entity.InventoryRecord) error
	GetByID(ctx context.Context, id string) (*entity.InventoryRecord, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
	// mutaciones concurrentes sobre el mismo registro.
	GetForUpdate(ctx context.Context, id string) (*entity.InventoryRecord, error)
	UpdateQuantity(ctx context.Context, id string, quantity int64) error
}
