package repository

import (
	"context"

	"github.com/invorya/stockwatch/internal/domain/entity"
)

// LedgerRepository define el puerto de la bitácora de inventario.
// Es append-only: no existe Update ni Delete de entradas.
type LedgerRepository interface {
	Append(ctx context.Context, entry *entity.ChangeLogEntry) error
	// ListByInventory devuelve las entradas en orden cronológico ascendente,
	// el orden en que deben sumarse para reconstruir la cantidad.
	ListByInventory(ctx context.Context, inventoryID string) ([]*entity.ChangeLogEntry, error)
}
