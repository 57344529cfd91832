package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/invorya/stockwatch/internal/domain/entity"
	"github.com/invorya/stockwatch/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación de la bitácora sobre PostgreSQL (usable con pool o tx).
// Append-only: este adaptador no expone UPDATE ni DELETE.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Append persiste una entrada de bitácora.
func (r *LedgerRepo) Append(ctx context.Context, entry *entity.ChangeLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_change_log (id, inventory_id, change_amount, new_quantity, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.InventoryID, entry.ChangeAmount,
		entry.NewQuantity, entry.Reason, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append change log entry: %w", err)
	}
	return nil
}

// ListByInventory devuelve las entradas en orden cronológico ascendente, el
// orden en que se suman para reconstruir la cantidad.
func (r *LedgerRepo) ListByInventory(ctx context.Context, inventoryID string) ([]*entity.ChangeLogEntry, error) {
	query := `
		SELECT id, inventory_id, change_amount, new_quantity, reason, created_at
		FROM inventory_change_log
		WHERE inventory_id = $1
		ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list change log: %w", err)
	}
	defer rows.Close()

	var entries []*entity.ChangeLogEntry
	for rows.Next() {
		var e entity.ChangeLogEntry
		if err := rows.Scan(
			&e.ID, &e.InventoryID, &e.ChangeAmount,
			&e.NewQuantity, &e.Reason, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan change log entry: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
