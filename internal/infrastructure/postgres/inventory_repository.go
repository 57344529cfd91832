package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/invorya/stockwatch/internal/domain/entity"
	"github.com/invorya/stockwatch/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste un registro de inventario nuevo. El par (producto, bodega)
// es único; la violación sube envuelta para que el caso de uso decida.
func (r *InventoryRepo) Create(ctx context.Context, record *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory (id, product_id, warehouse_id, quantity, last_updated)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		record.ID, record.ProductID, record.WarehouseID,
		record.Quantity, record.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("insert inventory record: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID sin bloquear; (nil, nil) si no existe.
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryRecord, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, last_updated
		FROM inventory WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetForUpdate obtiene el registro y bloquea la fila (SELECT FOR UPDATE) para
// serializar deltas concurrentes sobre el mismo inventario.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryRecord, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, last_updated
		FROM inventory WHERE id = $1
		FOR UPDATE`
	return r.scanOne(ctx, query, id)
}

// UpdateQuantity fija la nueva cantidad y refresca last_updated. Solo el
// ledger lo invoca, dentro de la misma tx que escribe la bitácora.
func (r *InventoryRepo) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	query := `
		UPDATE inventory SET quantity = $2, last_updated = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, quantity, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	return nil
}

func (r *InventoryRepo) scanOne(ctx context.Context, query, id string) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	err := r.q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.ProductID, &rec.WarehouseID, &rec.Quantity, &rec.LastUpdated,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory record: %w", err)
	}
	return &rec, nil
}
