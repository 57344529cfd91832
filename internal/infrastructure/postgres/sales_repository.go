package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invorya/stockwatch/internal/domain/entity"
	"github.com/invorya/stockwatch/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo implementación del puerto SalesRepository sobre PostgreSQL.
type SalesRepo struct {
	pool *pgxpool.Pool
}

// NewSalesRepository construye el adaptador del feed de ventas.
func NewSalesRepository(pool *pgxpool.Pool) *SalesRepo {
	return &SalesRepo{pool: pool}
}

// Create persiste una venta del feed.
func (r *SalesRepo) Create(ctx context.Context, sale *entity.SalesActivity) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sales_activity (id, product_id, warehouse_id, quantity_sold, sale_date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query,
		sale.ID, sale.ProductID, sale.WarehouseID, sale.QuantitySold, sale.SaleDate,
	)
	if err != nil {
		return fmt.Errorf("insert sales activity: %w", err)
	}
	return nil
}
