package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invorya/stockwatch/internal/domain/entity"
	"github.com/invorya/stockwatch/internal/domain/repository"
)

var _ repository.ProductTypeRepository = (*ProductTypeRepo)(nil)

// ProductTypeRepo implementación del puerto ProductTypeRepository sobre PostgreSQL.
type ProductTypeRepo struct {
	pool *pgxpool.Pool
}

// NewProductTypeRepository construye el adaptador de persistencia para tipos de producto.
func NewProductTypeRepository(pool *pgxpool.Pool) *ProductTypeRepo {
	return &ProductTypeRepo{pool: pool}
}

// Create persiste un nuevo tipo de producto con su umbral de stock bajo.
func (r *ProductTypeRepo) Create(ctx context.Context, productType *entity.ProductType) error {
	query := `
		INSERT INTO product_types (id, name, low_stock_threshold, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, query,
		productType.ID, productType.Name, productType.LowStockThreshold, productType.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de producto por ID; (nil, nil) si no existe.
func (r *ProductTypeRepo) GetByID(ctx context.Context, id string) (*entity.ProductType, error) {
	query := `
		SELECT id, name, low_stock_threshold, created_at
		FROM product_types WHERE id = $1`
	var t entity.ProductType
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.LowStockThreshold, &t.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product type: %w", err)
	}
	return &t, nil
}
