package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invorya/stockwatch/internal/domain/entity"
	"github.com/invorya/stockwatch/internal/domain/repository"
)

var _ repository.BundleRepository = (*BundleRepo)(nil)

// BundleRepo implementación del puerto BundleRepository sobre PostgreSQL.
type BundleRepo struct {
	pool *pgxpool.Pool
}

// NewBundleRepository construye el adaptador para aristas de composición.
func NewBundleRepository(pool *pgxpool.Pool) *BundleRepo {
	return &BundleRepo{pool: pool}
}

// ListComponents devuelve las aristas directas del bundle; vacío si no es bundle.
func (r *BundleRepo) ListComponents(ctx context.Context, bundleID string) ([]*entity.BundleComponent, error) {
	query := `
		SELECT bundle_id, component_id, quantity_in_bundle
		FROM product_bundle_components
		WHERE bundle_id = $1
		ORDER BY component_id`
	rows, err := r.pool.Query(ctx, query, bundleID)
	if err != nil {
		return nil, fmt.Errorf("list bundle components: %w", err)
	}
	defer rows.Close()

	var components []*entity.BundleComponent
	for rows.Next() {
		var c entity.BundleComponent
		if err := rows.Scan(&c.BundleID, &c.ComponentID, &c.QuantityInBundle); err != nil {
			return nil, fmt.Errorf("scan bundle component: %w", err)
		}
		components = append(components, &c)
	}
	return components, rows.Err()
}

// ReplaceComponents sustituye el conjunto de aristas del bundle en una sola
// transacción: o queda el conjunto nuevo completo o queda el anterior.
func (r *BundleRepo) ReplaceComponents(ctx context.Context, bundleID string, components []*entity.BundleComponent) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`DELETE FROM product_bundle_components WHERE bundle_id = $1`, bundleID,
	); err != nil {
		return fmt.Errorf("clear bundle components: %w", err)
	}
	for _, c := range components {
		if _, err := tx.Exec(ctx, `
			INSERT INTO product_bundle_components (bundle_id, component_id, quantity_in_bundle)
			VALUES ($1, $2, $3)`,
			bundleID, c.ComponentID, c.QuantityInBundle,
		); err != nil {
			return fmt.Errorf("insert bundle component: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
