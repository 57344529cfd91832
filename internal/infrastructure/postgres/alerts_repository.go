package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invorya/stockwatch/internal/domain/repository"
)

var _ repository.AlertsRepository = (*AlertsRepo)(nil)

// AlertsRepo implementación read-only de la consulta de stock bajo.
// Usa el pool directo: la agregación corre sin locks sobre una vista
// snapshot-consistente y puede ejecutarse en paralelo con escrituras.
type AlertsRepo struct {
	pool *pgxpool.Pool
}

// NewAlertsRepository construye el adaptador de consulta de alertas.
func NewAlertsRepository(pool *pgxpool.Pool) *AlertsRepo {
	return &AlertsRepo{pool: pool}
}

// FindLowStock devuelve una fila por (producto, bodega) de la empresa con
// cantidad <= umbral del tipo y al menos una venta desde `since`.
//
// Los JOIN internos codifican dos exclusiones del contrato: productos sin
// tipo no tienen umbral y nunca alertan; ítems sin ventas en la ventana son
// stock muerto, no un problema activo. El proveedor va por LEFT JOIN porque
// es opcional y la alerta sale igual con sus campos en NULL.
func (r *AlertsRepo) FindLowStock(ctx context.Context, companyID string, since time.Time) ([]repository.LowStockRow, error) {
	const query = `
		SELECT
			p.id, p.name, p.sku,
			w.id, w.name,
			i.quantity,
			pt.low_stock_threshold,
			SUM(sa.quantity_sold)::BIGINT AS total_sold,
			s.id, s.name, s.contact_email
		FROM inventory i
		JOIN products p        ON p.id = i.product_id
		JOIN warehouses w      ON w.id = i.warehouse_id
		JOIN product_types pt  ON pt.id = p.product_type_id
		JOIN sales_activity sa ON sa.product_id = i.product_id
		                      AND sa.warehouse_id = i.warehouse_id
		                      AND sa.sale_date >= $2
		LEFT JOIN suppliers s  ON s.id = p.supplier_id
		WHERE w.company_id = $1
		  AND i.quantity <= pt.low_stock_threshold
		GROUP BY p.id, p.name, p.sku, w.id, w.name, i.quantity,
		         pt.low_stock_threshold, s.id, s.name, s.contact_email
		ORDER BY p.id, w.id`

	rows, err := r.pool.Query(ctx, query, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("query low stock: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(
			&row.ProductID, &row.ProductName, &row.SKU,
			&row.WarehouseID, &row.WarehouseName,
			&row.CurrentStock, &row.Threshold, &row.TotalSold,
			&row.SupplierID, &row.SupplierName, &row.SupplierEmail,
		); err != nil {
			return nil, fmt.Errorf("scan low stock row: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
