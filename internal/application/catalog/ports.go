package catalog

import (
	"context"

	"github.com/invorya/stockwatch/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que producto, registro de
// inventario y primera entrada de bitácora se crean como unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}
