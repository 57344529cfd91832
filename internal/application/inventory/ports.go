package inventory

import (
	"context"

	"github.com/invorya/stockwatch/internal/domain/repository"
)

// LedgerTxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios del ledger atados a esa tx. La actualización de cantidad y su
// entrada de bitácora se confirman o revierten juntas.
type LedgerTxRunner interface {
	RunLedger(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}
