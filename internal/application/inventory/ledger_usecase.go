package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/invorya/stockwatch/internal/application/dto"
	"github.com/invorya/stockwatch/internal/domain"
	"github.com/invorya/stockwatch/internal/domain/entity"
	"github.com/invorya/stockwatch/internal/domain/repository"
)

// LedgerUseCase es el único camino de mutación de inventario: todo delta
// actualiza la cantidad y escribe su entrada de bitácora en la misma
// transacción, con bloqueo de fila (SELECT FOR UPDATE) para serializar
// deltas concurrentes sobre el mismo registro.
type LedgerUseCase struct {
	txRunner   LedgerTxRunner
	invRepo    repository.InventoryRepository
	ledgerRepo repository.LedgerRepository
}

// NewLedgerUseCase construye el caso de uso. invRepo y ledgerRepo son los
// adaptadores sin transacción, usados solo por las lecturas de auditoría.
func NewLedgerUseCase(txRunner LedgerTxRunner, invRepo repository.InventoryRepository, ledgerRepo repository.LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:   txRunner,
		invRepo:    invRepo,
		ledgerRepo: ledgerRepo,
	}
}

// ApplyDelta aplica un delta firmado al registro y devuelve la cantidad
// resultante. Si el registro no existe falla con ErrNotFound; si el delta
// dejaría la cantidad bajo cero no escribe nada y falla con
// ErrInsufficientStock. La cantidad se rechaza, nunca se recorta a cero.
func (uc *LedgerUseCase) ApplyDelta(ctx context.Context, inventoryID string, changeAmount int64, reason string) (int64, error) {
	var newQuantity int64

	err := uc.txRunner.RunLedger(ctx, func(
		invRepo repository.InventoryRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		record, err := invRepo.GetForUpdate(ctx, inventoryID)
		if err != nil {
			return err
		}
		if record == nil {
			return domain.ErrNotFound
		}
		newQuantity = record.Quantity + changeAmount
		if newQuantity < 0 {
			return domain.ErrInsufficientStock
		}
		if err := invRepo.UpdateQuantity(ctx, inventoryID, newQuantity); err != nil {
			return err
		}
		return ledgerRepo.Append(ctx, &entity.ChangeLogEntry{
			ID:           uuid.New().String(),
			InventoryID:  inventoryID,
			ChangeAmount: changeAmount,
			NewQuantity:  newQuantity,
			Reason:       reason,
			CreatedAt:    time.Now().UTC(),
		})
	})
	if err != nil {
		return 0, err
	}
	return newQuantity, nil
}

// Reconstruct recalcula la cantidad sumando la bitácora en orden cronológico
// desde cero y la compara con la almacenada. Es la herramienta de auditoría
// del invariante del ledger; corre fuera del camino caliente de escritura y
// sin locks. Consistent exige además que cada entrada haya registrado la
// cantidad resultante correcta en su momento.
func (uc *LedgerUseCase) Reconstruct(ctx context.Context, inventoryID string) (*dto.AuditResponse, error) {
	record, err := uc.invRepo.GetByID(ctx, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("get inventory record: %w", err)
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.ledgerRepo.ListByInventory(ctx, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list change log: %w", err)
	}

	var running int64
	consistent := true
	for _, e := range entries {
		running += e.ChangeAmount
		if e.NewQuantity != running {
			consistent = false
		}
	}
	if running != record.Quantity {
		consistent = false
	}
	return &dto.AuditResponse{
		InventoryID:      inventoryID,
		StoredQuantity:   record.Quantity,
		ComputedQuantity: running,
		EntryCount:       len(entries),
		Consistent:       consistent,
	}, nil
}

// History devuelve la bitácora completa del registro en orden cronológico.
func (uc *LedgerUseCase) History(ctx context.Context, inventoryID string) (*dto.ChangeLogResponse, error) {
	record, err := uc.invRepo.GetByID(ctx, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("get inventory record: %w", err)
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.ledgerRepo.ListByInventory(ctx, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list change log: %w", err)
	}

	items := make([]dto.ChangeLogEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.ChangeLogEntryResponse{
			ID:           e.ID,
			InventoryID:  e.InventoryID,
			ChangeAmount: e.ChangeAmount,
			NewQuantity:  e.NewQuantity,
			Reason:       e.Reason,
			CreatedAt:    e.CreatedAt,
		})
	}
	return &dto.ChangeLogResponse{
		InventoryID: inventoryID,
		Entries:     items,
		Total:       len(items),
	}, nil
}
