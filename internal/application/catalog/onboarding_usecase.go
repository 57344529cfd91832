package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invorya/stockwatch/internal/application/dto"
	"github.com/invorya/stockwatch/internal/domain"
	"github.com/invorya/stockwatch/internal/domain/entity"
	"github.com/invorya/stockwatch/internal/domain/repository"
)

// OnboardingUseCase da de alta productos: producto + registro de inventario
// inicial + primera entrada de bitácora en una sola transacción. Después del
// alta existen los tres o ninguno.
type OnboardingUseCase struct {
	txRunner      TxRunner
	warehouseRepo repository.WarehouseRepository
}

// NewOnboardingUseCase construye el caso de uso.
func NewOnboardingUseCase(txRunner TxRunner, warehouseRepo repository.WarehouseRepository) *OnboardingUseCase {
	return &OnboardingUseCase{
		txRunner:      txRunner,
		warehouseRepo: warehouseRepo,
	}
}

// CreateProduct valida la entrada completa (acumulando todos los campos
// problemáticos), verifica la bodega y ejecuta el alta transaccional.
//
// El SKU se pre-chequea dentro de la tx para un conflicto limpio, pero la
// carrera check-then-insert sigue siendo posible: si dos altas concurrentes
// pasan el pre-chequeo, la violación de unicidad en el INSERT se traduce al
// mismo error de conflicto. La corrección no depende del momento del chequeo.
func (uc *OnboardingUseCase) CreateProduct(ctx context.Context, input dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	price, initialQty, verr := validateCreateProduct(input)
	if verr != nil {
		return nil, verr
	}

	warehouse, err := uc.warehouseRepo.GetByID(ctx, input.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("check warehouse: %w", err)
	}
	if warehouse == nil {
		return nil, &domain.ValidationError{Fields: []string{"warehouse_id"}}
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:            uuid.New().String(),
		SKU:           input.SKU,
		Name:          input.Name,
		Price:         price,
		ProductTypeID: input.ProductTypeID,
		SupplierID:    input.SupplierID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	record := &entity.InventoryRecord{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		WarehouseID: input.WarehouseID,
		Quantity:    initialQty,
		LastUpdated: now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		existing, err := productRepo.GetBySKU(ctx, input.SKU)
		if err != nil {
			return err
		}
		if existing != nil {
			return &domain.ConflictError{SKU: input.SKU}
		}
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		if err := invRepo.Create(ctx, record); err != nil {
			return err
		}
		return ledgerRepo.Append(ctx, &entity.ChangeLogEntry{
			ID:           uuid.New().String(),
			InventoryID:  record.ID,
			ChangeAmount: initialQty,
			NewQuantity:  initialQty,
			Reason:       entity.ReasonInitialStock,
			CreatedAt:    now,
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreateProductResponse{ProductID: product.ID}, nil
}

// validateCreateProduct acumula todos los campos faltantes o inválidos antes
// de tocar el almacén; devuelve los valores ya parseados cuando todo está bien.
func validateCreateProduct(input dto.CreateProductRequest) (decimal.Decimal, int64, error) {
	var fields []string

	if input.Name == "" {
		fields = append(fields, "name")
	}
	if input.SKU == "" {
		fields = append(fields, "sku")
	}
	var price decimal.Decimal
	switch {
	case input.Price == nil:
		fields = append(fields, "price")
	case input.Price.IsNegative():
		fields = append(fields, "price")
	default:
		price = *input.Price
	}
	if input.WarehouseID == "" {
		fields = append(fields, "warehouse_id")
	}
	var initialQty int64
	if input.InitialQuantity == "" {
		fields = append(fields, "initial_quantity")
	} else {
		qty, err := input.InitialQuantity.Int64()
		if err != nil || qty < 0 {
			fields = append(fields, "initial_quantity")
		} else {
			initialQty = qty
		}
	}

	if len(fields) > 0 {
		return decimal.Decimal{}, 0, &domain.ValidationError{Fields: fields}
	}
	return price, initialQty, nil
}
