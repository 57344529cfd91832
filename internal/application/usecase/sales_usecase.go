package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/invorya/stockwatch/internal/application/dto"
	"github.com/invorya/stockwatch/internal/domain"
	"github.com/invorya/stockwatch/internal/domain/entity"
	"github.com/invorya/stockwatch/internal/domain/repository"
)

// SalesUseCase registra ventas del feed externo. Este es el insumo de
// demanda del motor de alertas; aquí solo se valida y se apendiza.
type SalesUseCase struct {
	salesRepo     repository.SalesRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(salesRepo repository.SalesRepository, productRepo repository.ProductRepository, warehouseRepo repository.WarehouseRepository) *SalesUseCase {
	return &SalesUseCase{salesRepo: salesRepo, productRepo: productRepo, warehouseRepo: warehouseRepo}
}

// Record valida y persiste una venta. SaleDate omitido usa el instante actual.
func (uc *SalesUseCase) Record(ctx context.Context, in dto.RecordSaleRequest) (*dto.RecordSaleResponse, error) {
	var fields []string
	if in.ProductID == "" {
		fields = append(fields, "product_id")
	}
	if in.WarehouseID == "" {
		fields = append(fields, "warehouse_id")
	}
	if in.QuantitySold <= 0 {
		fields = append(fields, "quantity_sold")
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	warehouse, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if product == nil || warehouse == nil {
		return nil, domain.ErrNotFound
	}

	saleDate := time.Now().UTC()
	if in.SaleDate != nil {
		saleDate = in.SaleDate.UTC()
	}

	sale := &entity.SalesActivity{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		WarehouseID:  in.WarehouseID,
		QuantitySold: in.QuantitySold,
		SaleDate:     saleDate,
	}
	if err := uc.salesRepo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return &dto.RecordSaleResponse{ID: sale.ID}, nil
}
