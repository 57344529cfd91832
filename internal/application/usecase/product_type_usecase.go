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

// ProductTypeUseCase casos de uso para tipos de producto.
type ProductTypeUseCase struct {
	repo repository.ProductTypeRepository
}

// NewProductTypeUseCase construye el caso de uso.
func NewProductTypeUseCase(repo repository.ProductTypeRepository) *ProductTypeUseCase {
	return &ProductTypeUseCase{repo: repo}
}

// Create crea un tipo de producto. Umbral omitido aplica el default (20);
// umbral negativo se rechaza.
func (uc *ProductTypeUseCase) Create(ctx context.Context, in dto.CreateProductTypeRequest) (*dto.ProductTypeResponse, error) {
	var fields []string
	if in.Name == "" {
		fields = append(fields, "name")
	}
	threshold := entity.DefaultLowStockThreshold
	if in.LowStockThreshold != nil {
		if *in.LowStockThreshold < 0 {
			fields = append(fields, "low_stock_threshold")
		} else {
			threshold = *in.LowStockThreshold
		}
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	productType := &entity.ProductType{
		ID:                uuid.New().String(),
		Name:              in.Name,
		LowStockThreshold: threshold,
		CreatedAt:         time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, productType); err != nil {
		return nil, err
	}
	return toProductTypeResponse(productType), nil
}

// GetByID obtiene un tipo por ID; (nil, nil) si no existe.
func (uc *ProductTypeUseCase) GetByID(ctx context.Context, id string) (*dto.ProductTypeResponse, error) {
	productType, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if productType == nil {
		return nil, nil
	}
	return toProductTypeResponse(productType), nil
}

func toProductTypeResponse(t *entity.ProductType) *dto.ProductTypeResponse {
	if t == nil {
		return nil
	}
	return &dto.ProductTypeResponse{
		ID:                t.ID,
		Name:              t.Name,
		LowStockThreshold: t.LowStockThreshold,
		CreatedAt:         t.CreatedAt,
	}
}
