package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockwatch/internal/application/dto"
	"github.com/invorya/stockwatch/internal/application/usecase"
	"github.com/invorya/stockwatch/internal/domain"
	"github.com/invorya/stockwatch/internal/domain/entity"
)

type fakeProductTypeRepo struct{ types map[string]*entity.ProductType }

func (f *fakeProductTypeRepo) Create(_ context.Context, t *entity.ProductType) error {
	f.types[t.ID] = t
	return nil
}

func (f *fakeProductTypeRepo) GetByID(_ context.Context, id string) (*entity.ProductType, error) {
	return f.types[id], nil
}

func int64Ptr(v int64) *int64 { return &v }

// Caso 1: umbral omitido → default 20.
func TestCreateProductType_UmbralPorDefecto(t *testing.T) {
	repo := &fakeProductTypeRepo{types: make(map[string]*entity.ProductType)}
	uc := usecase.NewProductTypeUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateProductTypeRequest{Name: "Perecederos"})
	require.NoError(t, err)
	assert.Equal(t, int64(20), out.LowStockThreshold)
	assert.Equal(t, int64(20), repo.types[out.ID].LowStockThreshold)
}

// Caso 2: umbral explícito se respeta, incluido el cero (nunca alerta por
// stock, solo por ventas imposibles de cubrir).
func TestCreateProductType_UmbralExplicito(t *testing.T) {
	repo := &fakeProductTypeRepo{types: make(map[string]*entity.ProductType)}
	uc := usecase.NewProductTypeUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateProductTypeRequest{
		Name:              "Electrónica",
		LowStockThreshold: int64Ptr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.LowStockThreshold, "cero explícito no es omitido")
}

// Caso 3: umbral negativo y nombre vacío se acumulan en un solo error.
func TestCreateProductType_CamposInvalidos(t *testing.T) {
	repo := &fakeProductTypeRepo{types: make(map[string]*entity.ProductType)}
	uc := usecase.NewProductTypeUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateProductTypeRequest{
		LowStockThreshold: int64Ptr(-1),
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ElementsMatch(t, []string{"name", "low_stock_threshold"}, vErr.Fields)
	assert.Empty(t, repo.types)
}

// Caso 4: GetByID sobre un ID desconocido → (nil, nil); el 404 lo decide el
// handler.
func TestGetProductType_Inexistente(t *testing.T) {
	repo := &fakeProductTypeRepo{types: make(map[string]*entity.ProductType)}
	uc := usecase.NewProductTypeUseCase(repo)

	out, err := uc.GetByID(context.Background(), "00000000-0000-0000-0000-000000000999")
	require.NoError(t, err)
	assert.Nil(t, out)
}
