package repository

import (
	"context"

	"github.com/invorya/stockwatch/internal/domain/entity"
)

// SalesRepository define el puerto de escritura del feed de ventas.
// El motor de alertas lo lee solo a través de AlertsRepository.
type SalesRepository interface {
	Create(ctx context.Context, sale *entity.SalesActivity) error
}
