package alerts

import (
	"context"

	"github.com/invorya/stockwatch/internal/application/dto"
)

// AlertsCache cachea respuestas del motor por (empresa, ventana). Get
// devuelve (nil, false) en miss o ante cualquier error del backend; Set es
// best-effort. El caso de uso funciona igual sin cache (nil).
type AlertsCache interface {
	Get(ctx context.Context, companyID string, windowDays int) (*dto.LowStockAlertsResponse, bool)
	Set(ctx context.Context, companyID string, windowDays int, res *dto.LowStockAlertsResponse)
}
