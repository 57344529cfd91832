package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/invorya/stockwatch/internal/application/alerts"
	"github.com/invorya/stockwatch/internal/application/dto"
)

// DefaultAlertsTTL vida corta para que las alertas reflejen ventas recientes.
const DefaultAlertsTTL = 1 * time.Minute

// AlertsCache cache de respuestas de alertas en Redis. Es best-effort:
// cualquier error de red o de marshaling se trata como cache miss y la
// consulta sigue contra Postgres.
type AlertsCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ alerts.AlertsCache = (*AlertsCache)(nil)

// NewAlertsCache construye el cache. Si ttl <= 0 usa DefaultAlertsTTL.
func NewAlertsCache(client *redis.Client, ttl time.Duration) *AlertsCache {
	if ttl <= 0 {
		ttl = DefaultAlertsTTL
	}
	return &AlertsCache{client: client, ttl: ttl}
}

func alertsKey(companyID string, windowDays int) string {
	return fmt.Sprintf("alerts:%s:%d", companyID, windowDays)
}

// Get devuelve la respuesta cacheada para la empresa y ventana, o false.
func (c *AlertsCache) Get(ctx context.Context, companyID string, windowDays int) (*dto.LowStockAlertsResponse, bool) {
	if c.client == nil {
		return nil, false
	}
	val, err := c.client.Get(ctx, alertsKey(companyID, windowDays)).Result()
	if err != nil {
		return nil, false
	}
	var resp dto.LowStockAlertsResponse
	if err := json.Unmarshal([]byte(val), &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

// Set guarda la respuesta con el TTL configurado. Los errores se descartan.
func (c *AlertsCache) Set(ctx context.Context, companyID string, windowDays int, resp *dto.LowStockAlertsResponse) {
	if c.client == nil || resp == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, alertsKey(companyID, windowDays), data, c.ttl).Err()
}
