package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/invorya/stockwatch/internal/application/alerts"
)

// AlertsHandler expone el motor de alertas de stock bajo.
type AlertsHandler struct {
	uc  *alerts.AlertsUseCase
	log zerolog.Logger
}

// NewAlertsHandler construye el handler.
func NewAlertsHandler(uc *alerts.AlertsUseCase, log zerolog.Logger) *AlertsHandler {
	return &AlertsHandler{uc: uc, log: log}
}

// GetLowStock godoc
// @Summary      Alertas de stock bajo de una empresa
// @Description  Una alerta por combinación (producto, bodega) con cantidad bajo
// @Description  el umbral de su tipo y al menos una venta en la ventana. Una
// @Description  empresa sin alertas, o inexistente, produce lista vacía con 200.
// @Tags         alerts
// @Produce      json
// @Param        id           path   string  true   "ID de la empresa"
// @Param        window_days  query  int     false  "Ventana de ventas en días"  default(30)
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/low-stock-alerts [get]
func (h *AlertsHandler) GetLowStock(c *fiber.Ctx) error {
	windowDays := c.QueryInt("window_days", 0)
	out, err := h.uc.ComputeAlerts(c.Context(), c.Params("id"), windowDays)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
