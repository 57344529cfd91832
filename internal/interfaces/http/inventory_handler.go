package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/invorya/stockwatch/internal/application/dto"
	"github.com/invorya/stockwatch/internal/application/inventory"
	"github.com/invorya/stockwatch/internal/domain"
)

// InventoryHandler maneja ajustes de inventario y su bitácora.
type InventoryHandler struct {
	ledger *inventory.LedgerUseCase
	log    zerolog.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *inventory.LedgerUseCase, log zerolog.Logger) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, log: log}
}

// Adjust godoc
// @Summary      Ajustar cantidad de inventario
// @Description  Aplica un delta firmado y apendiza la entrada de bitácora en la
// @Description  misma transacción. Un delta que dejaría la cantidad negativa se
// @Description  rechaza con 409 sin modificar nada.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro de inventario"
// @Param        body  body  dto.AdjustmentRequest  true  "change_amount, reason"
// @Success      200   {object}  dto.AdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	inventoryID := c.Params("id")
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	var fields []string
	if in.ChangeAmount == nil {
		fields = append(fields, "change_amount")
	}
	if in.Reason == "" {
		fields = append(fields, "reason")
	}
	if len(fields) > 0 {
		return writeError(c, h.log, &domain.ValidationError{Fields: fields})
	}
	newQuantity, err := h.ledger.ApplyDelta(c.Context(), inventoryID, *in.ChangeAmount, in.Reason)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.AdjustmentResponse{InventoryID: inventoryID, NewQuantity: newQuantity})
}

// GetLedger godoc
// @Summary      Bitácora de un registro de inventario
// @Description  Entradas en orden cronológico, desde el alta inicial.
// @Tags         inventory
// @Produce      json
// @Param        id   path  string  true  "ID del registro de inventario"
// @Success      200  {object}  dto.ChangeLogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/ledger [get]
func (h *InventoryHandler) GetLedger(c *fiber.Ctx) error {
	out, err := h.ledger.History(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Audit godoc
// @Summary      Auditar un registro de inventario
// @Description  Reconstruye la cantidad desde la bitácora y la compara con la
// @Description  almacenada. Una discrepancia se reporta, no es un error HTTP.
// @Tags         inventory
// @Produce      json
// @Param        id   path  string  true  "ID del registro de inventario"
// @Success      200  {object}  dto.AuditResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/audit [get]
func (h *InventoryHandler) Audit(c *fiber.Ctx) error {
	out, err := h.ledger.Reconstruct(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
