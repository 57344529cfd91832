package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/invorya/stockwatch/internal/application/bundle"
	"github.com/invorya/stockwatch/internal/application/dto"
	"github.com/invorya/stockwatch/internal/domain/entity"
)

// BundleHandler maneja la composición de bundles bajo /api/products/{id}/components.
type BundleHandler struct {
	resolver *bundle.Resolver
	log      zerolog.Logger
}

// NewBundleHandler construye el handler.
func NewBundleHandler(resolver *bundle.Resolver, log zerolog.Logger) *BundleHandler {
	return &BundleHandler{resolver: resolver, log: log}
}

// ReplaceComponents godoc
// @Summary      Reemplazar componentes de un bundle
// @Description  Sustituye el conjunto completo de aristas bundle→componente.
// @Description  Una composición que introduzca un ciclo se rechaza sin escribir nada.
// @Tags         bundles
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto bundle"
// @Param        body  body  dto.ReplaceComponentsRequest  true  "Componentes"
// @Success      204   "Sin contenido"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/components [put]
func (h *BundleHandler) ReplaceComponents(c *fiber.Ctx) error {
	bundleID := c.Params("id")
	var in dto.ReplaceComponentsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	components := make([]*entity.BundleComponent, 0, len(in.Components))
	for _, comp := range in.Components {
		components = append(components, &entity.BundleComponent{
			BundleID:         bundleID,
			ComponentID:      comp.ComponentID,
			QuantityInBundle: comp.QuantityInBundle,
		})
	}
	if err := h.resolver.Replace(c.Context(), bundleID, components); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetResolved godoc
// @Summary      Resolver un bundle a productos hoja
// @Description  Aplana la composición anidada a cantidades totales por producto
// @Description  hoja. Un producto sin componentes se resuelve a sí mismo con
// @Description  cantidad 1.
// @Tags         bundles
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ResolvedComponentsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/components/resolved [get]
func (h *BundleHandler) GetResolved(c *fiber.Ctx) error {
	bundleID := c.Params("id")
	components, err := h.resolver.Resolve(c.Context(), bundleID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ResolvedComponentsResponse{BundleID: bundleID, Components: components})
}
