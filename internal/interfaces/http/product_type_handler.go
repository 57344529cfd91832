package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/invorya/stockwatch/internal/application/dto"
	"github.com/invorya/stockwatch/internal/application/usecase"
)

// ProductTypeHandler maneja las peticiones HTTP para ProductType.
type ProductTypeHandler struct {
	uc  *usecase.ProductTypeUseCase
	log zerolog.Logger
}

// NewProductTypeHandler construye el handler.
func NewProductTypeHandler(uc *usecase.ProductTypeUseCase, log zerolog.Logger) *ProductTypeHandler {
	return &ProductTypeHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear tipo de producto
// @Description  low_stock_threshold omitido aplica el default de la plataforma (20).
// @Tags         product-types
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductTypeRequest  true  "name, low_stock_threshold"
// @Success      201   {object}  dto.ProductTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/product-types [post]
func (h *ProductTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tipo de producto por ID
// @Tags         product-types
// @Produce      json
// @Param        id   path  string  true  "ID del tipo"
// @Success      200  {object}  dto.ProductTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-types/{id} [get]
func (h *ProductTypeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo de producto no encontrado"})
	}
	return c.JSON(out)
}
