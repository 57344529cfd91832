package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/invorya/stockwatch/internal/application/catalog"
	"github.com/invorya/stockwatch/internal/application/dto"
	"github.com/invorya/stockwatch/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product. El alta delega en
// el caso de uso de onboarding (producto + inventario inicial en una sola
// transacción); las lecturas van por el caso de uso de catálogo.
type ProductHandler struct {
	onboarding *catalog.OnboardingUseCase
	uc         *usecase.ProductUseCase
	log        zerolog.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(onboarding *catalog.OnboardingUseCase, uc *usecase.ProductUseCase, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{onboarding: onboarding, uc: uc, log: log}
}

// Create godoc
// @Summary      Crear producto con inventario inicial
// @Description  Crea el producto, su registro de inventario en la bodega indicada
// @Description  y la primera entrada de bitácora, todo o nada. Un 400 lista todos
// @Description  los campos problemáticos; un 409 incluye el SKU en conflicto.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.onboarding.CreateProduct(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos o buscar por SKU
// @Description  Con ?sku= devuelve el producto único con ese SKU (404 si no existe);
// @Description  sin él, la lista paginada.
// @Tags         products
// @Produce      json
// @Param        sku     query  string  false  "SKU exacto"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	if sku := c.Query("sku"); sku != "" {
		out, err := h.uc.GetBySKU(c.Context(), sku)
		if err != nil {
			return writeError(c, h.log, err)
		}
		if out == nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.JSON(out)
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
