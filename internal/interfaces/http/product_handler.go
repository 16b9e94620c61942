package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/application/dto"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/application/usecase"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "sku, nombre, precio, stock_minimo (opcional, default 5)"
// @Success      201   {object}  dto.ProductDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(&in); err != nil {
		return handleError(c, h.log, err)
	}

	product, err := h.uc.Create(c.Context(), usecase.CreateProductInput{
		SKU:             in.SKU,
		Name:            in.Name,
		Price:           in.Price,
		MinimumQuantity: in.MinimumQuantity,
	})
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductFromEntity(product))
}

// GetByID godoc
// @Summary      Consultar producto por ID
// @Tags         productos
// @Produce      json
// @Param        id   path      string  true  "UUID del producto"
// @Success      200  {object}  dto.ProductDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.JSON(dto.ProductFromEntity(product))
}

// List godoc
// @Summary      Listar productos
// @Tags         productos
// @Produce      json
// @Param        limit   query  int  false  "máx resultados (default 50)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.ProductDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	page.Normalize()

	products, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.JSON(dto.ProductsFromEntities(products))
}
