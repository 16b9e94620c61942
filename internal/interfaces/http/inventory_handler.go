package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/application/dto"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/application/inventory"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/pkg/logger"
)

// InventoryHandler maneja las peticiones HTTP de lotes y movimientos.
type InventoryHandler struct {
	uc  *inventory.UseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// RegisterEntry godoc
// @Summary      Registrar entrada de inventario
// @Description  Crea un lote nuevo para el producto y registra el movimiento de entrada.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterEntryRequest  true  "producto_id, cantidad_recibida, fecha_vencimiento (opcional, YYYY-MM-DD)"
// @Success      201   {object}  dto.LotDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/entradas [post]
func (h *InventoryHandler) RegisterEntry(c *fiber.Ctx) error {
	var in dto.RegisterEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(&in); err != nil {
		return handleError(c, h.log, err)
	}
	expiration, err := in.ParseExpirationDate()
	if err != nil {
		return handleError(c, h.log, err)
	}

	lot, err := h.uc.RegisterEntry(c.Context(), in.ProductID, in.ReceivedQuantity, expiration)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.LotFromEntity(lot))
}

// RegisterExit godoc
// @Summary      Registrar salida de un lote
// @Description  Descuenta unidades de un lote concreto y registra el movimiento de salida.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterExitRequest  true  "lote_id, cantidad"
// @Success      201   {object}  dto.MovementDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/salidas [post]
func (h *InventoryHandler) RegisterExit(c *fiber.Ctx) error {
	var in dto.RegisterExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(&in); err != nil {
		return handleError(c, h.log, err)
	}

	movement, err := h.uc.RegisterExit(c.Context(), in.LotID, in.Quantity)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementFromEntity(movement))
}

// Dispatch godoc
// @Summary      Despachar stock de un producto (FEFO)
// @Description  Consume lotes en orden de vencimiento ascendente hasta cubrir la
//               cantidad pedida. Genera un movimiento de salida por lote consumido.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DispatchRequest  true  "producto_id, cantidad"
// @Success      201   {object}  dto.DispatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/despachar [post]
func (h *InventoryHandler) Dispatch(c *fiber.Ctx) error {
	var in dto.DispatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(&in); err != nil {
		return handleError(c, h.log, err)
	}

	movements, err := h.uc.Dispatch(c.Context(), in.ProductID, in.Quantity)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DispatchResponse{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Movements: dto.MovementsFromEntities(movements),
	})
}

// GetLot godoc
// @Summary      Consultar lote por ID
// @Tags         inventario
// @Produce      json
// @Param        id   path      string  true  "UUID del lote"
// @Success      200  {object}  dto.LotDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/lotes/{id} [get]
func (h *InventoryHandler) GetLot(c *fiber.Ctx) error {
	lot, err := h.uc.GetLot(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.JSON(dto.LotFromEntity(lot))
}

// ListLotMovements godoc
// @Summary      Historial de movimientos de un lote
// @Tags         inventario
// @Produce      json
// @Param        id      path   string  true   "UUID del lote"
// @Param        limit   query  int     false  "máx resultados (default 50)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}   dto.MovementDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/lotes/{id}/movimientos [get]
func (h *InventoryHandler) ListLotMovements(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	page.Normalize()

	movements, err := h.uc.ListLotMovements(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return c.JSON(dto.MovementsFromEntities(movements))
}
