package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/application/dto"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/pkg/logger"
)

// handleError traduce errores de dominio a respuestas HTTP.
// Los errores no reconocidos devuelven un 500 opaco y quedan en el log;
// el detalle interno nunca viaja al cliente.
func handleError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INSUFFICIENT_STOCK", Message: insufficient.Error(),
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "recurso no encontrado",
		})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DUPLICATE", Message: "el recurso ya existe",
		})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "CONFLICT", Message: "conflicto de concurrencia, reintente la operación",
		})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente",
		})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno no manejado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "error interno del servidor",
		})
	}
}
