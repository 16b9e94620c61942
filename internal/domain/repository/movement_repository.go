package repository

import (
	"context"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/entity"
)

// MovementRepository define el puerto del historial de movimientos (append-only).
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	ListByLot(ctx context.Context, lotID string, limit, offset int) ([]*entity.Movement, error)
}
