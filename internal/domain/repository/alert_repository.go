package repository

import (
	"context"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/entity"
)

// AlertRepository define el puerto de la tabla de alertas. Las alertas se
// desactivan, nunca se borran; el índice único parcial sobre
// (alert_kind, entity_id, entity_kind) WHERE is_active respalda el invariante
// de una sola alerta activa por tupla.
type AlertRepository interface {
	// Create persiste una alerta nueva (activa). Devuelve domain.ErrDuplicate
	// si ya existe una alerta activa para la misma tupla.
	Create(ctx context.Context, alert *entity.Alert) error
	// ListActive devuelve alertas activas; kind vacío = todas.
	ListActive(ctx context.Context, kind string) ([]*entity.Alert, error)
	// Deactivate marca una alerta como inactiva (is_active = false).
	Deactivate(ctx context.Context, id string) error
}
