package dto

import (
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/entity"
)

// ── Responses ─────────────────────────────────────────────────────────────────

// AlertDTO representación JSON de una alerta.
type AlertDTO struct {
	ID         string         `json:"id"`
	AlertKind  string         `json:"tipo_alerta"` // low_stock | expiring_<N>
	EntityID   string         `json:"entidad_id"`
	EntityKind string         `json:"entidad_tipo"` // product | lot
	Message    string         `json:"mensaje"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  string         `json:"fecha_creacion"`
	IsActive   bool           `json:"esta_activa"`
}

// AlertFromEntity mapea la entidad de dominio al DTO.
func AlertFromEntity(a *entity.Alert) AlertDTO {
	return AlertDTO{
		ID:         a.ID,
		AlertKind:  a.AlertKind,
		EntityID:   a.EntityID,
		EntityKind: a.EntityKind,
		Message:    a.Message,
		Metadata:   a.Metadata,
		CreatedAt:  a.CreatedAt.Format(timeFormat),
		IsActive:   a.IsActive,
	}
}

// AlertsFromEntities mapea un listado completo.
func AlertsFromEntities(alerts []*entity.Alert) []AlertDTO {
	out := make([]AlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, AlertFromEntity(a))
	}
	return out
}
