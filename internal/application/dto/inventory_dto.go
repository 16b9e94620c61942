package dto

import (
	"fmt"
	"time"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/entity"
)

// ── Requests ──────────────────────────────────────────────────────────────────

// RegisterEntryRequest cuerpo de POST /api/inventario/entradas.
type RegisterEntryRequest struct {
	ProductID        string `json:"producto_id" validate:"required,uuid"`
	ReceivedQuantity int64  `json:"cantidad_recibida" validate:"required,gt=0"`
	ExpirationDate   string `json:"fecha_vencimiento,omitempty"` // YYYY-MM-DD; opcional
}

// ParseExpirationDate interpreta la fecha de vencimiento opcional.
func (r *RegisterEntryRequest) ParseExpirationDate() (*time.Time, error) {
	if r.ExpirationDate == "" {
		return nil, nil
	}
	t, err := time.Parse(dateFormat, r.ExpirationDate)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha_vencimiento debe tener formato %s", domain.ErrInvalidInput, dateFormat)
	}
	return &t, nil
}

// RegisterExitRequest cuerpo de POST /api/inventario/salidas.
type RegisterExitRequest struct {
	LotID    string `json:"lote_id" validate:"required,uuid"`
	Quantity int64  `json:"cantidad" validate:"required,gt=0"`
}

// DispatchRequest cuerpo de POST /api/inventario/despachar.
type DispatchRequest struct {
	ProductID string `json:"producto_id" validate:"required,uuid"`
	Quantity  int64  `json:"cantidad" validate:"required,gt=0"`
}

// ── Responses ─────────────────────────────────────────────────────────────────

// LotDTO representación JSON de un lote.
type LotDTO struct {
	ID               string  `json:"id"`
	ProductID        string  `json:"producto_id"`
	ReceivedQuantity int64   `json:"cantidad_recibida"`
	RemainingQuantity int64  `json:"cantidad_actual"`
	ExpirationDate   *string `json:"fecha_vencimiento"` // YYYY-MM-DD o null
	CreatedAt        string  `json:"fecha_creacion"`
}

// LotFromEntity mapea la entidad de dominio al DTO.
func LotFromEntity(l *entity.Lot) LotDTO {
	out := LotDTO{
		ID:                l.ID,
		ProductID:         l.ProductID,
		ReceivedQuantity:  l.ReceivedQuantity,
		RemainingQuantity: l.RemainingQuantity,
		CreatedAt:         l.CreatedAt.Format(timeFormat),
	}
	if l.ExpirationDate != nil {
		d := l.ExpirationDate.Format(dateFormat)
		out.ExpirationDate = &d
	}
	return out
}

// MovementDTO representación JSON de un movimiento de inventario.
type MovementDTO struct {
	ID         string `json:"id"`
	LotID      string `json:"lote_id"`
	Kind       string `json:"tipo"` // entry | exit
	Quantity   int64  `json:"cantidad"`
	OccurredAt string `json:"fecha_movimiento"`
}

// MovementFromEntity mapea la entidad de dominio al DTO.
func MovementFromEntity(m *entity.Movement) MovementDTO {
	return MovementDTO{
		ID:         m.ID,
		LotID:      m.LotID,
		Kind:       m.Kind,
		Quantity:   m.Quantity,
		OccurredAt: m.OccurredAt.Format(timeFormat),
	}
}

// MovementsFromEntities mapea un listado completo.
func MovementsFromEntities(movements []*entity.Movement) []MovementDTO {
	out := make([]MovementDTO, 0, len(movements))
	for _, m := range movements {
		out = append(out, MovementFromEntity(m))
	}
	return out
}

// DispatchResponse resultado de un despacho FEFO: los movimientos generados.
type DispatchResponse struct {
	ProductID string        `json:"producto_id"`
	Quantity  int64         `json:"cantidad"`
	Movements []MovementDTO `json:"movimientos"`
}
