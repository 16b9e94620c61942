package entity

import (
	"fmt"
	"time"
)

// Tipos de alerta y de entidad referenciada.
const (
	AlertKindLowStock = "low_stock"

	AlertEntityProduct = "product"
	AlertEntityLot     = "lot"
)

// ExpiringAlertKind devuelve el tipo de alerta de vencimiento para un umbral
// de días. Cada umbral es una población de alertas independiente.
func ExpiringAlertKind(daysThreshold int) string {
	return fmt.Sprintf("expiring_%d", daysThreshold)
}

// Alert es una fila del historial de alertas. Metadata es un snapshot de los
// datos de la entidad al momento de crearse y no se refresca: una alerta
// activa de larga vida puede quedar desfasada respecto a la entidad, y eso
// es comportamiento aceptado.
//
// Invariante: a lo sumo una alerta activa por (AlertKind, EntityID, EntityKind).
// Las alertas se desactivan, nunca se borran ni se reactivan.
type Alert struct {
	ID         string
	AlertKind  string
	EntityID   string
	EntityKind string
	Message    string
	Metadata   map[string]any
	CreatedAt  time.Time
	IsActive   bool
}
