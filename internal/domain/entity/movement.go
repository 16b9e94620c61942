package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementKindEntry = "entry" // entrada de stock (creación de lote)
	MovementKindExit  = "exit"  // salida de stock (despacho o salida manual)
)

// Movement es el registro inmutable de auditoría de un cambio de cantidad
// contra un lote. Nunca se actualiza ni se borra (append-only).
type Movement struct {
	ID         string
	LotID      string
	Kind       string
	Quantity   int64
	OccurredAt time.Time
}
