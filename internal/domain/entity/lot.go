package entity

import "time"

// Lot representa un lote discreto de stock recibido en una entrada.
// RemainingQuantity nace igual a ReceivedQuantity y solo puede bajar;
// los lotes nunca se borran, aunque queden en cero (historial).
type Lot struct {
	ID                string
	ProductID         string
	ReceivedQuantity  int64
	RemainingQuantity int64
	ExpirationDate    *time.Time // opcional: nil = sin vencimiento
	CreatedAt         time.Time
}

// NewLot construye un lote nuevo con RemainingQuantity = ReceivedQuantity.
func NewLot(productID string, receivedQuantity int64, expirationDate *time.Time) *Lot {
	return &Lot{
		ProductID:         productID,
		ReceivedQuantity:  receivedQuantity,
		RemainingQuantity: receivedQuantity,
		ExpirationDate:    expirationDate,
	}
}
