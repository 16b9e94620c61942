package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError indica que la cantidad solicitada supera la disponible.
// Lleva los datos estructurados (sku, solicitado, disponible) para que el caller
// pueda renderizar un mensaje accionable.
type InsufficientStockError struct {
	SKU       string
	Requested int64
	Available int64
}

// Error renderiza el mensaje en el formato esperado por la API.
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Stock insuficiente para %s. Solicitado: %d, Disponible: %d",
		e.SKU, e.Requested, e.Available)
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
