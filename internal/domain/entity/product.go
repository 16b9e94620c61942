package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultMinimumQuantity umbral de reorden por defecto para productos nuevos.
const DefaultMinimumQuantity = 5

// Product representa un producto (SKU único e inmutable) del inventario.
// CurrentQuantity es la suma denormalizada del remanente de sus lotes y se
// mantiene en cada mutación dentro de la misma transacción; nunca se
// recalcula perezosamente en el camino caliente.
type Product struct {
	ID              string
	SKU             string
	Name            string
	Price           decimal.Decimal // precio unitario de venta
	CurrentQuantity int64
	MinimumQuantity int64 // umbral de reorden para alertas de stock bajo
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
