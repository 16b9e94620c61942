package inventory

import (
	"context"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el motor de inventario: o se aplican todas las
// escrituras (lote, producto, movimiento) o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		lotRepo repository.LotRepository,
		movementRepo repository.MovementRepository,
	) error) error
}

// AlertCacheInvalidator invalida resultados cacheados de alertas. Toda
// mutación de stock lo invoca sincrónicamente: el cache nunca es fuente de verdad.
type AlertCacheInvalidator interface {
	InvalidatePrefix(prefix string)
}
