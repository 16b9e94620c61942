package repository

import (
	"context"
	"time"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/entity"
)

// ExpiringLot es un lote por vencer junto con los datos del producto que se
// snapshotean en la alerta.
type ExpiringLot struct {
	Lot         entity.Lot
	ProductName string
	ProductSKU  string
}

// LotRepository define el puerto de persistencia de lotes.
// Los métodos Get* devuelven (nil, nil) cuando el lote no existe.
type LotRepository interface {
	Create(ctx context.Context, lot *entity.Lot) error
	GetByID(ctx context.Context, id string) (*entity.Lot, error)
	// GetForUpdate obtiene el lote bloqueando su fila (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Lot, error)
	// ListAvailableForUpdate devuelve los lotes con remanente > 0 de un producto
	// en orden FEFO (vencimiento ascendente, sin vencimiento al final, empates
	// por orden de creación) y bloquea las filas devueltas.
	ListAvailableForUpdate(ctx context.Context, productID string) ([]*entity.Lot, error)
	// ListExpiringWithin devuelve los lotes con vencimiento en (after, until] y
	// remanente > 0, con nombre y SKU del producto, en orden de vencimiento.
	ListExpiringWithin(ctx context.Context, after, until time.Time) ([]*ExpiringLot, error)
	// UpdateRemaining fija el remanente del lote (fila ya bloqueada por el caller).
	UpdateRemaining(ctx context.Context, id string, remaining int64) error
}
