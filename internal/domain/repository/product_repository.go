package repository

import (
	"context"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia de productos.
// Los métodos Get* devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	// Create persiste un producto nuevo. Devuelve domain.ErrDuplicate si el SKU ya existe.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// Es el punto de serialización de toda mutación de stock del producto.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	ListAll(ctx context.Context) ([]*entity.Product, error)
	// ListBelowMinimum devuelve los productos con current_quantity < minimum_quantity.
	ListBelowMinimum(ctx context.Context) ([]*entity.Product, error)
	// UpdateQuantity fija el stock agregado del producto (fila ya bloqueada por el caller).
	UpdateQuantity(ctx context.Context, id string, quantity int64) error
}
