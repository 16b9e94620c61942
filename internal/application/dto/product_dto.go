package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/entity"
)

// ── Requests ──────────────────────────────────────────────────────────────────

// CreateProductRequest cuerpo de POST /api/productos.
type CreateProductRequest struct {
	SKU             string          `json:"sku" validate:"required"`
	Name            string          `json:"nombre" validate:"required"`
	Price           decimal.Decimal `json:"precio"`
	MinimumQuantity *int64          `json:"stock_minimo,omitempty"` // default 5 si se omite
}

// ── Responses ─────────────────────────────────────────────────────────────────

// ProductDTO representación JSON de un producto.
type ProductDTO struct {
	ID              string          `json:"id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"nombre"`
	Price           decimal.Decimal `json:"precio"`
	CurrentQuantity int64           `json:"cantidad_actual"`
	MinimumQuantity int64           `json:"stock_minimo"`
	CreatedAt       string          `json:"fecha_creacion"` // RFC 3339
}

// ProductFromEntity mapea la entidad de dominio al DTO.
func ProductFromEntity(p *entity.Product) ProductDTO {
	return ProductDTO{
		ID:              p.ID,
		SKU:             p.SKU,
		Name:            p.Name,
		Price:           p.Price,
		CurrentQuantity: p.CurrentQuantity,
		MinimumQuantity: p.MinimumQuantity,
		CreatedAt:       p.CreatedAt.Format(timeFormat),
	}
}

// ProductsFromEntities mapea un listado completo.
func ProductsFromEntities(products []*entity.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, ProductFromEntity(p))
	}
	return out
}
