package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/entity"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/repository"
)

// ProductUseCase operaciones básicas de productos. El catálogo es soporte del
// motor de inventario: alta y consulta, sin borrado (un producto referenciado
// por lotes nunca se elimina).
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// CreateProductInput datos de alta de un producto.
type CreateProductInput struct {
	SKU             string
	Name            string
	Price           decimal.Decimal
	MinimumQuantity *int64 // nil = umbral por defecto
}

// Create da de alta un producto con stock cero. SKU duplicado -> domain.ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in CreateProductInput) (*entity.Product, error) {
	if in.SKU == "" || in.Name == "" || !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	minimum := int64(entity.DefaultMinimumQuantity)
	if in.MinimumQuantity != nil {
		if *in.MinimumQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		minimum = *in.MinimumQuantity
	}

	product := &entity.Product{
		SKU:             in.SKU,
		Name:            in.Name,
		Price:           in.Price,
		CurrentQuantity: 0,
		MinimumQuantity: minimum,
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List devuelve productos paginados.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.List(ctx, limit, offset)
}
