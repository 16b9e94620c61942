package reports

import (
	"context"
	"time"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/entity"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/repository"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/pkg/logger"
)

// StockReportGenerator renderiza el reporte de stock actual como documento (PDF).
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, products []*entity.Product, generatedAt time.Time) ([]byte, error)
}

// UseCase reportes de inventario: stock actual por producto, en JSON o PDF.
type UseCase struct {
	productRepo repository.ProductRepository
	generator   StockReportGenerator
	log         *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(productRepo repository.ProductRepository, generator StockReportGenerator, log *logger.Logger) *UseCase {
	return &UseCase{productRepo: productRepo, generator: generator, log: log}
}

// CurrentStock devuelve el stock actual de todos los productos.
func (uc *UseCase) CurrentStock(ctx context.Context) ([]*entity.Product, error) {
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Int("products", len(products)).Msg("reporte de stock generado")
	return products, nil
}

// CurrentStockPDF devuelve el reporte de stock actual renderizado como PDF.
func (uc *UseCase) CurrentStockPDF(ctx context.Context) ([]byte, error) {
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateStockReport(ctx, products, time.Now())
}
