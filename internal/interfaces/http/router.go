package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/application/alerts"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/application/inventory"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/application/reports"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/application/usecase"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	InventoryUC *inventory.UseCase
	AlertSvc    *alerts.Service
	ReportUC    *reports.UseCase
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de productos
	products := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Inventario: entradas, salidas, despacho FEFO y consulta de lotes
	invGroup := api.Group("/inventario")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.Log)
	invGroup.Post("/entradas", inventoryHandler.RegisterEntry)
	invGroup.Post("/salidas", inventoryHandler.RegisterExit)
	invGroup.Post("/despachar", inventoryHandler.Dispatch)
	invGroup.Get("/lotes/:id", inventoryHandler.GetLot)
	invGroup.Get("/lotes/:id/movimientos", inventoryHandler.ListLotMovements)

	// Alertas (reconciliación en cada lectura)
	alertGroup := api.Group("/alertas")
	alertHandler := NewAlertHandler(deps.AlertSvc, deps.Log)
	alertGroup.Get("/stock-minimo", alertHandler.ListLowStock)
	alertGroup.Get("/por-vencer", alertHandler.ListExpiring)
	alertGroup.Get("/", alertHandler.ListActive)

	// Reportes
	reportGroup := api.Group("/reportes")
	reportHandler := NewReportHandler(deps.ReportUC, deps.Log)
	reportGroup.Get("/stock", reportHandler.CurrentStock)
	reportGroup.Get("/stock/pdf", reportHandler.CurrentStockPDF)
}
