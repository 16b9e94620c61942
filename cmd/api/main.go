package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/docs"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/application/alerts"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/application/inventory"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/application/reports"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/application/usecase"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/infrastructure/memcache"
	infrapdf "github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/infrastructure/pdf"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/infrastructure/postgres"
	httpRouter "github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/interfaces/http"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/pkg/config"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/pkg/logger"
)

// @title        Sistema de Inventarios API
// @version      1.0
// @description  Gestión de inventario por lotes: entradas, salidas, despacho FEFO y alertas.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.InitSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("inicialización del esquema")
	}

	// Repositorios sobre el pool (lecturas fuera de transacción)
	productRepo := postgres.NewProductRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	alertCache := memcache.New(cfg.Alert.CacheMaxEntries)
	cacheTTL := time.Duration(cfg.Alert.CacheTTLSeconds) * time.Second

	inventoryUC := inventory.NewUseCase(txRunner, lotRepo, movementRepo, alertCache, log)
	alertSvc := alerts.NewService(txRunner, alertRepo, alertCache, cacheTTL, cfg.Alert.ExpiryDays, log)
	productUC := usecase.NewProductUseCase(productRepo)

	pdfGenerator := infrapdf.NewMarotoStockReportGenerator()
	reportUC := reports.NewUseCase(productRepo, pdfGenerator, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		InventoryUC: inventoryUC,
		AlertSvc:    alertSvc,
		ReportUC:    reportUC,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
