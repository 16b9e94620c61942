// Package alerts implementa la reconciliación del ledger de alertas: diffea
// el estado actual de productos y lotes contra las alertas activas y crea o
// desactiva filas hasta que coincidan. Máquina de estados por
// (tipo, entidad): sin-alerta -> activa cuando la condición se cumple;
// activa -> inactiva cuando deja de cumplirse; si vuelve a cumplirse se crea
// una fila NUEVA, nunca se reactiva la desactivada (historial).
package alerts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/entity"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/repository"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/pkg/logger"
)

// cachePrefix prefijo de claves del cache de resultados de alertas.
// Debe coincidir con el que invalidan las mutaciones de stock.
const cachePrefix = "alerts:"

// Service reconcilia y sirve alertas. No hay scheduler: toda reconciliación
// es sincrónica y disparada por lecturas.
type Service struct {
	txRunner   AlertTxRunner
	alertRepo  repository.AlertRepository // lecturas fuera de transacción
	cache      ResultCache
	cacheTTL   time.Duration
	thresholds []int // umbrales de vencimiento (días) reconciliados en cada lectura
	log        *logger.Logger
}

// NewService construye el servicio de alertas.
func NewService(
	txRunner AlertTxRunner,
	alertRepo repository.AlertRepository,
	cache ResultCache,
	cacheTTL time.Duration,
	expiryThresholds []int,
	log *logger.Logger,
) *Service {
	return &Service{
		txRunner:   txRunner,
		alertRepo:  alertRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
		thresholds: expiryThresholds,
		log:        log,
	}
}

// ReconcileLowStock diffea los productos bajo su umbral de reorden contra las
// alertas activas de tipo low_stock: crea las que faltan (con snapshot de la
// entidad en metadata) y desactiva las que sobran. Productos ya alertados y
// aún bajo umbral quedan intactos.
func (s *Service) ReconcileLowStock(ctx context.Context) error {
	err := s.txRunner.RunAlerts(ctx, func(
		productRepo repository.ProductRepository,
		lotRepo repository.LotRepository,
		alertRepo repository.AlertRepository,
	) error {
		products, err := productRepo.ListBelowMinimum(ctx)
		if err != nil {
			return err
		}
		active, err := alertRepo.ListActive(ctx, entity.AlertKindLowStock)
		if err != nil {
			return err
		}

		activeByEntity := make(map[string]*entity.Alert, len(active))
		for _, a := range active {
			activeByEntity[a.EntityID] = a
		}
		belowByID := make(map[string]bool, len(products))

		for _, p := range products {
			belowByID[p.ID] = true
			if _, ok := activeByEntity[p.ID]; ok {
				continue // condición sigue activa: no-op
			}
			alert := &entity.Alert{
				AlertKind:  entity.AlertKindLowStock,
				EntityID:   p.ID,
				EntityKind: entity.AlertEntityProduct,
				Message: fmt.Sprintf("Stock bajo para '%s' (%s): cantidad actual %d, mínimo %d",
					p.Name, p.SKU, p.CurrentQuantity, p.MinimumQuantity),
				Metadata: map[string]any{
					"name":             p.Name,
					"sku":              p.SKU,
					"current_quantity": p.CurrentQuantity,
					"minimum_quantity": p.MinimumQuantity,
				},
			}
			if err := alertRepo.Create(ctx, alert); err != nil {
				// Otra reconciliación concurrente ya la creó: el índice único
				// parcial garantiza una sola activa por tupla.
				if errors.Is(err, domain.ErrDuplicate) {
					continue
				}
				return err
			}
			s.log.Info().Str("product_id", p.ID).Str("sku", p.SKU).Msg("alerta de stock bajo creada")
		}

		for _, a := range active {
			if belowByID[a.EntityID] {
				continue
			}
			if err := alertRepo.Deactivate(ctx, a.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
				return err
			}
			s.log.Info().Str("alert_id", a.ID).Msg("alerta de stock bajo desactivada")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.InvalidatePrefix(cachePrefix)
	return nil
}

// ReconcileExpiring diffea los lotes con remanente que vencen dentro del
// umbral (hoy exclusivo, hoy+días inclusivo) contra las alertas activas de
// ese umbral. Cada umbral es una población independiente: un mismo lote puede
// tener a lo sumo una alerta activa por umbral.
func (s *Service) ReconcileExpiring(ctx context.Context, daysThreshold int) error {
	if daysThreshold <= 0 {
		return domain.ErrInvalidInput
	}
	kind := entity.ExpiringAlertKind(daysThreshold)

	err := s.txRunner.RunAlerts(ctx, func(
		productRepo repository.ProductRepository,
		lotRepo repository.LotRepository,
		alertRepo repository.AlertRepository,
	) error {
		today := truncateToDay(time.Now())
		until := today.AddDate(0, 0, daysThreshold)

		expiring, err := lotRepo.ListExpiringWithin(ctx, today, until)
		if err != nil {
			return err
		}
		active, err := alertRepo.ListActive(ctx, kind)
		if err != nil {
			return err
		}

		activeByEntity := make(map[string]*entity.Alert, len(active))
		for _, a := range active {
			activeByEntity[a.EntityID] = a
		}
		expiringByID := make(map[string]bool, len(expiring))

		for _, e := range expiring {
			lot := e.Lot
			expiringByID[lot.ID] = true
			if _, ok := activeByEntity[lot.ID]; ok {
				continue
			}
			expDate := lot.ExpirationDate.Format("2006-01-02")
			alert := &entity.Alert{
				AlertKind:  kind,
				EntityID:   lot.ID,
				EntityKind: entity.AlertEntityLot,
				Message: fmt.Sprintf("El lote de '%s' (%s) vence el %s; quedan %d unidades",
					e.ProductName, e.ProductSKU, expDate, lot.RemainingQuantity),
				Metadata: map[string]any{
					"name":               e.ProductName,
					"sku":                e.ProductSKU,
					"remaining_quantity": lot.RemainingQuantity,
					"expiration_date":    expDate,
				},
			}
			if err := alertRepo.Create(ctx, alert); err != nil {
				if errors.Is(err, domain.ErrDuplicate) {
					continue
				}
				return err
			}
			s.log.Info().Str("lot_id", lot.ID).Str("kind", kind).Msg("alerta de vencimiento creada")
		}

		for _, a := range active {
			if expiringByID[a.EntityID] {
				continue
			}
			if err := alertRepo.Deactivate(ctx, a.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
				return err
			}
			s.log.Info().Str("alert_id", a.ID).Str("kind", kind).Msg("alerta de vencimiento desactivada")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.InvalidatePrefix(cachePrefix)
	return nil
}

// truncateToDay recorta un instante a medianoche local: los vencimientos son
// fechas, no instantes.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
