package alerts

import (
	"context"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/entity"
)

// Camino de lectura: toda lectura de alertas activas reconcilia primero
// (stock bajo + todos los umbrales de vencimiento configurados, más el
// solicitado) y después consulta las filas activas, de modo que el resultado
// refleja el estado del inventario al momento de leer. El cache de resultados
// solo evita repetir ese trabajo mientras nada haya cambiado.

// ActiveAlerts devuelve las alertas activas, opcionalmente filtradas por tipo.
// kind vacío devuelve todas.
func (s *Service) ActiveAlerts(ctx context.Context, kind string) ([]*entity.Alert, error) {
	return s.readActive(ctx, kind)
}

// ActiveLowStock devuelve las alertas activas de stock bajo.
func (s *Service) ActiveLowStock(ctx context.Context) ([]*entity.Alert, error) {
	return s.readActive(ctx, entity.AlertKindLowStock)
}

// ActiveExpiring devuelve las alertas activas de vencimiento para un umbral
// de días, reconciliando ese umbral aunque no esté en los configurados.
func (s *Service) ActiveExpiring(ctx context.Context, daysThreshold int) ([]*entity.Alert, error) {
	return s.readActive(ctx, entity.ExpiringAlertKind(daysThreshold), daysThreshold)
}

func (s *Service) readActive(ctx context.Context, kind string, extraThresholds ...int) ([]*entity.Alert, error) {
	key := cachePrefix + "active:" + kind
	if v, ok := s.cache.Get(key); ok {
		if cached, ok := v.([]*entity.Alert); ok {
			return copyAlerts(cached), nil
		}
	}

	if err := s.reconcileAll(ctx, extraThresholds...); err != nil {
		return nil, err
	}

	list, err := s.alertRepo.ListActive(ctx, kind)
	if err != nil {
		return nil, err
	}
	// El cache guarda y sirve copias: una mutación del slice devuelto no debe
	// envenenar los hits siguientes.
	s.cache.Set(key, copyAlerts(list), s.cacheTTL)
	return list, nil
}

func copyAlerts(list []*entity.Alert) []*entity.Alert {
	out := make([]*entity.Alert, len(list))
	for i, a := range list {
		cp := *a
		if a.Metadata != nil {
			md := make(map[string]any, len(a.Metadata))
			for k, v := range a.Metadata {
				md[k] = v
			}
			cp.Metadata = md
		}
		out[i] = &cp
	}
	return out
}

// reconcileAll corre la pasada de stock bajo y una pasada de vencimiento por
// cada umbral configurado más los extra solicitados, sin repetir umbrales.
func (s *Service) reconcileAll(ctx context.Context, extraThresholds ...int) error {
	if err := s.ReconcileLowStock(ctx); err != nil {
		return err
	}
	seen := make(map[int]bool, len(s.thresholds)+len(extraThresholds))
	for _, days := range append(append([]int{}, s.thresholds...), extraThresholds...) {
		if days <= 0 || seen[days] {
			continue
		}
		seen[days] = true
		if err := s.ReconcileExpiring(ctx, days); err != nil {
			return err
		}
	}
	return nil
}
