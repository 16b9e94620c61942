package alerts

import (
	"context"
	"time"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/repository"
)

// AlertTxRunner ejecuta una reconciliación dentro de una transacción de BD,
// pasando repositorios atados a esa tx. El diff (leer estado, crear y
// desactivar alertas) comitea como una unidad.
type AlertTxRunner interface {
	RunAlerts(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		lotRepo repository.LotRepository,
		alertRepo repository.AlertRepository,
	) error) error
}

// ResultCache puerto del cache de resultados que frontea la lectura de
// alertas. Nunca es fuente de verdad; las escrituras lo invalidan sincrónicamente.
type ResultCache interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
	InvalidatePrefix(prefix string)
}
