package inventory

import (
	"context"
	"time"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/entity"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/repository"
)

// Dispatch satisface una cantidad solicitada consumiendo lotes en orden FEFO
// (First Expired, First Out): vencimiento ascendente, lotes sin vencimiento al
// final. Produce un Movimiento por lote tocado, en el orden de consumo.
//
// El chequeo de disponibilidad se hace una sola vez, al inicio, contra el
// agregado del producto con su fila bloqueada; como toda mutación de stock
// toma ese mismo bloqueo primero, el agregado no puede cambiar por debajo
// durante el recorrido de lotes. El stock del producto se decrementa una sola
// vez al final por el total despachado.
func (uc *UseCase) Dispatch(ctx context.Context, productID string, quantity int64) ([]*entity.Movement, error) {
	if productID == "" || quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var created []*entity.Movement
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		lotRepo repository.LotRepository,
		movementRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.CurrentQuantity < quantity {
			return &domain.InsufficientStockError{
				SKU:       product.SKU,
				Requested: quantity,
				Available: product.CurrentQuantity,
			}
		}

		lots, err := lotRepo.ListAvailableForUpdate(ctx, productID)
		if err != nil {
			return err
		}

		// Un solo timestamp para todo el despacho: los movimientos de una
		// misma llamada quedan con occurred_at no decreciente.
		now := time.Now()
		needed := quantity

		for _, lot := range lots {
			if needed == 0 {
				break
			}
			take := lot.RemainingQuantity
			if take > needed {
				take = needed
			}
			// Chequeo defensivo: con los bloqueos tomados el remanente no
			// puede haber cambiado, pero jamás persistimos un negativo.
			if take <= 0 || lot.RemainingQuantity-take < 0 {
				return domain.ErrConflict
			}
			if err := lotRepo.UpdateRemaining(ctx, lot.ID, lot.RemainingQuantity-take); err != nil {
				return err
			}
			mov := &entity.Movement{
				LotID:      lot.ID,
				Kind:       entity.MovementKindExit,
				Quantity:   take,
				OccurredAt: now,
			}
			if err := movementRepo.Create(ctx, mov); err != nil {
				return err
			}
			created = append(created, mov)
			needed -= take
		}

		// El agregado prometía stock suficiente; si los lotes no alcanzaron,
		// el estado cambió por debajo y la operación completa debe fallar.
		if needed > 0 {
			return domain.ErrConflict
		}

		return productRepo.UpdateQuantity(ctx, product.ID, product.CurrentQuantity-quantity)
	})
	if err != nil {
		return nil, err
	}

	uc.cache.InvalidatePrefix(AlertCachePrefix)
	uc.log.Info().
		Str("product_id", productID).
		Int64("quantity", quantity).
		Int("lots_consumed", len(created)).
		Msg("despacho FEFO completado")
	return created, nil
}
