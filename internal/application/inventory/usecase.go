package inventory

import (
	"context"
	"time"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/entity"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/repository"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/pkg/logger"
)

// AlertCachePrefix prefijo de las claves de cache de alertas que se invalidan
// en cada mutación de stock.
const AlertCachePrefix = "alerts:"

// UseCase implementa el motor de inventario: entradas, salidas y despacho FEFO.
// Toda mutación corre en una transacción con bloqueo de fila (SELECT FOR UPDATE),
// siempre en el orden producto -> lote para evitar deadlocks entre operaciones.
type UseCase struct {
	txRunner TxRunner
	lotRepo  repository.LotRepository      // lecturas fuera de transacción
	movRepo  repository.MovementRepository // lecturas fuera de transacción
	cache    AlertCacheInvalidator
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	lotRepo repository.LotRepository,
	movRepo repository.MovementRepository,
	cache AlertCacheInvalidator,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner: txRunner,
		lotRepo:  lotRepo,
		movRepo:  movRepo,
		cache:    cache,
		log:      log,
	}
}

// RegisterEntry registra una entrada: crea un Lote con remanente igual a lo
// recibido, un Movimiento de entrada y suma la cantidad al stock del producto.
// Las tres escrituras comitean juntas o ninguna.
func (uc *UseCase) RegisterEntry(ctx context.Context, productID string, receivedQuantity int64, expirationDate *time.Time) (*entity.Lot, error) {
	if productID == "" || receivedQuantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.Lot
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

		lot := entity.NewLot(productID, receivedQuantity, expirationDate)
		if err := lotRepo.Create(ctx, lot); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(ctx, product.ID, product.CurrentQuantity+receivedQuantity); err != nil {
			return err
		}
		mov := &entity.Movement{
			LotID:      lot.ID,
			Kind:       entity.MovementKindEntry,
			Quantity:   receivedQuantity,
			OccurredAt: time.Now(),
		}
		if err := movementRepo.Create(ctx, mov); err != nil {
			return err
		}
		created = lot
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.cache.InvalidatePrefix(AlertCachePrefix)
	uc.log.Info().
		Str("product_id", productID).
		Str("lot_id", created.ID).
		Int64("quantity", receivedQuantity).
		Msg("entrada de inventario registrada")
	return created, nil
}

// RegisterExit registra una salida contra un lote concreto: verifica el
// remanente bajo bloqueo de fila, lo decrementa junto con el stock del
// producto y crea el Movimiento de salida. La verificación y el decremento
// viven en la misma transacción; dos salidas concurrentes no pueden pasar
// ambas el chequeo si su suma excede el remanente.
func (uc *UseCase) RegisterExit(ctx context.Context, lotID string, quantity int64) (*entity.Movement, error) {
	if lotID == "" || quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.Movement
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		lotRepo repository.LotRepository,
		movementRepo repository.MovementRepository,
	) error {
		// Lectura sin bloqueo solo para conocer el producto dueño del lote;
		// el remanente autoritativo se relee tras tomar ambos bloqueos.
		peek, err := lotRepo.GetByID(ctx, lotID)
		if err != nil {
			return err
		}
		if peek == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetForUpdate(ctx, peek.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		lot, err := lotRepo.GetForUpdate(ctx, lotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrNotFound
		}

		if lot.RemainingQuantity < quantity {
			return &domain.InsufficientStockError{
				SKU:       product.SKU,
				Requested: quantity,
				Available: lot.RemainingQuantity,
			}
		}

		if err := lotRepo.UpdateRemaining(ctx, lot.ID, lot.RemainingQuantity-quantity); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(ctx, product.ID, product.CurrentQuantity-quantity); err != nil {
			return err
		}
		mov := &entity.Movement{
			LotID:      lot.ID,
			Kind:       entity.MovementKindExit,
			Quantity:   quantity,
			OccurredAt: time.Now(),
		}
		if err := movementRepo.Create(ctx, mov); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.cache.InvalidatePrefix(AlertCachePrefix)
	uc.log.Info().
		Str("lot_id", lotID).
		Int64("quantity", quantity).
		Msg("salida de inventario registrada")
	return created, nil
}

// GetLot obtiene un lote por ID.
func (uc *UseCase) GetLot(ctx context.Context, lotID string) (*entity.Lot, error) {
	lot, err := uc.lotRepo.GetByID(ctx, lotID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	return lot, nil
}

// ListLotMovements lista el historial de movimientos de un lote.
func (uc *UseCase) ListLotMovements(ctx context.Context, lotID string, limit, offset int) ([]*entity.Movement, error) {
	lot, err := uc.lotRepo.GetByID(ctx, lotID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movRepo.ListByLot(ctx, lotID, limit, offset)
}
