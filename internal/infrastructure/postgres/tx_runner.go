package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/application/alerts"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/application/inventory"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and alerts.AlertTxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ alerts.AlertTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Los fallos de serialización y deadlocks se traducen a domain.ErrConflict
// para que el caller sepa que puede reintentar la operación completa.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	lotRepo repository.LotRepository,
	movementRepo repository.MovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	lotRepo := NewLotRepository(tx)
	movementRepo := NewMovementRepository(tx)

	if err := fn(productRepo, lotRepo, movementRepo); err != nil {
		return translateTxError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return translateTxError(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

// RunAlerts inicia una transacción con los repos que necesita la reconciliación de alertas.
func (r *TxRunner) RunAlerts(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	lotRepo repository.LotRepository,
	alertRepo repository.AlertRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	lotRepo := NewLotRepository(tx)
	alertRepo := NewAlertRepository(tx)

	if err := fn(productRepo, lotRepo, alertRepo); err != nil {
		return translateTxError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return translateTxError(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

func translateTxError(err error) error {
	if isSerializationFailure(err) {
		return domain.ErrConflict
	}
	return err
}
