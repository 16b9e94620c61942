package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/entity"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del historial de movimientos sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lista: los movimientos son inmutables.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, lot_id, kind, quantity, occurred_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.LotID, movement.Kind, movement.Quantity, movement.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByLot lista los movimientos de un lote, más recientes primero.
func (r *MovementRepo) ListByLot(ctx context.Context, lotID string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, lot_id, kind, quantity, occurred_at
		FROM movements WHERE lot_id = $1
		ORDER BY occurred_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, lotID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by lot: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.LotID, &m.Kind, &m.Quantity, &m.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
