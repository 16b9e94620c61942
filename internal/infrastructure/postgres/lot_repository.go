package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/entity"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

const lotColumns = `id, product_id, received_quantity, remaining_quantity, expiration_date, created_at`

// LotRepo implementación del puerto LotRepository sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// Create persiste un lote nuevo.
func (r *LotRepo) Create(ctx context.Context, lot *entity.Lot) error {
	if lot.ID == "" {
		lot.ID = uuid.New().String()
	}
	lot.CreatedAt = time.Now()
	query := `
		INSERT INTO lots (id, product_id, received_quantity, remaining_quantity, expiration_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		lot.ID, lot.ProductID, lot.ReceivedQuantity, lot.RemainingQuantity,
		lot.ExpirationDate, lot.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *LotRepo) GetByID(ctx context.Context, id string) (*entity.Lot, error) {
	return r.get(ctx, `SELECT `+lotColumns+` FROM lots WHERE id = $1`, id)
}

// GetForUpdate obtiene el lote y bloquea su fila (SELECT FOR UPDATE).
func (r *LotRepo) GetForUpdate(ctx context.Context, id string) (*entity.Lot, error) {
	return r.get(ctx, `SELECT `+lotColumns+` FROM lots WHERE id = $1 FOR UPDATE`, id)
}

func (r *LotRepo) get(ctx context.Context, query, id string) (*entity.Lot, error) {
	var l entity.Lot
	err := r.q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.ProductID, &l.ReceivedQuantity, &l.RemainingQuantity,
		&l.ExpirationDate, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return &l, nil
}

// ListAvailableForUpdate devuelve los lotes con remanente de un producto en
// orden FEFO (vencimiento ascendente, NULL al final, empates por creación)
// y bloquea las filas para el despacho.
func (r *LotRepo) ListAvailableForUpdate(ctx context.Context, productID string) ([]*entity.Lot, error) {
	query := `
		SELECT ` + lotColumns + `
		FROM lots
		WHERE product_id = $1 AND remaining_quantity > 0
		ORDER BY expiration_date ASC NULLS LAST, created_at ASC, id ASC
		FOR UPDATE`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list available lots: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lot
	for rows.Next() {
		var l entity.Lot
		if err := rows.Scan(&l.ID, &l.ProductID, &l.ReceivedQuantity, &l.RemainingQuantity,
			&l.ExpirationDate, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ListExpiringWithin devuelve los lotes con remanente cuyo vencimiento cae en
// (after, until], junto con nombre y SKU del producto para el snapshot de la alerta.
func (r *LotRepo) ListExpiringWithin(ctx context.Context, after, until time.Time) ([]*repository.ExpiringLot, error) {
	query := `
		SELECT l.id, l.product_id, l.received_quantity, l.remaining_quantity, l.expiration_date, l.created_at,
		       p.name, p.sku
		FROM lots l
		JOIN products p ON p.id = l.product_id
		WHERE l.expiration_date IS NOT NULL
		  AND l.remaining_quantity > 0
		  AND l.expiration_date > $1
		  AND l.expiration_date <= $2
		ORDER BY l.expiration_date ASC, l.id ASC`
	rows, err := r.q.Query(ctx, query, after, until)
	if err != nil {
		return nil, fmt.Errorf("list expiring lots: %w", err)
	}
	defer rows.Close()
	var list []*repository.ExpiringLot
	for rows.Next() {
		var e repository.ExpiringLot
		if err := rows.Scan(&e.Lot.ID, &e.Lot.ProductID, &e.Lot.ReceivedQuantity,
			&e.Lot.RemainingQuantity, &e.Lot.ExpirationDate, &e.Lot.CreatedAt,
			&e.ProductName, &e.ProductSKU); err != nil {
			return nil, fmt.Errorf("scan expiring lot: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// UpdateRemaining fija el remanente del lote. El caller debe tener la fila
// bloqueada; el CHECK de la tabla rechaza remanentes fuera de [0, recibido].
func (r *LotRepo) UpdateRemaining(ctx context.Context, id string, remaining int64) error {
	query := `UPDATE lots SET remaining_quantity = $2 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, remaining)
	if err != nil {
		return fmt.Errorf("update lot remaining: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
