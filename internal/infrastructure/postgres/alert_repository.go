package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/entity"
	"github.com/Sistema-de-inventario-2026573-2025-II/sistema-inventarios/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación del puerto AlertRepository sobre PostgreSQL (usable con pool o tx).
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de alertas. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Create persiste una alerta activa nueva. Si el índice único parcial detecta
// que ya hay una activa para la misma tupla devuelve domain.ErrDuplicate.
// ON CONFLICT DO NOTHING en lugar de dejar saltar el 23505: un unique
// violation aborta la transacción entera y las escrituras restantes del
// mismo callback fallarían con 25P02.
func (r *AlertRepo) Create(ctx context.Context, alert *entity.Alert) error {
	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	alert.CreatedAt = time.Now()
	alert.IsActive = true

	var metadata []byte
	if alert.Metadata != nil {
		var err error
		metadata, err = json.Marshal(alert.Metadata)
		if err != nil {
			return fmt.Errorf("marshal alert metadata: %w", err)
		}
	}
	query := `
		INSERT INTO alerts (id, alert_kind, entity_id, entity_kind, message, metadata, created_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		ON CONFLICT (alert_kind, entity_id, entity_kind) WHERE is_active DO NOTHING`
	tag, err := r.q.Exec(ctx, query,
		alert.ID, alert.AlertKind, alert.EntityID, alert.EntityKind,
		alert.Message, metadata, alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDuplicate
	}
	return nil
}

// ListActive devuelve alertas activas; kind vacío = todas. Más recientes primero.
func (r *AlertRepo) ListActive(ctx context.Context, kind string) ([]*entity.Alert, error) {
	query := `
		SELECT id, alert_kind, entity_id, entity_kind, message, metadata, created_at, is_active
		FROM alerts WHERE is_active`
	args := []any{}
	if kind != "" {
		query += ` AND alert_kind = $1`
		args = append(args, kind)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list active alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Alert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Deactivate marca la alerta como inactiva. La fila queda como historial.
func (r *AlertRepo) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE alerts SET is_active = FALSE WHERE id = $1 AND is_active`
	tag, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivate alert: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanAlert(rows pgx.Rows) (*entity.Alert, error) {
	var a entity.Alert
	var metadata []byte
	if err := rows.Scan(&a.ID, &a.AlertKind, &a.EntityID, &a.EntityKind,
		&a.Message, &metadata, &a.CreatedAt, &a.IsActive); err != nil {
		return nil, fmt.Errorf("scan alert: %w", err)
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &a.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal alert metadata: %w", err)
		}
	}
	return &a, nil
}
