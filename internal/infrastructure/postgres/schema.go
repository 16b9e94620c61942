package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema DDL idempotente del ledger de inventario. El índice único parcial
// uq_alerts_active respalda el invariante de una sola alerta activa por
// (alert_kind, entity_id, entity_kind) incluso bajo reconciliaciones concurrentes.
const schema = `
CREATE TABLE IF NOT EXISTS products (
	id UUID PRIMARY KEY,
	sku TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	price NUMERIC(12,2) NOT NULL CHECK (price > 0),
	current_quantity BIGINT NOT NULL DEFAULT 0 CHECK (current_quantity >= 0),
	minimum_quantity BIGINT NOT NULL DEFAULT 5 CHECK (minimum_quantity >= 0),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS lots (
	id UUID PRIMARY KEY,
	product_id UUID NOT NULL REFERENCES products(id),
	received_quantity BIGINT NOT NULL CHECK (received_quantity > 0),
	remaining_quantity BIGINT NOT NULL
		CHECK (remaining_quantity >= 0 AND remaining_quantity <= received_quantity),
	expiration_date DATE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_lots_fefo
	ON lots (product_id, expiration_date ASC NULLS LAST, created_at ASC)
	WHERE remaining_quantity > 0;

CREATE TABLE IF NOT EXISTS movements (
	id UUID PRIMARY KEY,
	lot_id UUID NOT NULL REFERENCES lots(id),
	kind TEXT NOT NULL CHECK (kind IN ('entry', 'exit')),
	quantity BIGINT NOT NULL CHECK (quantity > 0),
	occurred_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_movements_lot ON movements (lot_id, occurred_at DESC);

CREATE TABLE IF NOT EXISTS alerts (
	id UUID PRIMARY KEY,
	alert_kind TEXT NOT NULL,
	entity_id UUID NOT NULL,
	entity_kind TEXT NOT NULL CHECK (entity_kind IN ('product', 'lot')),
	message TEXT NOT NULL,
	metadata JSONB,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	is_active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE UNIQUE INDEX IF NOT EXISTS uq_alerts_active
	ON alerts (alert_kind, entity_id, entity_kind)
	WHERE is_active;

CREATE INDEX IF NOT EXISTS idx_alerts_active_kind ON alerts (alert_kind) WHERE is_active;
`

// InitSchema crea las tablas e índices si no existen. Seguro de ejecutar en cada arranque.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}
