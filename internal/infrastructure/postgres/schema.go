package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Bootstrap crea las tablas si no existen. Los constraints de abajo son el
// respaldo final de las invariantes del dominio: CHECK (quantity >= 0) y
// UNIQUE (product_id, branch_id) en stock, CHECK de cantidad positiva y de
// sucursales distintas en movements, y FKs RESTRICT para que productos y
// sucursales referenciados no puedan eliminarse.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id            TEXT PRIMARY KEY,
			name          VARCHAR(100) NOT NULL UNIQUE,
			vintage       INTEGER,
			region        VARCHAR(100),
			grape_variety VARCHAR(100),
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS branches (
			id         TEXT PRIMARY KEY,
			name       VARCHAR(100) NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS stock (
			id         TEXT PRIMARY KEY,
			product_id TEXT NOT NULL REFERENCES products (id) ON DELETE RESTRICT,
			branch_id  TEXT NOT NULL REFERENCES branches (id) ON DELETE RESTRICT,
			quantity   BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT uix_product_branch UNIQUE (product_id, branch_id),
			CONSTRAINT check_quantity_non_negative CHECK (quantity >= 0)
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id              TEXT PRIMARY KEY,
			username        VARCHAR(50) NOT NULL UNIQUE,
			name            VARCHAR(100) NOT NULL,
			email           VARCHAR(120) UNIQUE,
			hashed_password VARCHAR(255) NOT NULL,
			role            VARCHAR(10) NOT NULL DEFAULT 'user',
			created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS movements (
			id                    TEXT PRIMARY KEY,
			product_id            TEXT NOT NULL REFERENCES products (id) ON DELETE RESTRICT,
			quantity              BIGINT NOT NULL CHECK (quantity > 0),
			origin_branch_id      TEXT NOT NULL REFERENCES branches (id) ON DELETE RESTRICT,
			destination_branch_id TEXT NOT NULL REFERENCES branches (id) ON DELETE RESTRICT,
			user_id               TEXT NOT NULL REFERENCES users (id) ON DELETE RESTRICT,
			timestamp             TIMESTAMPTZ NOT NULL DEFAULT now(),
			notes                 TEXT,
			CONSTRAINT check_distinct_branches CHECK (origin_branch_id <> destination_branch_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_movements_timestamp ON movements (timestamp DESC)`,
		`CREATE TABLE IF NOT EXISTS clients (
			id         TEXT PRIMARY KEY,
			name       VARCHAR(100) NOT NULL,
			email      VARCHAR(120) NOT NULL UNIQUE,
			phone      VARCHAR(20) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS oauth_clients (
			id            TEXT PRIMARY KEY,
			client_id     VARCHAR(100) NOT NULL UNIQUE,
			client_secret VARCHAR(255) NOT NULL,
			name          VARCHAR(100) NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}
