// Package postgres implements the storage interface against PostgreSQL.
// Every operation is a single round trip on the shared pgx pool; concurrency
// control is delegated entirely to the database engine.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"wastenot/internal/domain"
)

// compile-time check that *Store implements domain.Storage
var _ domain.Storage = (*Store)(nil)

// Store is the durable storage backend.
type Store struct {
	pool *pgxpool.Pool
}

// New wraps an existing pool and bootstraps the schema. Tables are created
// with CREATE TABLE IF NOT EXISTS, so calling this on an initialized database
// is a no-op.
func New(ctx context.Context, pool *pgxpool.Pool) (*Store, error) {
	s := &Store{pool: pool}
	if err := s.bootstrap(ctx); err != nil {
		return nil, fmt.Errorf("postgres: bootstrap schema: %w", err)
	}
	return s, nil
}

// bootstrap creates the four entity tables. BIGSERIAL ids are monotonic and
// never reused after deletion, matching the memory backend's counters. The
// UNIQUE constraints on username/email are the durable backend's own
// enforcement; the storage interface itself does not pre-check them.
func (s *Store) bootstrap(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS users (
	id         BIGSERIAL PRIMARY KEY,
	username   TEXT NOT NULL UNIQUE,
	email      TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	name       TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS products (
	id           BIGSERIAL PRIMARY KEY,
	name         TEXT NOT NULL,
	description  TEXT NOT NULL,
	category     TEXT NOT NULL,
	donor_id     BIGINT REFERENCES users(id),
	image_url    TEXT,
	is_available BOOLEAN NOT NULL DEFAULT TRUE,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);

CREATE TABLE IF NOT EXISTS agents (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	area       TEXT NOT NULL,
	rating     DOUBLE PRECISION NOT NULL DEFAULT 5.0,
	bio        TEXT,
	image_url  TEXT,
	user_id    BIGINT REFERENCES users(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS donations (
	id         BIGSERIAL PRIMARY KEY,
	donor_name TEXT NOT NULL,
	email      TEXT NOT NULL,
	amount     DOUBLE PRECISION NOT NULL,
	message    TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`)
	return err
}
