package database

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func NewPool(dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Database connected successfully")

	return pool, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	cat TEXT NOT NULL,
	stoc INTEGER NOT NULL DEFAULT 0 CHECK (stoc >= 0),
	barcode TEXT,
	current_location TEXT NOT NULL DEFAULT 'warehouse',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE UNIQUE INDEX IF NOT EXISTS products_barcode_key ON products (barcode) WHERE barcode IS NOT NULL;

CREATE TABLE IF NOT EXISTS consumptions (
	id UUID PRIMARY KEY,
	product_id UUID NOT NULL REFERENCES products(id),
	cant INTEGER NOT NULL CHECK (cant > 0),
	date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	consumed_by TEXT,
	locm TEXT
);

CREATE TABLE IF NOT EXISTS documents (
	id UUID PRIMARY KEY,
	product_id UUID NOT NULL REFERENCES products(id),
	file_name TEXT NOT NULL,
	file_bytes BYTEA NOT NULL,
	document_type TEXT NOT NULL DEFAULT 'other',
	content_type TEXT NOT NULL DEFAULT 'application/pdf',
	uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS location_history (
	id UUID PRIMARY KEY,
	product_id UUID NOT NULL REFERENCES products(id),
	from_location TEXT,
	to_location TEXT NOT NULL,
	moved_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS location_history_product_idx ON location_history (product_id, moved_at DESC);
`

// InitSchema creates the tables when they do not exist yet. The statements
// are idempotent so this runs on every start.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
