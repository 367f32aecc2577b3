package pg

import (
	"context"
)

const createEvaluationsTable = `
CREATE TABLE IF NOT EXISTS evaluations (
	id         SERIAL PRIMARY KEY,
	first      DOUBLE PRECISION NOT NULL,
	second     DOUBLE PRECISION NOT NULL,
	operation  TEXT NOT NULL,
	result     DOUBLE PRECISION,
	diagnostic TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate creates the evaluations table if it does not exist.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.ExecContext(ctx, createEvaluationsTable)
	return err
}
