package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS quiz_sessions (
		id         TEXT PRIMARY KEY,
		locale     TEXT NOT NULL,
		scene      TEXT NOT NULL,
		session    JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS quiz_sessions_updated_at_idx ON quiz_sessions (updated_at)`,
	`CREATE TABLE IF NOT EXISTS players (
		id        TEXT PRIMARY KEY,
		last_seen TIMESTAMPTZ NOT NULL
	)`,
}

// Migrate creates the tables used for conversation state.
func Migrate(ctx context.Context, t *Transactor) error {
	return t.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
		return nil
	})
}
