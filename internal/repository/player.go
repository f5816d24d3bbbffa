package repository

import (
	"context"
	"fmt"
	"time"
)

// PlayerRepository tracks when players were last seen.
type PlayerRepository struct {
	db DBTX
}

// NewPlayerRepository creates a new PlayerRepository.
func NewPlayerRepository(db DBTX) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Touch records the player as seen now and returns the previous visit,
// or the zero time for a first-time player.
func (r *PlayerRepository) Touch(ctx context.Context, id string) (time.Time, error) {
	query := `
		WITH prev AS (
			SELECT last_seen FROM players WHERE id = $1
		)
		INSERT INTO players (id, last_seen)
		VALUES ($1, now())
		ON CONFLICT (id) DO UPDATE SET last_seen = EXCLUDED.last_seen
		RETURNING (SELECT last_seen FROM prev)
	`

	var prev *time.Time
	if err := r.db.QueryRow(ctx, query, id).Scan(&prev); err != nil {
		return time.Time{}, fmt.Errorf("touch player: %w", err)
	}
	if prev == nil {
		return time.Time{}, nil
	}
	return *prev, nil
}
