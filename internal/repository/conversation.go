package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aliskhannn/flash-cards-bot/internal/domain/entities"
)

var ErrConversationNotFound = errors.New("conversation not found")

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ConversationRepository keeps conversations in the quiz_sessions table.
type ConversationRepository struct {
	db  DBTX
	ttl time.Duration
}

// NewConversationRepository creates a repository that ignores conversations idle for longer than ttl.
func NewConversationRepository(db DBTX, ttl time.Duration) *ConversationRepository {
	return &ConversationRepository{db: db, ttl: ttl}
}

// Get returns the conversation with the given ID.
func (r *ConversationRepository) Get(ctx context.Context, id string) (*entities.Conversation, error) {
	query := `
		SELECT id, locale, scene, session, updated_at
		FROM quiz_sessions
		WHERE id = $1 AND updated_at > now() - make_interval(secs => $2)
	`

	var (
		conv    entities.Conversation
		scene   string
		session []byte
	)
	err := r.db.QueryRow(ctx, query, id, r.ttl.Seconds()).Scan(
		&conv.ID,
		&conv.Locale,
		&scene,
		&session,
		&conv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}

	conv.Scene = entities.Scene(scene)
	if err := json.Unmarshal(session, &conv.Session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	return &conv, nil
}

// Save inserts the conversation or replaces the stored one.
func (r *ConversationRepository) Save(ctx context.Context, conv *entities.Conversation) error {
	session, err := json.Marshal(conv.Session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	query := `
		INSERT INTO quiz_sessions (id, locale, scene, session, updated_at)
		VALUES ($1, $2, $3, $4::jsonb, now())
		ON CONFLICT (id) DO UPDATE
		SET locale = EXCLUDED.locale,
		    scene = EXCLUDED.scene,
		    session = EXCLUDED.session,
		    updated_at = EXCLUDED.updated_at
		RETURNING updated_at
	`

	err = r.db.QueryRow(ctx, query, conv.ID, conv.Locale, string(conv.Scene), string(session)).Scan(&conv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save conversation: %w", err)
	}

	return nil
}

// Delete removes the conversation. Deleting a missing conversation is not an error.
func (r *ConversationRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM quiz_sessions WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete conversation: %w", err)
	}
	return nil
}

// PurgeExpired deletes every conversation idle for longer than the ttl and reports how many were removed.
func (r *ConversationRepository) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM quiz_sessions WHERE updated_at <= now() - make_interval(secs => $1)",
		r.ttl.Seconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("purge conversations: %w", err)
	}
	return tag.RowsAffected(), nil
}
