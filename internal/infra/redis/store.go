package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/aliskhannn/flash-cards-bot/internal/domain/entities"
	"github.com/aliskhannn/flash-cards-bot/internal/repository"
)

const (
	conversationKeyPrefix = "flashcards:conversation:"
	playerKeyPrefix       = "flashcards:player:"
)

// ConversationStore keeps conversations as JSON values that expire after ttl.
type ConversationStore struct {
	client *goredis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewConversationStore(client *goredis.Client, ttl time.Duration, logger *zap.Logger) *ConversationStore {
	return &ConversationStore{
		client: client,
		ttl:    ttl,
		logger: logger.Named("redis_conversations"),
	}
}

func (s *ConversationStore) Get(ctx context.Context, id string) (*entities.Conversation, error) {
	data, err := s.client.Get(ctx, conversationKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrConversationNotFound
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}

	var conv entities.Conversation
	if err := json.Unmarshal(data, &conv); err != nil {
		s.logger.Warn("dropping undecodable conversation", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("decode conversation: %w", err)
	}

	return &conv, nil
}

// Save stores the conversation and refreshes its expiry.
func (s *ConversationStore) Save(ctx context.Context, conv *entities.Conversation) error {
	conv.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(conv)
	if err != nil {
		return fmt.Errorf("encode conversation: %w", err)
	}

	if err := s.client.Set(ctx, conversationKeyPrefix+conv.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save conversation: %w", err)
	}

	s.logger.Debug("conversation saved",
		zap.String("id", conv.ID),
		zap.String("scene", string(conv.Scene)),
		zap.Duration("ttl", s.ttl),
	)
	return nil
}

func (s *ConversationStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, conversationKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete conversation: %w", err)
	}
	return nil
}

// PlayerStore remembers when players were last seen.
type PlayerStore struct {
	client *goredis.Client
}

func NewPlayerStore(client *goredis.Client) *PlayerStore {
	return &PlayerStore{client: client}
}

// Touch records the player as seen now and returns the previous visit,
// or the zero time for a first-time player.
func (s *PlayerStore) Touch(ctx context.Context, id string) (time.Time, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	prev, err := s.client.SetArgs(ctx, playerKeyPrefix+id, now, goredis.SetArgs{Get: true}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("touch player: %w", err)
	}

	seen, err := time.Parse(time.RFC3339Nano, prev)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse last seen: %w", err)
	}
	return seen, nil
}
