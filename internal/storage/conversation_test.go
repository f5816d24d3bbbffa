package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/flash-cards-bot/internal/domain/entities"
	"github.com/aliskhannn/flash-cards-bot/internal/repository"
)

func TestConversationStorage(t *testing.T) {
	ctx := context.Background()
	s := NewConversationStorage(time.Hour)

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrConversationNotFound)

	conv := &entities.Conversation{
		ID:     "c1",
		Locale: "en",
		Scene:  entities.SceneAskQuestion,
		Session: entities.Session{
			Questions: []entities.Question{{Question: "Q", Answers: []string{"A"}}},
			Limit:     1,
		},
	}
	require.NoError(t, s.Save(ctx, conv))
	assert.False(t, conv.UpdatedAt.IsZero())

	// mutating the caller's copy does not leak into storage
	conv.Session.Questions[0].Answers[0] = "changed"

	got, err := s.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Session.Questions[0].Answers[0])

	got.Session.Score = 5
	again, err := s.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Zero(t, again.Session.Score)

	require.NoError(t, s.Delete(ctx, "c1"))
	_, err = s.Get(ctx, "c1")
	assert.ErrorIs(t, err, repository.ErrConversationNotFound)
}

func TestConversationStorageExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewConversationStorage(time.Minute)

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Save(ctx, &entities.Conversation{ID: "old"}))

	now = now.Add(2 * time.Minute)
	_, err := s.Get(ctx, "old")
	assert.ErrorIs(t, err, repository.ErrConversationNotFound)

	require.NoError(t, s.Save(ctx, &entities.Conversation{ID: "new"}))
	s.mu.RLock()
	_, stillThere := s.conversations["old"]
	s.mu.RUnlock()
	assert.False(t, stillThere)
}

func TestConversationStoragePurgeExpired(t *testing.T) {
	ctx := context.Background()
	s := NewConversationStorage(time.Minute)

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Save(ctx, &entities.Conversation{ID: "a"}))
	require.NoError(t, s.Save(ctx, &entities.Conversation{ID: "b"}))

	n, err := s.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	now = now.Add(90 * time.Second)
	require.NoError(t, s.Save(ctx, &entities.Conversation{ID: "a"}))
	now = now.Add(30 * time.Second)

	n, err = s.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n, "b was already evicted by the last save")

	now = now.Add(time.Hour)
	n, err = s.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestPlayerStorageTouch(t *testing.T) {
	ctx := context.Background()
	s := NewPlayerStorage()

	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return first }

	prev, err := s.Touch(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, prev.IsZero())

	s.now = func() time.Time { return first.Add(time.Hour) }
	prev, err = s.Touch(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, first, prev)
}
