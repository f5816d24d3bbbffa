package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/aliskhannn/flash-cards-bot/internal/config"
	"github.com/aliskhannn/flash-cards-bot/internal/domain/entities"
	"github.com/aliskhannn/flash-cards-bot/internal/repository"
)

func TestRedisStores(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcredis.Run(ctx,
		"docker.io/redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("* Ready to accept connections").
				WithOccurrence(1).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := NewClient(ctx, config.Redis{URL: url})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	t.Run("conversation round trip", func(t *testing.T) {
		store := NewConversationStore(client, time.Hour, zap.NewNop())

		conv := &entities.Conversation{
			ID:     "c1",
			Locale: "en",
			Scene:  entities.SceneAskContinue,
			Session: entities.Session{
				Questions: []entities.Question{{Question: "Q", Answers: []string{"A", "B"}}},
				Limit:     1,
				Count:     1,
				Score:     1,
			},
		}
		require.NoError(t, store.Save(ctx, conv))

		got, err := store.Get(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, entities.SceneAskContinue, got.Scene)
		assert.Equal(t, []string{"A", "B"}, got.Session.Questions[0].Answers)
		assert.Equal(t, 1, got.Session.Score)

		ttl, err := client.TTL(ctx, conversationKeyPrefix+"c1").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))

		require.NoError(t, store.Delete(ctx, "c1"))
		_, err = store.Get(ctx, "c1")
		assert.ErrorIs(t, err, repository.ErrConversationNotFound)
	})

	t.Run("player touch", func(t *testing.T) {
		store := NewPlayerStore(client)

		prev, err := store.Touch(ctx, "p1")
		require.NoError(t, err)
		assert.True(t, prev.IsZero())

		prev, err = store.Touch(ctx, "p1")
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), prev, time.Minute)
	})
}
