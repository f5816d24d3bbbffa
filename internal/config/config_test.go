package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SESSION_BACKEND", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, 500*time.Millisecond, cfg.Speech.BreakTime)
	assert.Equal(t, "The Flash Cards Game", cfg.Quiz.Title)
	assert.Equal(t, 5, cfg.Quiz.QuestionsPerGame)
	assert.Equal(t, 10, cfg.Quiz.MaxQuestionsPerGame)
	assert.True(t, cfg.Quiz.RandomizeQuestions)
	assert.Equal(t, []string{"https://actions.google.com/sounds/v1/cartoon/wood_plank_flicks.ogg"}, cfg.Quiz.AudioCorrect)
	assert.Equal(t, BackendMemory, cfg.Session.Backend)
	assert.Equal(t, "@every 10m", cfg.Session.SweepSchedule)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("QUIZ_QUESTIONS_PER_GAME", "7")
	t.Setenv("TELEGRAM_API_TOKEN", "token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 7, cfg.Quiz.QuestionsPerGame)
	assert.NoError(t, cfg.RequireTelegram())
}

func TestLoad_BackendNeedsURL(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name    string
		backend string
	}{
		{name: "postgres", backend: BackendPostgres},
		{name: "redis", backend: BackendRedis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SESSION_BACKEND", tt.backend)
			t.Setenv("DATABASE_URL", "")
			t.Setenv("REDIS_URL", "")

			_, err := Load()
			assert.ErrorIs(t, err, ErrMissingEnvironmentVariables)
		})
	}
}

func TestRequireTelegram(t *testing.T) {
	cfg := &Config{}
	assert.ErrorIs(t, cfg.RequireTelegram(), ErrMissingEnvironmentVariables)
}
