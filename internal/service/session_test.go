package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/flash-cards-bot/internal/domain/entities"
)

func TestRoundTransitionPrompt(t *testing.T) {
	tests := []struct {
		name  string
		count int
		limit int
		want  string
	}{
		{name: "first", count: 0, limit: 3, want: entities.PromptFirstRound},
		{name: "middle", count: 1, limit: 3, want: entities.PromptNextQuestion},
		{name: "final", count: 2, limit: 3, want: entities.PromptFinalRound},
		{name: "single question game", count: 0, limit: 1, want: entities.PromptFirstRound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundTransitionPrompt(entities.Session{Count: tt.count, Limit: tt.limit}))
		})
	}
}

func TestOutcomePrompt(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  string
	}{
		{name: "none", score: 0, want: entities.PromptNoneCorrect},
		{name: "some", score: 1, want: entities.PromptSomeCorrect},
		{name: "all", score: 3, want: entities.PromptAllCorrect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutcomePrompt(entities.Session{Score: tt.score, Limit: 3}))
		})
	}
}

func TestResetCurrentQuestion(t *testing.T) {
	sess := entities.Session{
		Questions: makeQuestions(2),
		Count:     1,
		Attempts:  2,
		Hinted:    true,
	}

	ResetCurrentQuestion(&sess)

	assert.Equal(t, "Question 2?", sess.CurrentQuestion.Question)
	assert.Zero(t, sess.Attempts)
	assert.False(t, sess.Hinted)

	sess.Count = 2
	sess.Attempts = 1
	ResetCurrentQuestion(&sess)

	assert.True(t, sess.CurrentQuestion.IsZero())
	assert.Zero(t, sess.Attempts)
}

func TestNewSession(t *testing.T) {
	defaults := testDefaults()
	sess := NewSession(defaults)

	sess.AudioCorrect[0] = "changed"

	assert.Equal(t, "https://example.com/correct.ogg", defaults.AudioCorrect[0])
	assert.Zero(t, sess.Count)
	assert.True(t, sess.CurrentQuestion.IsZero())
}
