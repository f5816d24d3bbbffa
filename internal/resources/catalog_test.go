package resources

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/flash-cards-bot/internal/domain/entities"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := NewCatalog(map[string]map[string]Variants{
		"en": {
			"GREETING_1":   {"Welcome to {title}."},
			"HINT":         {"Hint: {hint}"},
			"SOME_CORRECT": {"You got {score} of {limit}."},
			"YES_CHIP":     {"Yes"},
			"NO_CHIP":      {"No"},
			"RIGHT_ANSWER": {"Right!", "Correct!"},
		},
		"ru": {
			"YES_CHIP": {"Да"},
		},
	}, "en", rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return c
}

func TestCatalog_Render(t *testing.T) {
	c := newTestCatalog(t)
	sess := entities.Session{
		QuizSettings:    entities.QuizSettings{Title: "Maths"},
		CurrentQuestion: entities.Question{Question: "2 + 2?", Hint: "even"},
		Score:           1,
		Limit:           3,
	}
	speech := entities.SpeechUnit{Fragments: []string{
		`<audio src="https://example.com/a.ogg"></audio>`,
		entities.PromptGreeting1,
		entities.PromptHint,
		"<speak>Tom &amp; Jerry</speak>",
		entities.PromptSomeCorrect,
		entities.PromptPrefix + "MISSING",
		"2 + 2?",
	}}

	got := c.Render("en-US", speech, sess)

	assert.Equal(t, "Welcome to Maths.\nHint: even\nTom & Jerry\nYou got 1 of 3.\nMISSING\n2 + 2?", got)
}

func TestCatalog_RenderPicksVariant(t *testing.T) {
	c := newTestCatalog(t)

	got := c.Render("en", entities.SpeechUnit{Fragments: []string{entities.PromptRightAnswer}}, entities.Session{})
	assert.Contains(t, []string{"Right!", "Correct!"}, got)
}

func TestCatalog_Locale(t *testing.T) {
	c := newTestCatalog(t)

	assert.Equal(t, "en", c.Locale("en-GB"))
	assert.Equal(t, "ru", c.Locale("ru-RU"))
	assert.Equal(t, "en", c.Locale("ja"))
	assert.Equal(t, "en", c.Locale("!!"))
}

func TestCatalog_Labels(t *testing.T) {
	c := newTestCatalog(t)

	assert.Equal(t, []string{"Да", "No"}, c.Labels("ru", []string{entities.PromptYesChip, entities.PromptNoChip}))
	assert.Equal(t, "plain", c.Label("en", "plain"))

	chip, ok := c.MatchLabel("ru", " да ", entities.PromptYesChip, entities.PromptNoChip)
	assert.True(t, ok)
	assert.Equal(t, entities.PromptYesChip, chip)

	_, ok = c.MatchLabel("en", "maybe", entities.PromptYesChip, entities.PromptNoChip)
	assert.False(t, ok)
}

func TestNewCatalog_MissingFallback(t *testing.T) {
	_, err := NewCatalog(map[string]map[string]Variants{"ru": {}}, "en", rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	content := "locale: en\nstrings:\n  YES_CHIP: \"Yes\"\n  RIGHT_ANSWER:\n    - \"Right!\"\n    - \"Correct!\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yaml"), []byte(content), 0o600))

	c, err := LoadCatalog(dir, "en", rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Equal(t, "Yes", c.Label("en", entities.PromptYesChip))
	assert.Equal(t, "Right!", c.Label("en", entities.PromptRightAnswer))
}

func TestLoadCatalog_ShippedAssets(t *testing.T) {
	c, err := LoadCatalog(filepath.Join("..", "..", "assets", "resources"), "en", rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	for _, chip := range []string{entities.PromptYesChip, entities.PromptNoChip, entities.PromptHintChip, entities.PromptTryAgainChip} {
		key, _ := entities.PromptKey(chip)
		assert.NotEqual(t, key, c.Label("en", chip))
	}
}
