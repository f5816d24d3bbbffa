package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/flash-cards-bot/internal/domain/entities"
)

func TestSpeechComposer_Merge(t *testing.T) {
	c := NewSpeechComposer(rand.New(rand.NewSource(1)))

	got := c.Merge("", entities.PromptGreeting1, "", "literal", AudioTag("https://example.com/a.ogg"))

	assert.Equal(t, []string{
		entities.PromptGreeting1,
		"literal",
		`<audio src="https://example.com/a.ogg"></audio>`,
	}, got.Fragments)
	assert.True(t, c.Merge("", "").IsEmpty())
}

func TestSpeechComposer_RandomAudio(t *testing.T) {
	c := NewSpeechComposer(rand.New(rand.NewSource(1)))

	assert.Empty(t, c.RandomAudio(nil))
	assert.Empty(t, c.RandomAudio([]string{}))

	urls := []string{"https://example.com/1.ogg", "https://example.com/2.ogg"}
	for range 20 {
		got := c.RandomAudio(urls)
		assert.Contains(t, []string{AudioTag(urls[0]), AudioTag(urls[1])}, got)
	}
}

func TestAudioTag_Escapes(t *testing.T) {
	assert.Equal(t, `<audio src="https://example.com/a.ogg?x=1&amp;y=2"></audio>`, AudioTag("https://example.com/a.ogg?x=1&y=2"))
}
