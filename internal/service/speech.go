package service

import (
	"fmt"
	"html"

	"github.com/aliskhannn/flash-cards-bot/internal/domain/entities"
)

// AudioTag renders an SSML audio element for url.
func AudioTag(url string) string {
	return fmt.Sprintf(`<audio src="%s"></audio>`, html.EscapeString(url))
}

// SpeechComposer builds speech units for the fulfillment handlers.
type SpeechComposer struct {
	rng Random
}

// NewSpeechComposer creates a SpeechComposer that picks audio with rng.
func NewSpeechComposer(rng Random) *SpeechComposer {
	return &SpeechComposer{rng: rng}
}

// Merge concatenates fragments in order, dropping empty ones.
func (c *SpeechComposer) Merge(fragments ...string) entities.SpeechUnit {
	var unit entities.SpeechUnit
	unit.Append(fragments...)
	return unit
}

// RandomAudio returns an audio tag for one of urls, or "" when there is none.
func (c *SpeechComposer) RandomAudio(urls []string) string {
	if len(urls) == 0 {
		return ""
	}
	return AudioTag(urls[c.rng.Intn(len(urls))])
}
