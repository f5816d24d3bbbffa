package entities

import (
	"fmt"
	"strings"
	"time"
)

// SpeechUnit is an ordered list of fragments spoken in one response.
// A fragment is an SSML snippet, literal text or a prompt reference.
type SpeechUnit struct {
	Fragments []string `json:"fragments"`
}

// IsEmpty reports whether there is nothing to say.
func (s SpeechUnit) IsEmpty() bool {
	return len(s.Fragments) == 0
}

// SSML renders the unit as a speak document with a pause between fragments.
func (s SpeechUnit) SSML(pause time.Duration) string {
	sep := fmt.Sprintf(`<break time="%dms"/>`, pause.Milliseconds())
	return "<speak>" + strings.Join(s.Fragments, sep) + "</speak>"
}

// Append adds fragments at the end of the unit, skipping empty ones.
func (s *SpeechUnit) Append(fragments ...string) {
	for _, f := range fragments {
		if f != "" {
			s.Fragments = append(s.Fragments, f)
		}
	}
}
