package service

import (
	"strings"
	"unicode"

	"github.com/aliskhannn/flash-cards-bot/internal/domain/entities"
)

// AnswerType is the runtime type that carries the answers of the current question.
const AnswerType = "answer"

// RegisterAnswerBias upserts a type override named typeName with one entry per
// candidate set. An entry is named after the first cleaned candidate of its set.
func RegisterAnswerBias(sess *entities.Session, typeName string, candidateSets ...[]string) {
	entries := make([]entities.SynonymEntry, 0, len(candidateSets))
	for _, set := range candidateSets {
		synonyms := uniqueNonEmpty(set, func(s string) string {
			return strings.ToLower(strings.TrimSpace(stripEmoji(s)))
		})
		if len(synonyms) == 0 {
			continue
		}
		entries = append(entries, entities.SynonymEntry{Name: synonyms[0], Synonyms: synonyms})
	}

	override := entities.TypeOverride{
		Name:    typeName,
		Mode:    entities.TypeModeReplace,
		Synonym: entities.SynonymType{Entries: entries},
	}

	for i, o := range sess.TypeOverrides {
		if o.Name == typeName {
			sess.TypeOverrides[i] = override
			return
		}
	}
	sess.TypeOverrides = append(sess.TypeOverrides, override)
}

// SetupSpeechBiasing points recognition at the answers of the current question.
func SetupSpeechBiasing(sess *entities.Session) {
	answers := uniqueNonEmpty(sess.CurrentQuestion.Answers, func(s string) string {
		return strings.TrimSpace(stripEmoji(s))
	})

	sess.ExpectedSpeech = answers
	RegisterAnswerBias(sess, AnswerType, answers)
}

func uniqueNonEmpty(values []string, clean func(string) string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = clean(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// stripEmoji removes pictographs along with the joiners, variation selectors
// and modifiers that combine them.
func stripEmoji(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.Is(unicode.So, r),
			r == 0x200d,
			r >= 0xfe00 && r <= 0xfe0f,
			r >= 0x1f3fb && r <= 0x1f3ff,
			r >= 0xe0020 && r <= 0xe007f:
			return -1
		}
		return r
	}, s)
}
