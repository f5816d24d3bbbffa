package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuestion_Match(t *testing.T) {
	q := Question{Question: "Capital of France?", Answers: []string{"Paris", "paris city"}}

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{name: "exact", answer: "Paris", want: true},
		{name: "case and whitespace", answer: "  PARIS ", want: true},
		{name: "second answer", answer: "Paris City", want: true},
		{name: "wrong", answer: "Lyon", want: false},
		{name: "empty", answer: "   ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, q.Match(tt.answer))
		})
	}
}

func TestQuestion_Helpers(t *testing.T) {
	assert.True(t, Question{}.IsZero())
	assert.False(t, Question{Question: "q", Answers: []string{"a"}}.IsZero())
	assert.False(t, Question{Hint: "  "}.HasHint())
	assert.True(t, Question{Hint: "starts with P"}.HasHint())
	assert.Equal(t, "a", Question{Answers: []string{"a", "b"}}.CanonicalAnswer())
	assert.Empty(t, Question{}.CanonicalAnswer())
}

func TestSession_Clone(t *testing.T) {
	answer := "paris"
	s := Session{
		QuizSettings:    QuizSettings{AudioCorrect: []string{"https://example.com/a.ogg"}},
		Questions:       []Question{{Question: "q", Answers: []string{"a"}}},
		CurrentQuestion: Question{Question: "q", Answers: []string{"a"}},
		UserAnswer:      &answer,
		TypeOverrides: []TypeOverride{{
			Name:    "answer",
			Mode:    TypeModeReplace,
			Synonym: SynonymType{Entries: []SynonymEntry{{Name: "a", Synonyms: []string{"a"}}}},
		}},
	}

	c := s.Clone()
	c.AudioCorrect[0] = "changed"
	c.Questions[0].Answers[0] = "changed"
	c.CurrentQuestion.Answers[0] = "changed"
	*c.UserAnswer = "changed"
	c.TypeOverrides[0].Synonym.Entries[0].Synonyms[0] = "changed"

	assert.Equal(t, "https://example.com/a.ogg", s.AudioCorrect[0])
	assert.Equal(t, "a", s.Questions[0].Answers[0])
	assert.Equal(t, "a", s.CurrentQuestion.Answers[0])
	assert.Equal(t, "paris", *s.UserAnswer)
	assert.Equal(t, "a", s.TypeOverrides[0].Synonym.Entries[0].Synonyms[0])
}

func TestSession_TakeUserAnswer(t *testing.T) {
	answer := "Paris"
	s := Session{UserAnswer: &answer}

	assert.Equal(t, "Paris", s.TakeUserAnswer())
	assert.Nil(t, s.UserAnswer)
	assert.Empty(t, s.TakeUserAnswer())
}

func TestSpeechUnit_SSML(t *testing.T) {
	var s SpeechUnit
	s.Append("Hello", "", "World")

	assert.Equal(t, []string{"Hello", "World"}, s.Fragments)
	assert.Equal(t, `<speak>Hello<break time="500ms"/>World</speak>`, s.SSML(500*time.Millisecond))
}

func TestUser_IsNew(t *testing.T) {
	assert.True(t, User{VerificationStatus: VerificationGuest, LastSeen: time.Now()}.IsNew())
	assert.True(t, User{VerificationStatus: "VERIFIED"}.IsNew())
	assert.False(t, User{VerificationStatus: "VERIFIED", LastSeen: time.Now()}.IsNew())
}

func TestPromptKey(t *testing.T) {
	key, ok := PromptKey(PromptGreeting1)
	assert.True(t, ok)
	assert.Equal(t, "GREETING_1", key)

	_, ok = PromptKey("plain text")
	assert.False(t, ok)
}

func TestIsNewConversation(t *testing.T) {
	assert.True(t, IsNewConversation(IntentMain))
	assert.True(t, IsNewConversation(IntentPlayGame))
	assert.False(t, IsNewConversation("Yes"))
}
