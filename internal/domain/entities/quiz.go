package entities

// Session is the per-conversation game state carried between turns.
// Settings are embedded so that their keys sit next to the game counters,
// the same way the platform keeps them in one parameter map.
type Session struct {
	QuizSettings

	Questions       []Question     `json:"questions"`                // questions selected for the current game
	CurrentQuestion Question       `json:"currentQuestion"`          // zero value when no question is active
	PreviousAnswer  string         `json:"previousAnswer"`           // canonical answer of the last finished question
	Limit           int            `json:"limit"`                    // number of questions in the current game
	Count           int            `json:"count"`                    // index of the current question
	Score           int            `json:"score"`                    // questions answered correctly
	Attempts        int            `json:"attempts"`                 // wrong answers to the current question
	Hinted          bool           `json:"hinted"`                   // whether the hint was revealed for the current question
	IsNewUser       bool           `json:"isNewUser"`                // whether the player is seen for the first time
	UserAnswer      *string        `json:"UserAnswer,omitempty"`     // answer slot captured by the platform
	ExpectedSpeech  []string       `json:"expectedSpeech,omitempty"` // phrases the recognizer should favor
	TypeOverrides   []TypeOverride `json:"typeOverrides,omitempty"`  // session-scoped vocabulary overrides
}

// Clone returns a deep copy of s.
func (s Session) Clone() Session {
	s.QuizSettings = s.QuizSettings.Clone()

	if s.Questions != nil {
		questions := make([]Question, len(s.Questions))
		for i, q := range s.Questions {
			questions[i] = q.clone()
		}
		s.Questions = questions
	}

	s.CurrentQuestion = s.CurrentQuestion.clone()
	s.ExpectedSpeech = cloneStrings(s.ExpectedSpeech)

	if s.UserAnswer != nil {
		answer := *s.UserAnswer
		s.UserAnswer = &answer
	}

	if s.TypeOverrides != nil {
		overrides := make([]TypeOverride, len(s.TypeOverrides))
		for i, o := range s.TypeOverrides {
			overrides[i] = o.clone()
		}
		s.TypeOverrides = overrides
	}

	return s
}

// TakeUserAnswer returns the captured answer slot and clears it.
func (s *Session) TakeUserAnswer() string {
	if s.UserAnswer == nil {
		return ""
	}
	answer := *s.UserAnswer
	s.UserAnswer = nil
	return answer
}
