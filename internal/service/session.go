package service

import "github.com/aliskhannn/flash-cards-bot/internal/domain/entities"

// NewSession returns a session holding the default settings and zeroed counters.
func NewSession(defaults entities.QuizSettings) entities.Session {
	return entities.Session{QuizSettings: defaults.Clone()}
}

// ResetCurrentQuestion selects questions[count] and clears the per-question state.
func ResetCurrentQuestion(sess *entities.Session) {
	sess.CurrentQuestion = entities.Question{}
	if sess.Count >= 0 && sess.Count < len(sess.Questions) {
		sess.CurrentQuestion = sess.Questions[sess.Count]
	}
	sess.Attempts = 0
	sess.Hinted = false
}

// RoundTransitionPrompt announces the question at the current count.
func RoundTransitionPrompt(sess entities.Session) string {
	switch {
	case sess.Count == 0:
		return entities.PromptFirstRound
	case sess.Count == sess.Limit-1:
		return entities.PromptFinalRound
	default:
		return entities.PromptNextQuestion
	}
}

// OutcomePrompt summarizes the finished game.
func OutcomePrompt(sess entities.Session) string {
	switch {
	case sess.Score == 0:
		return entities.PromptNoneCorrect
	case sess.Score == sess.Limit:
		return entities.PromptAllCorrect
	default:
		return entities.PromptSomeCorrect
	}
}
