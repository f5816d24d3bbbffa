package entities

import "strings"

// Question is a single flash card of the quiz.
type Question struct {
	Question string   `json:"question"`           // text read out to the player
	Answers  []string `json:"answers"`            // accepted answers, the first one is canonical
	Hint     string   `json:"hint,omitempty"`     // optional clue offered after a wrong answer
	FollowUp string   `json:"followUp,omitempty"` // optional remark spoken after a right answer
}

// IsZero reports whether no question is selected.
func (q Question) IsZero() bool {
	return q.Question == "" && len(q.Answers) == 0
}

// HasHint reports whether the question carries a non-empty hint.
func (q Question) HasHint() bool {
	return strings.TrimSpace(q.Hint) != ""
}

// CanonicalAnswer returns the answer that is revealed when the player gives up.
func (q Question) CanonicalAnswer() string {
	if len(q.Answers) == 0 {
		return ""
	}
	return q.Answers[0]
}

// Match reports whether answer equals one of the accepted answers,
// ignoring case and surrounding whitespace.
func (q Question) Match(answer string) bool {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return false
	}

	for _, a := range q.Answers {
		if strings.EqualFold(answer, strings.TrimSpace(a)) {
			return true
		}
	}
	return false
}

func (q Question) clone() Question {
	q.Answers = cloneStrings(q.Answers)
	return q
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
