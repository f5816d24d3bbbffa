package entities

// QuizSettings is the per-locale configuration of a quiz.
// JSON names match the setting keys of the sheet data.
type QuizSettings struct {
	Title                 string   `json:"title"`
	QuestionsPerGame      int      `json:"questionsPerGame"`
	QuestionTitle         string   `json:"questionTitle"`
	AnswerTitle           string   `json:"answerTitle"`
	AudioGameIntro        []string `json:"audioGameIntro"`
	AudioGameOutro        []string `json:"audioGameOutro"`
	AudioCorrect          []string `json:"audioCorrect"`
	AudioIncorrect        []string `json:"audioIncorrect"`
	AudioRoundEnd         []string `json:"audioRoundEnd"`
	AudioDing             []string `json:"audioDing"`
	AudioCalculating      []string `json:"audioCalculating"`
	RandomizeQuestions    bool     `json:"randomizeQuestions"`
	GoogleAnalyticsID     string   `json:"googleAnalyticsTrackingId"`
	QuitPrompt            string   `json:"quitPrompt"`
	AutoAddAnswerSynonyms string   `json:"autoAddAnswerSynonyms"`
}

// Clone returns a copy that shares no slices with s.
func (s QuizSettings) Clone() QuizSettings {
	s.AudioGameIntro = cloneStrings(s.AudioGameIntro)
	s.AudioGameOutro = cloneStrings(s.AudioGameOutro)
	s.AudioCorrect = cloneStrings(s.AudioCorrect)
	s.AudioIncorrect = cloneStrings(s.AudioIncorrect)
	s.AudioRoundEnd = cloneStrings(s.AudioRoundEnd)
	s.AudioDing = cloneStrings(s.AudioDing)
	s.AudioCalculating = cloneStrings(s.AudioCalculating)
	return s
}
