package schema

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/aliskhannn/flash-cards-bot/internal/domain/entities"
)

// Collections of the quiz sheet data.
const (
	CollectionQuestions = "quiz_q_a"
	CollectionSettings  = "quiz_settings"
	SettingsValueKey    = "value"
)

// Question keys.
const (
	KeyQuestion = "question"
	KeyAnswers  = "answers"
	KeyHint     = "hint"
	KeyFollowUp = "followUp"
)

// Settings keys.
const (
	KeyTitle                 = "title"
	KeyQuestionsPerGame      = "questionsPerGame"
	KeyQuestionTitle         = "questionTitle"
	KeyAnswerTitle           = "answerTitle"
	KeyAudioGameIntro        = "audioGameIntro"
	KeyAudioGameOutro        = "audioGameOutro"
	KeyAudioCorrect          = "audioCorrect"
	KeyAudioIncorrect        = "audioIncorrect"
	KeyAudioRoundEnd         = "audioRoundEnd"
	KeyAudioDing             = "audioDing"
	KeyAudioCalculating      = "audioCalculating"
	KeyRandomizeQuestions    = "randomizeQuestions"
	KeyGoogleAnalyticsID     = "googleAnalyticsTrackingId"
	KeyQuitPrompt            = "quitPrompt"
	KeyAutoAddAnswerSynonyms = "autoAddAnswerSynonyms"
)

// QuestionSchema describes a row of the questions collection.
func QuestionSchema() Schema {
	return Schema{
		Collection: CollectionQuestions,
		Fields: []Field{
			{Name: KeyQuestion, Type: TypeString},
			{Name: KeyAnswers, Type: TypeStringList},
			{Name: KeyHint, Type: TypeString, Optional: true},
			{Name: KeyFollowUp, Type: TypeString, Optional: true},
		},
	}
}

// SettingsSchema describes the settings collection with defaults taken from d.
func SettingsSchema(d entities.QuizSettings) Schema {
	return Schema{
		Collection: CollectionSettings,
		Fields: []Field{
			{Name: KeyTitle, Type: TypeString, Default: d.Title},
			{Name: KeyQuestionsPerGame, Type: TypeInteger, Default: d.QuestionsPerGame},
			{Name: KeyQuestionTitle, Type: TypeString, Default: d.QuestionTitle},
			{Name: KeyAnswerTitle, Type: TypeString, Default: d.AnswerTitle},
			{Name: KeyAudioGameIntro, Type: TypeURLList, Default: d.AudioGameIntro},
			{Name: KeyAudioGameOutro, Type: TypeURLList, Default: d.AudioGameOutro},
			{Name: KeyAudioCorrect, Type: TypeURLList, Default: d.AudioCorrect},
			{Name: KeyAudioIncorrect, Type: TypeURLList, Default: d.AudioIncorrect},
			{Name: KeyAudioRoundEnd, Type: TypeURLList, Default: d.AudioRoundEnd},
			{Name: KeyAudioDing, Type: TypeURLList, Default: d.AudioDing},
			{Name: KeyAudioCalculating, Type: TypeURLList, Default: d.AudioCalculating},
			{Name: KeyRandomizeQuestions, Type: TypeBoolean, Default: d.RandomizeQuestions},
			{Name: KeyGoogleAnalyticsID, Type: TypeString, Default: d.GoogleAnalyticsID},
			{Name: KeyQuitPrompt, Type: TypeSSML, Default: d.QuitPrompt},
			{Name: KeyAutoAddAnswerSynonyms, Type: TypeString, Default: d.AutoAddAnswerSynonyms},
		},
	}
}

// DecodeQuestion converts a validated question record into a Question.
func DecodeQuestion(rec Record) (entities.Question, error) {
	var q entities.Question
	if err := decode(rec, &q); err != nil {
		return entities.Question{}, fmt.Errorf("decode question: %w", err)
	}
	return q, nil
}

// DecodeSettings converts a validated settings record into QuizSettings.
func DecodeSettings(rec Record) (entities.QuizSettings, error) {
	var s entities.QuizSettings
	if err := decode(rec, &s); err != nil {
		return entities.QuizSettings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}

func decode(rec Record, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(rec))
}
