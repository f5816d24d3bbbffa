package converter

import "github.com/aliskhannn/flash-cards-bot/internal/schema"

// TabType says how the rows of a tab become records.
type TabType string

const (
	// TabArray turns every row into its own record.
	TabArray TabType = "ARRAY"
	// TabDictionary groups rows by the key column.
	TabDictionary TabType = "DICTIONARY"
)

// Column maps a header cell to an output field.
type Column struct {
	Name        string
	DisplayName string
	IsKey       bool

	Required bool
	Repeated bool
	// RequiredKeys and RepeatedKeys apply to the value column of a dictionary tab.
	RequiredKeys []string
	RepeatedKeys []string
}

// Key is a known row key of a dictionary tab.
type Key struct {
	Name        string
	DisplayName string
}

// Tab describes one sheet of the workbook.
type Tab struct {
	Name        string // collection name in the output document
	DisplayName string // sheet name in the workbook
	Type        TabType
	ExcludeRows []int // 1-based rows holding instructions
	Columns     []Column
	Keys        []Key
}

var instructionRows = []int{1, 2, 3, 4, 5, 6}

// QuizTabs returns the tabs of a flash cards workbook.
func QuizTabs() []Tab {
	return []Tab{
		{
			Name:        schema.CollectionQuestions,
			DisplayName: "Questions & Answers",
			Type:        TabArray,
			ExcludeRows: instructionRows,
			Columns: []Column{
				{Name: schema.KeyQuestion, DisplayName: "Question", Required: true},
				{Name: schema.KeyAnswers, DisplayName: "Answer", Required: true, Repeated: true},
				{Name: schema.KeyHint, DisplayName: "Hint"},
				{Name: schema.KeyFollowUp, DisplayName: "Follow Up"},
			},
		},
		{
			Name:        schema.CollectionSettings,
			DisplayName: "Configuration",
			Type:        TabDictionary,
			ExcludeRows: instructionRows,
			Columns: []Column{
				{Name: "key", DisplayName: "Key", IsKey: true},
				{
					Name:        schema.SettingsValueKey,
					DisplayName: "Value",
					RequiredKeys: []string{
						schema.KeyTitle,
						schema.KeyQuestionsPerGame,
						schema.KeyQuestionTitle,
						schema.KeyAnswerTitle,
					},
					RepeatedKeys: []string{
						schema.KeyAudioDing,
						schema.KeyAudioGameIntro,
						schema.KeyAudioGameOutro,
						schema.KeyAudioCorrect,
						schema.KeyAudioIncorrect,
						schema.KeyAudioRoundEnd,
						schema.KeyAudioCalculating,
					},
				},
			},
			Keys: []Key{
				{Name: schema.KeyTitle, DisplayName: "Title"},
				{Name: schema.KeyQuestionsPerGame, DisplayName: "QuestionsPerGame"},
				{Name: schema.KeyQuestionTitle, DisplayName: "QuestionTitle"},
				{Name: schema.KeyAnswerTitle, DisplayName: "AnswerTitle"},
				{Name: schema.KeyAudioDing, DisplayName: "AudioDing"},
				{Name: schema.KeyAudioGameIntro, DisplayName: "AudioGameIntro"},
				{Name: schema.KeyAudioGameOutro, DisplayName: "AudioGameOutro"},
				{Name: schema.KeyAudioCorrect, DisplayName: "AudioCorrect"},
				{Name: schema.KeyAudioIncorrect, DisplayName: "AudioIncorrect"},
				{Name: schema.KeyAudioRoundEnd, DisplayName: "AudioRoundEnd"},
				{Name: schema.KeyAudioCalculating, DisplayName: "AudioCalculating"},
				{Name: schema.KeyRandomizeQuestions, DisplayName: "RandomizeQuestions"},
				{Name: schema.KeyGoogleAnalyticsID, DisplayName: "GoogleAnalyticsTrackingID"},
				{Name: schema.KeyQuitPrompt, DisplayName: "QuitPrompt"},
				{Name: schema.KeyAutoAddAnswerSynonyms, DisplayName: "AutoAddAnswerSynonyms"},
			},
		},
	}
}
