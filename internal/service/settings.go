package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aliskhannn/flash-cards-bot/internal/config"
	"github.com/aliskhannn/flash-cards-bot/internal/domain/entities"
	"github.com/aliskhannn/flash-cards-bot/internal/schema"
)

var (
	ErrEmptyAnswerSet = errors.New("question has no answers")
	ErrNotDictionary  = errors.New("collection is not a dictionary")
	ErrNotArray       = errors.New("collection is not an array")
)

// DefaultQuizSettings converts the configured defaults into QuizSettings.
func DefaultQuizSettings(q config.Quiz) entities.QuizSettings {
	return entities.QuizSettings{
		Title:                 q.Title,
		QuestionsPerGame:      q.QuestionsPerGame,
		QuestionTitle:         q.QuestionTitle,
		AnswerTitle:           q.AnswerTitle,
		AudioGameIntro:        q.AudioGameIntro,
		AudioGameOutro:        q.AudioGameOutro,
		AudioCorrect:          q.AudioCorrect,
		AudioIncorrect:        q.AudioIncorrect,
		AudioRoundEnd:         q.AudioRoundEnd,
		AudioDing:             q.AudioDing,
		AudioCalculating:      q.AudioCalculating,
		RandomizeQuestions:    q.RandomizeQuestions,
		GoogleAnalyticsID:     q.GoogleAnalyticsID,
		QuitPrompt:            q.QuitPrompt,
		AutoAddAnswerSynonyms: q.AutoAddAnswerSynonyms,
	}.Clone()
}

// SettingsResolver reads settings and questions for a locale and validates them.
type SettingsResolver struct {
	store          DocumentStore
	validator      *schema.Validator
	settingsSchema schema.Schema
	questionSchema schema.Schema
}

// NewSettingsResolver creates a SettingsResolver whose settings fall back to defaults.
func NewSettingsResolver(store DocumentStore, v *schema.Validator, defaults entities.QuizSettings) *SettingsResolver {
	return &SettingsResolver{
		store:          store,
		validator:      v,
		settingsSchema: schema.SettingsSchema(defaults),
		questionSchema: schema.QuestionSchema(),
	}
}

// LoadSettings flattens a dictionary collection into key -> entry[valueKey].
// Entries that are not objects are taken as the value itself.
func (r *SettingsResolver) LoadSettings(locale, collection, valueKey string) (map[string]any, error) {
	set, err := r.store.Collection(locale, collection)
	if err != nil {
		return nil, err
	}
	if !set.IsDictionary() {
		return nil, fmt.Errorf("%w: %s", ErrNotDictionary, collection)
	}

	out := make(map[string]any, len(set.Entries))
	for key, entry := range set.Entries {
		if obj, ok := entry.(map[string]any); ok {
			out[key] = obj[valueKey]
			continue
		}
		out[key] = entry
	}
	return out, nil
}

// LoadCompatibleSettings is LoadSettings restricted to allowedKeys. Keys match
// case-insensitively and are returned in the spelling of allowedKeys.
func (r *SettingsResolver) LoadCompatibleSettings(locale, collection, valueKey string, allowedKeys []string) (map[string]any, error) {
	settings, err := r.LoadSettings(locale, collection, valueKey)
	if err != nil {
		return nil, err
	}

	allowed := make(map[string]string, len(allowedKeys))
	for _, key := range allowedKeys {
		allowed[strings.ToLower(key)] = key
	}

	out := make(map[string]any, len(settings))
	for key, value := range settings {
		if canonical, ok := allowed[strings.ToLower(key)]; ok {
			out[canonical] = value
		}
	}
	return out, nil
}

// QuizSettings returns the defaults overlaid with the locale's settings.
func (r *SettingsResolver) QuizSettings(locale string) (entities.QuizSettings, error) {
	overrides, err := r.LoadCompatibleSettings(locale, schema.CollectionSettings, schema.SettingsValueKey, r.settingsSchema.Keys())
	if err != nil {
		return entities.QuizSettings{}, fmt.Errorf("load quiz settings: %w", err)
	}

	merged := r.settingsSchema.Defaults()
	for key, value := range overrides {
		merged[key] = value
	}

	rec, err := r.validator.ValidateObject(merged, r.settingsSchema)
	if err != nil {
		return entities.QuizSettings{}, fmt.Errorf("validate quiz settings: %w", err)
	}

	return schema.DecodeSettings(rec)
}

// AllQuizQuestions returns every question of the locale in sheet order.
func (r *SettingsResolver) AllQuizQuestions(locale string) ([]entities.Question, error) {
	set, err := r.store.Collection(locale, schema.CollectionQuestions)
	if err != nil {
		return nil, fmt.Errorf("load quiz questions: %w", err)
	}
	if set.IsDictionary() {
		return nil, fmt.Errorf("load quiz questions: %w: %s", ErrNotArray, schema.CollectionQuestions)
	}

	rows := make([]schema.Record, len(set.Rows))
	for i, row := range set.Rows {
		rows[i] = row
	}

	records, err := r.validator.ValidateCollection(rows, r.questionSchema)
	if err != nil {
		return nil, fmt.Errorf("validate quiz questions: %w", err)
	}

	questions := make([]entities.Question, 0, len(records))
	for i, rec := range records {
		q, err := schema.DecodeQuestion(rec)
		if err != nil {
			return nil, err
		}
		if len(q.Answers) == 0 {
			return nil, fmt.Errorf("%s[%d]: %w", schema.CollectionQuestions, i, ErrEmptyAnswerSet)
		}
		questions = append(questions, q)
	}

	return questions, nil
}
