package converter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/aliskhannn/flash-cards-bot/internal/repository"
	"github.com/aliskhannn/flash-cards-bot/internal/schema"
)

type sheet struct {
	name string
	rows [][]any
}

func instructions() [][]any {
	rows := make([][]any, 6)
	for i := range rows {
		rows[i] = []any{fmt.Sprintf("instruction %d", i+1)}
	}
	return rows
}

func workbook(t *testing.T, sheets ...sheet) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for _, s := range sheets {
		_, err := f.NewSheet(s.name)
		require.NoError(t, err)
		for i, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(s.name, cell, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func questionsSheet(rows ...[]any) sheet {
	all := append(instructions(), []any{"Question", "Answer", "Answer", "Hint", "Follow Up"})
	return sheet{name: "Questions & Answers", rows: append(all, rows...)}
}

func settingsSheet(rows ...[]any) sheet {
	all := append(instructions(), []any{"Key", "Value", "Value"})
	return sheet{name: "Configuration", rows: append(all, rows...)}
}

func requiredSettings() [][]any {
	return [][]any{
		{"Title", "Capitals"},
		{"QuestionsPerGame", "3"},
		{"QuestionTitle", "Question"},
		{"AnswerTitle", "Answer"},
	}
}

func convert(t *testing.T, sheets ...sheet) (repository.Document, error) {
	t.Helper()
	return New(QuizTabs(), zap.NewNop()).Convert(workbook(t, sheets...))
}

func TestConvert(t *testing.T) {
	settings := append(requiredSettings(),
		[]any{"AudioCorrect", "https://example.com/a.ogg", "https://example.com/b.ogg"},
		[]any{"audioCorrect", "https://example.com/c.ogg"},
		[]any{"GoogleAnalyticsTrackingID", "UA-1"},
		[]any{"", "ignored"},
	)

	doc, err := convert(t,
		questionsSheet(
			[]any{"Capital of France?", "Paris", "paris city", "Starts with P", "Nice city."},
			[]any{},
			[]any{"Capital of Italy?", "Rome"},
		),
		settingsSheet(settings...),
	)
	require.NoError(t, err)

	questions := doc[schema.CollectionQuestions]
	require.Len(t, questions.Rows, 2)
	assert.Equal(t, map[string]any{
		"question": "Capital of France?",
		"answers":  "Paris\nparis city",
		"hint":     "Starts with P",
		"followUp": "Nice city.",
	}, questions.Rows[0])
	assert.Equal(t, map[string]any{"question": "Capital of Italy?", "answers": "Rome"}, questions.Rows[1])

	settingsSet := doc[schema.CollectionSettings]
	require.True(t, settingsSet.IsDictionary())
	assert.Equal(t, map[string]any{"value": "Capitals"}, settingsSet.Entries["title"])
	assert.Equal(t, map[string]any{"value": "3"}, settingsSet.Entries["questionsPerGame"])
	assert.Equal(t,
		map[string]any{"value": "https://example.com/a.ogg\nhttps://example.com/b.ogg\nhttps://example.com/c.ogg"},
		settingsSet.Entries["audioCorrect"])
	assert.Contains(t, settingsSet.Entries, schema.KeyGoogleAnalyticsID)
}

func TestConvertOutputValidates(t *testing.T) {
	doc, err := convert(t,
		questionsSheet([]any{"2 + 2?", "4", "four"}),
		settingsSheet(requiredSettings()...),
	)
	require.NoError(t, err)

	var rows []schema.Record
	for _, row := range doc[schema.CollectionQuestions].Rows {
		rows = append(rows, row)
	}

	records, err := schema.NewValidator().ValidateCollection(rows, schema.QuestionSchema())
	require.NoError(t, err)

	q, err := schema.DecodeQuestion(records[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "four"}, q.Answers)
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name   string
		sheets []sheet
		want   error
	}{
		{
			name:   "missing sheet",
			sheets: []sheet{questionsSheet([]any{"Q", "A"})},
			want:   ErrSheetMissing,
		},
		{
			name: "missing required cell",
			sheets: []sheet{
				questionsSheet([]any{"Q without answer"}),
				settingsSheet(requiredSettings()...),
			},
			want: ErrRequiredCell,
		},
		{
			name: "missing required key",
			sheets: []sheet{
				questionsSheet([]any{"Q", "A"}),
				settingsSheet([]any{"Title", "Only title"}),
			},
			want: ErrRequiredCell,
		},
		{
			name: "duplicate key",
			sheets: []sheet{
				questionsSheet([]any{"Q", "A"}),
				settingsSheet(append(requiredSettings(), []any{"Title", "Again"})...),
			},
			want: ErrDuplicateKey,
		},
		{
			name: "missing header column",
			sheets: []sheet{
				{name: "Questions & Answers", rows: append(instructions(), []any{"Question", "Hint"})},
				settingsSheet(requiredSettings()...),
			},
			want: ErrHeaderMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := convert(t, tt.sheets...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWriteDocument(t *testing.T) {
	doc := repository.Document{
		schema.CollectionQuestions: {Rows: []map[string]any{{"question": "Q & A?", "answers": "A"}}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, doc))
	assert.Contains(t, buf.String(), "Q & A?")

	var back repository.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Len(t, back[schema.CollectionQuestions].Rows, 1)
}
