package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const enDocument = `{
  "quiz_q_a": [
    {"question": "2 + 2?", "answers": ["4", "four"]}
  ],
  "quiz_settings": {
    "title": {"value": "Maths"}
  }
}`

func writeDocument(t *testing.T, dir, locale, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, locale+".json"), []byte(content), 0o600))
}

func TestLoadDocumentStore(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, "en", enDocument)

	store, err := LoadDocumentStore(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"en"}, store.Locales())

	questions, err := store.Collection("en", "quiz_q_a")
	require.NoError(t, err)
	assert.False(t, questions.IsDictionary())
	require.Len(t, questions.Rows, 1)
	assert.Equal(t, "2 + 2?", questions.Rows[0]["question"])

	settings, err := store.Collection("en", "quiz_settings")
	require.NoError(t, err)
	assert.True(t, settings.IsDictionary())
	assert.Equal(t, map[string]any{"value": "Maths"}, settings.Entries["title"])
}

func TestLoadDocumentStore_Errors(t *testing.T) {
	t.Run("empty dir", func(t *testing.T) {
		_, err := LoadDocumentStore(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("scalar collection", func(t *testing.T) {
		dir := t.TempDir()
		writeDocument(t, dir, "en", `{"quiz_q_a": 5}`)

		_, err := LoadDocumentStore(dir)
		assert.Error(t, err)
	})
}

func TestDocumentStore_ByLocale(t *testing.T) {
	store := NewDocumentStore(map[string]Document{
		"en":    {"quiz_q_a": {Rows: []map[string]any{}}},
		"pt-BR": {"quiz_q_a": {Rows: []map[string]any{}}},
	})

	tests := []struct {
		name    string
		locale  string
		wantErr error
	}{
		{name: "exact", locale: "en"},
		{name: "region falls back to language", locale: "en-US"},
		{name: "case insensitive", locale: "pt-br"},
		{name: "unknown", locale: "xyz", wantErr: ErrLocaleNotFound},
		{name: "garbage", locale: "!!", wantErr: ErrLocaleNotFound},
		{name: "other region", locale: "pt-PT", wantErr: ErrLocaleNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.ByLocale(tt.locale)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, store.Has(tt.locale))
				return
			}
			assert.NoError(t, err)
			assert.True(t, store.Has(tt.locale))
		})
	}
}

func TestDocumentStore_RegionalDataOnly(t *testing.T) {
	store := NewDocumentStore(map[string]Document{
		"en-US": {"quiz_q_a": {Rows: []map[string]any{}}},
	})

	_, err := store.ByLocale("en-US")
	assert.NoError(t, err)

	for _, locale := range []string{"en-GB", "en"} {
		_, err := store.ByLocale(locale)
		assert.ErrorIs(t, err, ErrLocaleNotFound, locale)

		_, err = store.Collection(locale, "quiz_q_a")
		assert.ErrorIs(t, err, ErrLocaleNotFound, locale)
	}
}

func TestDocumentStore_CollectionNotFound(t *testing.T) {
	store := NewDocumentStore(map[string]Document{"en": {}})

	_, err := store.Collection("en", "quiz_settings")
	assert.ErrorIs(t, err, ErrCollectionNotFound)
}

func TestRecordSet_MarshalJSON(t *testing.T) {
	doc := Document{
		"rows":    {Rows: []map[string]any{{"a": "1"}}},
		"entries": {Entries: map[string]any{"k": map[string]any{"value": "v"}}},
		"empty":   {},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rows":[{"a":"1"}],"entries":{"k":{"value":"v"}},"empty":[]}`, string(data))
}
