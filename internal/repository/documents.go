package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

var (
	ErrLocaleNotFound     = errors.New("locale not found")
	ErrCollectionNotFound = errors.New("collection not found")
)

// RecordSet is the content of one collection. Array collections fill Rows,
// dictionary collections fill Entries.
type RecordSet struct {
	Rows    []map[string]any
	Entries map[string]any
}

// IsDictionary reports whether the collection is keyed by entry name.
func (r RecordSet) IsDictionary() bool {
	return r.Entries != nil
}

// UnmarshalJSON accepts either a JSON array of rows or a JSON object of entries.
func (r *RecordSet) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("empty collection")
	}

	switch data[0] {
	case '[':
		return json.Unmarshal(data, &r.Rows)
	case '{':
		return json.Unmarshal(data, &r.Entries)
	default:
		return fmt.Errorf("collection must be an array or an object, got %q", data[0])
	}
}

// MarshalJSON writes the collection back in the shape it was read.
func (r RecordSet) MarshalJSON() ([]byte, error) {
	if r.IsDictionary() {
		return json.Marshal(r.Entries)
	}
	if r.Rows == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.Rows)
}

// Document is the sheet data of one locale keyed by collection name.
type Document map[string]RecordSet

// DocumentStore holds the quiz documents of every locale.
type DocumentStore struct {
	documents map[string]Document
}

// NewDocumentStore creates a store over documents keyed by locale.
func NewDocumentStore(documents map[string]Document) *DocumentStore {
	s := &DocumentStore{documents: make(map[string]Document, len(documents))}
	for locale, doc := range documents {
		s.documents[canonicalLocale(locale)] = doc
	}
	return s
}

// LoadDocumentStore reads every <locale>.json file of dir.
func LoadDocumentStore(dir string) (*DocumentStore, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no documents found in %s", dir)
	}

	documents := make(map[string]Document, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		var doc Document
		if err = json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", filepath.Base(path), err)
		}

		locale := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		documents[locale] = doc
	}

	return NewDocumentStore(documents), nil
}

// ByLocale returns the document of locale, falling back to its base language.
func (s *DocumentStore) ByLocale(locale string) (Document, error) {
	if doc, ok := s.documents[canonicalLocale(locale)]; ok {
		return doc, nil
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrLocaleNotFound, locale)
	}

	base, _ := tag.Base()
	if doc, ok := s.documents[base.String()]; ok {
		return doc, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrLocaleNotFound, locale)
}

// Collection returns one collection of the locale's document.
func (s *DocumentStore) Collection(locale, name string) (RecordSet, error) {
	doc, err := s.ByLocale(locale)
	if err != nil {
		return RecordSet{}, err
	}

	set, ok := doc[name]
	if !ok {
		return RecordSet{}, fmt.Errorf("%w: %q in locale %q", ErrCollectionNotFound, name, locale)
	}
	return set, nil
}

// Has reports whether ByLocale would succeed for locale.
func (s *DocumentStore) Has(locale string) bool {
	_, err := s.ByLocale(locale)
	return err == nil
}

// Locales returns the stored locales in sorted order.
func (s *DocumentStore) Locales() []string {
	locales := make([]string, 0, len(s.documents))
	for locale := range s.documents {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

func canonicalLocale(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(locale))
	}
	return tag.String()
}
