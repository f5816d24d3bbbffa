package resources

import (
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"

	"github.com/aliskhannn/flash-cards-bot/internal/domain/entities"
)

var ssmlTag = regexp.MustCompile(`<[^>]*>`)

// Picker chooses one of n prompt variants.
type Picker interface {
	Intn(n int) int
}

// Variants is one prompt with its alternative wordings.
// In YAML it may be written as a single string or a list.
type Variants []string

func (v *Variants) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*v = Variants{node.Value}
		return nil
	}

	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*v = list
	return nil
}

type catalogFile struct {
	Locale  string              `yaml:"locale"`
	Strings map[string]Variants `yaml:"strings"`
}

// Catalog resolves prompt references into localized text for text channels.
type Catalog struct {
	strings map[string]map[string]Variants
	tags    []language.Tag
	matcher language.Matcher
	picker  Picker
}

// NewCatalog creates a catalog over messages keyed by locale. The fallback locale
// must be present and is used when no other locale matches.
func NewCatalog(messages map[string]map[string]Variants, fallback string, picker Picker) (*Catalog, error) {
	fallbackTag, err := language.Parse(fallback)
	if err != nil {
		return nil, fmt.Errorf("parse fallback locale %q: %w", fallback, err)
	}

	c := &Catalog{
		strings: make(map[string]map[string]Variants, len(messages)),
		tags:    []language.Tag{fallbackTag},
		picker:  picker,
	}

	for locale, m := range messages {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("parse locale %q: %w", locale, err)
		}
		c.strings[tag.String()] = m
		if tag != fallbackTag {
			c.tags = append(c.tags, tag)
		}
	}

	if _, ok := c.strings[fallbackTag.String()]; !ok {
		return nil, fmt.Errorf("fallback locale %s has no strings", fallback)
	}

	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

// LoadCatalog reads every *.yaml file of dir. Each file declares its locale.
func LoadCatalog(dir, fallback string, picker Picker) (*Catalog, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("glob resource catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("no resource catalogs found")
	}

	all := make(map[string]map[string]Variants, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}

		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		if strings.TrimSpace(file.Locale) == "" {
			return nil, fmt.Errorf("catalog %s: locale is required", path)
		}
		all[file.Locale] = file.Strings
	}

	return NewCatalog(all, fallback, picker)
}

// Locale returns the supported locale closest to requested.
func (c *Catalog) Locale(requested string) string {
	tag, err := language.Parse(requested)
	if err != nil {
		return c.tags[0].String()
	}
	_, idx, _ := c.matcher.Match(tag)
	return c.tags[idx].String()
}

// Label returns the first wording of a prompt reference, used for buttons.
func (c *Catalog) Label(locale, fragment string) string {
	key, ok := entities.PromptKey(fragment)
	if !ok {
		return fragment
	}
	variants := c.lookup(locale, key)
	if len(variants) == 0 {
		return key
	}
	return variants[0]
}

// Labels maps prompt references to labels.
func (c *Catalog) Labels(locale string, fragments []string) []string {
	out := make([]string, 0, len(fragments))
	for _, f := range fragments {
		out = append(out, c.Label(locale, f))
	}
	return out
}

// MatchLabel returns the prompt reference whose label equals text.
func (c *Catalog) MatchLabel(locale, text string, fragments ...string) (string, bool) {
	text = strings.TrimSpace(text)
	for _, f := range fragments {
		if strings.EqualFold(text, c.Label(locale, f)) {
			return f, true
		}
	}
	return "", false
}

// Render turns a speech unit into plain text. Audio is dropped, SSML markup is
// stripped and placeholders are filled from sess.
func (c *Catalog) Render(locale string, speech entities.SpeechUnit, sess entities.Session) string {
	replacer := placeholders(sess)

	parts := make([]string, 0, len(speech.Fragments))
	for _, f := range speech.Fragments {
		var text string
		if key, ok := entities.PromptKey(f); ok {
			text = c.pick(c.lookup(locale, key), key)
		} else {
			text = f
		}

		text = replacer.Replace(text)
		text = html.UnescapeString(ssmlTag.ReplaceAllString(text, ""))
		if text = strings.TrimSpace(text); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, "\n")
}

func (c *Catalog) lookup(locale, key string) Variants {
	messages := c.strings[c.Locale(locale)]
	if v, ok := messages[key]; ok {
		return v
	}
	return c.strings[c.tags[0].String()][key]
}

func (c *Catalog) pick(variants Variants, key string) string {
	switch len(variants) {
	case 0:
		return key
	case 1:
		return variants[0]
	default:
		return variants[c.picker.Intn(len(variants))]
	}
}

func placeholders(sess entities.Session) *strings.Replacer {
	return strings.NewReplacer(
		"{title}", sess.Title,
		"{question}", sess.CurrentQuestion.Question,
		"{hint}", sess.CurrentQuestion.Hint,
		"{answer}", sess.PreviousAnswer,
		"{score}", strconv.Itoa(sess.Score),
		"{limit}", strconv.Itoa(sess.Limit),
		"{number}", strconv.Itoa(sess.Count+1),
	)
}
