package schema

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

var googleFontPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)

// Validator coerces raw records into typed values according to a Schema.
type Validator struct {
	validate      *validator.Validate
	truthy        map[string]struct{}
	falsy         map[string]struct{}
	listSeparator string
}

// Option configures a Validator.
type Option func(*Validator)

// WithBooleanTokens replaces the words accepted for BOOLEAN fields.
func WithBooleanTokens(truthy, falsy []string) Option {
	return func(v *Validator) {
		v.truthy = tokenSet(truthy)
		v.falsy = tokenSet(falsy)
	}
}

// WithListSeparator sets the separator used to split a single string into a list.
func WithListSeparator(sep string) Option {
	return func(v *Validator) {
		v.listSeparator = sep
	}
}

// NewValidator creates a Validator with the default boolean tokens and a newline list separator.
func NewValidator(opts ...Option) *Validator {
	validate := validator.New()
	_ = validate.RegisterValidation("google_font", func(fl validator.FieldLevel) bool {
		return googleFontPattern.MatchString(fl.Field().String())
	})

	v := &Validator{
		validate:      validate,
		truthy:        tokenSet([]string{"true", "yes", "y", "1", "on"}),
		falsy:         tokenSet([]string{"false", "no", "n", "0", "off"}),
		listSeparator: "\n",
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateObject checks rec against s and returns the coerced record keyed by field alias.
// Fields named in optional are treated as optional for this call only.
// Keys of rec that s does not declare are dropped.
func (v *Validator) ValidateObject(rec Record, s Schema, optional ...string) (Record, error) {
	out, err := v.validateObject(rec, s, nameSet(optional))
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			verr.Collection = s.Collection
		}
		return nil, err
	}
	return out, nil
}

// ValidateCollection validates every row and fails on the first invalid one.
func (v *Validator) ValidateCollection(rows []Record, s Schema, optional ...string) ([]Record, error) {
	opt := nameSet(optional)
	out := make([]Record, 0, len(rows))

	for i, row := range rows {
		rec, err := v.validateObject(row, s, opt)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				verr.Collection = s.Collection
				verr.Row = i
			}
			return nil, err
		}
		out = append(out, rec)
	}

	return out, nil
}

func (v *Validator) validateObject(rec Record, s Schema, optional map[string]struct{}) (Record, error) {
	out := make(Record, len(s.Fields))

	for _, f := range s.Fields {
		raw := rec[f.Name]

		if isEmpty(raw) {
			_, scoped := optional[f.Name]
			switch {
			case f.Optional || scoped:
				continue
			case f.Default != nil:
				raw = f.Default
			default:
				return nil, newValidationError(f, RuleRequired, raw, "is required")
			}
		}

		value, err := v.coerce(f, raw)
		if err != nil {
			return nil, err
		}
		out[f.outputKey()] = value
	}

	return out, nil
}

func (v *Validator) coerce(f Field, raw any) (any, error) {
	switch f.Type {
	case TypeString, TypeSSML:
		return v.toString(f, raw)
	case TypeInteger:
		return v.toInt(f, raw)
	case TypeFloat:
		return v.toFloat(f, raw)
	case TypeBoolean:
		return v.toBool(f, raw)
	case TypeStringList:
		return v.toList(f, raw)
	case TypeURL, TypeImage:
		return v.formatted(f, raw, "url")
	case TypeURLList:
		list, err := v.toList(f, raw)
		if err != nil {
			return nil, err
		}
		for _, item := range list {
			if err := v.validate.Var(item, "url"); err != nil {
				return nil, newValidationError(f, RuleFormat, item, "must contain valid URLs")
			}
		}
		return list, nil
	case TypeGoogleFont:
		return v.formatted(f, raw, "google_font")
	case TypeColorHex:
		return v.formatted(f, raw, "hexcolor")
	case TypeDate:
		return v.formatted(f, raw, "datetime=2006-01-02")
	default:
		return nil, newValidationError(f, RuleType, raw, "has unsupported type %q", f.Type)
	}
}

func (v *Validator) toString(f Field, raw any) (string, error) {
	s, err := cast.ToStringE(raw)
	if err != nil {
		return "", newValidationError(f, RuleType, raw, "must be a string")
	}
	return strings.TrimSpace(s), nil
}

func (v *Validator) toInt(f Field, raw any) (int, error) {
	switch n := raw.(type) {
	case bool:
		return 0, newValidationError(f, RuleType, raw, "must be an integer")
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, newValidationError(f, RuleType, raw, "must be an integer")
		}
		return int(n), nil
	case string:
		d, ok := parseDecimal(n)
		if !ok || d != math.Trunc(d) || math.Abs(d) > math.MaxInt32 {
			return 0, newValidationError(f, RuleType, raw, "must be an integer")
		}
		return int(d), nil
	}

	i, err := cast.ToIntE(raw)
	if err != nil {
		return 0, newValidationError(f, RuleType, raw, "must be an integer")
	}
	return i, nil
}

func (v *Validator) toFloat(f Field, raw any) (float64, error) {
	switch n := raw.(type) {
	case bool:
		return 0, newValidationError(f, RuleType, raw, "must be a number")
	case string:
		d, ok := parseDecimal(n)
		if !ok {
			return 0, newValidationError(f, RuleType, raw, "must be a number")
		}
		return d, nil
	}

	n, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, newValidationError(f, RuleType, raw, "must be a number")
	}
	return n, nil
}

// parseDecimal reads a base 10 number. Leading zeros are insignificant and
// hex, octal or binary prefixes are not numbers.
func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xXoObB_") {
		return 0, false
	}

	d, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, false
	}
	return d, true
}

func (v *Validator) toBool(f Field, raw any) (bool, error) {
	if b, ok := raw.(bool); ok {
		return b, nil
	}

	s, err := cast.ToStringE(raw)
	if err != nil {
		return false, newValidationError(f, RuleType, raw, "must be a boolean")
	}

	token := strings.ToLower(strings.TrimSpace(s))
	if _, ok := v.truthy[token]; ok {
		return true, nil
	}
	if _, ok := v.falsy[token]; ok {
		return false, nil
	}
	return false, newValidationError(f, RuleType, raw, "must be one of the boolean words, got %q", s)
}

func (v *Validator) toList(f Field, raw any) ([]string, error) {
	var items []string

	switch l := raw.(type) {
	case []string:
		items = l
	case []any:
		items = make([]string, 0, len(l))
		for _, item := range l {
			s, err := cast.ToStringE(item)
			if err != nil {
				return nil, newValidationError(f, RuleType, raw, "must be a list of strings")
			}
			items = append(items, s)
		}
	default:
		s, err := cast.ToStringE(raw)
		if err != nil {
			return nil, newValidationError(f, RuleType, raw, "must be a list of strings")
		}
		items = strings.Split(s, v.listSeparator)
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out, nil
}

func (v *Validator) formatted(f Field, raw any, tag string) (string, error) {
	s, err := v.toString(f, raw)
	if err != nil {
		return "", err
	}
	if err := v.validate.Var(s, tag); err != nil {
		return "", newValidationError(f, RuleFormat, raw, "must match %s", strings.SplitN(tag, "=", 2)[0])
	}
	return s, nil
}

func isEmpty(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}
	return set
}

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
