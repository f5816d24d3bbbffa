package schema

import (
	"errors"
	"fmt"
)

var ErrValidation = errors.New("schema validation failed")

// Validation rules reported in ValidationError.Rule.
const (
	RuleRequired = "required"
	RuleType     = "type"
	RuleFormat   = "format"
)

// ValidationError describes the field that made a record invalid.
type ValidationError struct {
	Collection string `json:"collection,omitempty"`
	Row        int    `json:"row"` // index within the collection, -1 for a single record
	Field      string `json:"field"`
	Rule       string `json:"rule"`
	Message    string `json:"message"`
	Value      any    `json:"value,omitempty"`
}

func (e *ValidationError) Error() string {
	where := e.Collection
	if e.Row >= 0 {
		where = fmt.Sprintf("%s[%d]", e.Collection, e.Row)
	}
	if where == "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error on field '%s' of %s: %s", e.Field, where, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(f Field, rule string, value any, format string, args ...any) *ValidationError {
	return &ValidationError{
		Row:     -1,
		Field:   f.Name,
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
		Value:   value,
	}
}
