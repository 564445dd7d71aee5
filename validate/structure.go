// Package validate checks a document against a profile definition: the
// structural pass verifies every present field's shape, and the combined
// Document pass merges in completeness warnings, suggestions, consumer
// coverage percentages, and the security advisor's findings. The content
// model is open: fields unknown to the definition are permitted and ignored.
package validate

import (
	"fmt"

	"github.com/metaforge/profilekit/document"
	"github.com/metaforge/profilekit/profile"
)

// FieldError is one structural violation on one present field.
type FieldError struct {
	// Field is the offending property name.
	Field string `json:"field"`

	// Expected describes the constrained shape.
	Expected string `json:"expected"`

	// Actual names the type of the value found.
	Actual string `json:"actual"`

	// Message is the full human-readable finding.
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Message }

// Structure checks every field present in both the document and the
// definition's merged field map against its constraint. All violations are
// collected in one pass; nothing short-circuits. Fields absent from every
// tier pass untouched.
func Structure(doc document.Document, def profile.ProfileDefinition) []FieldError {
	var errs []FieldError
	for field, value := range doc {
		if value == nil {
			continue
		}
		constraint, _, known := def.Constraint(field)
		if !known {
			continue
		}
		if satisfies(value, constraint) {
			continue
		}
		errs = append(errs, FieldError{
			Field:    field,
			Expected: constraint.Describe(),
			Actual:   typeName(value),
			Message: fmt.Sprintf("field %q: expected %s, got %s",
				field, constraint.Describe(), typeName(value)),
		})
	}
	return errs
}

// satisfies reports whether a value meets a constraint. A disjunction is
// satisfied by any one alternative.
func satisfies(value any, c profile.FieldConstraint) bool {
	if len(c.AnyOf) > 0 {
		for _, alt := range c.AnyOf {
			if satisfies(value, alt) {
				return true
			}
		}
		return false
	}
	if c.Const != nil {
		return constEqual(value, c.Const)
	}
	switch c.Type {
	case profile.TypeString:
		s, ok := value.(string)
		if !ok {
			return false
		}
		if pred, ok := formatPredicates[c.Format]; ok && !pred(s) {
			return false
		}
		return lengthOK(len(s), c)
	case profile.TypeNumber:
		n, ok := asNumber(value)
		return ok && boundsOK(n, c)
	case profile.TypeInteger:
		n, ok := asNumber(value)
		return ok && n == float64(int64(n)) && boundsOK(n, c)
	case profile.TypeBoolean:
		_, ok := value.(bool)
		return ok
	case profile.TypeObject:
		switch value.(type) {
		case map[string]any, document.Document:
			return true
		}
		return false
	case profile.TypeArray:
		arr, ok := value.([]any)
		return ok && lengthOK(len(arr), c)
	default:
		// Constraint with only a const was handled above; an empty
		// constraint accepts anything.
		return true
	}
}

func lengthOK(n int, c profile.FieldConstraint) bool {
	if c.MinLength != nil && n < *c.MinLength {
		return false
	}
	if c.MaxLength != nil && n > *c.MaxLength {
		return false
	}
	return true
}

func boundsOK(n float64, c profile.FieldConstraint) bool {
	if c.Minimum != nil && n < *c.Minimum {
		return false
	}
	if c.Maximum != nil && n > *c.Maximum {
		return false
	}
	return true
}

// constEqual compares against a pinned literal, tolerating the numeric type
// drift a JSON round trip introduces.
func constEqual(value, want any) bool {
	if vn, ok := asNumber(value); ok {
		wn, ok := asNumber(want)
		return ok && vn == wn
	}
	return value == want
}

func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}

func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int32, int64:
		return "number"
	case map[string]any, document.Document:
		return "object"
	case []any:
		return "array"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
