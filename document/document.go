// Package document provides the linked-data property bag handled by the
// engine: a map discriminated by "@type", with helpers for presence checks,
// deep cloning, and deep equality over the JSON value domain.
package document

import (
	"github.com/google/uuid"

	"github.com/metaforge/profilekit/jsonld"
)

// Document is a vocabulary-tagged property bag. Values are restricted to the
// JSON value domain: string, float64, int, bool, nil, map[string]any, and
// []any. The engine never mutates a caller's document; every transforming
// operation works on a Clone.
type Document map[string]any

// New creates a document for the given profile type with the schema.org
// context, the type discriminator, and a generated node identifier.
func New(profileType string) Document {
	return Document{
		jsonld.KeyContext: jsonld.SchemaOrgContext,
		jsonld.KeyType:    profileType,
		jsonld.KeyID:      uuid.NewString(),
	}
}

// Type returns the "@type" discriminator, or "" when absent or not a string.
func (d Document) Type() string {
	t, _ := d[jsonld.KeyType].(string)
	return t
}

// Has reports whether the document carries a non-nil value at the exact
// top-level key. Nested defaults are never inferred.
func (d Document) Has(field string) bool {
	v, ok := d[field]
	return ok && v != nil
}

// Clone returns a deep copy of the document. Maps and slices are copied
// recursively; scalar values are shared (they are immutable in the JSON
// value domain).
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	return Document(cloneMap(d))
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case Document:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// Equal reports deep equality between two documents over the JSON value
// domain. Numeric values compare by float64 value, so int(3) equals
// float64(3) the way a JSON round trip would make them.
func Equal(a, b Document) bool {
	return equalValue(map[string]any(a), map[string]any(b))
}

func equalValue(a, b any) bool {
	if an, ok := asNumber(a); ok {
		bn, ok := asNumber(b)
		return ok && an == bn
	}
	switch at := a.(type) {
	case map[string]any:
		bt, ok := asMap(b)
		if !ok || len(at) != len(bt) {
			return false
		}
		for k, av := range at {
			bv, ok := bt[k]
			if !ok || !equalValue(av, bv) {
				return false
			}
		}
		return true
	case Document:
		return equalValue(map[string]any(at), b)
	case []any:
		bt, ok := b.([]any)
		if !ok || len(at) != len(bt) {
			return false
		}
		for i := range at {
			if !equalValue(at[i], bt[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func asMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case Document:
		return t, true
	default:
		return nil, false
	}
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
