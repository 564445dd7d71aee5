// Package suggest derives per-field guidance for an in-progress document:
// which fields are missing, how much each one matters, and what a concrete
// fix looks like. Nothing here mutates the document or caches across calls;
// every invocation reflects the document's current field set.
package suggest

import (
	"fmt"
	"sort"

	"github.com/metaforge/profilekit/document"
	"github.com/metaforge/profilekit/profile"
)

// Importance ranks how much a field matters for the document right now.
type Importance string

const (
	// ImportanceCritical marks a required field that is absent.
	ImportanceCritical Importance = "critical"

	// ImportanceImportant marks an absent recommended field tagged for
	// rich-result consumers.
	ImportanceImportant Importance = "important"

	// ImportanceHelpful marks an absent recommended field without a
	// rich-result tag.
	ImportanceHelpful Importance = "helpful"

	// ImportanceOptional marks an absent optional field.
	ImportanceOptional Importance = "optional-available"

	// ImportanceSatisfied marks a present field, regardless of tier.
	ImportanceSatisfied Importance = "satisfied"
)

// DisplayCap is the conventional number of optional suggestions a consumer
// displays. The service always returns the full list; truncation is a
// presentation concern of the caller.
const DisplayCap = 5

// FieldMetadata combines a field's constraint with guidance for the author.
type FieldMetadata struct {
	// Field is the property name.
	Field string `json:"field"`

	// Tier is the field's tier in the profile definition.
	Tier profile.Tier `json:"tier"`

	// Importance ranks the field for the current document.
	Importance Importance `json:"importance"`

	// Constraint is the field's shape constraint.
	Constraint profile.FieldConstraint `json:"-"`

	// Message describes the gap.
	Message string `json:"message"`

	// Action is the suggested fix.
	Action string `json:"action"`

	// Examples are sample values from the constraint.
	Examples []any `json:"examples,omitempty"`
}

// Buckets groups missing-field guidance by importance.
type Buckets struct {
	// Critical lists absent required fields.
	Critical []FieldMetadata `json:"critical"`

	// Important lists absent recommended fields tagged for rich results.
	Important []FieldMetadata `json:"important"`

	// Helpful lists the remaining absent recommended fields.
	Helpful []FieldMetadata `json:"helpful"`

	// Optional lists absent optional fields, uncapped.
	Optional []FieldMetadata `json:"optional"`
}

// Fields computes suggestion buckets for a document against a definition.
// Presence means a non-nil value at the exact top-level key.
func Fields(def profile.ProfileDefinition, doc document.Document) Buckets {
	var b Buckets

	for field, constraint := range def.Required {
		if doc.Has(field) {
			continue
		}
		b.Critical = append(b.Critical, metadata(def, field, constraint, profile.TierRequired, ImportanceCritical))
	}

	for field, constraint := range def.Recommended {
		if doc.Has(field) {
			continue
		}
		importance := ImportanceHelpful
		if def.IsRichResultField(field) {
			importance = ImportanceImportant
		}
		md := metadata(def, field, constraint, profile.TierRecommended, importance)
		if importance == ImportanceImportant {
			b.Important = append(b.Important, md)
		} else {
			b.Helpful = append(b.Helpful, md)
		}
	}

	for field, constraint := range def.Optional {
		if doc.Has(field) {
			continue
		}
		b.Optional = append(b.Optional, metadata(def, field, constraint, profile.TierOptional, ImportanceOptional))
	}

	sortBucket(b.Critical)
	sortBucket(b.Important)
	sortBucket(b.Helpful)
	sortBucket(b.Optional)
	return b
}

// Display returns a copy of the buckets with the optional list truncated to
// limit entries. The lists are sorted, so truncation keeps a stable prefix.
// A negative limit leaves the list whole; the other buckets are never cut.
func (b Buckets) Display(limit int) Buckets {
	if limit >= 0 && len(b.Optional) > limit {
		b.Optional = b.Optional[:limit]
	}
	return b
}

// Field returns metadata for a single (definition, field) pair against the
// document's current state. ok is false for fields unknown to the profile.
func Field(def profile.ProfileDefinition, doc document.Document, field string) (FieldMetadata, bool) {
	constraint, tier, ok := def.Constraint(field)
	if !ok {
		return FieldMetadata{}, false
	}
	if doc.Has(field) {
		md := metadata(def, field, constraint, tier, ImportanceSatisfied)
		md.Message = fmt.Sprintf("Field %q is present.", field)
		md.Action = ""
		return md, true
	}
	importance := importanceFor(def, field, tier)
	return metadata(def, field, constraint, tier, importance), true
}

func importanceFor(def profile.ProfileDefinition, field string, tier profile.Tier) Importance {
	switch tier {
	case profile.TierRequired:
		return ImportanceCritical
	case profile.TierRecommended:
		if def.IsRichResultField(field) {
			return ImportanceImportant
		}
		return ImportanceHelpful
	default:
		return ImportanceOptional
	}
}

func metadata(def profile.ProfileDefinition, field string, constraint profile.FieldConstraint, tier profile.Tier, importance Importance) FieldMetadata {
	return FieldMetadata{
		Field:      field,
		Tier:       tier,
		Importance: importance,
		Constraint: constraint,
		Message:    message(def.Type, field, importance),
		Action:     action(field, constraint),
		Examples:   constraint.Examples,
	}
}

func message(profileType, field string, importance Importance) string {
	switch importance {
	case ImportanceCritical:
		return fmt.Sprintf("Required field %q is missing; %s documents do not validate without it.", field, profileType)
	case ImportanceImportant:
		return fmt.Sprintf("Recommended field %q is missing and affects rich result eligibility.", field)
	case ImportanceHelpful:
		return fmt.Sprintf("Recommended field %q is missing.", field)
	case ImportanceSatisfied:
		return fmt.Sprintf("Field %q is present.", field)
	default:
		return fmt.Sprintf("Optional field %q is available for %s documents.", field, profileType)
	}
}

func action(field string, constraint profile.FieldConstraint) string {
	if constraint.Description != "" {
		return fmt.Sprintf("Set %q: %s", field, constraint.Description)
	}
	return fmt.Sprintf("Set %q to a value of shape %s.", field, constraint.Describe())
}

func sortBucket(bucket []FieldMetadata) {
	sort.Slice(bucket, func(i, j int) bool {
		return bucket[i].Field < bucket[j].Field
	})
}
