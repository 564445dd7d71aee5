// Package profile defines the tiered completeness contract for each document
// type: which properties are required, recommended, or optional, the shape
// constraint on each property, and the two consumer tag lists (rich-result
// and LLM-optimized fields). Definitions are data, not code: they can be
// expressed in YAML and hot-loaded without recompilation, and they are
// immutable once a Registry has been built.
package profile

import (
	"fmt"
	"strings"
)

// Tier ranks a field's importance within a profile.
type Tier string

const (
	// TierRequired fields must be present for a document to validate.
	TierRequired Tier = "required"

	// TierRecommended fields improve completeness but never fail validation.
	TierRecommended Tier = "recommended"

	// TierOptional fields are purely advisory.
	TierOptional Tier = "optional"
)

// ValueType is the primitive shape a field value must take.
type ValueType string

const (
	TypeString  ValueType = "string"
	TypeNumber  ValueType = "number"
	TypeInteger ValueType = "integer"
	TypeBoolean ValueType = "boolean"
	TypeObject  ValueType = "object"
	TypeArray   ValueType = "array"
)

// Format names string format predicates applied on top of TypeString.
const (
	FormatDate         = "date"
	FormatDateTime     = "date-time"
	FormatURI          = "uri"
	FormatURIReference = "uri-reference"
	FormatEmail        = "email"
)

// FieldConstraint describes the allowed shape of one field value.
// Either Type or AnyOf is set; AnyOf expresses a disjunction of alternative
// shapes and the value must satisfy at least one of them.
type FieldConstraint struct {
	// Type is the primitive type of the value.
	Type ValueType `yaml:"type,omitempty"`

	// AnyOf lists alternative shapes. Non-empty AnyOf supersedes Type.
	AnyOf []FieldConstraint `yaml:"any_of,omitempty"`

	// Format is an optional string format (date, date-time, uri,
	// uri-reference, email).
	Format string `yaml:"format,omitempty"`

	// Const pins the value to one exact literal.
	Const any `yaml:"const,omitempty"`

	// MinLength and MaxLength bound string and array lengths.
	MinLength *int `yaml:"min_length,omitempty"`
	MaxLength *int `yaml:"max_length,omitempty"`

	// Minimum and Maximum bound numeric values.
	Minimum *float64 `yaml:"minimum,omitempty"`
	Maximum *float64 `yaml:"maximum,omitempty"`

	// Description is human-readable guidance surfaced in suggestions.
	Description string `yaml:"description,omitempty"`

	// Examples are sample values surfaced in suggestions.
	Examples []any `yaml:"examples,omitempty"`
}

// Describe returns a short human-readable description of the expected shape,
// used in structural error messages.
func (c FieldConstraint) Describe() string {
	if len(c.AnyOf) > 0 {
		parts := make([]string, len(c.AnyOf))
		for i, alt := range c.AnyOf {
			parts[i] = alt.Describe()
		}
		return "one of [" + strings.Join(parts, ", ") + "]"
	}
	if c.Const != nil {
		return fmt.Sprintf("constant %v", c.Const)
	}
	desc := string(c.Type)
	if desc == "" {
		desc = "any"
	}
	if c.Format != "" {
		desc += " (" + c.Format + ")"
	}
	return desc
}

// validate checks that the constraint is well-formed. Malformed constraints
// are configuration errors and abort registry construction.
func (c FieldConstraint) validate() error {
	if len(c.AnyOf) > 0 {
		for i, alt := range c.AnyOf {
			if len(alt.AnyOf) > 0 {
				return fmt.Errorf("any_of alternative %d: nested any_of is not supported", i)
			}
			if err := alt.validate(); err != nil {
				return fmt.Errorf("any_of alternative %d: %w", i, err)
			}
		}
		return nil
	}
	switch c.Type {
	case TypeString, TypeNumber, TypeInteger, TypeBoolean, TypeObject, TypeArray:
	case "":
		if c.Const == nil {
			return fmt.Errorf("constraint has neither type, any_of, nor const")
		}
	default:
		return fmt.Errorf("unknown value type %q", c.Type)
	}
	switch c.Format {
	case "", FormatDate, FormatDateTime, FormatURI, FormatURIReference, FormatEmail:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.Format != "" && c.Type != TypeString {
		return fmt.Errorf("format %q requires type string, got %q", c.Format, c.Type)
	}
	if c.MinLength != nil && c.MaxLength != nil && *c.MinLength > *c.MaxLength {
		return fmt.Errorf("min_length %d exceeds max_length %d", *c.MinLength, *c.MaxLength)
	}
	if c.Minimum != nil && c.Maximum != nil && *c.Minimum > *c.Maximum {
		return fmt.Errorf("minimum %v exceeds maximum %v", *c.Minimum, *c.Maximum)
	}
	return nil
}

// ProfileDefinition is the complete tiered contract for one document type.
// Definitions are immutable after registry construction.
type ProfileDefinition struct {
	// Type is the document type discriminator, matched case-sensitively.
	Type string `yaml:"type"`

	// Required maps field names to constraints for the required tier.
	Required map[string]FieldConstraint `yaml:"required,omitempty"`

	// Recommended maps field names to constraints for the recommended tier.
	Recommended map[string]FieldConstraint `yaml:"recommended,omitempty"`

	// Optional maps field names to constraints for the optional tier.
	Optional map[string]FieldConstraint `yaml:"optional,omitempty"`

	// RichResultFields tags properties consumed by search-result rendering.
	RichResultFields []string `yaml:"rich_result_fields,omitempty"`

	// LLMOptimizedFields tags properties valued by language-model ingestion.
	LLMOptimizedFields []string `yaml:"llm_optimized_fields,omitempty"`
}

// Constraint returns the constraint and tier for a field, searching all
// three tiers. ok is false when the field is unknown to the definition.
func (d ProfileDefinition) Constraint(field string) (FieldConstraint, Tier, bool) {
	if c, ok := d.Required[field]; ok {
		return c, TierRequired, true
	}
	if c, ok := d.Recommended[field]; ok {
		return c, TierRecommended, true
	}
	if c, ok := d.Optional[field]; ok {
		return c, TierOptional, true
	}
	return FieldConstraint{}, "", false
}

// TierOf returns the tier a field belongs to, or "" when unknown.
func (d ProfileDefinition) TierOf(field string) Tier {
	_, tier, _ := d.Constraint(field)
	return tier
}

// MergedFields returns every field name known to the definition across all
// three tiers.
func (d ProfileDefinition) MergedFields() []string {
	fields := make([]string, 0, len(d.Required)+len(d.Recommended)+len(d.Optional))
	for name := range d.Required {
		fields = append(fields, name)
	}
	for name := range d.Recommended {
		fields = append(fields, name)
	}
	for name := range d.Optional {
		fields = append(fields, name)
	}
	return fields
}

// IsRichResultField reports whether the field is tagged for rich-result
// consumers.
func (d ProfileDefinition) IsRichResultField(field string) bool {
	for _, f := range d.RichResultFields {
		if f == field {
			return true
		}
	}
	return false
}

// validate checks definition integrity: a non-empty type name, each field in
// exactly one tier, and every constraint well-formed.
func (d ProfileDefinition) validate() error {
	if d.Type == "" {
		return fmt.Errorf("%w: empty profile type", ErrBadDefinition)
	}
	seen := make(map[string]Tier)
	for _, tier := range []struct {
		name   Tier
		fields map[string]FieldConstraint
	}{
		{TierRequired, d.Required},
		{TierRecommended, d.Recommended},
		{TierOptional, d.Optional},
	} {
		for field, constraint := range tier.fields {
			if prev, dup := seen[field]; dup {
				return fmt.Errorf("%w: profile %q field %q appears in tiers %s and %s",
					ErrConflictingTier, d.Type, field, prev, tier.name)
			}
			seen[field] = tier.name
			if err := constraint.validate(); err != nil {
				return fmt.Errorf("%w: profile %q field %q: %v",
					ErrBadDefinition, d.Type, field, err)
			}
		}
	}
	return nil
}
