package profile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, 6, r.Len())
	assert.Equal(t, []string{"Article", "FAQPage", "HowTo", "Organization", "Product", "WebSite"}, r.Types())
}

func TestRegistryGet(t *testing.T) {
	r := DefaultRegistry()

	def, err := r.Get("Article")
	require.NoError(t, err)
	assert.Equal(t, "Article", def.Type)
	assert.Contains(t, def.Required, "headline")
	assert.Contains(t, def.Recommended, "image")
	assert.Contains(t, def.Optional, "wordCount")
}

func TestRegistryGetUnknown(t *testing.T) {
	r := DefaultRegistry()

	_, err := r.Get("Recipe")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestRegistryGetCaseSensitive(t *testing.T) {
	r := DefaultRegistry()

	_, err := r.Get("article")
	assert.ErrorIs(t, err, ErrUnknownProfile, "lookup is case-sensitive; normalization is the builder layer's job")
}

func TestNewRegistryRejectsConflictingTiers(t *testing.T) {
	_, err := NewRegistry(ProfileDefinition{
		Type:        "Broken",
		Required:    map[string]FieldConstraint{"name": {Type: TypeString}},
		Recommended: map[string]FieldConstraint{"name": {Type: TypeString}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflictingTier)
}

func TestNewRegistryRejectsDuplicateTypes(t *testing.T) {
	def := ProfileDefinition{
		Type:     "Thing",
		Required: map[string]FieldConstraint{"name": {Type: TypeString}},
	}
	_, err := NewRegistry(def, def)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateProfile)
}

func TestNewRegistryRejectsMalformedConstraints(t *testing.T) {
	tests := []struct {
		name       string
		constraint FieldConstraint
	}{
		{"unknown type", FieldConstraint{Type: "decimal"}},
		{"unknown format", FieldConstraint{Type: TypeString, Format: "hostname"}},
		{"format on non-string", FieldConstraint{Type: TypeInteger, Format: FormatDate}},
		{"min over max length", FieldConstraint{Type: TypeString, MinLength: intp(5), MaxLength: intp(2)}},
		{"min over max bound", FieldConstraint{Type: TypeNumber, Minimum: floatp(10), Maximum: floatp(1)}},
		{"empty constraint", FieldConstraint{}},
		{"nested any_of", FieldConstraint{AnyOf: []FieldConstraint{{AnyOf: []FieldConstraint{{Type: TypeString}}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(ProfileDefinition{
				Type:     "Thing",
				Required: map[string]FieldConstraint{"field": tt.constraint},
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadDefinition)
		})
	}
}

func TestNewRegistryRejectsEmptyType(t *testing.T) {
	_, err := NewRegistry(ProfileDefinition{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadDefinition))
}

func TestConstraintLookup(t *testing.T) {
	r := DefaultRegistry()
	def, err := r.Get("Article")
	require.NoError(t, err)

	_, tier, ok := def.Constraint("headline")
	require.True(t, ok)
	assert.Equal(t, TierRequired, tier)

	_, tier, ok = def.Constraint("image")
	require.True(t, ok)
	assert.Equal(t, TierRecommended, tier)

	_, tier, ok = def.Constraint("keywords")
	require.True(t, ok)
	assert.Equal(t, TierOptional, tier)

	_, _, ok = def.Constraint("unknownField")
	assert.False(t, ok)
	assert.Equal(t, Tier(""), def.TierOf("unknownField"))
}

func TestMergedFields(t *testing.T) {
	r := DefaultRegistry()
	def, err := r.Get("FAQPage")
	require.NoError(t, err)

	merged := def.MergedFields()
	assert.Len(t, merged, len(def.Required)+len(def.Recommended)+len(def.Optional))
	assert.Contains(t, merged, "mainEntity")
	assert.Contains(t, merged, "name")
	assert.Contains(t, merged, "inLanguage")
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name       string
		constraint FieldConstraint
		expected   string
	}{
		{"plain string", FieldConstraint{Type: TypeString}, "string"},
		{"formatted string", FieldConstraint{Type: TypeString, Format: FormatDateTime}, "string (date-time)"},
		{"disjunction", FieldConstraint{AnyOf: []FieldConstraint{
			{Type: TypeString, Format: FormatURI},
			{Type: TypeArray},
		}}, "one of [string (uri), array]"},
		{"const", FieldConstraint{Const: "Article"}, "constant Article"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.constraint.Describe())
		})
	}
}
