package validate

import (
	"math"

	"github.com/metaforge/profilekit/document"
	"github.com/metaforge/profilekit/profile"
	"github.com/metaforge/profilekit/sanitize"
	"github.com/metaforge/profilekit/suggest"
)

// Result is the combined validation outcome for one document. Valid is true
// iff every required field is present and every present field satisfies its
// constraint; warnings, suggestions, and security findings are advisory and
// never flip Valid.
type Result struct {
	// Valid reports required-tier completeness plus structural soundness.
	Valid bool `json:"valid"`

	// Errors lists structural violations on present fields plus one entry
	// per missing required field.
	Errors []FieldError `json:"errors,omitempty"`

	// Warnings lists missing recommended fields.
	Warnings []string `json:"warnings,omitempty"`

	// Suggestions lists missing optional fields.
	Suggestions []string `json:"suggestions,omitempty"`

	// SecurityWarnings carries the sanitization advisor's findings.
	SecurityWarnings []sanitize.Warning `json:"securityWarnings,omitempty"`

	// RichResultsCoverage is the rounded percentage of rich-result-tagged
	// fields present in the document.
	RichResultsCoverage int `json:"richResultsCoverage"`

	// LLMOptimizationScore is the rounded percentage of LLM-optimized
	// fields present in the document.
	LLMOptimizationScore int `json:"llmOptimizationScore"`

	// Sanitized is a deep-cloned sanitized copy of the document, populated
	// only when requested through Options.
	Sanitized document.Document `json:"sanitized,omitempty"`
}

// Options adjusts the combined validation pass.
type Options struct {
	// WithSanitized requests a sanitized copy of the document in the result.
	WithSanitized bool
}

// Document runs the full validation pass for a profile type: structural
// checks, tier completeness, consumer coverage, and the security advisor.
// The only error return is an unknown profile type, which is a configuration
// error, never a property of the document.
func Document(reg *profile.Registry, profileType string, doc document.Document, opts Options) (*Result, error) {
	def, err := reg.Get(profileType)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Errors:               Structure(doc, def),
		RichResultsCoverage:  coverage(doc, def.RichResultFields),
		LLMOptimizationScore: coverage(doc, def.LLMOptimizedFields),
	}

	buckets := suggest.Fields(def, doc)
	for _, md := range buckets.Critical {
		result.Errors = append(result.Errors, FieldError{
			Field:    md.Field,
			Expected: md.Constraint.Describe(),
			Actual:   "absent",
			Message:  md.Message,
		})
	}
	for _, md := range buckets.Important {
		result.Warnings = append(result.Warnings, md.Message)
	}
	for _, md := range buckets.Helpful {
		result.Warnings = append(result.Warnings, md.Message)
	}
	for _, md := range buckets.Optional {
		result.Suggestions = append(result.Suggestions, md.Action)
	}

	if opts.WithSanitized {
		sanitized, warnings := sanitize.Apply(doc)
		result.Sanitized = sanitized
		result.SecurityWarnings = warnings
	} else {
		result.SecurityWarnings = sanitize.Inspect(doc)
	}

	result.Valid = len(result.Errors) == 0
	return result, nil
}

// coverage returns the rounded percentage of tagged fields present in the
// document, or 100 for an empty tag list.
func coverage(doc document.Document, fields []string) int {
	if len(fields) == 0 {
		return 100
	}
	present := 0
	for _, f := range fields {
		if doc.Has(f) {
			present++
		}
	}
	return int(math.Round(100 * float64(present) / float64(len(fields))))
}
