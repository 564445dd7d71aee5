// Package score computes the tiered completion grade for a document: a
// 0-100 score per tier, an overall score over the required and recommended
// tiers, and a coarse status classification. Optional fields never move the
// numeric grade; they only feed suggestions.
package score

import (
	"math"

	"github.com/metaforge/profilekit/document"
	"github.com/metaforge/profilekit/profile"
	"github.com/metaforge/profilekit/suggest"
)

// Status classifies the overall completion level.
type Status string

const (
	// StatusComplete means every required and recommended field is present.
	StatusComplete Status = "complete"

	// StatusGood means the unrounded overall ratio is at least 80%.
	StatusGood Status = "good"

	// StatusFair means the unrounded overall ratio is at least 60%.
	StatusFair Status = "fair"

	// StatusIncomplete means the unrounded overall ratio is below 60%.
	StatusIncomplete Status = "incomplete"
)

// TierCompletion is the presence breakdown for one tier.
type TierCompletion struct {
	// Score is the rounded 0-100 presence percentage.
	Score int `json:"score"`

	// Completed counts present fields in the tier.
	Completed int `json:"completed"`

	// Total counts all fields in the tier.
	Total int `json:"total"`

	// Missing carries guidance for the absent fields.
	Missing []suggest.FieldMetadata `json:"missing,omitempty"`
}

// OptionalCompletion summarizes the optional tier, which never affects the
// overall grade.
type OptionalCompletion struct {
	// Available counts absent optional fields.
	Available int `json:"available"`
}

// Overall is the combined grade over required and recommended fields.
type Overall struct {
	// Score is the rounded 0-100 combined percentage.
	Score int `json:"score"`

	// Status classifies the unrounded combined ratio.
	Status Status `json:"status"`
}

// CompletionStatus is a snapshot of document completeness. It is recomputed
// on every call and never cached, since the builder layer mutates the
// document between calls.
type CompletionStatus struct {
	Required    TierCompletion     `json:"required"`
	Recommended TierCompletion     `json:"recommended"`
	Optional    OptionalCompletion `json:"optional"`
	Overall     Overall            `json:"overall"`
}

// Completion scores a document against a profile definition.
func Completion(def profile.ProfileDefinition, doc document.Document) *CompletionStatus {
	buckets := suggest.Fields(def, doc)

	required := tierCompletion(len(def.Required), buckets.Critical)
	recommended := tierCompletion(len(def.Recommended),
		append(append([]suggest.FieldMetadata{}, buckets.Important...), buckets.Helpful...))

	combinedTotal := required.Total + recommended.Total
	combinedDone := required.Completed + recommended.Completed
	ratio := 1.0
	if combinedTotal > 0 {
		ratio = float64(combinedDone) / float64(combinedTotal)
	}

	return &CompletionStatus{
		Required:    required,
		Recommended: recommended,
		Optional:    OptionalCompletion{Available: len(buckets.Optional)},
		Overall: Overall{
			Score:  roundPercent(ratio),
			Status: classify(ratio),
		},
	}
}

// tierCompletion builds the breakdown for one tier from its total size and
// the missing-field metadata.
func tierCompletion(total int, missing []suggest.FieldMetadata) TierCompletion {
	completed := total - len(missing)
	ratio := 1.0
	if total > 0 {
		ratio = float64(completed) / float64(total)
	}
	return TierCompletion{
		Score:     roundPercent(ratio),
		Completed: completed,
		Total:     total,
		Missing:   missing,
	}
}

// classify maps the unrounded ratio to a status. Thresholds compare the
// exact ratio, not the rounded display score.
func classify(ratio float64) Status {
	switch {
	case ratio >= 1.0:
		return StatusComplete
	case ratio >= 0.8:
		return StatusGood
	case ratio >= 0.6:
		return StatusFair
	default:
		return StatusIncomplete
	}
}

func roundPercent(ratio float64) int {
	return int(math.Round(ratio * 100))
}
