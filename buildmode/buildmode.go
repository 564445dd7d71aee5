// Package buildmode reshapes a finalized document according to the selected
// delivery mode. Transformation is strictly post-validation: no mode ever
// alters scoring or validation outcomes, and every mode works on clones of
// the caller's document.
package buildmode

import (
	"fmt"

	"github.com/metaforge/profilekit/document"
	"github.com/metaforge/profilekit/jsonld"
	"github.com/metaforge/profilekit/profile"
)

// Mode selects one of the three fixed output-shaping strategies.
type Mode string

const (
	// ModeStrictSEO keeps the profile-identifying properties embedded in
	// the single output document.
	ModeStrictSEO Mode = "strict-seo"

	// ModeSplitChannels emits a plain primary document and a sibling
	// carrying the extended context and the profile-identifying properties.
	ModeSplitChannels Mode = "split-channels"

	// ModeStandardsHeader strips the profile-identifying properties and
	// derives out-of-band link signals for a transport envelope.
	ModeStandardsHeader Mode = "standards-header"
)

// ModeConfig describes the behavior of one mode. It is a pure function of
// the mode value and owns no mutable state.
type ModeConfig struct {
	// Mode is the mode identifier.
	Mode Mode

	// Description describes the output shape.
	Description string

	// EmbedIdentifiers keeps profile-identifying properties in the primary
	// document.
	EmbedIdentifiers bool

	// SplitSecondary produces the extended sibling document.
	SplitSecondary bool

	// EmitLinkHeader produces the link-relation and link-header strings.
	EmitLinkHeader bool
}

// Modes contains the configuration for all delivery modes.
var Modes = map[Mode]ModeConfig{
	ModeStrictSEO: {
		Mode:             ModeStrictSEO,
		Description:      "Single document with embedded profile identifiers",
		EmbedIdentifiers: true,
	},
	ModeSplitChannels: {
		Mode:           ModeSplitChannels,
		Description:    "Plain primary document plus extended-context sibling",
		SplitSecondary: true,
	},
	ModeStandardsHeader: {
		Mode:           ModeStandardsHeader,
		Description:    "Plain document with profile signals on the transport envelope",
		EmitLinkHeader: true,
	},
}

// GetModeConfig returns the configuration for a mode, falling back to
// strict-seo for unknown values.
func GetModeConfig(mode Mode) ModeConfig {
	if config, ok := Modes[mode]; ok {
		return config
	}
	return Modes[ModeStrictSEO]
}

// Output is the terminal result of a build. Secondary is populated only in
// split-channels mode; LinkRelation and LinkHeader only in standards-header
// mode.
type Output struct {
	// Primary is the main output document.
	Primary document.Document `json:"primary"`

	// Secondary is the extended-context sibling document.
	Secondary document.Document `json:"secondary,omitempty"`

	// LinkRelation is the link-relation value for the transport envelope.
	LinkRelation string `json:"linkRelation,omitempty"`

	// LinkHeader is the ready-to-attach Link header value.
	LinkHeader string `json:"linkHeader,omitempty"`
}

// Build reshapes the document for the selected mode. The definition supplies
// the profile type and drives the synthesized identifying properties in
// split-channels mode; document fields are never consulted for the
// standards-header signals.
func Build(doc document.Document, def profile.ProfileDefinition, mode Mode) *Output {
	config := GetModeConfig(mode)

	switch {
	case config.SplitSecondary:
		return &Output{
			Primary:   stripIdentifiers(doc),
			Secondary: extendedSibling(doc, def),
		}
	case config.EmitLinkHeader:
		return &Output{
			Primary:      stripIdentifiers(doc),
			LinkRelation: LinkRelation(),
			LinkHeader:   LinkHeader(def.Type),
		}
	default:
		// Strict SEO: identifiers were embedded at construction time;
		// the content passes through untouched, but Primary is still a
		// clone so the caller's document is never aliased.
		return &Output{Primary: doc.Clone()}
	}
}

// LinkRelation returns the link-relation value signaled in
// standards-header mode. It depends on nothing but the mode contract.
func LinkRelation() string {
	return "profile"
}

// LinkHeader returns the Link header value for a profile type, computable
// from the type alone.
func LinkHeader(profileType string) string {
	return fmt.Sprintf("<%s>; rel=%q", jsonld.ProfileContext(profileType), LinkRelation())
}

// stripIdentifiers returns a clone without the four profile-identifying
// properties.
func stripIdentifiers(doc document.Document) document.Document {
	out := doc.Clone()
	for _, prop := range jsonld.IdentifyingProperties {
		delete(out, prop)
	}
	return out
}

// extendedSibling returns a clone carrying the extended context array and
// all four identifying properties, synthesizing any the source document
// lacks so the sibling is self-describing regardless of the mode the
// document was originally constructed under.
func extendedSibling(doc document.Document, def profile.ProfileDefinition) document.Document {
	out := doc.Clone()
	out[jsonld.KeyContext] = []any{
		jsonld.SchemaOrgContext,
		jsonld.ProfileContext(def.Type),
	}
	if !out.Has(jsonld.PropAdditionalType) {
		out[jsonld.PropAdditionalType] = jsonld.ProfileContext(def.Type)
	}
	if !out.Has(jsonld.PropSchemaVersion) {
		out[jsonld.PropSchemaVersion] = jsonld.ProfileVersion
	}
	if !out.Has(jsonld.PropIdentifier) {
		if id, ok := out[jsonld.KeyID].(string); ok && id != "" {
			out[jsonld.PropIdentifier] = id
		} else {
			out[jsonld.PropIdentifier] = jsonld.ProfileContext(def.Type)
		}
	}
	if !out.Has(jsonld.PropAdditionalProperty) {
		out[jsonld.PropAdditionalProperty] = []any{
			map[string]any{
				jsonld.KeyType: "PropertyValue",
				"name":         "profile",
				"value":        jsonld.ProfileContext(def.Type),
			},
		}
	}
	return out
}
