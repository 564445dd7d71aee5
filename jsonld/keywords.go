package jsonld

import "strings"

// JSON-LD keywords used by the engine.
const (
	// KeyContext is the JSON-LD context keyword.
	KeyContext = "@context"

	// KeyType is the type discriminator keyword.
	KeyType = "@type"

	// KeyID is the node identifier keyword.
	KeyID = "@id"
)

// Context IRIs.
const (
	// SchemaOrgContext is the standard schema.org context IRI.
	SchemaOrgContext = "https://schema.org"

	// ProfileContextBase is the base IRI for per-profile extended contexts.
	// The profile type name is appended in lower case, e.g.
	// "https://profilekit.dev/context/article".
	ProfileContextBase = "https://profilekit.dev/context/"

	// ProfileVersion is the profile vocabulary version embedded as
	// schemaVersion by the builder layer.
	ProfileVersion = "1.0"
)

// Profile-identifying properties embedded by StrictSEO mode and removed or
// relocated by the other modes.
const (
	// PropAdditionalType carries the profile IRI.
	PropAdditionalType = "additionalType"

	// PropSchemaVersion carries the profile version string.
	PropSchemaVersion = "schemaVersion"

	// PropIdentifier carries the stable document identifier.
	PropIdentifier = "identifier"

	// PropAdditionalProperty carries structured profile annotations.
	PropAdditionalProperty = "additionalProperty"
)

// IdentifyingProperties lists the four profile-identifying properties in
// canonical order.
var IdentifyingProperties = []string{
	PropAdditionalType,
	PropSchemaVersion,
	PropIdentifier,
	PropAdditionalProperty,
}

// ProfileContext returns the extended context IRI for a profile type.
func ProfileContext(profileType string) string {
	return ProfileContextBase + strings.ToLower(profileType)
}
