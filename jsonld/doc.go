// Package jsonld provides vocabulary constants for linked-data documents.
//
// Documents handled by this engine follow the JSON-LD convention: a flat or
// nested property bag discriminated by "@type", optionally carrying an
// "@context" and an "@id". The constants here name the keywords, the
// schema.org context IRIs, and the four profile-identifying properties that
// the output transformer embeds, splits out, or strips depending on the
// selected build mode.
//
// # Profile-identifying properties
//
// Four properties mark a document as conforming to a named profile:
//   - additionalType: the profile IRI
//   - schemaVersion: the profile version string
//   - identifier: a stable document identifier
//   - additionalProperty: structured profile annotations
//
// StrictSEO mode keeps them embedded, SplitChannels moves them to a sibling
// document, and StandardsHeader drops them in favor of link-header signals.
package jsonld
