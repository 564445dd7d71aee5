package buildmode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metaforge/profilekit/document"
	"github.com/metaforge/profilekit/jsonld"
	"github.com/metaforge/profilekit/profile"
)

func articleDef(t *testing.T) profile.ProfileDefinition {
	t.Helper()
	def, err := profile.DefaultRegistry().Get("Article")
	require.NoError(t, err)
	return def
}

// seoDocument is an Article constructed under strict-seo conventions, with
// the profile-identifying properties already embedded.
func seoDocument() document.Document {
	return document.Document{
		jsonld.KeyContext:             jsonld.SchemaOrgContext,
		jsonld.KeyType:                "Article",
		jsonld.KeyID:                  "urn:example:article:1",
		"headline":                    "X",
		"author":                      "Jane Doe",
		"datePublished":               "2024-03-01T09:00:00Z",
		jsonld.PropAdditionalType:     jsonld.ProfileContext("Article"),
		jsonld.PropSchemaVersion:      jsonld.ProfileVersion,
		jsonld.PropIdentifier:         "urn:example:article:1",
		jsonld.PropAdditionalProperty: []any{map[string]any{"name": "profile"}},
	}
}

func TestGetModeConfig(t *testing.T) {
	assert.True(t, GetModeConfig(ModeStrictSEO).EmbedIdentifiers)
	assert.True(t, GetModeConfig(ModeSplitChannels).SplitSecondary)
	assert.True(t, GetModeConfig(ModeStandardsHeader).EmitLinkHeader)

	// Unknown modes fall back to strict-seo.
	assert.Equal(t, ModeStrictSEO, GetModeConfig(Mode("turbo")).Mode)
}

func TestBuildStrictSEOPassesThrough(t *testing.T) {
	doc := seoDocument()
	out := Build(doc, articleDef(t), ModeStrictSEO)

	assert.True(t, document.Equal(doc, out.Primary))
	assert.Nil(t, out.Secondary)
	assert.Empty(t, out.LinkHeader)
}

func TestBuildSplitChannels(t *testing.T) {
	doc := seoDocument()
	out := Build(doc, articleDef(t), ModeSplitChannels)

	// Primary drops the identifying properties.
	for _, prop := range jsonld.IdentifyingProperties {
		assert.NotContains(t, out.Primary, prop)
	}
	assert.Equal(t, "X", out.Primary["headline"])

	// Secondary keeps them and carries the extended context.
	require.NotNil(t, out.Secondary)
	ctx, ok := out.Secondary[jsonld.KeyContext].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{jsonld.SchemaOrgContext, jsonld.ProfileContext("Article")}, ctx)
	for _, prop := range jsonld.IdentifyingProperties {
		assert.True(t, out.Secondary.Has(prop), "secondary must carry %s", prop)
	}

	// The input document is untouched.
	assert.Contains(t, doc, jsonld.PropAdditionalType)
}

func TestBuildSplitChannelsSynthesizesIdentifiers(t *testing.T) {
	// A document built under a non-embedding mode has none of the four
	// properties; the secondary sibling still carries all of them.
	doc := document.Document{
		jsonld.KeyType: "Article",
		jsonld.KeyID:   "urn:example:article:2",
		"headline":     "X",
	}

	out := Build(doc, articleDef(t), ModeSplitChannels)
	require.NotNil(t, out.Secondary)
	for _, prop := range jsonld.IdentifyingProperties {
		assert.True(t, out.Secondary.Has(prop), "missing %s", prop)
	}
	assert.Equal(t, "urn:example:article:2", out.Secondary[jsonld.PropIdentifier],
		"identifier falls back to the node @id")
	assert.Equal(t, jsonld.ProfileVersion, out.Secondary[jsonld.PropSchemaVersion])
}

func TestBuildStandardsHeader(t *testing.T) {
	doc := seoDocument()
	out := Build(doc, articleDef(t), ModeStandardsHeader)

	for _, prop := range jsonld.IdentifyingProperties {
		assert.NotContains(t, out.Primary, prop)
	}
	assert.Nil(t, out.Secondary)
	assert.Equal(t, "profile", out.LinkRelation)
	assert.Equal(t, `<https://profilekit.dev/context/article>; rel="profile"`, out.LinkHeader)
}

func TestBuildModeRoundTrip(t *testing.T) {
	// The strict-seo output, stripped of the four identifying properties,
	// is deep-equal to the standards-header primary.
	doc := seoDocument()
	def := articleDef(t)

	strict := Build(doc, def, ModeStrictSEO).Primary.Clone()
	for _, prop := range jsonld.IdentifyingProperties {
		delete(strict, prop)
	}
	header := Build(doc, def, ModeStandardsHeader).Primary

	assert.True(t, document.Equal(strict, header))
}

func TestBuildNeverMutatesInput(t *testing.T) {
	doc := seoDocument()
	snapshot := doc.Clone()

	Build(doc, articleDef(t), ModeStrictSEO)
	Build(doc, articleDef(t), ModeSplitChannels)
	Build(doc, articleDef(t), ModeStandardsHeader)

	assert.True(t, document.Equal(snapshot, doc))
}

func TestBuildStrictSEONeverAliasesInput(t *testing.T) {
	doc := seoDocument()

	out := Build(doc, articleDef(t), ModeStrictSEO)
	out.Primary["headline"] = "edited after the fact"

	assert.NotEqual(t, "edited after the fact", doc["headline"])
}

func TestLinkHeaderDependsOnlyOnType(t *testing.T) {
	assert.Equal(t, LinkHeader("Article"), LinkHeader("Article"))
	assert.NotEqual(t, LinkHeader("Article"), LinkHeader("Product"))
}
