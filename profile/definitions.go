package profile

// Built-in profile definitions for the common schema.org document types.
// They are plain data and can be replaced wholesale by YAML-loaded
// definitions; nothing in the engine depends on this particular set.

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func builtinDefinitions() []ProfileDefinition {
	return []ProfileDefinition{
		articleDefinition(),
		productDefinition(),
		faqPageDefinition(),
		howToDefinition(),
		organizationDefinition(),
		webSiteDefinition(),
	}
}

func articleDefinition() ProfileDefinition {
	return ProfileDefinition{
		Type: "Article",
		Required: map[string]FieldConstraint{
			"headline": {
				Type:        TypeString,
				MaxLength:   intp(110),
				Description: "The headline of the article. Search results truncate past 110 characters.",
				Examples:    []any{"How Structured Data Improves Discovery"},
			},
			"author": {
				AnyOf: []FieldConstraint{
					{Type: TypeString},
					{Type: TypeObject},
					{Type: TypeArray},
				},
				Description: "The author, as a name string or a Person/Organization object.",
				Examples:    []any{map[string]any{"@type": "Person", "name": "Jane Doe"}},
			},
			"datePublished": {
				Type:        TypeString,
				Format:      FormatDateTime,
				Description: "Original publication timestamp in ISO 8601 format.",
				Examples:    []any{"2024-03-01T09:00:00Z"},
			},
		},
		Recommended: map[string]FieldConstraint{
			"image": {
				AnyOf: []FieldConstraint{
					{Type: TypeString, Format: FormatURI},
					{Type: TypeArray},
				},
				Description: "Representative image URL or list of URLs in multiple aspect ratios.",
				Examples:    []any{"https://example.com/photos/16x9/photo.jpg"},
			},
			"dateModified": {
				Type:        TypeString,
				Format:      FormatDateTime,
				Description: "Last modification timestamp in ISO 8601 format.",
				Examples:    []any{"2024-03-05T14:30:00Z"},
			},
			"publisher": {
				Type:        TypeObject,
				Description: "The publishing Organization with name and logo.",
				Examples:    []any{map[string]any{"@type": "Organization", "name": "Example News"}},
			},
			"description": {
				Type:        TypeString,
				MaxLength:   intp(300),
				Description: "A short summary of the article body.",
			},
			"mainEntityOfPage": {
				AnyOf: []FieldConstraint{
					{Type: TypeString, Format: FormatURI},
					{Type: TypeObject},
				},
				Description: "Canonical URL of the page carrying this article.",
			},
		},
		Optional: map[string]FieldConstraint{
			"articleBody":    {Type: TypeString, Description: "Full text of the article."},
			"articleSection": {Type: TypeString, Description: "Section or category name.", Examples: []any{"Technology"}},
			"wordCount":      {Type: TypeInteger, Minimum: floatp(0), Description: "Word count of the article body."},
			"keywords": {
				AnyOf: []FieldConstraint{
					{Type: TypeString},
					{Type: TypeArray},
				},
				Description: "Comma-separated keywords or a keyword list.",
			},
			"inLanguage": {Type: TypeString, Description: "BCP 47 language tag.", Examples: []any{"en-US"}},
			"speakable":  {Type: TypeObject, Description: "SpeakableSpecification for voice assistants."},
		},
		RichResultFields: []string{
			"headline", "image", "datePublished", "dateModified", "author", "publisher",
		},
		LLMOptimizedFields: []string{
			"headline", "description", "articleBody", "keywords", "author", "datePublished",
		},
	}
}

func productDefinition() ProfileDefinition {
	return ProfileDefinition{
		Type: "Product",
		Required: map[string]FieldConstraint{
			"name": {
				Type:        TypeString,
				MinLength:   intp(1),
				Description: "The product name.",
				Examples:    []any{"Trailblazer 45L Backpack"},
			},
			"image": {
				AnyOf: []FieldConstraint{
					{Type: TypeString, Format: FormatURI},
					{Type: TypeArray},
				},
				Description: "Product image URL or list of URLs.",
			},
			"description": {
				Type:        TypeString,
				Description: "The product description.",
			},
		},
		Recommended: map[string]FieldConstraint{
			"offers": {
				Type:        TypeObject,
				Description: "An Offer with price, priceCurrency and availability.",
				Examples:    []any{map[string]any{"@type": "Offer", "price": "129.00", "priceCurrency": "USD"}},
			},
			"aggregateRating": {
				Type:        TypeObject,
				Description: "AggregateRating with ratingValue and reviewCount.",
			},
			"review": {
				AnyOf: []FieldConstraint{
					{Type: TypeObject},
					{Type: TypeArray},
				},
				Description: "One or more Review objects.",
			},
			"brand": {
				AnyOf: []FieldConstraint{
					{Type: TypeString},
					{Type: TypeObject},
				},
				Description: "Brand name or Brand object.",
			},
			"sku": {Type: TypeString, Description: "Merchant-specific product identifier."},
		},
		Optional: map[string]FieldConstraint{
			"gtin13":   {Type: TypeString, MinLength: intp(13), MaxLength: intp(13), Description: "13-digit GTIN code."},
			"mpn":      {Type: TypeString, Description: "Manufacturer part number."},
			"color":    {Type: TypeString, Description: "Product color."},
			"material": {Type: TypeString, Description: "Product material."},
			"weight":   {Type: TypeObject, Description: "QuantitativeValue weight."},
			"category": {Type: TypeString, Description: "Product category breadcrumb.", Examples: []any{"Outdoor > Packs"}},
		},
		RichResultFields: []string{
			"name", "image", "offers", "aggregateRating", "review", "brand",
		},
		LLMOptimizedFields: []string{
			"name", "description", "brand", "offers", "category",
		},
	}
}

func faqPageDefinition() ProfileDefinition {
	return ProfileDefinition{
		Type: "FAQPage",
		Required: map[string]FieldConstraint{
			"mainEntity": {
				Type:        TypeArray,
				MinLength:   intp(1),
				Description: "List of Question objects, each with an acceptedAnswer.",
				Examples: []any{[]any{map[string]any{
					"@type":          "Question",
					"name":           "What is structured data?",
					"acceptedAnswer": map[string]any{"@type": "Answer", "text": "Machine-readable page metadata."},
				}}},
			},
		},
		Recommended: map[string]FieldConstraint{
			"name":        {Type: TypeString, Description: "Title of the FAQ page."},
			"description": {Type: TypeString, Description: "Short description of the FAQ topic."},
		},
		Optional: map[string]FieldConstraint{
			"about":        {Type: TypeObject, Description: "The Thing the FAQ is about."},
			"inLanguage":   {Type: TypeString, Description: "BCP 47 language tag."},
			"dateModified": {Type: TypeString, Format: FormatDateTime, Description: "Last modification timestamp."},
		},
		RichResultFields:   []string{"mainEntity"},
		LLMOptimizedFields: []string{"mainEntity", "name", "description"},
	}
}

func howToDefinition() ProfileDefinition {
	return ProfileDefinition{
		Type: "HowTo",
		Required: map[string]FieldConstraint{
			"name": {
				Type:        TypeString,
				Description: "Title of the how-to.",
				Examples:    []any{"How to replace a bicycle chain"},
			},
			"step": {
				Type:        TypeArray,
				MinLength:   intp(1),
				Description: "Ordered list of HowToStep objects.",
			},
		},
		Recommended: map[string]FieldConstraint{
			"description": {Type: TypeString, Description: "Short description of the task."},
			"image": {
				AnyOf: []FieldConstraint{
					{Type: TypeString, Format: FormatURI},
					{Type: TypeArray},
				},
				Description: "Image of the completed result.",
			},
			"totalTime": {
				Type:        TypeString,
				Description: "Total duration in ISO 8601 duration format.",
				Examples:    []any{"PT30M"},
			},
			"estimatedCost": {
				AnyOf: []FieldConstraint{
					{Type: TypeString},
					{Type: TypeObject},
				},
				Description: "Estimated cost as text or MonetaryAmount.",
			},
		},
		Optional: map[string]FieldConstraint{
			"supply": {
				AnyOf: []FieldConstraint{
					{Type: TypeObject},
					{Type: TypeArray},
				},
				Description: "HowToSupply items consumed by the task.",
			},
			"tool": {
				AnyOf: []FieldConstraint{
					{Type: TypeObject},
					{Type: TypeArray},
				},
				Description: "HowToTool items used by the task.",
			},
			"yield": {Type: TypeString, Description: "Quantity produced by the task."},
			"video": {Type: TypeObject, Description: "VideoObject demonstrating the task."},
		},
		RichResultFields:   []string{"name", "step", "image", "totalTime"},
		LLMOptimizedFields: []string{"name", "description", "step", "supply", "tool"},
	}
}

func organizationDefinition() ProfileDefinition {
	return ProfileDefinition{
		Type: "Organization",
		Required: map[string]FieldConstraint{
			"name": {Type: TypeString, MinLength: intp(1), Description: "Legal or common name of the organization."},
			"url": {
				Type:        TypeString,
				Format:      FormatURI,
				Description: "Canonical website URL.",
				Examples:    []any{"https://example.org"},
			},
		},
		Recommended: map[string]FieldConstraint{
			"logo": {
				AnyOf: []FieldConstraint{
					{Type: TypeString, Format: FormatURI},
					{Type: TypeObject},
				},
				Description: "Logo URL or ImageObject.",
			},
			"sameAs": {
				Type:        TypeArray,
				Description: "Profile URLs on other sites establishing identity.",
			},
			"contactPoint": {
				AnyOf: []FieldConstraint{
					{Type: TypeObject},
					{Type: TypeArray},
				},
				Description: "ContactPoint objects with telephone and contactType.",
			},
			"description": {Type: TypeString, Description: "Short description of the organization."},
		},
		Optional: map[string]FieldConstraint{
			"address": {
				AnyOf: []FieldConstraint{
					{Type: TypeString},
					{Type: TypeObject},
				},
				Description: "PostalAddress or address text.",
			},
			"email":        {Type: TypeString, Format: FormatEmail, Description: "Contact email address."},
			"telephone":    {Type: TypeString, Description: "Contact telephone number."},
			"foundingDate": {Type: TypeString, Format: FormatDate, Description: "Founding date."},
			"numberOfEmployees": {
				AnyOf: []FieldConstraint{
					{Type: TypeInteger},
					{Type: TypeObject},
				},
				Description: "Headcount or QuantitativeValue range.",
			},
		},
		RichResultFields:   []string{"name", "url", "logo", "sameAs"},
		LLMOptimizedFields: []string{"name", "description", "url", "sameAs", "contactPoint"},
	}
}

func webSiteDefinition() ProfileDefinition {
	return ProfileDefinition{
		Type: "WebSite",
		Required: map[string]FieldConstraint{
			"name": {Type: TypeString, MinLength: intp(1), Description: "Name of the website."},
			"url": {
				Type:        TypeString,
				Format:      FormatURI,
				Description: "Root URL of the website.",
			},
		},
		Recommended: map[string]FieldConstraint{
			"potentialAction": {
				Type:        TypeObject,
				Description: "SearchAction enabling the sitelinks search box.",
			},
			"description": {Type: TypeString, Description: "Short description of the site."},
			"publisher":   {Type: TypeObject, Description: "Publishing Organization."},
		},
		Optional: map[string]FieldConstraint{
			"inLanguage":    {Type: TypeString, Description: "BCP 47 language tag."},
			"copyrightYear": {Type: TypeInteger, Minimum: floatp(1900), Description: "Copyright year."},
			"alternateName": {Type: TypeString, Description: "Alternate or short site name."},
		},
		RichResultFields:   []string{"name", "url", "potentialAction"},
		LLMOptimizedFields: []string{"name", "description", "url", "alternateName"},
	}
}
