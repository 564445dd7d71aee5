// Package sanitize inspects documents for unsafe content: script-like markup
// embedded in free-text fields and URI values outside the allowed scheme
// set. Inspection is advisory and never fails validation; Apply produces a
// sanitized deep copy and leaves the caller's document untouched.
package sanitize

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/metaforge/profilekit/document"
)

// Severity grades a security finding.
type Severity string

const (
	// SeverityHigh marks executable content: script blocks, event handler
	// attributes, and code-execution URI schemes.
	SeverityHigh Severity = "high"

	// SeverityMedium marks non-executable embedded markup.
	SeverityMedium Severity = "medium"
)

// Warning is one security finding on one field.
type Warning struct {
	// Field is the dotted path of the offending field, e.g. "publisher.logo"
	// or "image[0]".
	Field string `json:"field"`

	// Message describes the finding.
	Message string `json:"message"`

	// Severity grades the finding.
	Severity Severity `json:"severity"`
}

// Pre-compiled detection patterns for executable content. Runtime
// compilation is avoided both for speed and to keep the patterns auditable
// in one place. Non-executable markup is detected by tokenizing instead,
// which copes with malformed tags that a single pattern would miss.
var (
	scriptRe = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>|<script[^>]*/?>`)
	styleRe  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	eventRe  = regexp.MustCompile(`(?i)\son[a-z]+\s*=`)
)

// allowedSchemes is the fixed allow-list of network-retrievable URI schemes.
// Everything else, including javascript:, data:, vbscript:, and file:, is
// rejected.
var allowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ftp":   true,
	"ftps":  true,
}

// dangerousSchemes trigger code execution or local resource access and are
// flagged even without an authority component, where free text with a colon
// would otherwise be indistinguishable from an opaque URI.
var dangerousSchemes = map[string]bool{
	"javascript": true,
	"vbscript":   true,
	"data":       true,
	"file":       true,
	"blob":       true,
	"about":      true,
}

// stripPolicy removes all markup from flagged free-text values.
var stripPolicy = bluemonday.StrictPolicy()

// Inspect walks every string-valued field in the document, at any nesting
// depth and independent of tier membership, and reports unsafe content.
func Inspect(doc document.Document) []Warning {
	var warnings []Warning
	walkMap(map[string]any(doc), "", func(path, value string) {
		if w, bad := inspectString(path, value); bad {
			warnings = append(warnings, w)
		}
	})
	return warnings
}

// Apply returns a deep-cloned copy of the document with offending markup
// stripped and disallowed URIs removed, together with the warnings that
// drove each change. The original document is never mutated.
func Apply(doc document.Document) (document.Document, []Warning) {
	clone := doc.Clone()
	var warnings []Warning
	rewriteMap(map[string]any(clone), "", &warnings)
	return clone, warnings
}

// inspectString classifies a single string value.
func inspectString(path, value string) (Warning, bool) {
	if scheme, bad := disallowedScheme(value); bad {
		return Warning{
			Field:    path,
			Message:  fmt.Sprintf("URI scheme %q is not allowed; only network-retrievable schemes are accepted", scheme),
			Severity: SeverityHigh,
		}, true
	}
	if scriptRe.MatchString(value) || eventRe.MatchString(value) {
		return Warning{
			Field:    path,
			Message:  "value contains script-like markup",
			Severity: SeverityHigh,
		}, true
	}
	if styleRe.MatchString(value) || containsMarkup(value) {
		return Warning{
			Field:    path,
			Message:  "value contains embedded markup",
			Severity: SeverityMedium,
		}, true
	}
	return Warning{}, false
}

// containsMarkup tokenizes the value and reports whether any tag or comment
// token appears. Plain text, including bare "<" and ">" characters, yields
// only text tokens and passes.
func containsMarkup(value string) bool {
	if !strings.Contains(value, "<") {
		return false
	}
	z := html.NewTokenizer(strings.NewReader(value))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken, html.CommentToken, html.DoctypeToken:
			return true
		}
	}
}

// disallowedScheme reports whether the value is a URI with a scheme outside
// the allow-list. A value counts as a URI when it carries an authority
// component (scheme://host) or uses a known code-execution scheme; plain
// text that happens to contain a colon passes through.
func disallowedScheme(value string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil || !u.IsAbs() {
		return "", false
	}
	scheme := strings.ToLower(u.Scheme)
	if allowedSchemes[scheme] {
		return "", false
	}
	if dangerousSchemes[scheme] || u.Host != "" {
		return scheme, true
	}
	return "", false
}

// walkMap visits every string value in a nested map, building dotted paths.
func walkMap(m map[string]any, prefix string, visit func(path, value string)) {
	for key, value := range m {
		walkValue(value, joinPath(prefix, key), visit)
	}
}

func walkValue(v any, path string, visit func(path, value string)) {
	switch t := v.(type) {
	case string:
		visit(path, t)
	case map[string]any:
		walkMap(t, path, visit)
	case document.Document:
		walkMap(map[string]any(t), path, visit)
	case []any:
		for i, e := range t {
			walkValue(e, path+"["+strconv.Itoa(i)+"]", visit)
		}
	}
}

// rewriteMap sanitizes string values in place on an already-cloned map.
// Disallowed URIs are deleted; markup is stripped.
func rewriteMap(m map[string]any, prefix string, warnings *[]Warning) {
	for key, value := range m {
		path := joinPath(prefix, key)
		switch t := value.(type) {
		case string:
			replacement, remove, w, changed := sanitizeString(path, t)
			if !changed {
				continue
			}
			*warnings = append(*warnings, w)
			if remove {
				delete(m, key)
			} else {
				m[key] = replacement
			}
		case map[string]any:
			rewriteMap(t, path, warnings)
		case document.Document:
			rewriteMap(map[string]any(t), path, warnings)
		case []any:
			rewriteSlice(t, path, warnings)
		}
	}
}

func rewriteSlice(s []any, prefix string, warnings *[]Warning) {
	for i, value := range s {
		path := prefix + "[" + strconv.Itoa(i) + "]"
		switch t := value.(type) {
		case string:
			replacement, _, w, changed := sanitizeString(path, t)
			if !changed {
				continue
			}
			*warnings = append(*warnings, w)
			s[i] = replacement
		case map[string]any:
			rewriteMap(t, path, warnings)
		case document.Document:
			rewriteMap(map[string]any(t), path, warnings)
		case []any:
			rewriteSlice(t, path, warnings)
		}
	}
}

// sanitizeString returns the sanitized replacement for a flagged value.
// Only disallowed URIs report remove; stripped markup stays as the stripped
// string even when nothing survives the strip.
func sanitizeString(path, value string) (replacement string, remove bool, w Warning, changed bool) {
	w, bad := inspectString(path, value)
	if !bad {
		return value, false, Warning{}, false
	}
	if _, disallowed := disallowedScheme(value); disallowed {
		return "", true, w, true
	}
	return strings.TrimSpace(stripPolicy.Sanitize(value)), false, w, true
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
