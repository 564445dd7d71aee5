package validate

import (
	"net/mail"
	"net/url"
	"time"

	"github.com/metaforge/profilekit/profile"
)

// formatPredicates maps format names to their predicates. The set mirrors
// the formats accepted by profile.FieldConstraint validation.
var formatPredicates = map[string]func(string) bool{
	profile.FormatDate:         isDate,
	profile.FormatDateTime:     isDateTime,
	profile.FormatURI:          isURI,
	profile.FormatURIReference: isURIReference,
	profile.FormatEmail:        isEmail,
}

// isDate accepts an RFC 3339 full-date, e.g. "2024-03-01".
func isDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// isDateTime accepts an RFC 3339 timestamp, e.g. "2024-03-01T09:00:00Z".
func isDateTime(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// isURI accepts absolute URIs only: a scheme is required.
func isURI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

// isURIReference accepts any RFC 3986 reference, including relative ones.
func isURIReference(s string) bool {
	_, err := url.Parse(s)
	return err == nil
}

// isEmail accepts addresses parseable per RFC 5322, without display names.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
