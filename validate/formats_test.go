package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPredicates(t *testing.T) {
	tests := []struct {
		format string
		value  string
		valid  bool
	}{
		{"date", "2024-03-01", true},
		{"date", "2024-3-1", false},
		{"date", "2024-03-01T09:00:00Z", false},
		{"date-time", "2024-03-01T09:00:00Z", true},
		{"date-time", "2024-03-01T09:00:00+02:00", true},
		{"date-time", "2024-03-01", false},
		{"date-time", "not a date", false},
		{"uri", "https://example.com/a?b=c", true},
		{"uri", "ftp://example.com/file", true},
		{"uri", "/relative/path", false},
		{"uri", "", false},
		{"uri-reference", "/relative/path", true},
		{"uri-reference", "https://example.com", true},
		{"uri-reference", "://bad", false},
		{"email", "user@example.com", true},
		{"email", "Jane Doe <user@example.com>", false},
		{"email", "not-an-email", false},
	}

	for _, tt := range tests {
		t.Run(tt.format+"/"+tt.value, func(t *testing.T) {
			pred, ok := formatPredicates[tt.format]
			if !ok {
				t.Fatalf("no predicate for format %q", tt.format)
			}
			assert.Equal(t, tt.valid, pred(tt.value))
		})
	}
}
