package game

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeInput strips control and formatting characters from a raw input
// line, folds other whitespace to plain spaces, composes the text to NFC and
// trims the ends.
func NormalizeInput(s string) string {
	return strings.TrimSpace(norm.NFC.String(sanitizeInput(s)))
}

func sanitizeInput(s string) string {
	if s == "" {
		return ""
	}
	var builder strings.Builder
	builder.Grow(len(s))
	changed := false
	for _, r := range s {
		sanitized, ok := sanitizeRune(r)
		if !ok || sanitized != r {
			changed = true
		}
		if !ok {
			continue
		}
		builder.WriteRune(sanitized)
	}
	if !changed {
		return s
	}
	return builder.String()
}

func sanitizeRune(r rune) (rune, bool) {
	switch {
	case r == '\r' || r == '\n':
		return 0, false
	case unicode.IsSpace(r):
		if r == ' ' {
			return r, true
		}
		return ' ', true
	case r < 0x20 || r == 0x7f:
		return 0, false
	case unicode.Is(unicode.Cf, r):
		return 0, false
	case unicode.IsControl(r):
		return 0, false
	case !unicode.IsPrint(r):
		return 0, false
	default:
		return r, true
	}
}
