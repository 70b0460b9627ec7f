// ABOUTME: Plain-text helpers for word counting, truncation, substrings and diacritics
// ABOUTME: Every function is pure and safe for concurrent use

package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TruncateEllipsis is appended by Truncate.
const TruncateEllipsis = "..."

func isWordSeparator(r rune) bool {
	switch r {
	case ' ', '.', '?', '!':
		return true
	}
	return false
}

// WordCount counts the tokens left after splitting on spaces and sentence punctuation.
func WordCount(s string) int {
	return len(strings.FieldsFunc(s, isWordSeparator))
}

// Truncate shortens s to at most limit runes, cutting at the last space at or before the
// limit, and appends TruncateEllipsis. Strings that already fit are returned unchanged.
func Truncate(s string, limit int) string {
	if limit < 0 {
		limit = 0
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}

	cut := limit
	for i := limit; i > 0; i-- {
		if r[i] == ' ' {
			cut = i
			break
		}
	}
	return string(r[:cut]) + TruncateEllipsis
}

// SubstringBefore returns the part of s before the first sep, or "" when sep is absent.
func SubstringBefore(s, sep string) string {
	before, _, found := strings.Cut(s, sep)
	if !found {
		return ""
	}
	return before
}

// SubstringAfter returns the part of s after the first sep, or "" when sep is absent.
func SubstringAfter(s, sep string) string {
	_, after, found := strings.Cut(s, sep)
	if !found {
		return ""
	}
	return after
}

// RemoveDiacritics decomposes s, drops combining non-spacing marks and recomposes it.
func RemoveDiacritics(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
