// ABOUTME: Word-safe HTML truncation that re-balances markup left open by the cut
// ABOUTME: Truncated fragments go through a Repairer before the ellipsis is placed

package html

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultShortenLength is the rune budget used when callers have no preference.
	DefaultShortenLength = 300

	// DefaultEllipsis marks truncated content.
	DefaultEllipsis = "..."

	lineBreak          = "<br />"
	canonicalLineBreak = "<br/>"
	closingParagraph   = "</p>"
)

// Shortened is the outcome of ShortenHTML.
type Shortened struct {
	Text      string `json:"text"`
	Truncated bool   `json:"truncated"`
}

// Shortener truncates HTML at word boundaries and repairs the result.
type Shortener struct {
	repairer Repairer
	config   RepairConfig
}

// NewShortener creates a Shortener backed by repairer. A nil repairer selects GoqueryRepairer.
func NewShortener(repairer Repairer) *Shortener {
	if repairer == nil {
		repairer = NewGoqueryRepairer()
	}
	return &Shortener{
		repairer: repairer,
		config:   DefaultRepairConfig(),
	}
}

// ShortenHTML truncates input with the default repairer.
func ShortenHTML(input string, length int, ellipsis string) (Shortened, error) {
	return NewShortener(nil).Shorten(input, length, ellipsis)
}

// Shorten cuts input after length runes, extended to the next space, closes any tags the cut
// left open and places ellipsis before a trailing </p> or at the end.
// Input that already fits is returned verbatim.
func (s *Shortener) Shorten(input string, length int, ellipsis string) (Shortened, error) {
	if length < 0 {
		length = 0
	}
	inputLen := utf8.RuneCountInString(input)
	if inputLen <= length {
		return Shortened{Text: input}, nil
	}

	normalized := strings.ReplaceAll(input, lineBreak, canonicalLineBreak)
	candidate := strings.TrimSpace(cutAtWord(normalized, length))
	for strings.HasSuffix(candidate, canonicalLineBreak) {
		candidate = strings.TrimSpace(strings.TrimSuffix(candidate, canonicalLineBreak))
	}
	candidate = strings.ReplaceAll(candidate, canonicalLineBreak, lineBreak)

	// No word boundary after the limit means nothing was dropped.
	if utf8.RuneCountInString(candidate) >= inputLen {
		return Shortened{Text: input}, nil
	}

	repaired, err := s.repair(candidate)
	if err != nil {
		return Shortened{}, err
	}

	return Shortened{
		Text:      placeEllipsis(repaired, ellipsis),
		Truncated: true,
	}, nil
}

func (s *Shortener) repair(fragment string) (string, error) {
	doc, err := s.repairer.Repair([]byte(fragment), s.config)
	if err != nil {
		return "", &RepairError{Stage: "repair", Err: err}
	}
	body, err := BodyContents(doc)
	if err != nil {
		return "", &RepairError{Stage: "body extraction", Err: err}
	}
	return body, nil
}

// cutAtWord returns the first length runes of s, extended until the remainder is empty
// or begins with a space.
func cutAtWord(s string, length int) string {
	i := 0
	for n := 0; n < length && i < len(s); n++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	for i < len(s) && s[i] != ' ' {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}

func placeEllipsis(text, ellipsis string) string {
	if ellipsis == "" {
		return text
	}
	if strings.HasSuffix(text, closingParagraph) {
		return strings.TrimSuffix(text, closingParagraph) + ellipsis + closingParagraph
	}
	return text + ellipsis
}
