// ABOUTME: HTML utilities for stripping tags with a configurable whitelist and decoding entities
// ABOUTME: Tag matching is regex based and best-effort, it is not a full HTML parser

package html

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// StripOptions selects which tags survive StripHTML.
type StripOptions struct {
	KeepParagraphs bool
	KeepItalic     bool
	KeepUnderline  bool
	KeepBold       bool
	KeepLineBreak  bool

	// ExtraTags lists additional tag names to keep, e.g. "a" or "span".
	ExtraTags []string
}

// DefaultStripOptions keeps paragraphs, italic, underline, bold and line breaks.
func DefaultStripOptions() StripOptions {
	return StripOptions{
		KeepParagraphs: true,
		KeepItalic:     true,
		KeepUnderline:  true,
		KeepBold:       true,
		KeepLineBreak:  true,
	}
}

// StripAllOptions keeps nothing.
func StripAllOptions() StripOptions {
	return StripOptions{}
}

// anyTag matches every tag, spanning newlines.
var anyTag = regexp.MustCompile(`(?s)<.*?>`)

// keptTag maps an option flag to the tag names it exempts.
type keptTag struct {
	enabled func(StripOptions) bool
	names   []string
}

var keptTags = []keptTag{
	{func(o StripOptions) bool { return o.KeepParagraphs }, []string{"p"}},
	{func(o StripOptions) bool { return o.KeepItalic }, []string{"i", "em"}},
	{func(o StripOptions) bool { return o.KeepUnderline }, []string{"u"}},
	{func(o StripOptions) bool { return o.KeepBold }, []string{"b", "strong"}},
	{func(o StripOptions) bool { return o.KeepLineBreak }, []string{"br"}},
}

// whitelist returns the alternation branches for every exempted tag.
func (o StripOptions) whitelist() []string {
	var alts []string
	for _, kt := range keptTags {
		if !kt.enabled(o) {
			continue
		}
		for _, name := range kt.names {
			alts = append(alts, name, "/"+name)
		}
	}
	for _, name := range o.ExtraTags {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		alts = append(alts, "/?"+regexp2.Escape(name))
	}
	return alts
}

// StripHTML removes every HTML tag from input except the ones exempted by opts.
// Malformed markup may leave partial angle-bracket fragments behind, so a second
// pass over such output can strip further.
func StripHTML(input string, opts StripOptions) string {
	if input == "" {
		return ""
	}

	alts := opts.whitelist()
	if len(alts) == 0 {
		return anyTag.ReplaceAllString(input, "")
	}

	// Every match ends in '>', so nothing past the last one can match.
	// Bounding the search keeps unterminated '<' runs linear.
	end := strings.LastIndexByte(input, '>') + 1
	if end == 0 {
		return input
	}
	head, tail := input[:end], input[end:]

	re := regexp2.MustCompile(`<(?!(?:`+strings.Join(alts, "|")+`)\b).*?>`, regexp2.Singleline|regexp2.IgnoreCase)
	out, err := re.Replace(head, "", -1, -1)
	if err != nil {
		// Only a match timeout can fail here and none is configured.
		return anyTag.ReplaceAllString(input, "")
	}
	return out + tail
}

// PlainText strips every tag, decodes common entities and collapses whitespace.
func PlainText(input string) string {
	text := StripHTML(input, StripAllOptions())
	text = DecodeEntities(text)
	return strings.Join(strings.Fields(text), " ")
}

// DecodeEntities decodes common HTML entities
func DecodeEntities(text string) string {
	return entityReplacer.Replace(text)
}

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&#160;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", "\"",
	"&#34;", "\"",
	"&#39;", "'",
	"&apos;", "'",
	"&#8230;", "...",
	"&#8217;", "'",
	"&#8220;", "\"",
	"&#8221;", "\"",
	"&ldquo;", "\"",
	"&rdquo;", "\"",
	"&lsquo;", "'",
	"&rsquo;", "'",
	"&mdash;", "-",
	"&ndash;", "-",
	"&hellip;", "...",
	"&copy;", "(c)",
	"&reg;", "(R)",
	"&trade;", "(TM)",
)
