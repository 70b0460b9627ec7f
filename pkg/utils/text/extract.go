// ABOUTME: Sentence and paragraph extraction from HTML content
// ABOUTME: Builds on the tag stripper in pkg/utils/html

package text

import (
	"strings"

	"textkit/pkg/utils/html"
)

const emptyParagraph = "<p></p>"

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// Sentences strips all markup from content and splits it on sentence punctuation.
// Blank sentences are dropped and the rest are trimmed, so repeated punctuation
// such as "Hi!! There." yields two sentences rather than three.
func Sentences(content string) []string {
	plain := html.StripHTML(content, html.StripAllOptions())
	var out []string
	for _, s := range strings.FieldsFunc(plain, isSentenceEnd) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Sentence returns the sentence at the zero-based index with a period appended,
// or "" when there is no such sentence.
func Sentence(content string, index int) string {
	sentences := Sentences(content)
	if index < 0 || index >= len(sentences) {
		return ""
	}
	return sentences[index] + "."
}

// paragraphOptions keeps paragraph, italic, underline, bold and anchor tags.
var paragraphOptions = html.StripOptions{
	KeepParagraphs: true,
	KeepItalic:     true,
	KeepUnderline:  true,
	KeepBold:       true,
	ExtraTags:      []string{"a"},
}

// Paragraphs removes comments, reduces the markup to inline formatting and links, and splits
// the result on <p>. Each entry is the inner markup of one paragraph.
func Paragraphs(content string) []string {
	cleaned := html.StripHTML(html.RemoveComments(content), paragraphOptions)
	var out []string
	for _, segment := range strings.Split(cleaned, "<p>") {
		segment = strings.TrimSpace(strings.ReplaceAll(segment, "</p>", ""))
		if segment != "" {
			out = append(out, segment)
		}
	}
	return out
}

// Paragraph returns the paragraph at the zero-based index wrapped in <p></p>,
// or an empty paragraph when the index is out of range.
func Paragraph(content string, index int) string {
	paragraphs := Paragraphs(content)
	if index < 0 || index >= len(paragraphs) {
		return emptyParagraph
	}
	return "<p>" + paragraphs[index] + "</p>"
}
