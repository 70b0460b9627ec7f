// ABOUTME: Request DTOs for HTML endpoints
// ABOUTME: Provides validation and default values for incoming requests

package requests

import "textkit/pkg/utils/html"

// StripRequest represents the request body for stripping tags
type StripRequest struct {
	// Content is the HTML to strip
	Content string `json:"content" maxLength:"1048576" doc:"HTML content to strip"`

	// All removes every tag, ignoring the keep flags and extra tags
	All bool `json:"all,omitempty" doc:"Remove every tag"`

	KeepParagraphs *bool `json:"keep_paragraphs,omitempty" doc:"Keep <p> tags (default true)"`
	KeepItalic     *bool `json:"keep_italic,omitempty" doc:"Keep <i> and <em> tags (default true)"`
	KeepUnderline  *bool `json:"keep_underline,omitempty" doc:"Keep <u> tags (default true)"`
	KeepBold       *bool `json:"keep_bold,omitempty" doc:"Keep <b> and <strong> tags (default true)"`
	KeepLineBreak  *bool `json:"keep_line_break,omitempty" doc:"Keep <br> tags (default true)"`

	// ExtraTags names further tags to keep
	ExtraTags []string `json:"extra_tags,omitempty" maxItems:"50" doc:"Additional tag names to keep"`
}

// Options converts the request into strip options, unset flags defaulting to true
func (r *StripRequest) Options() html.StripOptions {
	if r.All {
		return html.StripAllOptions()
	}
	return html.StripOptions{
		KeepParagraphs: boolOr(r.KeepParagraphs, true),
		KeepItalic:     boolOr(r.KeepItalic, true),
		KeepUnderline:  boolOr(r.KeepUnderline, true),
		KeepBold:       boolOr(r.KeepBold, true),
		KeepLineBreak:  boolOr(r.KeepLineBreak, true),
		ExtraTags:      r.ExtraTags,
	}
}

// ShortenRequest represents the request body for shortening markup
type ShortenRequest struct {
	Content  string  `json:"content" maxLength:"1048576" doc:"HTML content to shorten"`
	Length   *int    `json:"length,omitempty" minimum:"0" doc:"Characters to keep before cutting at the next space"`
	Ellipsis *string `json:"ellipsis,omitempty" maxLength:"64" doc:"Marker appended to truncated output"`
}

// ApplyDefaults fills Length and Ellipsis when they were omitted
func (r *ShortenRequest) ApplyDefaults(length int, ellipsis string) {
	if r.Length == nil {
		r.Length = &length
	}
	if r.Ellipsis == nil {
		r.Ellipsis = &ellipsis
	}
}

// IndexRequest selects one paragraph or sentence
type IndexRequest struct {
	Content string `json:"content" maxLength:"1048576" doc:"HTML content"`
	Index   int    `json:"index" doc:"Zero-based index, out of range yields an empty result"`
}

// ContentRequest carries HTML content only
type ContentRequest struct {
	Content string `json:"content" maxLength:"1048576" doc:"HTML content"`
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
