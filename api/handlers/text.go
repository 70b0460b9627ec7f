// ABOUTME: Plain-text handlers for the Huma API
// ABOUTME: Word counts, case transforms, truncation, highlighting and substrings

package handlers

import (
	"context"
	"net/http"
	"unicode/utf8"

	"textkit/api/dto/requests"
	"textkit/api/dto/responses"
	"textkit/pkg/utils/text"

	"github.com/danielgtaylor/huma/v2"
)

const defaultHighlightClass = "highlight"

// TextHandler handles plain-text requests
type TextHandler struct{}

// NewTextHandler creates a new text handler
func NewTextHandler() *TextHandler {
	return &TextHandler{}
}

// RegisterRoutes registers all text routes
func (h *TextHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analyzeText",
		Method:      http.MethodPost,
		Path:        "/text/analyze",
		Summary:     "Count words, characters and sentences",
		Tags:        []string{"Text"},
	}, h.Analyze)

	huma.Register(api, huma.Operation{
		OperationID: "transformText",
		Method:      http.MethodPost,
		Path:        "/text/transform",
		Summary:     "Apply a text transform",
		Description: "upper-first, invert-case, remove-diacritics or truncate",
		Tags:        []string{"Text"},
	}, h.Transform)

	huma.Register(api, huma.Operation{
		OperationID: "highlightText",
		Method:      http.MethodPost,
		Path:        "/text/highlight",
		Summary:     "Wrap keyword matches in spans",
		Tags:        []string{"Text"},
	}, h.Highlight)

	huma.Register(api, huma.Operation{
		OperationID: "substringText",
		Method:      http.MethodPost,
		Path:        "/text/substring",
		Summary:     "Return the text before or after a separator",
		Tags:        []string{"Text"},
	}, h.Substring)
}

// AnalyzeInput defines the input for the Analyze operation
type AnalyzeInput struct {
	Body requests.AnalyzeRequest
}

// AnalyzeOutput defines the output for the Analyze operation
type AnalyzeOutput struct {
	Body responses.AnalyzeResponse
}

// TransformInput defines the input for the Transform operation
type TransformInput struct {
	Body requests.TransformRequest
}

// HighlightInput defines the input for the Highlight operation
type HighlightInput struct {
	Body requests.HighlightRequest
}

// SubstringInput defines the input for the Substring operation
type SubstringInput struct {
	Body requests.SubstringRequest
}

// Analyze handles POST /text/analyze
func (h *TextHandler) Analyze(ctx context.Context, input *AnalyzeInput) (*AnalyzeOutput, error) {
	return &AnalyzeOutput{
		Body: responses.AnalyzeResponse{
			Words:      text.WordCount(input.Body.Text),
			Characters: utf8.RuneCountInString(input.Body.Text),
			Sentences:  len(text.Sentences(input.Body.Text)),
		},
	}, nil
}

// Transform handles POST /text/transform
func (h *TextHandler) Transform(ctx context.Context, input *TransformInput) (*ContentOutput, error) {
	out := &ContentOutput{}
	switch input.Body.Operation {
	case requests.OpUpperFirst:
		out.Body.Content = text.UpperFirst(input.Body.Text)
	case requests.OpInvertCase:
		out.Body.Content = text.InvertCase(input.Body.Text)
	case requests.OpRemoveDiacritics:
		out.Body.Content = text.RemoveDiacritics(input.Body.Text)
	case requests.OpTruncate:
		out.Body.Content = text.Truncate(input.Body.Text, input.Body.Limit)
	default:
		return nil, huma.Error400BadRequest("unknown operation " + input.Body.Operation)
	}
	return out, nil
}

// Highlight handles POST /text/highlight
func (h *TextHandler) Highlight(ctx context.Context, input *HighlightInput) (*ContentOutput, error) {
	className := input.Body.ClassName
	if className == "" {
		className = defaultHighlightClass
	}
	out := &ContentOutput{}
	out.Body.Content = text.Highlight(input.Body.Text, input.Body.Keywords, className)
	return out, nil
}

// Substring handles POST /text/substring
func (h *TextHandler) Substring(ctx context.Context, input *SubstringInput) (*ContentOutput, error) {
	out := &ContentOutput{}
	if input.Body.Side == "after" {
		out.Body.Content = text.SubstringAfter(input.Body.Text, input.Body.Separator)
	} else {
		out.Body.Content = text.SubstringBefore(input.Body.Text, input.Body.Separator)
	}
	return out, nil
}
