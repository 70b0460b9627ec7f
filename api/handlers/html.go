// ABOUTME: HTML handlers for the Huma API
// ABOUTME: Exposes tag stripping, shortening, paragraph and sentence extraction

package handlers

import (
	"context"
	"net/http"

	"textkit/api/dto/requests"
	"textkit/api/dto/responses"
	"textkit/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// HTMLHandler handles markup requests
type HTMLHandler struct {
	markup   interfaces.MarkupService
	defaults MarkupDefaults
}

// NewHTMLHandler creates a new HTML handler
func NewHTMLHandler(markup interfaces.MarkupService, defaults MarkupDefaults) *HTMLHandler {
	return &HTMLHandler{
		markup:   markup,
		defaults: defaults,
	}
}

// RegisterRoutes registers all HTML routes
func (h *HTMLHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "stripHTML",
		Method:      http.MethodPost,
		Path:        "/html/strip",
		Summary:     "Strip HTML tags",
		Description: "Removes every tag except the kept formatting tags and any extra tags named in the request",
		Tags:        []string{"HTML"},
	}, h.Strip)

	huma.Register(api, huma.Operation{
		OperationID: "shortenHTML",
		Method:      http.MethodPost,
		Path:        "/html/shorten",
		Summary:     "Shorten HTML",
		Description: "Cuts markup at the first space after the requested length, closes open tags and places the ellipsis",
		Tags:        []string{"HTML"},
	}, h.Shorten)

	huma.Register(api, huma.Operation{
		OperationID: "htmlParagraph",
		Method:      http.MethodPost,
		Path:        "/html/paragraph",
		Summary:     "Extract a paragraph",
		Tags:        []string{"HTML"},
	}, h.Paragraph)

	huma.Register(api, huma.Operation{
		OperationID: "htmlSentence",
		Method:      http.MethodPost,
		Path:        "/html/sentence",
		Summary:     "Extract a sentence",
		Tags:        []string{"HTML"},
	}, h.Sentence)

	huma.Register(api, huma.Operation{
		OperationID: "removeComments",
		Method:      http.MethodPost,
		Path:        "/html/comments",
		Summary:     "Remove HTML comments",
		Tags:        []string{"HTML"},
	}, h.RemoveComments)
}

// StripInput defines the input for the Strip operation
type StripInput struct {
	Body requests.StripRequest
}

// ShortenInput defines the input for the Shorten operation
type ShortenInput struct {
	Body requests.ShortenRequest
}

// IndexInput defines the input for paragraph and sentence extraction
type IndexInput struct {
	Body requests.IndexRequest
}

// ContentInput defines input carrying content only
type ContentInput struct {
	Body requests.ContentRequest
}

// ContentOutput wraps a single transformed string
type ContentOutput struct {
	Body responses.ContentResponse
}

// ShortenOutput defines the output for the Shorten operation
type ShortenOutput struct {
	Body responses.ShortenResponse
}

// Strip handles POST /html/strip
func (h *HTMLHandler) Strip(ctx context.Context, input *StripInput) (*ContentOutput, error) {
	out := &ContentOutput{}
	out.Body.Content = h.markup.Strip(ctx, input.Body.Content, input.Body.Options())
	return out, nil
}

// Shorten handles POST /html/shorten
func (h *HTMLHandler) Shorten(ctx context.Context, input *ShortenInput) (*ShortenOutput, error) {
	input.Body.ApplyDefaults(h.defaults.Length, h.defaults.Ellipsis)

	result, err := h.markup.Shorten(ctx, input.Body.Content, *input.Body.Length, *input.Body.Ellipsis)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ShortenOutput{
		Body: responses.ShortenResponse{
			Content:   result.Text,
			Truncated: result.Truncated,
		},
	}, nil
}

// Paragraph handles POST /html/paragraph
func (h *HTMLHandler) Paragraph(ctx context.Context, input *IndexInput) (*ContentOutput, error) {
	out := &ContentOutput{}
	out.Body.Content = h.markup.Paragraph(ctx, input.Body.Content, input.Body.Index)
	return out, nil
}

// Sentence handles POST /html/sentence
func (h *HTMLHandler) Sentence(ctx context.Context, input *IndexInput) (*ContentOutput, error) {
	out := &ContentOutput{}
	out.Body.Content = h.markup.Sentence(ctx, input.Body.Content, input.Body.Index)
	return out, nil
}

// RemoveComments handles POST /html/comments
func (h *HTMLHandler) RemoveComments(ctx context.Context, input *ContentInput) (*ContentOutput, error) {
	out := &ContentOutput{}
	out.Body.Content = h.markup.RemoveComments(ctx, input.Body.Content)
	return out, nil
}
