// ABOUTME: Excerpt handlers for the Huma API
// ABOUTME: Each endpoint can be switched off with its feature flag

package handlers

import (
	"context"
	"net/http"

	"textkit/api/dto/mappers"
	"textkit/api/dto/requests"
	"textkit/api/dto/responses"
	"textkit/core/excerpt"
	"textkit/core/interfaces"
	"textkit/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// ExcerptHandler handles feed and article excerpt requests
type ExcerptHandler struct {
	excerpts interfaces.ExcerptService
	flags    featureflags.Manager
	defaults MarkupDefaults
}

// NewExcerptHandler creates a new excerpt handler. A nil flags manager defers to the request context.
func NewExcerptHandler(excerpts interfaces.ExcerptService, flags featureflags.Manager, defaults MarkupDefaults) *ExcerptHandler {
	return &ExcerptHandler{
		excerpts: excerpts,
		flags:    flags,
		defaults: defaults,
	}
}

// RegisterRoutes registers all excerpt routes
func (h *ExcerptHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "feedExcerpts",
		Method:      http.MethodPost,
		Path:        "/excerpts/feed",
		Summary:     "Excerpt every item of a feed",
		Description: "Parses an RSS, Atom or JSON feed document and shortens each item's content",
		Tags:        []string{"Excerpts"},
	}, h.FeedExcerpts)

	huma.Register(api, huma.Operation{
		OperationID: "articleExcerpt",
		Method:      http.MethodPost,
		Path:        "/excerpts/article",
		Summary:     "Excerpt the readable article of a page",
		Description: "Extracts the main content of a page, shortens it and renders the excerpt as Markdown",
		Tags:        []string{"Excerpts"},
	}, h.ArticleExcerpt)
}

// FeedExcerptInput defines the input for the FeedExcerpts operation
type FeedExcerptInput struct {
	Body requests.FeedExcerptRequest
}

// FeedExcerptOutput defines the output for the FeedExcerpts operation
type FeedExcerptOutput struct {
	Body responses.FeedExcerptResponse
}

// ArticleExcerptInput defines the input for the ArticleExcerpt operation
type ArticleExcerptInput struct {
	Body requests.ArticleExcerptRequest
}

// ArticleExcerptOutput defines the output for the ArticleExcerpt operation
type ArticleExcerptOutput struct {
	Body responses.ArticleExcerptResponse
}

func (h *ExcerptHandler) enabled(ctx context.Context, flag featureflags.FeatureFlag) bool {
	if h.flags != nil {
		return h.flags.IsEnabled(ctx, flag)
	}
	return featureflags.IsEnabled(ctx, flag)
}

func disabled(name string) error {
	return huma.Error503ServiceUnavailable(name + " are disabled")
}

// FeedExcerpts handles POST /excerpts/feed
func (h *ExcerptHandler) FeedExcerpts(ctx context.Context, input *FeedExcerptInput) (*FeedExcerptOutput, error) {
	if !h.enabled(ctx, featureflags.FeedExcerpts) {
		return nil, disabled("Feed excerpts")
	}
	input.Body.ApplyDefaults(h.defaults.Length, h.defaults.Ellipsis)

	feed, err := h.excerpts.FeedExcerpts(ctx, input.Body.Feed, *input.Body.Length, *input.Body.Ellipsis)
	if err != nil {
		return nil, toHumaError(err)
	}

	out := &FeedExcerptOutput{Body: *mappers.ToFeedExcerptResponse(feed)}
	if input.Body.ItemsPerPage > 0 {
		page := excerpt.PaginateItems(feed.Items, input.Body.Page, input.Body.ItemsPerPage)
		out.Body.Items = out.Body.Items[:0]
		for i := range page {
			out.Body.Items = append(out.Body.Items, mappers.ToItemExcerptResponse(&page[i]))
		}
	}
	return out, nil
}

// ArticleExcerpt handles POST /excerpts/article
func (h *ExcerptHandler) ArticleExcerpt(ctx context.Context, input *ArticleExcerptInput) (*ArticleExcerptOutput, error) {
	if !h.enabled(ctx, featureflags.ArticleExcerpts) {
		return nil, disabled("Article excerpts")
	}
	input.Body.ApplyDefaults(h.defaults.Length, h.defaults.Ellipsis)

	article, err := h.excerpts.ArticleExcerpt(ctx, input.Body.HTML, input.Body.URL, *input.Body.Length, *input.Body.Ellipsis)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ArticleExcerptOutput{Body: *mappers.ToArticleExcerptResponse(article)}, nil
}
