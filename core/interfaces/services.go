// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"textkit/core/domain"
	"textkit/pkg/utils/html"
)

// MarkupService exposes the HTML stripping and truncation engine
type MarkupService interface {
	Strip(ctx context.Context, content string, opts html.StripOptions) string
	Shorten(ctx context.Context, content string, length int, ellipsis string) (html.Shortened, error)
	Paragraph(ctx context.Context, content string, index int) string
	Sentence(ctx context.Context, content string, index int) string
	RemoveComments(ctx context.Context, content string) string
}

// ExcerptService builds excerpts for feed items and articles
type ExcerptService interface {
	FeedExcerpts(ctx context.Context, feedXML string, length int, ellipsis string) (*domain.FeedExcerpt, error)
	ArticleExcerpt(ctx context.Context, pageHTML, pageURL string, length int, ellipsis string) (*domain.ArticleExcerpt, error)
}
