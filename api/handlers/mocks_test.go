package handlers

import (
	"context"

	"textkit/core/domain"
	"textkit/pkg/utils/html"
)

// mockMarkupService is a mock implementation of the markup service
type mockMarkupService struct {
	stripFunc   func(ctx context.Context, content string, opts html.StripOptions) string
	shortenFunc func(ctx context.Context, content string, length int, ellipsis string) (html.Shortened, error)
}

func (m *mockMarkupService) Strip(ctx context.Context, content string, opts html.StripOptions) string {
	if m.stripFunc != nil {
		return m.stripFunc(ctx, content, opts)
	}
	return html.StripHTML(content, opts)
}

func (m *mockMarkupService) Shorten(ctx context.Context, content string, length int, ellipsis string) (html.Shortened, error) {
	if m.shortenFunc != nil {
		return m.shortenFunc(ctx, content, length, ellipsis)
	}
	return html.Shortened{Text: content}, nil
}

func (m *mockMarkupService) Paragraph(ctx context.Context, content string, index int) string {
	return "paragraph"
}

func (m *mockMarkupService) Sentence(ctx context.Context, content string, index int) string {
	return "sentence"
}

func (m *mockMarkupService) RemoveComments(ctx context.Context, content string) string {
	return html.RemoveComments(content)
}

// mockExcerptService is a mock implementation of the excerpt service
type mockExcerptService struct {
	feedFunc    func(ctx context.Context, feedXML string, length int, ellipsis string) (*domain.FeedExcerpt, error)
	articleFunc func(ctx context.Context, pageHTML, pageURL string, length int, ellipsis string) (*domain.ArticleExcerpt, error)
}

func (m *mockExcerptService) FeedExcerpts(ctx context.Context, feedXML string, length int, ellipsis string) (*domain.FeedExcerpt, error) {
	if m.feedFunc != nil {
		return m.feedFunc(ctx, feedXML, length, ellipsis)
	}
	return &domain.FeedExcerpt{FeedType: domain.FeedTypeRSS}, nil
}

func (m *mockExcerptService) ArticleExcerpt(ctx context.Context, pageHTML, pageURL string, length int, ellipsis string) (*domain.ArticleExcerpt, error) {
	if m.articleFunc != nil {
		return m.articleFunc(ctx, pageHTML, pageURL, length, ellipsis)
	}
	return &domain.ArticleExcerpt{URL: pageURL}, nil
}
