// ABOUTME: Markup service wraps the HTML stripping and truncation engine for the API layer
// ABOUTME: Shortened results are cached under an xxh3 digest of their inputs

package markup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	coreerrors "textkit/core/errors"
	"textkit/core/interfaces"
	"textkit/pkg/utils/html"
	"textkit/pkg/utils/text"

	"github.com/zeebo/xxh3"
)

// DefaultCacheTTL is used when the service is created with a zero TTL
const DefaultCacheTTL = time.Hour

// Service implements interfaces.MarkupService
type Service struct {
	deps      interfaces.Dependencies
	shortener *html.Shortener
	cacheTTL  time.Duration
}

// NewService creates a markup service. A nil repairer selects the goquery repairer.
func NewService(deps interfaces.Dependencies, repairer html.Repairer, cacheTTL time.Duration) *Service {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &Service{
		deps:      deps,
		shortener: html.NewShortener(repairer),
		cacheTTL:  cacheTTL,
	}
}

// Strip removes tags not exempted by opts
func (s *Service) Strip(ctx context.Context, content string, opts html.StripOptions) string {
	return html.StripHTML(content, opts)
}

// Shorten truncates content at a word boundary and repairs the markup
func (s *Service) Shorten(ctx context.Context, content string, length int, ellipsis string) (html.Shortened, error) {
	if length < 0 {
		return html.Shortened{}, &coreerrors.ValidationError{Field: "length", Message: "must not be negative"}
	}

	key := shortenKey(content, length, ellipsis)
	if cached, ok := s.cached(ctx, key); ok {
		return cached, nil
	}

	result, err := s.shortener.Shorten(content, length, ellipsis)
	if err != nil {
		s.logError("Failed to shorten markup", map[string]interface{}{
			"length": length,
			"error":  err.Error(),
		})
		return html.Shortened{}, coreerrors.WrapError(err, "shorten markup")
	}

	s.store(ctx, key, result)
	s.logDebug("Shortened markup", map[string]interface{}{
		"length":    length,
		"truncated": result.Truncated,
	})
	return result, nil
}

// Paragraph returns the paragraph at index, or an empty paragraph
func (s *Service) Paragraph(ctx context.Context, content string, index int) string {
	return text.Paragraph(content, index)
}

// Sentence returns the sentence at index, or ""
func (s *Service) Sentence(ctx context.Context, content string, index int) string {
	return text.Sentence(content, index)
}

// RemoveComments drops HTML comments
func (s *Service) RemoveComments(ctx context.Context, content string) string {
	return html.RemoveComments(content)
}

func shortenKey(content string, length int, ellipsis string) string {
	h := xxh3.HashString128(fmt.Sprintf("%d\x00%s\x00%s", length, ellipsis, content))
	return fmt.Sprintf("shorten:%016x%016x", h.Hi, h.Lo)
}

func (s *Service) cached(ctx context.Context, key string) (html.Shortened, bool) {
	if s.deps.Cache == nil {
		return html.Shortened{}, false
	}
	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return html.Shortened{}, false
	}
	var result html.Shortened
	if err := json.Unmarshal(data, &result); err != nil {
		s.logWarn("Discarding unreadable cache entry", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return html.Shortened{}, false
	}
	return result, true
}

func (s *Service) store(ctx context.Context, key string, result html.Shortened) {
	if s.deps.Cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.logWarn("Failed to cache shortened markup", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func (s *Service) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}

func (s *Service) logError(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error(msg, fields)
	}
}
