// ABOUTME: Excerpt service builds shortened excerpts for feed items and readable articles
// ABOUTME: Feeds are parsed with gofeed, articles with go-readability and rendered to Markdown

package excerpt

import (
	"context"
	"net/url"
	"strings"

	"textkit/core/domain"
	coreerrors "textkit/core/errors"
	"textkit/core/interfaces"
	"textkit/pkg/utils/html"
	"textkit/pkg/utils/text"
	"textkit/pkg/utils/youtube"

	md "github.com/JohannesKaufmann/html-to-markdown"
	readability "github.com/go-shiori/go-readability"
	"github.com/mmcdole/gofeed"
)

// Service implements interfaces.ExcerptService
type Service struct {
	markup interfaces.MarkupService
	logger interfaces.Logger
}

// NewService creates an excerpt service that shortens content through markup
func NewService(markup interfaces.MarkupService, logger interfaces.Logger) *Service {
	return &Service{
		markup: markup,
		logger: logger,
	}
}

// FeedExcerpts parses an RSS, Atom or JSON feed and shortens every item's content
func (s *Service) FeedExcerpts(ctx context.Context, feedXML string, length int, ellipsis string) (*domain.FeedExcerpt, error) {
	if strings.TrimSpace(feedXML) == "" {
		return nil, &coreerrors.ValidationError{Field: "feed", Message: "must not be empty"}
	}
	if length < 0 {
		return nil, &coreerrors.ValidationError{Field: "length", Message: "must not be negative"}
	}

	parsed, err := gofeed.NewParser().ParseString(feedXML)
	if err != nil {
		s.logWarn("Failed to parse feed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, &coreerrors.ParseError{Source: "feed", Err: err}
	}

	feed := &domain.FeedExcerpt{
		Title:       parsed.Title,
		Description: parsed.Description,
		Link:        parsed.Link,
		FeedType:    feedType(parsed),
		Language:    parsed.Language,
		Items:       make([]domain.ItemExcerpt, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		feed.Items = append(feed.Items, s.itemExcerpt(ctx, item, length, ellipsis))
	}

	s.logDebug("Built feed excerpts", map[string]interface{}{
		"feed_type": feed.FeedType,
		"items":     len(feed.Items),
	})
	return feed, nil
}

func (s *Service) itemExcerpt(ctx context.Context, item *gofeed.Item, length int, ellipsis string) domain.ItemExcerpt {
	out := domain.ItemExcerpt{
		ID:        item.GUID,
		Title:     strings.TrimSpace(item.Title),
		Link:      item.Link,
		Published: item.PublishedParsed,
	}
	if out.ID == "" {
		out.ID = item.Link
	}
	if out.Published == nil {
		out.Published = item.UpdatedParsed
	}
	if item.Author != nil {
		out.Author = item.Author.Name
	} else if len(item.Authors) > 0 && item.Authors[0] != nil {
		out.Author = item.Authors[0].Name
	}

	content := item.Content
	if strings.TrimSpace(content) == "" {
		content = item.Description
	}
	content = html.RemoveComments(content)
	out.WordCount = text.WordCount(html.PlainText(content))
	out.Excerpt, out.Truncated = s.shorten(ctx, content, length, ellipsis)

	if id, ok := videoID(item.Link); ok {
		out.VideoID = id
		out.VideoThumbnail, _ = youtube.Thumbnail(id, youtube.ThumbnailHigh)
	}
	return out
}

// shorten falls back to a plain-text cut when the markup cannot be repaired
func (s *Service) shorten(ctx context.Context, content string, length int, ellipsis string) (string, bool) {
	result, err := s.markup.Shorten(ctx, content, length, ellipsis)
	if err == nil {
		return result.Text, result.Truncated
	}
	s.logWarn("Falling back to plain-text excerpt", map[string]interface{}{
		"error": err.Error(),
	})
	plain := html.PlainText(content)
	cut := text.Truncate(plain, length)
	return cut, cut != plain
}

// ArticleExcerpt extracts the readable article from a page and shortens it
func (s *Service) ArticleExcerpt(ctx context.Context, pageHTML, pageURL string, length int, ellipsis string) (*domain.ArticleExcerpt, error) {
	if strings.TrimSpace(pageHTML) == "" {
		return nil, &coreerrors.ValidationError{Field: "html", Message: "must not be empty"}
	}
	if length < 0 {
		return nil, &coreerrors.ValidationError{Field: "length", Message: "must not be negative"}
	}
	u, err := url.Parse(pageURL)
	if err != nil || !u.IsAbs() {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "must be an absolute URL"}
	}

	article, err := readability.FromReader(strings.NewReader(pageHTML), u)
	if err != nil {
		s.logWarn("Failed to extract article", map[string]interface{}{
			"url":   pageURL,
			"error": err.Error(),
		})
		return nil, &coreerrors.ParseError{Source: "article", Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &domain.ArticleExcerpt{
		URL:          pageURL,
		Title:        article.Title,
		Byline:       article.Byline,
		SiteName:     article.SiteName,
		Image:        article.Image,
		LeadSentence: text.Sentence(article.Content, 0),
		WordCount:    text.WordCount(html.PlainText(article.Content)),
	}

	shortened, err := s.markup.Shorten(ctx, article.Content, length, ellipsis)
	if err != nil {
		return nil, coreerrors.WrapError(err, "shorten article")
	}
	out.Excerpt = shortened.Text
	out.Truncated = shortened.Truncated

	if out.Excerpt != "" {
		markdown, err := md.NewConverter("", true, nil).ConvertString(out.Excerpt)
		if err != nil {
			s.logDebug("Failed to convert excerpt to markdown", map[string]interface{}{
				"url":   pageURL,
				"error": err.Error(),
			})
		} else {
			out.Markdown = strings.TrimSpace(markdown)
		}
	}

	return out, nil
}

func feedType(feed *gofeed.Feed) string {
	switch feed.FeedType {
	case "atom":
		return domain.FeedTypeAtom
	case "json":
		return domain.FeedTypeJSON
	default:
		return domain.FeedTypeRSS
	}
}

// videoID only considers links on YouTube hosts
func videoID(link string) (string, bool) {
	u, err := url.Parse(link)
	if err != nil {
		return "", false
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch host {
	case "youtube.com", "m.youtube.com", "youtu.be", "youtube-nocookie.com":
		return youtube.VideoID(link)
	}
	return "", false
}

func (s *Service) logDebug(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, fields)
	}
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Warn(msg, fields)
	}
}
