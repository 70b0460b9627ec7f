// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"time"

	"textkit/api/dto/responses"
	"textkit/core/domain"
)

// ToFeedExcerptResponse converts a domain FeedExcerpt to its DTO
func ToFeedExcerptResponse(feed *domain.FeedExcerpt) *responses.FeedExcerptResponse {
	if feed == nil {
		return nil
	}

	response := &responses.FeedExcerptResponse{
		Title:       feed.Title,
		Description: feed.Description,
		Link:        feed.Link,
		FeedType:    feed.FeedType,
		Language:    feed.Language,
		Items:       make([]responses.ItemExcerptResponse, 0, len(feed.Items)),
		TotalItems:  len(feed.Items),
	}

	for i := range feed.Items {
		response.Items = append(response.Items, ToItemExcerptResponse(&feed.Items[i]))
	}

	return response
}

// ToItemExcerptResponse converts a domain ItemExcerpt to its DTO
func ToItemExcerptResponse(item *domain.ItemExcerpt) responses.ItemExcerptResponse {
	out := responses.ItemExcerptResponse{
		ID:             item.ID,
		Title:          item.Title,
		Link:           item.Link,
		Author:         item.Author,
		Excerpt:        item.Excerpt,
		Truncated:      item.Truncated,
		WordCount:      item.WordCount,
		VideoID:        item.VideoID,
		VideoThumbnail: item.VideoThumbnail,
	}
	if item.Published != nil {
		out.Published = item.Published.UTC().Format(time.RFC3339)
	}
	return out
}

// ToArticleExcerptResponse converts a domain ArticleExcerpt to its DTO
func ToArticleExcerptResponse(article *domain.ArticleExcerpt) *responses.ArticleExcerptResponse {
	if article == nil {
		return nil
	}

	return &responses.ArticleExcerptResponse{
		URL:          article.URL,
		Title:        article.Title,
		Byline:       article.Byline,
		SiteName:     article.SiteName,
		Image:        article.Image,
		Excerpt:      article.Excerpt,
		Markdown:     article.Markdown,
		LeadSentence: article.LeadSentence,
		Truncated:    article.Truncated,
		WordCount:    article.WordCount,
	}
}
