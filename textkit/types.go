// ABOUTME: Public types for the Textkit library API
// ABOUTME: Provides user-friendly types that wrap internal domain models

package textkit

import (
	"time"

	"textkit/core/domain"
	"textkit/pkg/utils/html"
)

// StripOptions selects which formatting tags survive stripping
type StripOptions = html.StripOptions

// Shortened is the result of shortening markup
type Shortened = html.Shortened

// FeedExcerpt is a parsed feed with one excerpt per item
type FeedExcerpt struct {
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Link        string        `json:"link,omitempty"`
	FeedType    string        `json:"feed_type"`
	Language    string        `json:"language,omitempty"`
	Items       []ItemExcerpt `json:"items"`
}

// ItemExcerpt is the excerpt of one feed item
type ItemExcerpt struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Link      string    `json:"link,omitempty"`
	Author    string    `json:"author,omitempty"`
	Published time.Time `json:"published,omitempty"`
	Excerpt   string    `json:"excerpt"`
	Truncated bool      `json:"truncated"`
	WordCount int       `json:"word_count"`

	// Video fields are set when the item links to a YouTube video
	VideoID        string `json:"video_id,omitempty"`
	VideoThumbnail string `json:"video_thumbnail,omitempty"`
}

// Article is the readable excerpt of a web page
type Article struct {
	URL          string `json:"url"`
	Title        string `json:"title"`
	Byline       string `json:"byline,omitempty"`
	SiteName     string `json:"site_name,omitempty"`
	Image        string `json:"image,omitempty"`
	Excerpt      string `json:"excerpt"`
	Markdown     string `json:"markdown"`
	LeadSentence string `json:"lead_sentence,omitempty"`
	Truncated    bool   `json:"truncated"`
	WordCount    int    `json:"word_count"`
}

func domainFeedToPublic(feed *domain.FeedExcerpt) *FeedExcerpt {
	out := &FeedExcerpt{
		Title:       feed.Title,
		Description: feed.Description,
		Link:        feed.Link,
		FeedType:    feed.FeedType,
		Language:    feed.Language,
		Items:       make([]ItemExcerpt, len(feed.Items)),
	}
	for i, item := range feed.Items {
		out.Items[i] = ItemExcerpt{
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
			out.Items[i].Published = *item.Published
		}
	}
	return out
}

func domainArticleToPublic(article *domain.ArticleExcerpt) *Article {
	return &Article{
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
