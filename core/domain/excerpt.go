// ABOUTME: Domain models for feed and article excerpts
// ABOUTME: Excerpts carry shortened, repaired HTML alongside plain-text facts about the source

package domain

import "time"

// FeedExcerpt is a parsed feed with a shortened excerpt per item
type FeedExcerpt struct {
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Link        string        `json:"link,omitempty"`
	FeedType    string        `json:"feedType"`
	Language    string        `json:"language,omitempty"`
	Items       []ItemExcerpt `json:"items"`
}

// ItemExcerpt is the excerpt of a single feed entry
type ItemExcerpt struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Link      string     `json:"link,omitempty"`
	Author    string     `json:"author,omitempty"`
	Published *time.Time `json:"published,omitempty"`

	// Excerpt is repaired HTML, cut at a word boundary
	Excerpt   string `json:"excerpt"`
	Truncated bool   `json:"truncated"`

	// WordCount counts words in the full, stripped item content
	WordCount int `json:"wordCount"`

	// Video fields are set when the item links to a YouTube video
	VideoID        string `json:"videoId,omitempty"`
	VideoThumbnail string `json:"videoThumbnail,omitempty"`
}

// ArticleExcerpt is the readable content of a web page reduced to an excerpt
type ArticleExcerpt struct {
	URL      string `json:"url,omitempty"`
	Title    string `json:"title"`
	Byline   string `json:"byline,omitempty"`
	SiteName string `json:"siteName,omitempty"`
	Image    string `json:"image,omitempty"`

	Excerpt      string `json:"excerpt"`
	Markdown     string `json:"markdown"`
	LeadSentence string `json:"leadSentence,omitempty"`
	Truncated    bool   `json:"truncated"`
	WordCount    int    `json:"wordCount"`
}

// Feed types reported in FeedExcerpt.FeedType
const (
	FeedTypeRSS  = "rss"
	FeedTypeAtom = "atom"
	FeedTypeJSON = "json"
)
