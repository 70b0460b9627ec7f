// ABOUTME: Response DTOs for excerpt endpoints
// ABOUTME: Timestamps are rendered as RFC 3339 strings

package responses

// FeedExcerptResponse is a feed with one excerpt per item
type FeedExcerptResponse struct {
	Title       string                `json:"title" doc:"Feed title"`
	Description string                `json:"description,omitempty" doc:"Feed description"`
	Link        string                `json:"link,omitempty" doc:"Website link"`
	FeedType    string                `json:"feed_type" enum:"rss,atom,json" doc:"Detected feed format"`
	Language    string                `json:"language,omitempty" doc:"Feed language"`
	Items       []ItemExcerptResponse `json:"items" doc:"Item excerpts in feed order"`
	TotalItems  int                   `json:"total_items" doc:"Items in the feed before pagination"`
}

// ItemExcerptResponse is the excerpt of one feed item
type ItemExcerptResponse struct {
	ID             string `json:"id" doc:"GUID or link"`
	Title          string `json:"title" doc:"Item title"`
	Link           string `json:"link,omitempty" doc:"Item link"`
	Author         string `json:"author,omitempty" doc:"Author name"`
	Published      string `json:"published,omitempty" doc:"Publication time, RFC 3339"`
	Excerpt        string `json:"excerpt" doc:"Shortened, repaired HTML"`
	Truncated      bool   `json:"truncated" doc:"Whether the content was cut"`
	WordCount      int    `json:"word_count" doc:"Words in the full item content"`
	VideoID        string `json:"video_id,omitempty" doc:"YouTube video linked by the item"`
	VideoThumbnail string `json:"video_thumbnail,omitempty" doc:"Thumbnail of the linked video"`
}

// ArticleExcerptResponse is the readable excerpt of a page
type ArticleExcerptResponse struct {
	URL          string `json:"url" doc:"Page URL"`
	Title        string `json:"title" doc:"Article title"`
	Byline       string `json:"byline,omitempty" doc:"Author line"`
	SiteName     string `json:"site_name,omitempty" doc:"Site name"`
	Image        string `json:"image,omitempty" doc:"Lead image"`
	Excerpt      string `json:"excerpt" doc:"Shortened, repaired HTML"`
	Markdown     string `json:"markdown" doc:"Excerpt rendered as Markdown"`
	LeadSentence string `json:"lead_sentence,omitempty" doc:"First sentence of the article"`
	Truncated    bool   `json:"truncated" doc:"Whether the content was cut"`
	WordCount    int    `json:"word_count" doc:"Words in the full article"`
}
