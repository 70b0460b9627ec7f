// ABOUTME: Request DTOs for excerpt endpoints
// ABOUTME: Content is posted inline, the service never fetches remote URLs

package requests

// FeedExcerptRequest represents the request body for feed excerpts
type FeedExcerptRequest struct {
	Feed     string  `json:"feed" minLength:"1" maxLength:"10485760" doc:"RSS, Atom or JSON feed document"`
	Length   *int    `json:"length,omitempty" minimum:"0" doc:"Excerpt length per item"`
	Ellipsis *string `json:"ellipsis,omitempty" maxLength:"64" doc:"Marker appended to truncated excerpts"`

	// Page and ItemsPerPage select a page of items, an ItemsPerPage of 0 returns every item
	Page         int `json:"page,omitempty" minimum:"1" default:"1" doc:"One-based page number"`
	ItemsPerPage int `json:"items_per_page,omitempty" minimum:"0" maximum:"100" doc:"Items per page, 0 for all"`
}

// ApplyDefaults fills Length and Ellipsis when they were omitted
func (r *FeedExcerptRequest) ApplyDefaults(length int, ellipsis string) {
	if r.Length == nil {
		r.Length = &length
	}
	if r.Ellipsis == nil {
		r.Ellipsis = &ellipsis
	}
}

// ArticleExcerptRequest represents the request body for article excerpts
type ArticleExcerptRequest struct {
	HTML     string  `json:"html" minLength:"1" maxLength:"10485760" doc:"Full page HTML"`
	URL      string  `json:"url" minLength:"1" maxLength:"2048" doc:"Absolute URL the page was fetched from"`
	Length   *int    `json:"length,omitempty" minimum:"0" doc:"Excerpt length"`
	Ellipsis *string `json:"ellipsis,omitempty" maxLength:"64" doc:"Marker appended to a truncated excerpt"`
}

// ApplyDefaults fills Length and Ellipsis when they were omitted
func (r *ArticleExcerptRequest) ApplyDefaults(length int, ellipsis string) {
	if r.Length == nil {
		r.Length = &length
	}
	if r.Ellipsis == nil {
		r.Ellipsis = &ellipsis
	}
}
