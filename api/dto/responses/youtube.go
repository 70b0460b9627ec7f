package responses

// VideoResponse describes a resolved YouTube video
type VideoResponse struct {
	VideoID   string `json:"video_id" doc:"11 character video ID"`
	WatchURL  string `json:"watch_url" doc:"Canonical watch link"`
	EmbedURL  string `json:"embed_url" doc:"Player URL"`
	Thumbnail string `json:"thumbnail" doc:"High quality thumbnail URL"`
}

// EmbedResponse carries iframe markup for a video
type EmbedResponse struct {
	HTML string `json:"html" doc:"iframe markup"`
	URL  string `json:"url" doc:"Player URL"`
}

// ThumbnailResponse carries a thumbnail URL
type ThumbnailResponse struct {
	URL string `json:"url" doc:"Thumbnail image URL"`
}
