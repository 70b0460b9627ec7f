package requests

// ResolveVideoRequest represents the request body for resolving a YouTube link
type ResolveVideoRequest struct {
	URL string `json:"url" minLength:"1" maxLength:"2048" doc:"Video ID or YouTube URL"`
}
