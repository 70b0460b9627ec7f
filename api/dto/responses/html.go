// ABOUTME: Response DTOs for HTML and text endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// ContentResponse carries a single transformed string
type ContentResponse struct {
	Content string `json:"content" doc:"Resulting content"`
}

// ShortenResponse is the result of shortening markup
type ShortenResponse struct {
	Content   string `json:"content" doc:"Shortened, repaired HTML"`
	Truncated bool   `json:"truncated" doc:"Whether anything was cut"`
}

// AnalyzeResponse reports simple text statistics
type AnalyzeResponse struct {
	Words      int `json:"words" doc:"Word count"`
	Characters int `json:"characters" doc:"Character count"`
	Sentences  int `json:"sentences" doc:"Non-blank sentence count"`
}
