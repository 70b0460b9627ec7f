// ABOUTME: Request DTOs for plain-text endpoints
// ABOUTME: Operation and side fields are enums validated by huma

package requests

// Text transform operations
const (
	OpUpperFirst       = "upper-first"
	OpInvertCase       = "invert-case"
	OpRemoveDiacritics = "remove-diacritics"
	OpTruncate         = "truncate"
)

// AnalyzeRequest represents the request body for text analysis
type AnalyzeRequest struct {
	Text string `json:"text" maxLength:"1048576" doc:"Text to analyze"`
}

// TransformRequest represents the request body for text transforms
type TransformRequest struct {
	Text      string `json:"text" maxLength:"1048576" doc:"Text to transform"`
	Operation string `json:"operation" enum:"upper-first,invert-case,remove-diacritics,truncate" doc:"Transform to apply"`
	Limit     int    `json:"limit,omitempty" minimum:"0" doc:"Character limit for truncate"`
}

// HighlightRequest represents the request body for keyword highlighting
type HighlightRequest struct {
	Text      string   `json:"text" maxLength:"1048576" doc:"Text to highlight"`
	Keywords  []string `json:"keywords" maxItems:"100" doc:"Keywords, each a regular expression or literal"`
	ClassName string   `json:"class_name,omitempty" pattern:"^[A-Za-z0-9_ -]*$" doc:"CSS class for the wrapping span (default highlight)"`
}

// SubstringRequest represents the request body for substring extraction
type SubstringRequest struct {
	Text      string `json:"text" maxLength:"1048576" doc:"Text to search"`
	Separator string `json:"separator" minLength:"1" doc:"Separator to search for"`
	Side      string `json:"side" enum:"before,after" doc:"Which side of the first separator to return"`
}
