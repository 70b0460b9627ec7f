// ABOUTME: Shared handler configuration
// ABOUTME: Defaults applied when a request omits optional shortening parameters

package handlers

// MarkupDefaults are used for omitted length and ellipsis fields
type MarkupDefaults struct {
	Length   int
	Ellipsis string
}

// DefaultMarkupDefaults matches the library defaults
func DefaultMarkupDefaults() MarkupDefaults {
	return MarkupDefaults{Length: 300, Ellipsis: "..."}
}
