package html

import "strings"

const (
	commentOpen  = "<!--"
	commentClose = "-->"
)

// RemoveComments drops HTML comments. Each segment that follows a comment opener loses
// everything up to and including the closer, and the remainders are trimmed and concatenated.
func RemoveComments(input string) string {
	if input == "" {
		return ""
	}

	var b strings.Builder
	for _, segment := range strings.Split(input, commentOpen) {
		if i := strings.Index(segment, commentClose); i >= 0 {
			segment = segment[i+len(commentClose):]
		}
		b.WriteString(strings.TrimSpace(segment))
	}
	return b.String()
}
