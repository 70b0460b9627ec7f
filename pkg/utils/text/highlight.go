package text

import (
	"regexp"
	"strings"
)

// Highlight wraps every case-insensitive match of each keyword in a span carrying className.
// Keywords are regular expressions; one that does not compile is matched literally.
// Keywords apply in order to the already highlighted string, so a later keyword can match
// inside the markup inserted for an earlier one.
func Highlight(s string, keywords []string, className string) string {
	if s == "" || len(keywords) == 0 {
		return s
	}

	open := `<span class="` + className + `">`
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + keyword)
		if err != nil {
			re = regexp.MustCompile("(?i)" + regexp.QuoteMeta(keyword))
		}
		s = re.ReplaceAllStringFunc(s, func(match string) string {
			var b strings.Builder
			b.WriteString(open)
			b.WriteString(match)
			b.WriteString("</span>")
			return b.String()
		})
	}
	return s
}
