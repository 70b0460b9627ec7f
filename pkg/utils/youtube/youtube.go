// ABOUTME: YouTube video ID extraction and embed/thumbnail URL builders
// ABOUTME: Recognises a fixed set of URL shapes, a non-match is reported with ok == false

package youtube

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const (
	embedURL     = "https://www.youtube.com/embed/"
	watchURL     = "https://www.youtube.com/watch?v="
	thumbnailURL = "https://img.youtube.com/vi/%s/%s.jpg"
)

var (
	validID = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

	// Tried in order, the first match wins.
	idPatterns = []*regexp.Regexp{
		validID,
		regexp.MustCompile(`(?:^|[?&])v=([A-Za-z0-9_-]{11})(?:[&#]|$)`),
		regexp.MustCompile(`/([A-Za-z0-9_-]{11})(?:[?#].*)?$`),
	}
)

// ThumbnailQuality names one of the fixed thumbnail renditions.
type ThumbnailQuality string

const (
	ThumbnailDefault ThumbnailQuality = "default"
	ThumbnailMedium  ThumbnailQuality = "mqdefault"
	ThumbnailHigh    ThumbnailQuality = "hqdefault"
	ThumbnailSD      ThumbnailQuality = "sddefault"
	ThumbnailMax     ThumbnailQuality = "maxresdefault"
)

// EmbedOptions adds query parameters to the embed URL.
type EmbedOptions struct {
	// HideRelated suppresses related videos from other channels (rel=0).
	HideRelated bool

	// HTML5 forces the HTML5 player (html5=1).
	HTML5 bool

	// Autoplay starts playback on load (autoplay=1).
	Autoplay bool
}

// IsValidID reports whether id has the 11 character video ID shape.
func IsValidID(id string) bool {
	return validID.MatchString(id)
}

// VideoID extracts the video ID from a bare ID, a v= query parameter or the last path segment.
func VideoID(rawURL string) (string, bool) {
	rawURL = strings.TrimSpace(rawURL)
	for _, re := range idPatterns {
		m := re.FindStringSubmatch(rawURL)
		if m == nil {
			continue
		}
		if len(m) > 1 {
			return m[1], true
		}
		return m[0], true
	}
	return "", false
}

// Embed returns iframe markup for id, or ok == false when id is not a valid video ID.
func Embed(id string, width, height int, opts EmbedOptions) (string, bool) {
	src, ok := EmbedURL(id, opts)
	if !ok {
		return "", false
	}
	return fmt.Sprintf(`<iframe width="%d" height="%d" src="%s" frameborder="0" allowfullscreen></iframe>`,
		width, height, src), true
}

// EmbedURL returns the player URL for id.
func EmbedURL(id string, opts EmbedOptions) (string, bool) {
	if !IsValidID(id) {
		return "", false
	}
	q := url.Values{}
	if opts.HideRelated {
		q.Set("rel", "0")
	}
	if opts.HTML5 {
		q.Set("html5", "1")
	}
	if opts.Autoplay {
		q.Set("autoplay", "1")
	}
	if len(q) == 0 {
		return embedURL + id, true
	}
	return embedURL + id + "?" + q.Encode(), true
}

// Thumbnail returns the thumbnail image URL for id. An empty quality selects ThumbnailDefault.
func Thumbnail(id string, quality ThumbnailQuality) (string, bool) {
	if !IsValidID(id) {
		return "", false
	}
	if quality == "" {
		quality = ThumbnailDefault
	}
	return fmt.Sprintf(thumbnailURL, id, quality), true
}

// WatchURL returns the canonical watch link for id.
func WatchURL(id string) (string, bool) {
	if !IsValidID(id) {
		return "", false
	}
	return watchURL + id, true
}
