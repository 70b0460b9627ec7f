package excerpt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"textkit/core/domain"
	coreerrors "textkit/core/errors"
	"textkit/core/interfaces"
	"textkit/core/markup"
	"textkit/pkg/utils/html"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Example</title>
  <link>https://example.com</link>
  <description>Example feed</description>
  <language>en</language>
  <item>
    <title>First</title>
    <link>https://example.com/first</link>
    <guid>item-1</guid>
    <description><![CDATA[<p>Hello world this is a longer description</p>]]></description>
    <pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
  </item>
  <item>
    <title>Video</title>
    <link>https://www.youtube.com/watch?v=dQw4w9WgXcQ</link>
    <description>Short</description>
  </item>
  <item>
    <title>Slug</title>
    <link>https://example.com/hello-world</link>
    <description>Tiny</description>
  </item>
</channel>
</rss>`

const atomFeed = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Example</title>
  <id>urn:uuid:feed</id>
  <updated>2024-01-01T00:00:00Z</updated>
  <entry>
    <title>Entry</title>
    <id>urn:uuid:entry</id>
    <updated>2024-01-01T00:00:00Z</updated>
    <author><name>Ada</name></author>
    <content type="html">&lt;p&gt;Atom content body&lt;/p&gt;</content>
  </entry>
</feed>`

const articlePage = `<!DOCTYPE html>
<html>
<head><title>Walking Through The Old Garden</title></head>
<body>
  <nav><a href="/">Home</a> <a href="/about">About</a></nav>
  <article>
    <p>The garden was quiet in the early morning. Dew covered every leaf and the paths were still damp from the night before, so each step left a faint print in the soft gravel.</p>
    <p>Along the northern wall the roses had begun to open, their petals heavy with water. A pair of sparrows argued over the remains of a seed head while a blackbird watched from the hedge.</p>
    <p>By the time the sun cleared the rooftops the first visitors had arrived, carrying flasks of coffee and folding chairs, ready to spend the whole day among the flower beds and the old stone benches.</p>
  </article>
  <footer>Copyright</footer>
</body>
</html>`

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(markup.NewService(interfaces.Dependencies{}, nil, 0), nil)
}

// failingMarkup fails every Shorten call
type failingMarkup struct {
	interfaces.MarkupService
}

func (failingMarkup) Shorten(ctx context.Context, content string, length int, ellipsis string) (html.Shortened, error) {
	return html.Shortened{}, &html.RepairError{Stage: "repair", Err: errors.New("boom")}
}

func TestService_FeedExcerpts(t *testing.T) {
	svc := newService(t)

	feed, err := svc.FeedExcerpts(context.Background(), rssFeed, 10, "...")

	require.NoError(t, err)
	assert.Equal(t, "Example", feed.Title)
	assert.Equal(t, "https://example.com", feed.Link)
	assert.Equal(t, "en", feed.Language)
	assert.Equal(t, domain.FeedTypeRSS, feed.FeedType)
	require.Len(t, feed.Items, 3)

	first := feed.Items[0]
	assert.Equal(t, "item-1", first.ID)
	assert.Equal(t, "<p>Hello world...</p>", first.Excerpt)
	assert.True(t, first.Truncated)
	assert.Equal(t, 7, first.WordCount)
	require.NotNil(t, first.Published)
	assert.Equal(t, 2006, first.Published.Year())
	assert.Empty(t, first.VideoID)

	video := feed.Items[1]
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", video.ID)
	assert.Equal(t, "Short", video.Excerpt)
	assert.False(t, video.Truncated)
	assert.Equal(t, "dQw4w9WgXcQ", video.VideoID)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", video.VideoThumbnail)

	assert.Empty(t, feed.Items[2].VideoID)
}

func TestService_FeedExcerptsAtom(t *testing.T) {
	svc := newService(t)

	feed, err := svc.FeedExcerpts(context.Background(), atomFeed, 300, "...")

	require.NoError(t, err)
	assert.Equal(t, domain.FeedTypeAtom, feed.FeedType)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "Ada", feed.Items[0].Author)
	assert.Equal(t, "<p>Atom content body</p>", feed.Items[0].Excerpt)
	assert.Equal(t, 3, feed.Items[0].WordCount)
	assert.NotNil(t, feed.Items[0].Published)
}

func TestService_FeedExcerptsErrors(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.FeedExcerpts(ctx, "   ", 10, "...")
	assert.True(t, coreerrors.IsValidation(err))

	_, err = svc.FeedExcerpts(ctx, rssFeed, -1, "...")
	assert.True(t, coreerrors.IsValidation(err))

	_, err = svc.FeedExcerpts(ctx, "definitely not a feed", 10, "...")
	assert.True(t, coreerrors.IsParse(err))
}

func TestService_FeedExcerptsPlainTextFallback(t *testing.T) {
	var warnings []string
	logger := &mockLogger{
		warnFunc: func(msg string, fields map[string]interface{}) {
			warnings = append(warnings, msg)
		},
	}
	svc := NewService(failingMarkup{}, logger)

	feed, err := svc.FeedExcerpts(context.Background(), rssFeed, 10, "...")

	require.NoError(t, err)
	assert.Equal(t, "Hello...", feed.Items[0].Excerpt)
	assert.True(t, feed.Items[0].Truncated)
	assert.Equal(t, "Short", feed.Items[1].Excerpt)
	assert.False(t, feed.Items[1].Truncated)
	assert.Contains(t, warnings, "Falling back to plain-text excerpt")
}

func TestService_ArticleExcerpt(t *testing.T) {
	svc := newService(t)

	article, err := svc.ArticleExcerpt(context.Background(), articlePage, "https://example.com/garden", 200, "...")

	require.NoError(t, err)
	assert.Equal(t, "Walking Through The Old Garden", article.Title)
	assert.Equal(t, "https://example.com/garden", article.URL)
	assert.True(t, article.Truncated)
	assert.Contains(t, article.Excerpt, "...")
	assert.Contains(t, article.Excerpt, "The garden was quiet")
	assert.NotEmpty(t, article.Markdown)
	assert.NotContains(t, article.Markdown, "<p>")
	assert.Equal(t, "The garden was quiet in the early morning.", article.LeadSentence)
	assert.Greater(t, article.WordCount, 60)
}

func TestService_ArticleExcerptErrors(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.ArticleExcerpt(ctx, "", "https://example.com", 10, "...")
	assert.True(t, coreerrors.IsValidation(err))

	_, err = svc.ArticleExcerpt(ctx, articlePage, "relative/path", 10, "...")
	assert.True(t, coreerrors.IsValidation(err))

	_, err = svc.ArticleExcerpt(ctx, articlePage, "https://example.com", -5, "...")
	assert.True(t, coreerrors.IsValidation(err))
}

func TestService_ArticleExcerptRepairFailure(t *testing.T) {
	svc := NewService(failingMarkup{}, nil)

	_, err := svc.ArticleExcerpt(context.Background(), articlePage, "https://example.com/garden", 40, "...")

	require.Error(t, err)
	assert.True(t, html.IsRepairError(err))
}

func TestVideoID(t *testing.T) {
	tests := []struct {
		link   string
		want   string
		wantOK bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://example.com/hello-world", "", false},
		{"::not a url", "", false},
	}

	for _, tt := range tests {
		t.Run(strings.ReplaceAll(tt.link, "/", "_"), func(t *testing.T) {
			got, ok := videoID(tt.link)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
