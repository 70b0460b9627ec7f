package mappers

import (
	"testing"
	"time"

	"textkit/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFeedExcerptResponse(t *testing.T) {
	published := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	feed := &domain.FeedExcerpt{
		Title:    "Example",
		FeedType: domain.FeedTypeAtom,
		Items: []domain.ItemExcerpt{
			{ID: "1", Title: "First", Excerpt: "<p>Hi...</p>", Truncated: true, WordCount: 12, Published: &published},
			{ID: "2", Title: "Video", VideoID: "dQw4w9WgXcQ"},
		},
	}

	got := ToFeedExcerptResponse(feed)

	require.NotNil(t, got)
	assert.Equal(t, "atom", got.FeedType)
	require.Len(t, got.Items, 2)
	assert.Equal(t, 2, got.TotalItems)
	assert.Equal(t, "2024-03-01T11:00:00Z", got.Items[0].Published)
	assert.True(t, got.Items[0].Truncated)
	assert.Equal(t, 12, got.Items[0].WordCount)
	assert.Empty(t, got.Items[1].Published)
	assert.Equal(t, "dQw4w9WgXcQ", got.Items[1].VideoID)
}

func TestToFeedExcerptResponse_Nil(t *testing.T) {
	assert.Nil(t, ToFeedExcerptResponse(nil))
	assert.Nil(t, ToArticleExcerptResponse(nil))
}

func TestToFeedExcerptResponse_EmptyItemsIsNotNil(t *testing.T) {
	got := ToFeedExcerptResponse(&domain.FeedExcerpt{Title: "Empty"})

	assert.NotNil(t, got.Items)
	assert.Len(t, got.Items, 0)
}

func TestToArticleExcerptResponse(t *testing.T) {
	got := ToArticleExcerptResponse(&domain.ArticleExcerpt{
		URL:          "https://example.com/a",
		Title:        "Title",
		Excerpt:      "<p>Body...</p>",
		Markdown:     "Body...",
		LeadSentence: "Body.",
		Truncated:    true,
		WordCount:    40,
	})

	assert.Equal(t, "https://example.com/a", got.URL)
	assert.Equal(t, "Body...", got.Markdown)
	assert.Equal(t, "Body.", got.LeadSentence)
	assert.Equal(t, 40, got.WordCount)
}
