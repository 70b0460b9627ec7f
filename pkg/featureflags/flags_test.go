package featureflags

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvManager_DefaultsWhenUnset(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	for _, flag := range All {
		assert.True(t, manager.IsEnabled(ctx, flag), string(flag))
	}
	assert.False(t, manager.IsEnabled(ctx, "unknown_flag"))
}

func TestEnvManager_DisabledWhenFlagSetFalse(t *testing.T) {
	t.Setenv("TEST_FEATURE_FEED_EXCERPTS", "false")

	manager := NewEnvManager("TEST_FEATURE_")

	assert.False(t, manager.IsEnabled(context.Background(), FeedExcerpts))
	assert.True(t, manager.IsEnabled(context.Background(), ArticleExcerpts))
}

func TestEnvManager_MultipleValues(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"true lowercase", "true", true},
		{"TRUE uppercase", "TRUE", true},
		{"1 numeric", "1", true},
		{"enabled", "enabled", true},
		{"ENABLED", "ENABLED", true},
		{"false", "false", false},
		{"0", "0", false},
		{"other", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_FLAG", tt.value)

			manager := NewEnvManager("TEST_")

			assert.Equal(t, tt.expected, manager.IsEnabled(context.Background(), "FLAG"))
		})
	}
}

func TestEnvManager_OverrideTakesPrecedence(t *testing.T) {
	t.Setenv("TEST_FEATURE_CACHE_ENABLED", "true")

	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, CacheEnabled))

	manager.SetEnabled(CacheEnabled, false)

	assert.False(t, manager.IsEnabled(ctx, CacheEnabled))
}

func TestEnvManager_GetAllFlags(t *testing.T) {
	t.Setenv("TEST_FEATURE_RATE_LIMIT_ENABLED", "0")

	manager := NewEnvManager("TEST_FEATURE_")

	assert.Equal(t, map[FeatureFlag]bool{
		CacheEnabled:     true,
		RateLimitEnabled: false,
		FeedExcerpts:     true,
		ArticleExcerpts:  true,
	}, manager.GetAllFlags())
}

func TestStaticManager(t *testing.T) {
	manager := NewStaticManager(map[FeatureFlag]bool{
		FeedExcerpts:    true,
		ArticleExcerpts: false,
	})
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, FeedExcerpts))
	assert.False(t, manager.IsEnabled(ctx, ArticleExcerpts))
	assert.False(t, manager.IsEnabled(ctx, CacheEnabled))

	manager.SetEnabled(CacheEnabled, true)
	assert.True(t, manager.IsEnabled(ctx, CacheEnabled))
}

func TestStaticManager_GetAllFlagsCopies(t *testing.T) {
	manager := NewStaticManager(map[FeatureFlag]bool{CacheEnabled: true})

	all := manager.GetAllFlags()
	all[CacheEnabled] = false

	assert.True(t, manager.IsEnabled(context.Background(), CacheEnabled))
}

func TestContextIntegration(t *testing.T) {
	manager := NewStaticManager(map[FeatureFlag]bool{
		FeedExcerpts: true,
	})
	ctx := WithManager(context.Background(), manager)

	assert.True(t, IsEnabled(ctx, FeedExcerpts))
	assert.False(t, IsEnabled(ctx, ArticleExcerpts))
}

func TestFromContext_DefaultManager(t *testing.T) {
	ctx := context.Background()

	assert.True(t, IsEnabled(ctx, FeedExcerpts))
	assert.False(t, IsEnabled(ctx, "unknown_flag"))
}

func TestConcurrentAccess(t *testing.T) {
	manager := NewStaticManager(nil)
	ctx := context.Background()
	done := make(chan bool)

	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				manager.SetEnabled(FeedExcerpts, j%2 == 0)
			}
			done <- true
		}()
	}

	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_ = manager.IsEnabled(ctx, FeedExcerpts)
			}
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestFeatureFlagNames(t *testing.T) {
	assert.Equal(t, FeatureFlag("cache_enabled"), CacheEnabled)
	assert.Equal(t, FeatureFlag("rate_limit_enabled"), RateLimitEnabled)
	assert.Equal(t, FeatureFlag("feed_excerpts"), FeedExcerpts)
	assert.Equal(t, FeatureFlag("article_excerpts"), ArticleExcerpts)
}
