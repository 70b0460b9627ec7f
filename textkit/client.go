// ABOUTME: Main client for the Textkit library providing markup and excerpt operations
// ABOUTME: Offers a clean API for using core functionality without HTTP dependencies

package textkit

import (
	"context"
	"errors"
	"sync"

	"textkit/core/excerpt"
	"textkit/core/interfaces"
	"textkit/core/markup"
)

// Client is the main entry point for the Textkit library
type Client struct {
	markup   *markup.Service
	excerpts *excerpt.Service
	config   Config

	mu     sync.Mutex
	closed bool
}

// New creates a new Textkit client with the given options
func New(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			config.close()
			return nil, err
		}
	}

	if config.Logger == nil {
		config.Logger = QuietLogger()
	}

	deps := interfaces.Dependencies{
		Cache:  config.Cache,
		Logger: config.Logger,
	}
	markupService := markup.NewService(deps, config.Repairer, config.CacheTTL)

	return &Client{
		markup:   markupService,
		excerpts: excerpt.NewService(markupService, config.Logger),
		config:   config,
	}, nil
}

// Markup returns the markup service used by the client
func (c *Client) Markup() interfaces.MarkupService {
	return c.markup
}

// Excerpts returns the excerpt service used by the client
func (c *Client) Excerpts() interfaces.ExcerptService {
	return c.excerpts
}

// Strip removes tags not exempted by opts
func (c *Client) Strip(ctx context.Context, content string, opts StripOptions) string {
	return c.markup.Strip(ctx, content, opts)
}

// Shorten cuts content at the first space after length and closes open tags
func (c *Client) Shorten(ctx context.Context, content string, length int, ellipsis string) (Shortened, error) {
	if c.isClosed() {
		return Shortened{}, ErrClientClosed
	}
	result, err := c.markup.Shorten(ctx, content, length, ellipsis)
	if err != nil {
		return Shortened{}, wrapError(err, "shorten")
	}
	return result, nil
}

// FeedExcerpts parses a feed document and shortens every item
func (c *Client) FeedExcerpts(ctx context.Context, feed string, length int, ellipsis string) (*FeedExcerpt, error) {
	if c.isClosed() {
		return nil, ErrClientClosed
	}
	result, err := c.excerpts.FeedExcerpts(ctx, feed, length, ellipsis)
	if err != nil {
		return nil, wrapError(err, "feed excerpts")
	}
	return domainFeedToPublic(result), nil
}

// ArticleExcerpt extracts the readable article of a page and shortens it
func (c *Client) ArticleExcerpt(ctx context.Context, pageHTML, pageURL string, length int, ellipsis string) (*Article, error) {
	if c.isClosed() {
		return nil, ErrClientClosed
	}
	result, err := c.excerpts.ArticleExcerpt(ctx, pageHTML, pageURL, length, ellipsis)
	if err != nil {
		return nil, wrapError(err, "article excerpt")
	}
	return domainArticleToPublic(result), nil
}

// Close releases caches opened by WithCacheOption
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.config.close()
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Config) close() error {
	var errs []error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
