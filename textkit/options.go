// ABOUTME: Configuration options for the Textkit library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package textkit

import (
	"time"

	"textkit/core/interfaces"
	"textkit/pkg/utils/html"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// Config holds the configuration for the client
type Config struct {
	// Cache stores shortened markup, nil disables caching
	Cache interfaces.Cache

	// Logger receives service logs
	Logger interfaces.Logger

	// Repairer closes tags in truncated markup, nil selects the goquery repairer
	Repairer html.Repairer

	// CacheTTL is the lifetime of cached shortened markup
	CacheTTL time.Duration

	// closers are released by Client.Close
	closers []func() error
}

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithoutCache disables caching of shortened markup
func WithoutCache() Option {
	return func(c *Config) error {
		c.Cache = nil
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithRepairer sets the markup repairer
func WithRepairer(repairer html.Repairer) Option {
	return func(c *Config) error {
		c.Repairer = repairer
		return nil
	}
}

// WithCacheTTL sets the TTL for cached shortened markup
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl < 0 {
			return NewError(ErrorTypeConfiguration, "cache ttl cannot be negative").
				WithContext("ttl", ttl.String())
		}
		c.CacheTTL = ttl
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Cache:    DefaultMemoryCache(),
		Logger:   QuietLogger(),
		CacheTTL: time.Hour,
	}
}
