// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for caches and loggers

package textkit

import (
	"os"

	"textkit/core/interfaces"
	"textkit/infrastructure/cache/memory"
	"textkit/infrastructure/cache/redis"
	"textkit/infrastructure/cache/sqlite"
	"textkit/infrastructure/logger/structured"
	"textkit/pkg/config"

	"github.com/sirupsen/logrus"
)

// DefaultMemoryCache creates an in-memory cache with the default expiration settings
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache(config.Default().Cache.Memory)
}

// DefaultLogger creates a logger that writes text logs to stderr
func DefaultLogger() interfaces.Logger {
	return structured.NewWithWriter(os.Stderr, logrus.InfoLevel)
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// CacheType represents the type of cache
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeSQLite CacheType = "sqlite"
	CacheTypeRedis  CacheType = "redis"
)

// CacheOption represents cache configuration options
type CacheOption struct {
	Type CacheType

	// FilePath is the SQLite database file
	FilePath string

	// Redis holds the connection settings for CacheTypeRedis
	Redis config.RedisConfig
}

// WithCacheOption creates a cache based on the provided options. The client closes it on Close.
func WithCacheOption(opt CacheOption) Option {
	return func(c *Config) error {
		switch opt.Type {
		case CacheTypeMemory:
			c.Cache = DefaultMemoryCache()
		case CacheTypeSQLite:
			if opt.FilePath == "" {
				opt.FilePath = config.Default().Cache.SQLite.Path
			}
			cache, err := sqlite.NewSQLiteCache(config.SQLiteConfig{Path: opt.FilePath}, c.Logger)
			if err != nil {
				return NewError(ErrorTypeConfiguration, "failed to open sqlite cache").WithCause(err)
			}
			c.Cache = cache
			c.closers = append(c.closers, cache.Close)
		case CacheTypeRedis:
			cache, err := redis.NewRedisCache(opt.Redis)
			if err != nil {
				return NewError(ErrorTypeConfiguration, "failed to connect to redis").WithCause(err)
			}
			c.Cache = cache
			c.closers = append(c.closers, cache.Close)
		default:
			return NewError(ErrorTypeConfiguration, "invalid cache type").
				WithContext("type", string(opt.Type))
		}
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}
