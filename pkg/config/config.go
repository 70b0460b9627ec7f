// ABOUTME: Configuration management for the application with YAML file and environment variable support
// ABOUTME: Defaults are overlaid by an optional YAML file, then by environment variables

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileEnv names the environment variable holding the optional YAML config path
const ConfigFileEnv = "TEXTKIT_CONFIG"

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `yaml:"server"`

	// Cache contains cache configuration
	Cache CacheConfig `yaml:"cache"`

	// RateLimit contains per-client request limits
	RateLimit RateLimitConfig `yaml:"rate_limit"`

	// Log contains logger configuration
	Log LogConfig `yaml:"log"`

	// Markup contains defaults applied by the API when a request omits them
	Markup MarkupConfig `yaml:"markup"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `yaml:"port"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string `yaml:"type"`

	// TTL is the lifetime of shortened markup entries in seconds
	TTL int `yaml:"ttl"`

	// Redis contains Redis-specific configuration
	Redis RedisConfig `yaml:"redis"`

	// Memory contains in-memory cache configuration
	Memory MemoryConfig `yaml:"memory"`

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig `yaml:"sqlite"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string `yaml:"address"`

	// Password is the Redis authentication password
	Password string `yaml:"password"`

	// DB is the Redis database number
	DB int `yaml:"db"`
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int `yaml:"default_expiration"`

	// CleanupInterval is how often expired entries are purged, in seconds
	CleanupInterval int `yaml:"cleanup_interval"`
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string `yaml:"path"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Requests is the number of requests allowed per window
	Requests int `yaml:"requests"`

	// Window is the window length in seconds
	Window int `yaml:"window"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`

	// Format is text or json
	Format string `yaml:"format"`

	// File, when set, receives logs through a rotating writer instead of stdout
	File string `yaml:"file"`
}

// MarkupConfig holds shortening defaults
type MarkupConfig struct {
	// ShortenLength is the default cut length in characters
	ShortenLength int `yaml:"shorten_length"`

	// Ellipsis is the default marker appended to truncated markup
	Ellipsis string `yaml:"ellipsis"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
		},
		Cache: CacheConfig{
			Type: "memory",
			TTL:  3600,
			Redis: RedisConfig{
				Address: "localhost:6379",
			},
			Memory: MemoryConfig{
				DefaultExpiration: 3600,
				CleanupInterval:   600,
			},
			SQLite: SQLiteConfig{
				Path: "textkit-cache.db",
			},
		},
		RateLimit: RateLimitConfig{
			Requests: 100,
			Window:   60,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Markup: MarkupConfig{
			ShortenLength: 300,
			Ellipsis:      "...",
		},
	}
}

// Load builds the configuration from defaults, the file named by TEXTKIT_CONFIG and the environment
func Load() (*Config, error) {
	cfg := Default()
	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return nil, err
		}
	}
	cfg.overlayEnv()
	return cfg, nil
}

// LoadFromFile builds the configuration from defaults and a YAML file, ignoring the environment
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.overlayFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := Default()
	cfg.overlayEnv()
	return cfg, nil
}

func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) overlayEnv() {
	c.Server.Port = getEnvOrDefault("PORT", c.Server.Port)

	c.Cache.Type = getEnvOrDefault("CACHE_TYPE", c.Cache.Type)
	c.Cache.TTL = getEnvAsIntOrDefault("CACHE_TTL", c.Cache.TTL)
	c.Cache.Redis.Address = getEnvOrDefault("REDIS_ADDRESS", c.Cache.Redis.Address)
	c.Cache.Redis.Password = getEnvOrDefault("REDIS_PASSWORD", c.Cache.Redis.Password)
	c.Cache.Redis.DB = getEnvAsIntOrDefault("REDIS_DB", c.Cache.Redis.DB)
	c.Cache.Memory.DefaultExpiration = getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", c.Cache.Memory.DefaultExpiration)
	c.Cache.SQLite.Path = getEnvOrDefault("SQLITE_PATH", c.Cache.SQLite.Path)

	c.RateLimit.Requests = getEnvAsIntOrDefault("RATE_LIMIT", c.RateLimit.Requests)
	c.RateLimit.Window = getEnvAsIntOrDefault("RATE_WINDOW", c.RateLimit.Window)

	c.Log.Level = strings.ToLower(getEnvOrDefault("LOG_LEVEL", c.Log.Level))
	c.Log.Format = strings.ToLower(getEnvOrDefault("LOG_FORMAT", c.Log.Format))
	c.Log.File = getEnvOrDefault("LOG_FILE", c.Log.File)

	c.Markup.ShortenLength = getEnvAsIntOrDefault("SHORTEN_LENGTH", c.Markup.ShortenLength)
	// An empty ELLIPSIS is meaningful, so presence is checked instead of value
	if value, ok := os.LookupEnv("ELLIPSIS"); ok {
		c.Markup.Ellipsis = value
	}
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Cache.TTL < 0 {
		return errors.New("cache ttl cannot be negative")
	}

	if c.RateLimit.Requests < 1 || c.RateLimit.Window < 1 {
		return errors.New("rate limit requests and window must be at least 1")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level '%s'", c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return errors.New("log format must be 'json' or 'text'")
	}

	if c.Markup.ShortenLength < 0 {
		return errors.New("shorten length cannot be negative")
	}

	return nil
}
