package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name           string
		envVars        map[string]string
		expectedPort   string
		expectedLength int
		expectedCache  string
	}{
		{
			name:           "defaults when nothing set",
			envVars:        map[string]string{},
			expectedPort:   "8000",
			expectedLength: 300,
			expectedCache:  "memory",
		},
		{
			name:           "uses PORT env var when set",
			envVars:        map[string]string{"PORT": "3000"},
			expectedPort:   "3000",
			expectedLength: 300,
			expectedCache:  "memory",
		},
		{
			name:           "uses SHORTEN_LENGTH and CACHE_TYPE",
			envVars:        map[string]string{"SHORTEN_LENGTH": "120", "CACHE_TYPE": "sqlite"},
			expectedPort:   "8000",
			expectedLength: 120,
			expectedCache:  "sqlite",
		},
		{
			name:           "invalid number keeps default",
			envVars:        map[string]string{"SHORTEN_LENGTH": "not-a-number"},
			expectedPort:   "8000",
			expectedLength: 300,
			expectedCache:  "memory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			require.NoError(t, err)

			assert.Equal(t, tt.expectedPort, cfg.Server.Port)
			assert.Equal(t, tt.expectedLength, cfg.Markup.ShortenLength)
			assert.Equal(t, tt.expectedCache, cfg.Cache.Type)
		})
	}
}

func TestLoadFromEnv_EmptyEllipsis(t *testing.T) {
	os.Clearenv()
	t.Setenv("ELLIPSIS", "")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Markup.Ellipsis)
}

func TestLoadFromEnv_LogSettingsLowercased(t *testing.T) {
	os.Clearenv()
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "Text")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "textkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
cache:
  type: redis
  redis:
    address: cache:6379
    db: 2
markup:
  shorten_length: 150
  ellipsis: " [more]"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Cache.Type)
	assert.Equal(t, "cache:6379", cfg.Cache.Redis.Address)
	assert.Equal(t, 2, cfg.Cache.Redis.DB)
	assert.Equal(t, 150, cfg.Markup.ShortenLength)
	assert.Equal(t, " [more]", cfg.Markup.Ellipsis)
	// Untouched sections keep their defaults
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadFromFile(writeConfig(t, "server: [unclosed"))
	assert.Error(t, err)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	os.Clearenv()
	path := writeConfig(t, "server:\n  port: \"9090\"\nmarkup:\n  shorten_length: 150\n")
	t.Setenv(ConfigFileEnv, path)
	t.Setenv("PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, 150, cfg.Markup.ShortenLength)
}

func TestLoad_MissingFile(t *testing.T) {
	os.Clearenv()
	t.Setenv(ConfigFileEnv, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: true,
			errMsg:  "port cannot be empty",
		},
		{
			name:    "invalid cache type",
			mutate:  func(c *Config) { c.Cache.Type = "invalid" },
			wantErr: true,
			errMsg:  "cache type must be 'memory', 'redis' or 'sqlite'",
		},
		{
			name: "redis type with empty address",
			mutate: func(c *Config) {
				c.Cache.Type = "redis"
				c.Cache.Redis.Address = ""
			},
			wantErr: true,
			errMsg:  "redis address cannot be empty when using redis cache",
		},
		{
			name: "sqlite type with empty path",
			mutate: func(c *Config) {
				c.Cache.Type = "sqlite"
				c.Cache.SQLite.Path = ""
			},
			wantErr: true,
			errMsg:  "sqlite path cannot be empty when using sqlite cache",
		},
		{
			name:    "zero rate window",
			mutate:  func(c *Config) { c.RateLimit.Window = 0 },
			wantErr: true,
			errMsg:  "rate limit requests and window must be at least 1",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: true,
			errMsg:  "unknown log level 'verbose'",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: true,
			errMsg:  "log format must be 'json' or 'text'",
		},
		{
			name:    "negative shorten length",
			mutate:  func(c *Config) { c.Markup.ShortenLength = -1 },
			wantErr: true,
			errMsg:  "shorten length cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.errMsg, err.Error())
		})
	}
}
