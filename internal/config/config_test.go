package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("PORT", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.Equal(t, "memory", cfg.CacheBackend)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDBBaseURL)
	assert.Empty(t, cfg.TMDBAPIKey)
	assert.True(t, cfg.AllowsAllOrigins())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_PortPrecedence(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	t.Run("PORT only", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		t.Setenv("HTTP_PORT", "")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 9000, cfg.HTTPPort)
	})

	t.Run("HTTP_PORT overrides PORT", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		t.Setenv("HTTP_PORT", "9100")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 9100, cfg.HTTPPort)
		assert.Equal(t, "0.0.0.0:9100", cfg.ListenAddr())
	})
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	t.Setenv("CACHE_TTL", "ninety")
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "CACHE_TTL")

	t.Setenv("CACHE_TTL", "")
	t.Setenv("PROMETHEUS_ENABLED", "maybe")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "PROMETHEUS_ENABLED")
}

func TestLoadConfig_CORSOrigins(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://cineverse.app ,")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:5173", "https://cineverse.app"}, cfg.CORSOrigins)
	assert.False(t, cfg.AllowsAllOrigins())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			HTTPPort:      8080,
			LogLevel:      "info",
			LogFormat:     "json",
			CacheBackend:  "memory",
			CacheTTL:      90 * time.Second,
			CacheCapacity: 10,
			JWTExpiry:     time.Hour,
			JWTSecret:     testSecret,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad port", func(c *Config) { c.HTTPPort = 70000 }, "HTTP_PORT"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "LOG_LEVEL"},
		{"bad backend", func(c *Config) { c.CacheBackend = "memcached" }, "CACHE_BACKEND"},
		{"short secret", func(c *Config) { c.JWTSecret = "short" }, "JWT_SECRET"},
		{"zero ttl", func(c *Config) { c.CacheTTL = 0 }, "CACHE_TTL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestEnvironmentFlags(t *testing.T) {
	cfg := &Config{GoEnv: "production"}
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}
