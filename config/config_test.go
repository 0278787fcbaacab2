package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "HOST", "CATALOG_SOURCE", "SESSION_BACKEND", "FALLBACK_POLICY", "TOP_N", "SESSION_TTL", "REDIS_URL", "REDIS_ADDR", "TWILIO_AUTH_TOKEN", "PUBLIC_BASE_URL"} {
		t.Setenv(k, "")
	}

	c := FromEnv()

	assert.Equal(t, "0.0.0.0:5000", c.Addr())
	assert.Equal(t, "csv", c.CatalogSource)
	assert.Equal(t, "memory", c.SessionBackend)
	assert.Equal(t, "prefix", c.FallbackPolicy)
	assert.Equal(t, 3, c.TopN)
	assert.Equal(t, time.Duration(0), c.SessionTTL)
	assert.NoError(t, c.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("REDIS_URL", "")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SESSION_TTL", "24h")
	t.Setenv("FALLBACK_POLICY", "random")
	t.Setenv("FALLBACK_SEED", "42")
	t.Setenv("TOP_N", "5")

	c := FromEnv()

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "localhost:6379", c.RedisAddr)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.Equal(t, uint64(42), c.FallbackSeed)
	assert.Equal(t, 5, c.TopN)
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:           "5000",
			CatalogSource:  "csv",
			CatalogPath:    "schemes.csv",
			SessionBackend: "memory",
			FallbackPolicy: "prefix",
			TopN:           3,
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad port", func(c *Config) { c.Port = "http" }},
		{"unknown source", func(c *Config) { c.CatalogSource = "sheets" }},
		{"postgres without dsn", func(c *Config) { c.CatalogSource = "postgres"; c.CatalogTable = "schemes" }},
		{"redis without addr", func(c *Config) { c.SessionBackend = "redis" }},
		{"unknown fallback", func(c *Config) { c.FallbackPolicy = "shuffle" }},
		{"zero top n", func(c *Config) { c.TopN = 0 }},
		{"twilio without base url", func(c *Config) { c.TwilioAuthToken = "secret" }},
	}

	require.NoError(t, valid().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}
}
