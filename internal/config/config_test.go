package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "http://localhost:5000/api/v1", cfg.APIBaseURL)
	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.CacheEnabled())
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.carexyz.example/api/v1")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("ENVIRONMENT", "production")

	cfg := Load()

	assert.Equal(t, "https://api.carexyz.example/api/v1", cfg.APIBaseURL)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "production", cfg.Environment)
	assert.True(t, cfg.CacheEnabled())
}
