package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "http://localhost:3000", cfg.CORS.Origin)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
}
