package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "SESSION_STORE", "SESSION_TTL", "APP_ENV"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "redis", cfg.SessionBackend)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.False(t, cfg.Production())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_STORE", "memory")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("APP_ENV", "production")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "memory", cfg.SessionBackend)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.Production())
}

func TestLoad_BadTTLFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")

	cfg := Load()
	assert.Equal(t, time.Hour, cfg.SessionTTL)
}
