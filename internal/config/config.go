package config

import (
	"os"
	"time"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port          string
	PostgresDSN   string
	RedisAddr     string
	RedisPassword string

	// SessionBackend picks the session store implementation: "redis" or
	// "memory". The memory store loses every session on restart and is not
	// adequate for production use.
	SessionBackend string
	SessionTTL     time.Duration

	AppEnv string
}

func Load() *Config {
	return &Config{
		Port:           getenv("PORT", "8080"),
		PostgresDSN:    getenv("POSTGRES_DSN", ""),
		RedisAddr:      getenv("REDIS_ADDR", "redis:6379"),
		RedisPassword:  getenv("REDIS_PASSWORD", ""),
		SessionBackend: getenv("SESSION_STORE", "redis"),
		SessionTTL:     getduration("SESSION_TTL", time.Hour),
		AppEnv:         getenv("APP_ENV", "development"),
	}
}

// Production reports whether the service runs in production mode. It controls
// the Secure cookie flag and whether error detail is included in responses.
func (c *Config) Production() bool {
	return c.AppEnv == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
