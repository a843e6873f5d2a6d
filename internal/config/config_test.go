package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "DB_PATH", "DB_DRIVER", "DB_MIGRATE", "REDIS_ADDR", "REDIS_PASSWORD",
		"REDIS_DB", "CACHE_TTL", "GRPC_PORT", "GRPC_REFLECTION_ENABLED", "GRPC_LOGGING_ENABLED", "METRICS_PORT",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadFromEnv()

	assert.Equal(t, &Config{
		AppEnv:             "development",
		DBPath:             "./data/rating.db",
		DBDriver:           "sqlite3",
		DBMigrate:          true,
		RedisAddr:          "localhost:6379",
		CacheTTL:           10 * time.Minute,
		GRPCPort:           50051,
		GRPCLoggingEnabled: true,
		MetricsPort:        9090,
	}, cfg)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PATH", "/var/lib/rating.db")
	t.Setenv("DB_MIGRATE", "false")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_PASSWORD", "secret")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("GRPC_PORT", "6000")
	t.Setenv("GRPC_REFLECTION_ENABLED", "true")
	t.Setenv("GRPC_LOGGING_ENABLED", "false")
	t.Setenv("METRICS_PORT", "0")

	cfg := LoadFromEnv()

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "/var/lib/rating.db", cfg.DBPath)
	assert.False(t, cfg.DBMigrate)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, "secret", cfg.RedisPassword)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.Equal(t, 6000, cfg.GRPCPort)
	assert.True(t, cfg.GRPCReflectionEnabled)
	assert.False(t, cfg.GRPCLoggingEnabled)
	assert.Zero(t, cfg.MetricsPort)
}

func TestLoadFromEnv_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("GRPC_PORT", "not-a-port")
	t.Setenv("CACHE_TTL", "-5m")
	t.Setenv("DB_MIGRATE", "maybe")
	t.Setenv("REDIS_DB", "x")

	cfg := LoadFromEnv()

	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.True(t, cfg.DBMigrate)
	assert.Zero(t, cfg.RedisDB)
}

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		logger, err := NewLogger(&Config{AppEnv: env})
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
}
