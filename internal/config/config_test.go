package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "ENVIRONMENT", "LOG_LEVEL", "LOG_FILE", "STORAGE_BACKEND", "REDIS_URL",
	"BOLT_PATH", "DATA_DIR", "SESSION_TTL", "WORLD_CACHE_SIZE", "WORLD_CACHE_TTL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, BackendRedis, cfg.StorageBackend)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.Equal(t, "data/adventure.db", cfg.BoltPath)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, 16, cfg.WorldCacheSize)
	assert.Equal(t, 5*time.Minute, cfg.WorldCacheTTL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("STORAGE_BACKEND", "Bolt")
	t.Setenv("BOLT_PATH", "/tmp/saves.db")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("WORLD_CACHE_SIZE", "4")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, BackendBolt, cfg.StorageBackend)
	assert.Equal(t, "/tmp/saves.db", cfg.BoltPath)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 4, cfg.WorldCacheSize)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port", key: "PORT", value: "eighty"},
		{name: "backend", key: "STORAGE_BACKEND", value: "postgres"},
		{name: "ttl syntax", key: "SESSION_TTL", value: "forever"},
		{name: "ttl negative", key: "SESSION_TTL", value: "-1m"},
		{name: "cache size", key: "WORLD_CACHE_SIZE", value: "lots"},
		{name: "cache size zero", key: "WORLD_CACHE_SIZE", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLogLevel(in), in)
	}
}
