package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendRedis = "redis"
	BackendBolt  = "bolt"
)

type Config struct {
	Port           string
	Environment    string
	LogLevel       slog.Level
	LogFile        string        // Console only; the TUI owns stdout
	StorageBackend string        // "redis" or "bolt"
	RedisURL       string        // host:port or redis:// URL
	BoltPath       string        //
	DataDir        string        // Holds worlds/ with extra world files
	SessionTTL     time.Duration // Redis expiry of an idle game
	WorldCacheSize int
	WorldCacheTTL  time.Duration
}

// Load reads configuration from the environment, after loading a .env file if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LogFile:        getEnv("LOG_FILE", "adventure.log"),
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", BackendRedis)),
		RedisURL:       getEnv("REDIS_URL", "localhost:6379"),
		BoltPath:       getEnv("BOLT_PATH", "data/adventure.db"),
		DataDir:        getEnv("DATA_DIR", "./data"),
	}

	var err error
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", time.Hour); err != nil {
		return nil, err
	}
	if cfg.WorldCacheTTL, err = getDuration("WORLD_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.WorldCacheSize, err = getInt("WORLD_CACHE_SIZE", 16); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid PORT value %q: %w", c.Port, err)
	}
	switch c.StorageBackend {
	case BackendRedis, BackendBolt:
	default:
		return fmt.Errorf("invalid STORAGE_BACKEND %q: must be %q or %q", c.StorageBackend, BackendRedis, BackendBolt)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.WorldCacheSize <= 0 {
		return fmt.Errorf("WORLD_CACHE_SIZE must be positive, got %d", c.WorldCacheSize)
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return d, nil
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return n, nil
}
