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
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

type Config struct {
	BotToken     string
	SessionStore string
	DatabasePath string
	RedisURL     string
	SessionTTL   time.Duration
	ShuffleSeed  int64
	LogLevel     slog.Level
}

// Load reads the environment, after merging a .env file if one exists.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		BotToken:     os.Getenv("BOT_TOKEN"),
		SessionStore: strings.ToLower(getEnv("SESSION_STORE", StoreMemory)),
		DatabasePath: getEnv("DATABASE_PATH", "./blackjack.db"),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379/0"),
	}

	switch cfg.SessionStore {
	case StoreMemory, StoreSQLite, StoreRedis:
	default:
		return nil, fmt.Errorf("SESSION_STORE: unknown store %q", cfg.SessionStore)
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be > 0")
	}
	cfg.SessionTTL = ttl

	seed, err := strconv.ParseInt(getEnv("SHUFFLE_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("SHUFFLE_SEED: %w", err)
	}
	cfg.ShuffleSeed = seed

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// Logger builds the text logger used by the entry points.
func (c *Config) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: c.LogLevel}))
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
