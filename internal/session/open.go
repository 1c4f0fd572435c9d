package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"blackjack-table/internal/config"
	"blackjack-table/internal/database"
)

// Open builds the store selected by cfg.SessionStore.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Store, error) {
	switch cfg.SessionStore {
	case config.StoreMemory:
		logger.Info("session store ready", "store", cfg.SessionStore, "ttl", cfg.SessionTTL)
		return NewMemoryStore(cfg.SessionTTL), nil

	case config.StoreSQLite:
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return nil, err
		}
		logger.Info("session store ready", "store", cfg.SessionStore, "path", cfg.DatabasePath, "ttl", cfg.SessionTTL)
		return NewSQLiteStore(db.DB, cfg.SessionTTL), nil

	case config.StoreRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis url: %w", err)
		}
		client := redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		logger.Info("session store ready", "store", cfg.SessionStore, "addr", opts.Addr, "ttl", cfg.SessionTTL)
		return NewRedisStore(client, cfg.SessionTTL), nil
	}
	return nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
}
