package server

import (
	"context"
	"fmt"

	"trivia-coffee/internal/adapter"
	"trivia-coffee/internal/cache"
	"trivia-coffee/internal/config"
	"trivia-coffee/internal/database"
	"trivia-coffee/internal/domain"
	"trivia-coffee/internal/handler"
	"trivia-coffee/internal/logger"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Dependencies holds the connections shared by a service's repositories.
type Dependencies struct {
	DB    *sqlx.DB
	Cache domain.Cache // nil when redis is not configured

	redis *redis.Client
}

// OpenDependencies connects to the database and, when an address is
// configured, to redis.
func OpenDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	db, err := database.NewSQLXDB(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	deps := &Dependencies{DB: db}

	if cfg.Redis.Address == "" {
		logger.Get().Info("Redis address not configured, caching disabled")
		return deps, nil
	}

	client, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	deps.redis = client
	deps.Cache = adapter.NewRedisCacheAdapter(client)
	logger.Get().Info("RedisCacheAdapter initialized", zap.String("address", cfg.Redis.Address))
	return deps, nil
}

// HealthChecks returns the checks served on /healthz.
func (d *Dependencies) HealthChecks() map[string]handler.HealthCheck {
	checks := map[string]handler.HealthCheck{
		"database": d.DB.PingContext,
	}
	if d.Cache != nil {
		checks["cache"] = d.Cache.Ping
	}
	return checks
}

// Close releases the connections, logging failures.
func (d *Dependencies) Close() {
	if d.redis != nil {
		if err := d.redis.Close(); err != nil {
			logger.Get().Warn("Failed to close redis client", zap.Error(err))
		}
	}
	if err := d.DB.Close(); err != nil {
		logger.Get().Warn("Failed to close database", zap.Error(err))
	}
}
