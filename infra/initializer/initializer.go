package initializer

import (
	"context"
	"fmt"
	"time"

	"github.com/Enryuk3/kash-app/infra"
	"github.com/Enryuk3/kash-app/infra/cache"
	"github.com/Enryuk3/kash-app/pkg/app"
	"github.com/Enryuk3/kash-app/pkg/config"
)

// InitializeDependencies opens the database, applies migrations when enabled
// and prepares the optional Redis storage for the rate limiter.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	logger := setupLogger(cfg.Log)
	deps := &app.Deps{Logger: logger}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		if err := infra.RunMigrations(db); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info("Database migrations applied")
	}

	deps.Uow = infra.NewUoW(db)

	if cfg.Redis.URL == "" {
		logger.Info("REDIS_URL not set, rate limiter uses in-memory storage")
		return deps, nil
	}
	storage, err := cache.NewRedisStorage(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis storage: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := storage.Ping(ctx); err != nil {
		logger.Warn("Redis unreachable, rate limiter uses in-memory storage", "error", err)
		_ = storage.Close()
		return deps, nil
	}
	deps.LimiterStorage = storage
	return deps, nil
}
