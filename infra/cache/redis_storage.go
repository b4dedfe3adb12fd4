package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Enryuk3/kash-app/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

var _ fiber.Storage = (*RedisStorage)(nil)

// RedisStorage is a fiber.Storage on top of Redis. It lets the rate limiter
// share its counters between server instances.
type RedisStorage struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisStorage parses cfg.URL and returns a storage whose keys are
// namespaced by cfg.KeyPrefix.
func NewRedisStorage(cfg *config.Redis, logger *slog.Logger) (*RedisStorage, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if cfg.PoolSize > 0 {
		opt.PoolSize = cfg.PoolSize
	}
	opt.DialTimeout = cfg.DialTimeout
	opt.ReadTimeout = cfg.ReadTimeout
	opt.WriteTimeout = cfg.WriteTimeout
	return NewRedisStorageWithClient(redis.NewClient(opt), cfg.KeyPrefix, logger), nil
}

// NewRedisStorageWithClient wraps an existing client.
func NewRedisStorageWithClient(client *redis.Client, prefix string, logger *slog.Logger) *RedisStorage {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisStorage{client: client, prefix: prefix, logger: logger}
}

func (r *RedisStorage) key(key string) string {
	return r.prefix + key
}

// Ping checks the connection.
func (r *RedisStorage) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Get returns nil, nil on a miss, as fiber.Storage requires.
func (r *RedisStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	val, err := r.client.Get(context.Background(), r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Redis storage get error", "key", key, "error", err)
		return nil, err
	}
	return val, nil
}

func (r *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	if err := r.client.Set(context.Background(), r.key(key), val, exp).Err(); err != nil {
		r.logger.Error("Redis storage set error", "key", key, "error", err)
		return err
	}
	return nil
}

func (r *RedisStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	return r.client.Del(context.Background(), r.key(key)).Err()
}

// Reset removes every key under the prefix. Without a prefix the whole
// database is flushed.
func (r *RedisStorage) Reset() error {
	ctx := context.Background()
	if r.prefix == "" {
		return r.client.FlushDB(ctx).Err()
	}
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (r *RedisStorage) Close() error {
	return r.client.Close()
}
