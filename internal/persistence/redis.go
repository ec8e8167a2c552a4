package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/manga-catalog/admin-gateway/internal/config"
)

// Redis wraps the go-redis client used as a best-effort response cache.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration. A nil receiver
// is a valid "cache disabled" state, returned when no address is configured.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	if cfg.Addr == "" {
		logger.Info("redis not configured, dashboard cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// GetString fetches a cached value. A miss or any transport error returns
// ok=false; callers fall through to the backend.
func (r *Redis) GetString(ctx context.Context, key string) (string, bool) {
	if r == nil || r.Client == nil {
		return "", false
	}
	val, err := r.Client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// SetString stores a value with a TTL. Errors are ignored, the cache is
// best effort.
func (r *Redis) SetString(ctx context.Context, key, val string, ttl time.Duration) {
	if r == nil || r.Client == nil {
		return
	}
	_ = r.Client.Set(ctx, key, val, ttl).Err()
}
