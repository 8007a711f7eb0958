// Package cache holds read-through caches for category projections.
// Failures are logged and treated as misses; the cache never fails a
// request.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/devflix-admin/internal/platform/breaker"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/config"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/logging"
	"github.com/jsamuelsen11/devflix-admin/internal/ports"
)

const (
	categoryKeyPrefix = "category:"

	// DefaultTTL is how long a category projection stays cached.
	DefaultTTL = 5 * time.Minute
)

var _ ports.CategoryCache = (*Redis)(nil)

// Connect creates a go-redis client for cfg and verifies it with a ping.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// Redis caches CategoryResponse values as JSON under "category:{id}".
type Redis struct {
	client  *redis.Client
	ttl     time.Duration
	breaker *breaker.Breaker
	logger  *slog.Logger
}

// NewRedis creates a Redis cache. A zero ttl falls back to DefaultTTL.
func NewRedis(client *redis.Client, ttl time.Duration, b *breaker.Breaker, logger *slog.Logger) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{
		client:  client,
		ttl:     ttl,
		breaker: b,
		logger:  logging.OrDiscard(logger),
	}
}

func key(id uuid.UUID) string {
	return categoryKeyPrefix + id.String()
}

// Get returns the cached projection for id. Misses and errors both report
// false.
func (c *Redis) Get(ctx context.Context, id uuid.UUID) (*ports.CategoryResponse, bool) {
	var raw []byte
	err := c.breaker.Execute(ctx, "cache.get", func(ctx context.Context) error {
		val, err := c.client.Get(ctx, key(id)).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		raw = val
		return err
	})
	if err != nil {
		c.logger.WarnContext(ctx, "category cache get error",
			slog.String("category_id", id.String()),
			slog.Any("error", err),
		)
		return nil, false
	}
	if raw == nil {
		return nil, false
	}

	var resp ports.CategoryResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		c.logger.WarnContext(ctx, "category cache decode error",
			slog.String("category_id", id.String()),
			slog.Any("error", err),
		)
		return nil, false
	}
	c.logger.DebugContext(ctx, "category cache hit", slog.String("category_id", id.String()))
	return &resp, true
}

// Set stores resp with the configured TTL.
func (c *Redis) Set(ctx context.Context, resp *ports.CategoryResponse) {
	raw, err := json.Marshal(resp)
	if err != nil {
		c.logger.WarnContext(ctx, "category cache encode error",
			slog.String("category_id", resp.ID.String()),
			slog.Any("error", err),
		)
		return
	}

	err = c.breaker.Execute(ctx, "cache.set", func(ctx context.Context) error {
		return c.client.Set(ctx, key(resp.ID), raw, c.ttl).Err()
	})
	if err != nil {
		c.logger.WarnContext(ctx, "category cache set error",
			slog.String("category_id", resp.ID.String()),
			slog.Any("error", err),
		)
	}
}

// Delete evicts the projection for id.
func (c *Redis) Delete(ctx context.Context, id uuid.UUID) {
	err := c.breaker.Execute(ctx, "cache.delete", func(ctx context.Context) error {
		return c.client.Del(ctx, key(id)).Err()
	})
	if err != nil {
		c.logger.WarnContext(ctx, "category cache delete error",
			slog.String("category_id", id.String()),
			slog.Any("error", err),
		)
	}
}

// Name returns "redis".
func (c *Redis) Name() string { return "redis" }

// HealthCheck pings the server.
func (c *Redis) HealthCheck(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}
