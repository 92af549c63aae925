package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"moreyacht/internal/models"

	"github.com/redis/go-redis/v9"
)

const yachtsKey = "cache:yachts"

// RedisCache caches catalog reads in Redis. Admin catalog writes invalidate
// the cached fleet.
type RedisCache struct {
	client    *redis.Client
	yachtsTTL time.Duration
}

// Config holds Redis connection details.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisCache creates a RedisCache with the given fleet TTL.
func NewRedisCache(cfg Config, yachtsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		yachtsTTL: yachtsTTL,
	}
}

// GetYachts returns the cached fleet, or (nil, nil) on a cache miss.
func (c *RedisCache) GetYachts(ctx context.Context) ([]models.Yacht, error) {
	data, err := c.client.Get(ctx, yachtsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read yachts from cache: %w", err)
	}

	var yachts []models.Yacht
	if err := json.Unmarshal(data, &yachts); err != nil {
		return nil, fmt.Errorf("failed to decode cached yachts: %w", err)
	}
	return yachts, nil
}

// SetYachts stores the fleet under the catalog key with the configured TTL.
func (c *RedisCache) SetYachts(ctx context.Context, yachts []models.Yacht) error {
	payload, err := json.Marshal(yachts)
	if err != nil {
		return fmt.Errorf("failed to encode yachts for cache: %w", err)
	}
	return c.client.Set(ctx, yachtsKey, payload, c.yachtsTTL).Err()
}

// InvalidateYachts drops the cached fleet after a catalog write.
func (c *RedisCache) InvalidateYachts(ctx context.Context) error {
	return c.client.Del(ctx, yachtsKey).Err()
}

// Close releases the underlying Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
