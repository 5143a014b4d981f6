package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"vetgate/internal/inquiry/models"
	"vetgate/internal/sentinel"
)

// RedisCache is a read-through cache for inquiries fetched from the
// provider. Entries expire after the configured TTL so terminal-state data
// is served hot while in-flight inquiries are re-fetched regularly.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache builds a cache around an existing redis client.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func cacheKey(id string) string {
	return "inquiry:" + id
}

// Get returns the cached inquiry or sentinel.ErrNotFound on a miss.
func (c *RedisCache) Get(ctx context.Context, id string) (*models.Inquiry, error) {
	payload, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var inq models.Inquiry
	if err := json.Unmarshal(payload, &inq); err != nil {
		return nil, fmt.Errorf("decode cached inquiry: %w", err)
	}
	return &inq, nil
}

// Set stores the inquiry under its id with the cache TTL.
func (c *RedisCache) Set(ctx context.Context, inq *models.Inquiry) error {
	payload, err := json.Marshal(inq)
	if err != nil {
		return fmt.Errorf("encode inquiry for cache: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(inq.ID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached entry for the given inquiry.
func (c *RedisCache) Invalidate(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
