package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aashnamahajan/DevelopersConnector/internal/api/metrics"
	"github.com/aashnamahajan/DevelopersConnector/internal/core/domain"
)

const listKey = "profiles:list"

// ProfileCache caches the full profile listing in Redis as JSON.
// Every profile or account write invalidates the entry.
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProfileCache creates a ProfileCache with the given TTL.
func NewProfileCache(client *redis.Client, ttl time.Duration) *ProfileCache {
	return &ProfileCache{client: client, ttl: ttl}
}

// GetList returns the cached listing, or nil on a miss.
func (c *ProfileCache) GetList(ctx context.Context) ([]*domain.Profile, error) {
	b, err := c.client.Get(ctx, listKey).Bytes()
	if err == redis.Nil {
		metrics.ProfileCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var profiles []*domain.Profile
	if err := json.Unmarshal(b, &profiles); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	metrics.ProfileCacheTotal.WithLabelValues("hit").Inc()
	return profiles, nil
}

// SetList stores the listing.
func (c *ProfileCache) SetList(ctx context.Context, profiles []*domain.Profile) error {
	b, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, listKey, b, c.ttl).Err()
}

// Invalidate drops the cached listing.
func (c *ProfileCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, listKey).Err()
}
