package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"flight-route-service/internal/domain"
	"flight-route-service/internal/platform/obs"
)

// RedisPathCache is a Redis-backed cache for computed flight paths.
//
// Optimization is pure, so a cached entry never goes stale for a given
// catalog snapshot; the TTL bounds staleness across catalog reloads instead.
// The cache is safe for concurrent use.
type RedisPathCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPathCache(addr string, ttl time.Duration) (*RedisPathCache, error) {
	if addr == "" {
		return nil, errors.New("redis path cache: addr is empty")
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &RedisPathCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}, nil
}

// Ping verifies connectivity at startup.
func (c *RedisPathCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis path cache: ping: %w", err)
	}
	return nil
}

func (c *RedisPathCache) GetPath(ctx context.Context, key string) (_ domain.FlightPath, _ bool, err error) {
	defer obs.Time(ctx, "cache.GetPath")(&err)

	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.FlightPath{}, false, nil
	}
	if err != nil {
		return domain.FlightPath{}, false, fmt.Errorf("get path cache %q: %w", key, err)
	}

	var path domain.FlightPath
	if err := json.Unmarshal(raw, &path); err != nil {
		return domain.FlightPath{}, false, fmt.Errorf("get path cache %q: decode: %w", key, err)
	}

	return path, true, nil
}

func (c *RedisPathCache) PutPath(ctx context.Context, key string, path domain.FlightPath) error {
	raw, err := json.Marshal(path)
	if err != nil {
		return fmt.Errorf("put path cache %q: encode: %w", key, err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("put path cache %q: %w", key, err)
	}

	return nil
}

// Close releases the underlying client.
func (c *RedisPathCache) Close() error { return c.client.Close() }
