package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"flight-route-service/internal/domain"
)

func newTestCache(t *testing.T) *RedisPathCache {
	t.Helper()

	mr := miniredis.RunT(t)
	c, err := NewRedisPathCache(mr.Addr(), time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	return c
}

func TestRedisPathCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	path := domain.FlightPath{
		Waypoints:       []string{"JFK", "ORD", "LAX"},
		TotalDistanceKm: 4325.7,
		EstimatedFuelKg: 13928.8,
		EstimatedCO2Kg:  44015.0,
		FlightTimeHours: 5.09,
		Score:           10.09,
	}

	if err := c.PutPath(ctx, "route|JFK|LAX|A320neo|eco", path); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, hit, err := c.GetPath(ctx, "route|JFK|LAX|A320neo|eco")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !hit {
		t.Fatal("expected a cache hit")
	}
	if got.WaypointKey() != path.WaypointKey() {
		t.Fatalf("waypoints = %v, want %v", got.Waypoints, path.Waypoints)
	}
	if got.Score != path.Score {
		t.Fatalf("score = %v, want %v", got.Score, path.Score)
	}
}

func TestRedisPathCacheMiss(t *testing.T) {
	c := newTestCache(t)

	_, hit, err := c.GetPath(context.Background(), "route|AAA|BBB|x|eco")
	if err != nil {
		t.Fatalf("unexpected error on miss: %v", err)
	}
	if hit {
		t.Fatal("expected a cache miss")
	}
}

func TestNewRedisPathCacheRequiresAddr(t *testing.T) {
	if _, err := NewRedisPathCache("", time.Minute); err == nil {
		t.Fatal("expected error for empty addr")
	}
}
