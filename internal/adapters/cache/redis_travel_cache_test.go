package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"measurement-intake-service/internal/adapters/traveltime"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T, inner *traveltime.MockTravelTimeEstimator) (*RedisTravelTimeCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisTravelTimeCache(client, inner, time.Minute), mr
}

func TestRedisTravelTimeCacheMissThenHit(t *testing.T) {
	inner := traveltime.NewMockTravelTimeEstimator(map[string]int{"Dam 1, Amsterdam": 25})
	cache, mr := newTestCache(t, inner)
	ctx := context.Background()

	minutes, err := cache.EstimateMinutes(ctx, "Dam 1, Amsterdam")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if minutes != 25 {
		t.Fatalf("minutes = %d, want 25", minutes)
	}
	if inner.Calls != 1 {
		t.Fatalf("inner calls = %d, want 1", inner.Calls)
	}

	if got, err := mr.Get("traveltime:Dam 1, Amsterdam"); err != nil || got != "25" {
		t.Fatalf("stored value = %q (err=%v), want \"25\"", got, err)
	}

	// Second lookup is served from the cache.
	minutes, err = cache.EstimateMinutes(ctx, "Dam 1, Amsterdam")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if minutes != 25 {
		t.Fatalf("minutes = %d, want 25", minutes)
	}
	if inner.Calls != 1 {
		t.Fatalf("inner calls after hit = %d, want 1", inner.Calls)
	}
}

func TestRedisTravelTimeCacheEntriesExpire(t *testing.T) {
	inner := traveltime.NewMockTravelTimeEstimator(map[string]int{"Heereweg 10, Lisse": 15})
	cache, mr := newTestCache(t, inner)
	ctx := context.Background()

	if _, err := cache.EstimateMinutes(ctx, "Heereweg 10, Lisse"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := cache.EstimateMinutes(ctx, "Heereweg 10, Lisse"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.Calls != 2 {
		t.Fatalf("inner calls = %d, want 2 after expiry", inner.Calls)
	}
}

func TestRedisTravelTimeCacheInnerErrorNotCached(t *testing.T) {
	inner := traveltime.NewMockTravelTimeEstimator(nil)
	inner.Err = errors.New("upstream unavailable")
	cache, mr := newTestCache(t, inner)

	if _, err := cache.EstimateMinutes(context.Background(), "Dam 1, Amsterdam"); err == nil {
		t.Fatal("expected error, got none")
	}
	if mr.Exists("traveltime:Dam 1, Amsterdam") {
		t.Fatal("failed estimate must not be cached")
	}
}

func TestRedisTravelTimeCacheMalformedEntryFallsThrough(t *testing.T) {
	inner := traveltime.NewMockTravelTimeEstimator(map[string]int{"Dam 1, Amsterdam": 25})
	cache, mr := newTestCache(t, inner)

	if err := mr.Set("traveltime:Dam 1, Amsterdam", "not-a-number"); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	minutes, err := cache.EstimateMinutes(context.Background(), "Dam 1, Amsterdam")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if minutes != 25 {
		t.Fatalf("minutes = %d, want 25", minutes)
	}
	if inner.Calls != 1 {
		t.Fatalf("inner calls = %d, want 1", inner.Calls)
	}
}
