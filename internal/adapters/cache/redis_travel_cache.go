package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"measurement-intake-service/internal/platform/obs"
	"measurement-intake-service/internal/ports"

	"github.com/redis/go-redis/v9"
)

// RedisTravelTimeCache decorates a TravelTimeEstimator with a short-lived
// per-destination cache.
//
// Travel time fluctuates with traffic, so entries expire quickly; the TTL
// trades upstream API quota against estimate freshness. Estimator errors are
// returned as-is and never cached, and cache trouble degrades to calling the
// inner estimator rather than failing.
type RedisTravelTimeCache struct {
	client *redis.Client
	inner  ports.TravelTimeEstimator
	ttl    time.Duration
}

func NewRedisTravelTimeCache(client *redis.Client, inner ports.TravelTimeEstimator, ttl time.Duration) *RedisTravelTimeCache {
	return &RedisTravelTimeCache{client: client, inner: inner, ttl: ttl}
}

func travelKey(destination string) string {
	return "traveltime:" + strings.Join(strings.Fields(destination), " ")
}

func (c *RedisTravelTimeCache) EstimateMinutes(ctx context.Context, destination string) (_ int, err error) {
	defer obs.Time(ctx, "travelcache.EstimateMinutes")(&err)

	key := travelKey(destination)

	val, err := c.client.Get(ctx, key).Result()
	if err == nil {
		minutes, convErr := strconv.Atoi(val)
		if convErr == nil {
			return minutes, nil
		}
		log.Printf("travel cache: discarding malformed entry %s=%q", key, val)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("travel cache read failed: %v", err)
	}

	minutes, err := c.inner.EstimateMinutes(ctx, destination)
	if err != nil {
		return 0, fmt.Errorf("travel cache: inner estimate: %w", err)
	}

	if err := c.client.Set(ctx, key, strconv.Itoa(minutes), c.ttl).Err(); err != nil {
		log.Printf("travel cache write failed: %v", err)
	}

	return minutes, nil
}
