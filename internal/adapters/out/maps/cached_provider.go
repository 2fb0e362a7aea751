package maps

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"delivery-tracking/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces estimate entries in Redis.
const keyPrefix = "eta:"

// CachedETAProvider decorates an ETAProvider with a Redis cache.
//
// Routes repeat: the same restaurant delivers to the same neighborhoods all
// day, and the routing service is the slowest dependency on the creation
// path. Cache failures never fail an estimate: a miss or a broken Redis
// connection simply falls through to the inner provider.
type CachedETAProvider struct {
	inner  ports.ETAProvider
	client *redis.Client
	ttl    time.Duration
}

// NewCachedETAProvider creates a caching decorator around inner.
// Entries expire after ttl.
func NewCachedETAProvider(inner ports.ETAProvider, client *redis.Client, ttl time.Duration) *CachedETAProvider {
	return &CachedETAProvider{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
}

// Estimate returns a cached estimate when one exists, otherwise asks the
// inner provider and caches the result. Only successful estimates are
// cached; provider failures stay uncached so the next call retries.
func (p *CachedETAProvider) Estimate(ctx context.Context, pickupAddress string, deliveryAddress string) (int, error) {
	key := cacheKey(pickupAddress, deliveryAddress)

	// redis.Nil and any cache failure fall through to the provider.
	cached, err := p.client.Get(ctx, key).Result()
	if err == nil {
		if minutes, convErr := strconv.Atoi(cached); convErr == nil {
			return minutes, nil
		}
	}

	minutes, err := p.inner.Estimate(ctx, pickupAddress, deliveryAddress)
	if err != nil {
		return 0, err
	}

	_ = p.client.Set(ctx, key, strconv.Itoa(minutes), p.ttl).Err()
	return minutes, nil
}

// cacheKey escapes each address before joining so the pair delimiter stays
// unambiguous: ("A|B", "C") and ("A", "B|C") map to distinct entries.
func cacheKey(pickupAddress, deliveryAddress string) string {
	return keyPrefix + url.QueryEscape(pickupAddress) + "|" + url.QueryEscape(deliveryAddress)
}
