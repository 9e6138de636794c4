package collector

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"StockPulse/internal/model"
)

// Cache memoizes fetched series keyed by (ticker, resolved range, resolved
// interval) with an explicit TTL. Consumers treat a cached TimeSeries as
// immutable, so handing out the same value repeatedly is safe.
type Cache struct {
	lru *expirable.LRU[string, model.TimeSeries]
}

// NewCache creates a cache holding up to size entries for at most ttl each.
func NewCache(size int, ttl time.Duration) *Cache {
	return &Cache{lru: expirable.NewLRU[string, model.TimeSeries](size, nil, ttl)}
}

func cacheKey(ticker, rng, interval string) string {
	return fmt.Sprintf("%s|%s|%s", ticker, rng, interval)
}

func (c *Cache) get(key string) (model.TimeSeries, bool) {
	return c.lru.Get(key)
}

func (c *Cache) add(key string, series model.TimeSeries) {
	c.lru.Add(key, series)
}
