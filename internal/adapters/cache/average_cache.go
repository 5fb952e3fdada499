package cache

import (
	"fmt"
	"time"
	"valet/internal/domain"

	"github.com/dgraph-io/ristretto"
)

const defaultMaxItems = 1024

type RistrettoAverageCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewAverageCache creates a cache of at most maxItems averages. A non-positive ttl keeps entries until evicted.
func NewAverageCache(maxItems int64, ttl time.Duration) (*RistrettoAverageCache, error) {
	if maxItems <= 0 {
		maxItems = defaultMaxItems
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create average cache failed: %w", err)
	}
	return &RistrettoAverageCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoAverageCache) Get(key domain.AverageKey) (float64, bool) {
	if v, ok := c.cache.Get(key.String()); ok {
		avg, ok := v.(float64)
		return avg, ok
	}
	return 0, false
}

func (c *RistrettoAverageCache) Set(key domain.AverageKey, value float64) {
	if c.ttl > 0 {
		c.cache.SetWithTTL(key.String(), value, 1, c.ttl)
		return
	}
	c.cache.Set(key.String(), value, 1)
}

func (c *RistrettoAverageCache) CleanBatch(keys []domain.AverageKey) {
	for _, key := range keys {
		c.cache.Del(key.String())
	}
}

func (c *RistrettoAverageCache) Close() { c.cache.Close() }
