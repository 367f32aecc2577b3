package memory

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/klagrida/fitnesse-calculator-demo/internal/ports"
)

// DefaultCacheSize bounds the cache used when Redis is disabled.
const DefaultCacheSize = 10000

var _ ports.ICache = (*Cache)(nil)

// Cache is an in-process ports.ICache without expiry. Once size entries are stored the
// least recently used one is evicted.
type Cache struct {
	values *lru.Cache[string, float64]
}

// NewCache returns an empty cache holding at most DefaultCacheSize entries.
func NewCache() *Cache {
	c, _ := NewCacheWithSize(DefaultCacheSize)
	return c
}

// NewCacheWithSize returns an empty cache holding at most size entries.
func NewCacheWithSize(size int) (*Cache, error) {
	values, err := lru.New[string, float64](size)
	if err != nil {
		return nil, err
	}
	return &Cache{values: values}, nil
}

// Get returns the value stored under key.
func (c *Cache) Get(_ context.Context, key string) (float64, bool, error) {
	v, ok := c.values.Get(key)
	return v, ok, nil
}

// Set stores value under key.
func (c *Cache) Set(_ context.Context, key string, value float64) error {
	c.values.Add(key, value)
	return nil
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	return c.values.Len()
}
