// Package memory provides an in-process geometry term cache.
package memory

import (
	"sync"

	"go.ngs.io/thinfoil-api/internal/adapter/store"
	"go.ngs.io/thinfoil-api/internal/domain"
)

// Cache is a map-backed store.GeometryCache safe for concurrent use.
type Cache struct {
	entries map[store.GeometryKey]*domain.GeometryTerms
	maxSize int
	mu      sync.RWMutex
}

// NewCache creates a cache holding at most maxSize entries.
// A non-positive maxSize means unbounded.
func NewCache(maxSize int) *Cache {
	return &Cache{
		entries: make(map[store.GeometryKey]*domain.GeometryTerms),
		maxSize: maxSize,
	}
}

// Get returns the cached terms for key.
func (c *Cache) Get(key store.GeometryKey) (*domain.GeometryTerms, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	terms, ok := c.entries[key]
	return terms, ok
}

// Put stores terms under key. When the cache is full an arbitrary entry is
// evicted; a recomputation costs one integration sweep.
func (c *Cache) Put(key store.GeometryKey, terms *domain.GeometryTerms) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && c.maxSize > 0 && len(c.entries) >= c.maxSize {
		for k := range c.entries {
			delete(c.entries, k)
			break
		}
	}
	c.entries[key] = terms
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
