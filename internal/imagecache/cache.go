// Package imagecache holds decoded image bytes keyed by source URL.
//
// The cache is a bounded LRU. Insert is first-write-wins: once a key is
// present, later inserts for the same key are no-ops, so concurrent
// fetches of the same URL can never leave two different values behind.
package imagecache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity bounds the cache when the caller does not.
const DefaultCapacity = 256

// Cache is a bounded, concurrency-safe image store.
type Cache struct {
	entries *lru.Cache[string, []byte]
}

// New builds a Cache holding at most capacity entries. Non-positive
// capacity falls back to DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	// lru.New only fails on capacity <= 0, which is ruled out above.
	entries, err := lru.New[string, []byte](capacity)
	if err != nil {
		panic(err)
	}
	return &Cache{entries: entries}
}

// Retrieve returns the bytes stored under key, if any.
func (c *Cache) Retrieve(key string) ([]byte, bool) {
	return c.entries.Get(key)
}

// Insert stores data under key unless the key already exists. The
// check-and-add runs under the LRU's lock, so the first writer wins even
// when several fetches for the same URL complete at once.
func (c *Cache) Insert(key string, data []byte) {
	c.entries.ContainsOrAdd(key, data)
}

// Len reports the number of cached images.
func (c *Cache) Len() int {
	return c.entries.Len()
}
