package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryCache is a bounded LRU whose entries expire after the TTL even if
// nobody reads them again.
type MemoryCache struct {
	lru *expirable.LRU[string, []byte]
}

func NewMemoryCache(capacity int, ttl time.Duration) *MemoryCache {
	if capacity < 1 {
		capacity = 1
	}
	return &MemoryCache{
		lru: expirable.NewLRU[string, []byte](capacity, nil, ttl),
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	return m.lru.Get(key)
}

func (m *MemoryCache) Set(_ context.Context, key string, value []byte) {
	m.lru.Add(key, value)
}

// Len reports how many live entries are held.
func (m *MemoryCache) Len() int {
	return m.lru.Len()
}
