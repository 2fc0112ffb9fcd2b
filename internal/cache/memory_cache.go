package cache

import (
	"context"
	"sync"
	"time"
)

type item[V any] struct {
	value      V
	expiration int64 // Unix nanoseconds; zero = no expire
}

// MemoryCache is a process-local cache with a background janitor.
type MemoryCache[V any] struct {
	mu    sync.RWMutex
	items map[string]item[V]
	quit  chan struct{}
	once  sync.Once
}

// NewMemoryCache creates a cache with a 1m janitor by default.
func NewMemoryCache[V any]() *MemoryCache[V] {
	return NewMemoryCacheWithInterval[V](time.Minute)
}

// NewMemoryCacheWithInterval allows customizing the janitor interval.
func NewMemoryCacheWithInterval[V any](janitorInterval time.Duration) *MemoryCache[V] {
	mc := &MemoryCache[V]{
		items: make(map[string]item[V]),
		quit:  make(chan struct{}),
	}
	go mc.startJanitor(janitorInterval)
	return mc
}

// Stop terminates the janitor goroutine.
func (mc *MemoryCache[V]) Stop() {
	mc.once.Do(func() { close(mc.quit) })
}

func (mc *MemoryCache[V]) Get(_ context.Context, key string) (V, error) {
	var zero V
	now := time.Now().UnixNano()

	mc.mu.RLock()
	itm, ok := mc.items[key]
	mc.mu.RUnlock()

	if !ok || itm.expired(now) {
		return zero, ErrCacheMiss
	}
	return itm.value, nil
}

func (mc *MemoryCache[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	var exp int64
	if ttl > 0 {
		exp = time.Now().Add(ttl).UnixNano()
	}
	mc.mu.Lock()
	mc.items[key] = item[V]{value: value, expiration: exp}
	mc.mu.Unlock()
	return nil
}

func (mc *MemoryCache[V]) Delete(_ context.Context, key string) error {
	mc.mu.Lock()
	delete(mc.items, key)
	mc.mu.Unlock()
	return nil
}

func (mc *MemoryCache[V]) startJanitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			mc.evictExpired(time.Now().UnixNano())
		case <-mc.quit:
			return
		}
	}
}

func (mc *MemoryCache[V]) evictExpired(now int64) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	for k, itm := range mc.items {
		if itm.expired(now) {
			delete(mc.items, k)
		}
	}
}

func (i item[V]) expired(now int64) bool {
	return i.expiration > 0 && now > i.expiration
}
