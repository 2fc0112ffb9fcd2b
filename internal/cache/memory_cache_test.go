package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCacheBasicAndEdgeCases(t *testing.T) {
	mc := NewMemoryCache[string]()
	defer mc.Stop()
	ctx := context.Background()

	assert.NoError(t, mc.Set(ctx, "key", "value", 0))
	v, err := mc.Get(ctx, "key")
	assert.NoError(t, err)
	assert.Equal(t, "value", v)

	_, err = mc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	assert.NoError(t, mc.Set(ctx, "temp", "x", 50*time.Millisecond))
	time.Sleep(100 * time.Millisecond)
	_, err = mc.Get(ctx, "temp")
	assert.ErrorIs(t, err, ErrCacheMiss)

	assert.NoError(t, mc.Delete(ctx, "key"))
	_, err = mc.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheStopIdempotent(t *testing.T) {
	mc := NewMemoryCache[string]()
	assert.NotPanics(t, func() {
		mc.Stop()
		mc.Stop()
	})
}

func TestMemoryCacheConcurrency(t *testing.T) {
	mc := NewMemoryCache[int]()
	defer mc.Stop()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = mc.Set(ctx, fmt.Sprintf("key%d", i), i, 0)
		}(i)
		go func(i int) {
			defer wg.Done()
			_, _ = mc.Get(ctx, fmt.Sprintf("key%d", i))
		}(i)
	}
	wg.Wait()

	v, err := mc.Get(ctx, "key42")
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestMemoryCacheJanitorCleansExpiredEntries(t *testing.T) {
	interval := 10 * time.Millisecond
	mc := NewMemoryCacheWithInterval[string](interval)
	defer mc.Stop()
	ctx := context.Background()

	ttl := 20 * time.Millisecond
	assert.NoError(t, mc.Set(ctx, "to_clean", "value", ttl))
	assert.NoError(t, mc.Set(ctx, "keep", "value", 0))

	assert.Eventually(t, func() bool {
		mc.mu.RLock()
		defer mc.mu.RUnlock()
		_, found := mc.items["to_clean"]
		return !found
	}, time.Second, interval, "expired entry should have been removed by janitor")

	v, err := mc.Get(ctx, "keep")
	assert.NoError(t, err)
	assert.Equal(t, "value", v)
}
