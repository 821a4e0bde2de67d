package utils

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// All first-touch callers must observe the same instance.
func TestGetCacheSingleton(t *testing.T) {
	const goroutines = 16
	instances := make([]*GlobalCache, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			instances[i] = GetCache()
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, instances[0], instances[i])
	}
}

func TestCacheSetGetExpiry(t *testing.T) {
	cache := GetCache()

	cache.Set("k", "v", time.Minute)
	assert.Equal(t, "v", cache.Get("k"))

	// Expired entries read as missing.
	cache.Set("gone", "v", -time.Second)
	assert.Nil(t, cache.Get("gone"))

	cache.Delete("k")
	assert.Nil(t, cache.Get("k"))
}
