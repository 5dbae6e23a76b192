package timewindow

import (
	"fmt"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timewindow/recurrence"
)

func okResult() mo.Result[*recurrence.Compiled] {
	return mo.Ok[*recurrence.Compiled](nil)
}

func TestSpecCacheGetPut(t *testing.T) {
	cache := newSpecCache(10)

	_, ok := cache.get("missing")
	assert.False(t, ok)

	cache.put("a", okResult())
	result, ok := cache.get("a")
	require.True(t, ok)
	_, err := result.Get()
	assert.NoError(t, err)

	stats := cache.stats()
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
}

func TestSpecCacheKeepsFirstResult(t *testing.T) {
	cache := newSpecCache(10)

	cache.put("a", mo.Err[*recurrence.Compiled](assert.AnError))
	cache.put("a", okResult())

	result, ok := cache.get("a")
	require.True(t, ok)
	_, err := result.Get()
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSpecCacheEvictsOldest(t *testing.T) {
	cache := newSpecCache(5)

	for i := 0; i < 5; i++ {
		cache.put(fmt.Sprintf("key-%d", i), okResult())
	}
	// Touch key-0 so it is the most recently accessed.
	_, ok := cache.get("key-0")
	require.True(t, ok)

	cache.put("key-5", okResult())

	assert.Equal(t, 5, cache.stats().Entries)
	_, ok = cache.get("key-0")
	assert.True(t, ok)
	_, ok = cache.get("key-5")
	assert.True(t, ok)
}
