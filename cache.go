package timewindow

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/samber/mo"

	"timewindow/recurrence"
)

// specCache stores compiled validation results keyed by spec content hash.
// Compilation is deterministic, so entries never expire; concurrent
// compilations of the same spec race harmlessly to the same result and the
// first store wins. Rejected specs are cached too, which is what keeps
// validation from being retried.
type specCache struct {
	mu         sync.RWMutex
	entries    map[string]*cacheEntry
	maxEntries int
	hits       atomic.Uint64
	misses     atomic.Uint64
}

type cacheEntry struct {
	result     mo.Result[*recurrence.Compiled]
	accessedAt atomic.Int64 // unix nanos, eviction ordering only
}

func newSpecCache(maxEntries int) *specCache {
	return &specCache{
		entries:    make(map[string]*cacheEntry),
		maxEntries: maxEntries,
	}
}

func (c *specCache) get(key string) (mo.Result[*recurrence.Compiled], bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		c.misses.Add(1)
		return mo.Result[*recurrence.Compiled]{}, false
	}
	entry.accessedAt.Store(time.Now().UnixNano())
	c.hits.Add(1)
	return entry.result, true
}

func (c *specCache) put(key string, result mo.Result[*recurrence.Compiled]) {
	entry := &cacheEntry{result: result}
	entry.accessedAt.Store(time.Now().UnixNano())

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		// A racing compilation of the same content already stored the same
		// deterministic result.
		return
	}
	c.entries[key] = entry
	if len(c.entries) > c.maxEntries {
		c.evict()
	}
}

// evict drops the least recently accessed entries until back at the limit.
// Caller holds the write lock.
func (c *specCache) evict() {
	type keyAccess struct {
		key string
		at  int64
	}

	byAge := make([]keyAccess, 0, len(c.entries))
	for key, entry := range c.entries {
		byAge = append(byAge, keyAccess{key: key, at: entry.accessedAt.Load()})
	}
	sort.Slice(byAge, func(i, j int) bool { return byAge[i].at < byAge[j].at })

	for _, ka := range byAge[:len(c.entries)-c.maxEntries] {
		delete(c.entries, ka.key)
	}
}

// CacheStats reports validation cache activity.
type CacheStats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

func (c *specCache) stats() CacheStats {
	c.mu.RLock()
	entries := len(c.entries)
	c.mu.RUnlock()

	return CacheStats{
		Entries: entries,
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}
