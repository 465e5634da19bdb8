package sheets

import (
	"sync"
	"time"

	"github.com/seongmin-k/biffplan/internal/model"
	"github.com/seongmin-k/biffplan/internal/service"
)

// loadCache memoizes Load results per handle for a bounded window. Save
// calls Invalidate for its own handle synchronously, so a load after a save
// is never stale relative to that save.
type loadCache struct {
	entries map[service.Handle]cacheEntry
	ttl     time.Duration
	now     func() time.Time
	mu      sync.Mutex
}

type cacheEntry struct {
	table   *model.Table
	expires time.Time
}

func newLoadCache(ttl time.Duration) *loadCache {
	return &loadCache{
		entries: make(map[service.Handle]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// get returns a copy of the cached table, if present and unexpired. Copies
// in both directions keep callers from mutating the cached snapshot.
func (c *loadCache) get(h service.Handle) (*model.Table, bool) {
	if c.ttl == 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[h]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expires) {
		delete(c.entries, h)
		return nil, false
	}
	return entry.table.Clone(), true
}

func (c *loadCache) put(h service.Handle, t *model.Table) {
	if c.ttl == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[h] = cacheEntry{
		table:   t.Clone(),
		expires: c.now().Add(c.ttl),
	}
}

func (c *loadCache) invalidate(h service.Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, h)
}
