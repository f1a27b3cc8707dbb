package advisor

import (
	"sync"

	"github.com/r3xsean/starguide-public-sub001/internal/hsr/kb"
)

// maxCacheEntries bounds the memo cache; the whole thing is flushed when
// the bound is hit. Roster edits and KB reloads change the key, so stale
// entries are never served, only wasted.
const maxCacheEntries = 64

// cacheKey identifies one pull-recommendation computation. All three parts
// matter: the same roster under a different mode or knowledge-base version
// is a different result.
type cacheKey struct {
	roster    string
	mode      kb.GameMode
	kbVersion string
}

type resultCache struct {
	mu      sync.Mutex
	entries map[cacheKey]*PullAdvice
}

func newResultCache() *resultCache {
	return &resultCache{entries: make(map[cacheKey]*PullAdvice)}
}

func (c *resultCache) get(key cacheKey) *PullAdvice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[key]
}

func (c *resultCache) put(key cacheKey, advice *PullAdvice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= maxCacheEntries {
		c.entries = make(map[cacheKey]*PullAdvice)
	}
	c.entries[key] = advice
}
