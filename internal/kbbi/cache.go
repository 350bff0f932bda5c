package kbbi

import (
	"sync"
	"time"
)

// cacheRecord pairs a resolved payload with its storage instant.
type cacheRecord struct {
	ts      time.Time
	payload Result
}

// ResultCache memoizes resolved payloads keyed by normalized query. Expiry
// is checked lazily on read; there is no background eviction. Stale records
// stay in place until overwritten by the next miss-then-resolve cycle.
type ResultCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	records map[string]cacheRecord

	now func() time.Time // test seam
}

// NewResultCache creates a cache with the given TTL.
func NewResultCache(ttl time.Duration) *ResultCache {
	return &ResultCache{
		ttl:     ttl,
		records: make(map[string]cacheRecord),
		now:     time.Now,
	}
}

// Get returns a copy of the payload with the hit flag set, without mutating
// the stored record. A record older than the TTL is a miss.
func (c *ResultCache) Get(key string) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.records[key]
	if !ok || c.now().Sub(rec.ts) >= c.ttl {
		return Result{}, false
	}
	out := rec.payload
	out.CacheHit = true
	return out, true
}

// Put stores a payload under key, overwriting any previous record. The
// stored copy always carries CacheHit=false.
func (c *ResultCache) Put(key string, payload Result) {
	payload.CacheHit = false
	c.mu.Lock()
	c.records[key] = cacheRecord{ts: c.now(), payload: payload}
	c.mu.Unlock()
}

// InvalidateAll clears every record unconditionally.
func (c *ResultCache) InvalidateAll() {
	c.mu.Lock()
	c.records = make(map[string]cacheRecord)
	c.mu.Unlock()
}

// Len returns the number of stored records, expired ones included.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}
