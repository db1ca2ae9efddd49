package analytics

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"
)

// Document wraps a raw fixture payload with fetch metadata.
type Document struct {
	Endpoint    string          `json:"endpoint"`
	LastUpdated time.Time       `json:"last_updated"`
	FromCache   bool            `json:"from_cache"`
	IsFailover  bool            `json:"is_failover"`
	Error       string          `json:"error,omitempty"`
	Raw         json.RawMessage `json:"-"`
}

type cacheEntry struct {
	doc       Document
	fetchedAt time.Time
}

// Cache is a TTL cache for fetched documents. It is owned by a Service
// instance, never shared as a package global, and takes its clock as a
// dependency so tests can control expiry.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

// NewCache returns a cache whose entries expire after ttl. A nil now
// function defaults to time.Now.
func NewCache(ttl time.Duration, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns a copy of the cached document for key if it is still fresh.
func (c *Cache) Get(key string) (Document, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return Document{}, false
	}
	if c.now().Sub(entry.fetchedAt) >= c.ttl {
		delete(c.entries, key)
		return Document{}, false
	}
	return entry.doc, true
}

// Set stores doc under key with the current time as its fetch time.
func (c *Cache) Set(key string, doc Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{doc: doc, fetchedAt: c.now()}
}

// Invalidate drops the entry for key, forcing the next read to refetch.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// cacheKey builds a deterministic key from the endpoint and its options.
// Options are sorted so that structurally equal option maps hash equally.
func cacheKey(endpoint string, opts map[string]string) string {
	if len(opts) == 0 {
		return endpoint
	}
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(endpoint)
	for _, k := range keys {
		b.WriteByte('?')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(opts[k])
	}
	return b.String()
}
