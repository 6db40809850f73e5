package content

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// Cache stores parsed documents keyed by store path.
// Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (*Document, bool)
	Set(ctx context.Context, key string, doc *Document)
	Purge(ctx context.Context) error
}

// NopCache never stores anything.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (*Document, bool) { return nil, false }
func (NopCache) Set(context.Context, string, *Document)        {}
func (NopCache) Purge(context.Context) error                   { return nil }

type memoryEntry struct {
	key     string
	doc     *Document
	expires time.Time
}

// MemoryCache is a thread-safe LRU cache of documents with an optional TTL.
// When the cache reaches its capacity, the least recently used entry is evicted.
type MemoryCache struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	items    map[string]*list.Element
	eviction *list.List
}

// MemoryCacheOption configures MemoryCache.
type MemoryCacheOption func(*MemoryCache)

// WithTTL expires entries ttl after they were stored. Zero disables expiry.
func WithTTL(ttl time.Duration) MemoryCacheOption {
	return func(c *MemoryCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock replaces time.Now for expiry checks.
func WithClock(now func() time.Time) MemoryCacheOption {
	return func(c *MemoryCache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewMemoryCache creates a cache holding at most capacity documents.
// The capacity must be positive, otherwise it panics.
func NewMemoryCache(capacity int, opts ...MemoryCacheOption) *MemoryCache {
	if capacity <= 0 {
		panic("content: memory cache capacity must be positive")
	}
	c := &MemoryCache{
		capacity: capacity,
		now:      time.Now,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the document for key and marks it as recently used.
// Expired entries are removed and reported as missing.
func (c *MemoryCache) Get(_ context.Context, key string) (*Document, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return nil, false
	}
	entry := elem.Value.(*memoryEntry)
	if !entry.expires.IsZero() && !c.now().Before(entry.expires) {
		c.removeElement(elem)
		return nil, false
	}
	c.eviction.MoveToFront(elem)
	return entry.doc, true
}

// Set adds or replaces the document for key.
func (c *MemoryCache) Set(_ context.Context, key string, doc *Document) {
	if doc == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var expires time.Time
	if c.ttl > 0 {
		expires = c.now().Add(c.ttl)
	}

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		entry := elem.Value.(*memoryEntry)
		entry.doc = doc
		entry.expires = expires
		return
	}

	elem := c.eviction.PushFront(&memoryEntry{key: key, doc: doc, expires: expires})
	c.items[key] = elem

	if c.eviction.Len() > c.capacity {
		if oldest := c.eviction.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}
}

// Purge removes every entry.
func (c *MemoryCache) Purge(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.eviction.Init()
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Must be called with lock held.
func (c *MemoryCache) removeElement(elem *list.Element) {
	c.eviction.Remove(elem)
	delete(c.items, elem.Value.(*memoryEntry).key)
}
