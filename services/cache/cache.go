// Package cache provides a bounded in-memory key/value store with
// least-recently-used eviction and per-entry expiry.
package cache

import (
	"container/list"
	"errors"
	"sync"
	"time"
)

// ErrInvalidCapacity is returned by New for a capacity below one.
var ErrInvalidCapacity = errors.New("cache capacity must be positive")

type entry[K comparable, V any] struct {
	key      K
	value    V
	storedAt time.Time
	ttl      time.Duration
}

// Metrics counts cache outcomes since construction or the last Clear.
type Metrics struct {
	Hits        int64 `json:"hits"`
	Misses      int64 `json:"misses"`
	Evictions   int64 `json:"evictions"`
	Expirations int64 `json:"expirations"`
}

// Cache holds at most capacity entries. Capacity eviction removes the least
// recently touched entry; expiry removes an entry by age on the next Get.
// The two policies are independent.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	now      func() time.Time
	order    *list.List // front = least recently touched
	items    map[K]*list.Element
	metrics  Metrics
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now as the source of entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// New creates a cache holding at most capacity entries.
func New[K comparable, V any](capacity int, opts ...Option) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[K, V]{
		capacity: capacity,
		now:      o.now,
		order:    list.New(),
		items:    make(map[K]*list.Element, capacity),
	}, nil
}

// Set inserts or replaces key with a fresh timestamp and ttl, then evicts the
// least recently touched entry if the cache is over capacity.
func (c *Cache[K, V]) Set(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.Remove(el)
		delete(c.items, key)
	}
	c.items[key] = c.order.PushBack(&entry[K, V]{
		key:      key,
		value:    value,
		storedAt: c.now(),
		ttl:      ttl,
	})

	if c.order.Len() > c.capacity {
		oldest := c.order.Front()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*entry[K, V]).key)
		c.metrics.Evictions++
	}
}

// Get returns the value for key if present and fresh. An expired entry is
// removed and reported as a miss. A hit marks the entry most recently used
// without changing its timestamp or ttl. A ttl of zero is never fresh.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	el, ok := c.items[key]
	if !ok {
		c.metrics.Misses++
		return zero, false
	}
	e := el.Value.(*entry[K, V])
	if c.expired(e) {
		c.order.Remove(el)
		delete(c.items, key)
		c.metrics.Expirations++
		c.metrics.Misses++
		return zero, false
	}
	c.order.MoveToBack(el)
	c.metrics.Hits++
	return e.value, true
}

// Peek reports whether key holds a fresh value without touching recency.
// Expired entries are left for Get to remove.
func (c *Cache[K, V]) Peek(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	return ok && !c.expired(el.Value.(*entry[K, V]))
}

func (c *Cache[K, V]) expired(e *entry[K, V]) bool {
	return e.ttl <= 0 || c.now().Sub(e.storedAt) >= e.ttl
}

// Delete removes key if present.
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.Remove(el)
		delete(c.items, key)
	}
}

// Clear empties the cache and resets its metrics.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order.Init()
	c.items = make(map[K]*list.Element, c.capacity)
	c.metrics = Metrics{}
}

// Len returns the number of held entries, expired ones included.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Keys returns the held keys from least to most recently touched.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*entry[K, V]).key)
	}
	return keys
}

// Capacity returns the configured maximum number of entries.
func (c *Cache[K, V]) Capacity() int { return c.capacity }

// Metrics returns a copy of the counters.
func (c *Cache[K, V]) Metrics() Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.metrics
}
