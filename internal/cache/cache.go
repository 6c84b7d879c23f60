package cache

import (
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// DefaultCapacity is used when New is called with a non-positive capacity.
const DefaultCapacity = 100

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits         uint64
	Misses       uint64
	Computations uint64
	Evictions    uint64
}

// Cache is a bounded key/value cache with insertion-order eviction.
type Cache[V any] struct {
	capacity int
	group    singleflight.Group

	mu      sync.RWMutex
	entries map[string]V
	order   []string

	hits         atomic.Uint64
	misses       atomic.Uint64
	computations atomic.Uint64
	evictions    atomic.Uint64
}

// New creates a cache holding at most capacity keys.
func New[V any](capacity int) *Cache[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Cache[V]{
		capacity: capacity,
		entries:  make(map[string]V, capacity),
	}
}

// Get returns the cached value for key without computing it.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.entries[key]

	return v, ok
}

// GetOrCompute returns the cached value for key, calling fn to compute it on
// a miss. Concurrent callers for the same key share a single call of fn.
func (c *Cache[V]) GetOrCompute(key string, fn func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		c.hits.Add(1)
		return v, nil
	}

	c.misses.Add(1)

	res, err, _ := c.group.Do(key, func() (any, error) {
		// a flight for key may have completed between Get and Do
		if v, ok := c.Get(key); ok {
			return v, nil
		}

		c.computations.Add(1)

		v, err := fn()
		if err != nil {
			return nil, err
		}

		c.put(key, v)

		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	v, _ := res.(V)

	return v, nil
}

// put inserts key and evicts the oldest keys beyond capacity.
func (c *Cache[V]) put(key string, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		c.order = append(c.order, key)
	}

	c.entries[key] = v

	for len(c.order) > c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]

		delete(c.entries, oldest)
		c.evictions.Add(1)
	}
}

// Len returns the number of cached keys.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Capacity returns the maximum number of keys.
func (c *Cache[V]) Capacity() int {
	return c.capacity
}

// Stats returns a snapshot of the counters.
func (c *Cache[V]) Stats() Stats {
	return Stats{
		Hits:         c.hits.Load(),
		Misses:       c.misses.Load(),
		Computations: c.computations.Load(),
		Evictions:    c.evictions.Load(),
	}
}

// Key identifies one assembly: the record, the field specification, the
// canonical separator specification and the subject filter.
type Key struct {
	RecordID   string
	FieldSpec  string
	Separators string
	Filter     string
}

const keySep = "\x1f"

// String encodes the key. Components are joined with the ASCII unit
// separator, which does not occur in specifications or control numbers.
func (k Key) String() string {
	return strings.Join([]string{k.RecordID, k.FieldSpec, k.Separators, k.Filter}, keySep)
}
