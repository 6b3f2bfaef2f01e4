// Package cache provides a sharded LRU cache keyed by text.
//
// The cache is split into shards, each with its own mutex and recency list,
// so goroutines segmenting different strings rarely contend.
//
//	c := cache.New[[]int](1024)
//	c.Add("key", []int{1, 2})
//	v, ok := c.Get("key")
//
// LRU is safe for concurrent use and must not be copied after creation.
package cache

import (
	"hash/maphash"
	"sync"
	"sync/atomic"
)

// shardCount must be a power of two.
const shardCount = 16

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the total capacity across all shards.
	Capacity int
	// Hits is the number of successful lookups.
	Hits uint64
	// Misses is the number of failed lookups.
	Misses uint64
	// Evictions is the number of entries dropped to make room.
	Evictions uint64
}

// HitRate returns hits / (hits + misses), or 0 before the first lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// LRU is a sharded least-recently-used cache from strings to V.
type LRU[V any] struct {
	seed     maphash.Seed
	shards   [shardCount]shard[V]
	perShard int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// shard is one lock domain. head is the most recently used entry.
type shard[V any] struct {
	mu      sync.Mutex
	entries map[string]*entry[V]
	head    *entry[V]
	tail    *entry[V]
}

type entry[V any] struct {
	key   string
	value V
	prev  *entry[V]
	next  *entry[V]
}

// New returns a cache holding about capacity entries in total.
// Each shard holds at least one entry.
func New[V any](capacity int) *LRU[V] {
	c := &LRU[V]{
		seed:     maphash.MakeSeed(),
		perShard: max(1, (capacity+shardCount-1)/shardCount),
	}
	for i := range c.shards {
		c.shards[i].entries = make(map[string]*entry[V])
	}
	return c
}

func (c *LRU[V]) shardFor(key string) *shard[V] {
	return &c.shards[maphash.String(c.seed, key)&(shardCount-1)]
}

// Get returns the value cached for key and marks it most recently used.
func (c *LRU[V]) Get(key string) (V, bool) {
	s := c.shardFor(key)

	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.moveToFront(e)
	v := e.value
	s.mu.Unlock()

	c.hits.Add(1)
	return v, true
}

// Add stores value under key, evicting the least recently used entries of
// the shard when it is full. The value is stored as-is.
func (c *LRU[V]) Add(key string, value V) {
	s := c.shardFor(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		e.value = value
		s.moveToFront(e)
		return
	}

	for len(s.entries) >= c.perShard && s.tail != nil {
		oldest := s.tail
		s.unlink(oldest)
		delete(s.entries, oldest.key)
		c.evictions.Add(1)
	}

	e := &entry[V]{key: key, value: value}
	s.pushFront(e)
	s.entries[key] = e
}

// Len returns the number of cached entries.
func (c *LRU[V]) Len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}

// Purge removes every entry. Statistics are kept.
func (c *LRU[V]) Purge() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		s.entries = make(map[string]*entry[V])
		s.head, s.tail = nil, nil
		s.mu.Unlock()
	}
}

// Stats returns a snapshot of the cache statistics.
func (c *LRU[V]) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Capacity:  c.perShard * shardCount,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

func (s *shard[V]) pushFront(e *entry[V]) {
	e.prev = nil
	e.next = s.head
	if s.head != nil {
		s.head.prev = e
	}
	s.head = e
	if s.tail == nil {
		s.tail = e
	}
}

func (s *shard[V]) moveToFront(e *entry[V]) {
	if e == s.head {
		return
	}
	s.unlink(e)
	s.pushFront(e)
}

func (s *shard[V]) unlink(e *entry[V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		s.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		s.tail = e.prev
	}
	e.prev, e.next = nil, nil
}
