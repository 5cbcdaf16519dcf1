package curve

import (
	"sync"

	"github.com/yildizm/TrailMap/internal/geom"
)

type cacheKey struct {
	n       int
	anchors geom.AnchorPair
	opts    Options
}

// Cache memoizes marker layouts on (n, anchors, options). It is safe for
// concurrent use. Returned slices are shared and must not be modified.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey][]geom.Point
	limit   int
	hits    int
	misses  int
}

// NewCache creates a cache holding at most limit layouts. limit <= 0 means 64.
func NewCache(limit int) *Cache {
	if limit <= 0 {
		limit = 64
	}
	return &Cache{
		entries: make(map[cacheKey][]geom.Point),
		limit:   limit,
	}
}

// Markers returns the memoized layout, computing it on a miss.
func (c *Cache) Markers(n int, anchors geom.AnchorPair, opts Options) []geom.Point {
	key := cacheKey{n: n, anchors: anchors, opts: opts}

	c.mu.RLock()
	points, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return points
	}

	points = MarkersWithOptions(n, anchors, opts)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.misses++
	if len(c.entries) >= c.limit {
		// No recency tracking: overflow drops every entry.
		c.entries = make(map[cacheKey][]geom.Point)
	}
	c.entries[key] = points
	return points
}

// Stats returns hit and miss counts.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// Len returns the number of cached layouts.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
