package curve

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yildizm/TrailMap/internal/geom"
)

func TestCacheMemoizes(t *testing.T) {
	c := NewCache(0)
	anchors := geom.DefaultAnchors()

	first := c.Markers(8, anchors, DefaultOptions())
	second := c.Markers(8, anchors, DefaultOptions())
	require.Len(t, first, 8)
	assert.Equal(t, first, second)

	hits, misses := c.Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)

	c.Markers(9, anchors, DefaultOptions())
	_, misses = c.Stats()
	assert.Equal(t, 2, misses)
	assert.Equal(t, 2, c.Len())
}

func TestCacheMatchesDirectComputation(t *testing.T) {
	c := NewCache(4)
	anchors := geom.AnchorPair{Start: geom.Pt(10, 590), End: geom.Pt(790, 10)}
	assert.Equal(t, Markers(12, anchors), c.Markers(12, anchors, DefaultOptions()))
}

func TestCacheLimit(t *testing.T) {
	c := NewCache(2)
	anchors := geom.DefaultAnchors()
	for n := 1; n <= 5; n++ {
		c.Markers(n, anchors, DefaultOptions())
		assert.LessOrEqual(t, c.Len(), 2)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := NewCache(8)
	anchors := geom.DefaultAnchors()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			pts := c.Markers(n%4+1, anchors, DefaultOptions())
			assert.Len(t, pts, n%4+1)
		}(i)
	}
	wg.Wait()

	hits, misses := c.Stats()
	assert.Equal(t, 16, hits+misses)
}
