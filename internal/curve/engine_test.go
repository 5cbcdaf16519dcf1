package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yildizm/TrailMap/internal/geom"
)

func TestMarkersEmpty(t *testing.T) {
	assert.Empty(t, Markers(0, geom.DefaultAnchors()))
	assert.Empty(t, Markers(-3, geom.DefaultAnchors()))
}

func TestMarkersSingle(t *testing.T) {
	anchors := geom.DefaultAnchors()
	pts := Markers(1, anchors)
	require.Len(t, pts, 1)
	// t = 0 puts the Bézier exactly on the start anchor.
	assert.Equal(t, anchors.Start, pts[0])
}

func TestMarkersThreeStepExample(t *testing.T) {
	anchors := geom.AnchorPair{Start: geom.Pt(80, 620), End: geom.Pt(500, 180)}
	pts := Markers(3, anchors)
	require.Len(t, pts, 3)

	assert.Equal(t, 80.0, pts[0].X)
	assert.Equal(t, 620.0, pts[0].Y)

	assert.InDelta(t, 80+math.Sqrt(0.5)*420, pts[1].X, 1e-9)
	assert.InDelta(t, 377.0, pts[1].X, 0.1)
	// Bx(0.707) is about 397.7, well beyond tolerance of x=377, so y is the
	// cubic fallback of t=0.5.
	assert.InDelta(t, 620-440*0.125, pts[1].Y, 1e-9)

	assert.Equal(t, 500.0, pts[2].X)
	assert.Equal(t, 180.0, pts[2].Y)
}

func TestMarkersEndpoints(t *testing.T) {
	anchorSets := []geom.AnchorPair{
		geom.DefaultAnchors(),
		{Start: geom.Pt(700, 100), End: geom.Pt(20, 580)},
		{Start: geom.Pt(300, 300), End: geom.Pt(300, 300)},
		{Start: geom.Pt(0, 0), End: geom.Pt(800, 0)},
	}

	for _, anchors := range anchorSets {
		for n := 2; n <= 40; n++ {
			pts := Markers(n, anchors)
			require.Len(t, pts, n)
			assert.InDelta(t, anchors.Start.X, pts[0].X, 1e-9, "n=%d first x", n)
			assert.InDelta(t, anchors.End.X, pts[n-1].X, 1e-9, "n=%d last x", n)
			for i, p := range pts {
				assert.False(t, p.IsNaN(), "n=%d point %d is NaN", n, i)
			}
		}
	}
}

func TestMarkersDeterministic(t *testing.T) {
	anchors := geom.AnchorPair{Start: geom.Pt(12.5, 590), End: geom.Pt(611.25, 44)}
	first := Markers(17, anchors)
	second := Markers(17, anchors)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, math.Float64bits(first[i].X), math.Float64bits(second[i].X))
		assert.Equal(t, math.Float64bits(first[i].Y), math.Float64bits(second[i].Y))
	}
}

func TestMarkersMonotoneX(t *testing.T) {
	tests := []struct {
		name    string
		anchors geom.AnchorPair
		rising  bool
	}{
		{"left to right", geom.DefaultAnchors(), true},
		{"right to left", geom.AnchorPair{Start: geom.Pt(700, 500), End: geom.Pt(100, 100)}, false},
		{"vertical", geom.AnchorPair{Start: geom.Pt(400, 500), End: geom.Pt(400, 100)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := Markers(25, tt.anchors)
			for i := 1; i < len(pts); i++ {
				if tt.rising {
					assert.GreaterOrEqual(t, pts[i].X, pts[i-1].X)
				} else {
					assert.LessOrEqual(t, pts[i].X, pts[i-1].X)
				}
			}
		})
	}
}

func TestMarkersUsesBezierWithinTolerance(t *testing.T) {
	// A zero control offset on a straight diagonal makes Bx(u) linear in u,
	// so every marker lands on the Bézier branch.
	anchors := geom.AnchorPair{Start: geom.Pt(0, 600), End: geom.Pt(600, 0)}
	opts := Options{Tolerance: DefaultTolerance}
	pts := MarkersWithOptions(5, anchors, opts)
	for _, p := range pts {
		assert.InDelta(t, 600-p.X, p.Y, 1e-9)
	}
}

func TestControlPoint(t *testing.T) {
	cp := DefaultOptions().ControlPoint(geom.AnchorPair{Start: geom.Pt(80, 620), End: geom.Pt(500, 180)})
	assert.Equal(t, geom.Pt(340, 850), cp)
}

func TestQuadBezEval(t *testing.T) {
	q := QuadBez{P0: geom.Pt(0, 0), P1: geom.Pt(1, 2), P2: geom.Pt(2, 0)}
	assert.Equal(t, geom.Pt(0, 0), q.Eval(0))
	assert.Equal(t, geom.Pt(2, 0), q.Eval(1))
	assert.Equal(t, geom.Pt(1, 1), q.Eval(0.5))
}

func TestParamAndWarp(t *testing.T) {
	assert.Equal(t, 0.0, Param(0, 1))
	assert.Equal(t, 0.5, Param(1, 3))
	assert.InDelta(t, 0.707, Warp(Param(1, 3)), 1e-3)
	assert.Equal(t, 1.0, Warp(1))
}
