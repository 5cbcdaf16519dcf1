// Package curve lays plan markers out along the ascent curve.
//
// The layout warps the index parameter with a square root, places x linearly
// on the warped parameter and takes y from a quadratic Bézier through a
// control point below the anchors. When the Bézier does not pass within
// Tolerance of the target x at the same parameter, y falls back to a cubic
// ease of the unwarped parameter. This approximation is deliberate and kept
// for output compatibility.
package curve

import (
	"math"

	"github.com/yildizm/TrailMap/internal/geom"
)

// Default control-point offsets and x tolerance.
const (
	DefaultControlOffsetX = 50.0
	DefaultControlOffsetY = 450.0
	DefaultTolerance      = 1.0
)

// Options tunes marker layout.
type Options struct {
	// ControlOffset is added to the anchor midpoint to form the Bézier
	// control point.
	ControlOffset geom.Point
	// Tolerance is the largest |Bx(t') - x| for which the Bézier y is used.
	Tolerance float64
}

// DefaultOptions returns the stock layout parameters.
func DefaultOptions() Options {
	return Options{
		ControlOffset: geom.Pt(DefaultControlOffsetX, DefaultControlOffsetY),
		Tolerance:     DefaultTolerance,
	}
}

// ControlPoint returns the Bézier control point for anchors.
func (o Options) ControlPoint(anchors geom.AnchorPair) geom.Point {
	return anchors.Start.Midpoint(anchors.End).Add(o.ControlOffset.X, o.ControlOffset.Y)
}

// Markers returns n points from anchors.Start to anchors.End using the
// default options. n <= 0 yields an empty slice.
func Markers(n int, anchors geom.AnchorPair) []geom.Point {
	return MarkersWithOptions(n, anchors, DefaultOptions())
}

// MarkersWithOptions is Markers with explicit layout options.
func MarkersWithOptions(n int, anchors geom.AnchorPair, opts Options) []geom.Point {
	if n <= 0 {
		return []geom.Point{}
	}

	bez := QuadBez{
		P0: anchors.Start,
		P1: opts.ControlPoint(anchors),
		P2: anchors.End,
	}

	points := make([]geom.Point, n)
	for i := range points {
		t := Param(i, n)
		points[i] = layout(t, anchors, bez, opts.Tolerance)
	}
	return points
}

// Param returns the normalized parameter of marker i out of n.
func Param(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// Warp is the density transform applied to the normalized parameter.
func Warp(t float64) float64 {
	return math.Sqrt(t)
}

func layout(t float64, anchors geom.AnchorPair, bez QuadBez, tolerance float64) geom.Point {
	tw := Warp(t)
	x := anchors.Start.X + tw*(anchors.End.X-anchors.Start.X)

	onCurve := bez.Eval(tw)
	if math.Abs(onCurve.X-x) <= tolerance {
		return geom.Point{X: x, Y: onCurve.Y}
	}

	y := anchors.Start.Y + (anchors.End.Y-anchors.Start.Y)*t*t*t
	return geom.Point{X: x, Y: y}
}
