// Package geom holds the logical canvas types shared by the curve engine and
// the map view.
package geom

import (
	"fmt"
	"math"
)

// Default logical canvas size.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

// Point is a position on the logical canvas.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Add returns pt translated by (dx, dy).
func (pt Point) Add(dx, dy float64) Point {
	return Point{X: pt.X + dx, Y: pt.Y + dy}
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// IsNaN reports whether either coordinate is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// AnchorPair defines the endpoints of the ascent curve.
type AnchorPair struct {
	Start Point `json:"start" yaml:"start"`
	End   Point `json:"end" yaml:"end"`
}

// DefaultAnchors returns the stock base-camp and summit positions.
func DefaultAnchors() AnchorPair {
	return AnchorPair{
		Start: Pt(80, 620),
		End:   Pt(500, 180),
	}
}

// Canvas is the logical drawing surface. Markers are laid out in canvas units
// and scaled to percentages for display.
type Canvas struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// DefaultCanvas returns the 800x600 canvas.
func DefaultCanvas() Canvas {
	return Canvas{Width: DefaultWidth, Height: DefaultHeight}
}

// Percent converts pt to percentages of the canvas. A zero-sized axis maps to 0.
func (c Canvas) Percent(pt Point) (left, top float64) {
	if c.Width != 0 {
		left = pt.X / c.Width * 100
	}
	if c.Height != 0 {
		top = pt.Y / c.Height * 100
	}
	return left, top
}

// Cell maps pt onto a cols x rows character grid, clamping to the grid edges.
func (c Canvas) Cell(pt Point, cols, rows int) (col, row int) {
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	left, top := c.Percent(pt)
	col = int(math.Round(left / 100 * float64(cols-1)))
	row = int(math.Round(top / 100 * float64(rows-1)))
	return clampInt(col, 0, cols-1), clampInt(row, 0, rows-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
