package curve

import "github.com/yildizm/TrailMap/internal/geom"

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0 geom.Point
	P1 geom.Point
	P2 geom.Point
}

// Eval evaluates the segment at parameter u.
func (q QuadBez) Eval(u float64) geom.Point {
	mu := 1 - u
	a := mu * mu
	b := 2 * mu * u
	c := u * u
	return geom.Point{
		X: a*q.P0.X + b*q.P1.X + c*q.P2.X,
		Y: a*q.P0.Y + b*q.P1.Y + c*q.P2.Y,
	}
}
