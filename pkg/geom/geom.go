// pkg/geom/geom.go
package geom

import "math"

// Point is both a screen position and a 2D vector.
type Point struct {
	X, Y float64
}

var (
	Right = Point{X: 1}
	Left  = Point{X: -1}
	Down  = Point{Y: 1}
)

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Mul(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Len returns the Euclidean length of p taken as a vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Normalised returns the unit vector of p. The zero vector stays zero.
func (p Point) Normalised() Point {
	l := p.Len()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Perp rotates p by 90 degrees: (x, y) -> (-y, x).
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Angle returns the heading of p in radians.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// DistanceToSegment returns the shortest distance from p to the segment ab.
func DistanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 == 0 {
		return p.DistanceTo(a)
	}
	t := ((p.X-a.X)*ab.X + (p.Y-a.Y)*ab.Y) / l2
	t = math.Max(0, math.Min(1, t))
	return p.DistanceTo(a.Add(ab.Mul(t)))
}
