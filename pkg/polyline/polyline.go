// pkg/polyline/polyline.go
package polyline

import (
	"errors"
	"fmt"
	"math"

	"shadow-defend/pkg/geom"
)

// ErrTooFewPoints is returned when a route has fewer than two waypoints.
var ErrTooFewPoints = errors.New("polyline needs at least 2 points")

// Polyline is a fixed ordered route of waypoints. It never changes after
// construction.
type Polyline struct {
	points []geom.Point
}

// New copies points into a Polyline.
func New(points []geom.Point) (*Polyline, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}
	cp := make([]geom.Point, len(points))
	copy(cp, points)
	return &Polyline{points: cp}, nil
}

// FromPairs builds a Polyline from [x, y] pairs, the form used by level files.
func FromPairs(pairs [][2]float64) (*Polyline, error) {
	points := make([]geom.Point, 0, len(pairs))
	for _, p := range pairs {
		points = append(points, geom.Point{X: p[0], Y: p[1]})
	}
	return New(points)
}

// Len returns the number of waypoints.
func (p *Polyline) Len() int {
	return len(p.points)
}

// Point returns waypoint i. It panics on an out-of-range index like a slice.
func (p *Polyline) Point(i int) geom.Point {
	return p.points[i]
}

func (p *Polyline) Start() geom.Point {
	return p.points[0]
}

func (p *Polyline) End() geom.Point {
	return p.points[len(p.points)-1]
}

// Points returns a copy of all waypoints.
func (p *Polyline) Points() []geom.Point {
	cp := make([]geom.Point, len(p.points))
	copy(cp, p.points)
	return cp
}

// Length returns the total arc length of the route.
func (p *Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(p.points); i++ {
		total += p.points[i-1].DistanceTo(p.points[i])
	}
	return total
}

// DistanceTo returns the shortest distance from pt to any segment of the route.
func (p *Polyline) DistanceTo(pt geom.Point) float64 {
	best := math.MaxFloat64
	for i := 1; i < len(p.points); i++ {
		if d := geom.DistanceToSegment(pt, p.points[i-1], p.points[i]); d < best {
			best = d
		}
	}
	return best
}
