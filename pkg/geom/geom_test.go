package geom

import (
	"math"
	"testing"
)

func TestNormalised(t *testing.T) {
	n := Point{X: 3, Y: 4}.Normalised()
	if math.Abs(n.X-0.6) > 1e-12 || math.Abs(n.Y-0.8) > 1e-12 {
		t.Errorf("Normalised() = %v, want (0.6, 0.8)", n)
	}
	if z := (Point{}).Normalised(); z != (Point{}) {
		t.Errorf("Normalised() of zero = %v, want zero", z)
	}
}

func TestPerp(t *testing.T) {
	if got := (Point{X: 2, Y: 1}).Perp(); got != (Point{X: -1, Y: 2}) {
		t.Errorf("Perp() = %v, want (-1, 2)", got)
	}
}

func TestDistanceToSegment(t *testing.T) {
	a, b := Point{X: 0, Y: 0}, Point{X: 10, Y: 0}
	tests := []struct {
		p    Point
		want float64
	}{
		{Point{X: 5, Y: 3}, 3},
		{Point{X: -4, Y: 3}, 5},
		{Point{X: 13, Y: 4}, 5},
	}
	for _, tt := range tests {
		if got := DistanceToSegment(tt.p, a, b); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("DistanceToSegment(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if got := DistanceToSegment(Point{X: 3, Y: 4}, a, a); got != 5 {
		t.Errorf("degenerate segment distance = %v, want 5", got)
	}
}
