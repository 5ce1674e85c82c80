// component/movement.go
package component

import (
	"errors"
	"fmt"

	"shadow-defend/pkg/geom"
)

// ErrDstOutOfRange is returned when a destination index falls outside the path.
var ErrDstOutOfRange = errors.New("destination index out of range")

// Path is the ordered route a follower walks. *polyline.Polyline satisfies it.
type Path interface {
	Len() int
	Point(i int) geom.Point
}

// PathFollower: движение точки по ломаной с постоянной скоростью.
type PathFollower struct {
	Position geom.Point
	Heading  geom.Point // per-step displacement toward the destination
	Speed    float64    // effective pixels per step

	path   Path
	dstNum int
}

// NewPathFollower places a follower on the first waypoint heading for the second.
func NewPathFollower(path Path, speed float64) PathFollower {
	if path == nil {
		panic("path cannot be nil")
	}
	return PathFollower{
		Position: path.Point(0),
		Heading:  geom.Right,
		Speed:    speed,
		path:     path,
		dstNum:   1,
	}
}

func (f *PathFollower) Path() Path {
	return f.path
}

// DstNum returns the index of the waypoint currently being approached. Once
// the follower has run off the end it equals the path length.
func (f *PathFollower) DstNum() int {
	return f.dstNum
}

// SetDstNum moves the destination pointer. Indices outside [1, len) are
// rejected, never clamped.
func (f *PathFollower) SetDstNum(n int) error {
	if n < 1 || n >= f.path.Len() {
		return fmt.Errorf("%w: %d not in [1, %d)", ErrDstOutOfRange, n, f.path.Len())
	}
	f.dstNum = n
	return nil
}

// Finished reports whether the follower has passed the last waypoint.
func (f *PathFollower) Finished() bool {
	return f.dstNum >= f.path.Len()
}

// Destination returns the waypoint being approached.
func (f *PathFollower) Destination() geom.Point {
	return f.path.Point(f.dstNum)
}

func (f *PathFollower) DistanceToDestination() float64 {
	return f.Position.DistanceTo(f.Destination())
}

// UpdateHeading points the heading at the destination, scaled to Speed.
func (f *PathFollower) UpdateHeading() {
	if f.Finished() {
		return
	}
	f.Heading = f.Destination().Sub(f.Position).Normalised().Mul(f.Speed)
}

// AdvanceDestination moves on to the next waypoint and returns false when
// there is none left.
func (f *PathFollower) AdvanceDestination() bool {
	f.dstNum++
	if f.Finished() {
		return false
	}
	f.UpdateHeading()
	return true
}

func (f *PathFollower) Move() {
	f.Position = f.Position.Add(f.Heading)
}

// Step performs one motion step. A waypoint counts as reached once it is
// strictly closer than one step; small overshoot is accepted. Step returns
// false, without moving, when the follower runs off the end of the path.
func (f *PathFollower) Step() bool {
	if f.Finished() {
		return false
	}
	f.UpdateHeading()
	if f.DistanceToDestination() < f.Speed {
		if !f.AdvanceDestination() {
			return false
		}
	}
	f.Move()
	return true
}
