package component

import (
	"shadow-defend/internal/defs"
	"shadow-defend/pkg/geom"
)

// SlicerState is a slicer's place in its lifecycle. Leaving SlicerAlive
// happens exactly once.
type SlicerState int

const (
	SlicerAlive SlicerState = iota
	SlicerLeaked
	SlicerKilled
)

// Slicer is a hostile unit walking the level path.
type Slicer struct {
	PathFollower
	Type      defs.SlicerType
	Health    int
	MaxHealth int

	state SlicerState
}

// NewSlicer creates a slicer of type t at the start of path. Its speed is the
// type's base speed times movementScalar, fixed for the slicer's lifetime.
func NewSlicer(t defs.SlicerType, path Path, movementScalar float64) *Slicer {
	def := defs.Slicer(t)
	return &Slicer{
		PathFollower: NewPathFollower(path, def.Speed*movementScalar),
		Type:         t,
		Health:       def.Health,
		MaxHealth:    def.Health,
	}
}

func (s *Slicer) Def() defs.SlicerDefinition {
	return defs.Slicer(s.Type)
}

func (s *Slicer) Reward() int   { return s.Def().Reward }
func (s *Slicer) Penalty() int  { return s.Def().Penalty }
func (s *Slicer) Children() int { return s.Def().Children }

// TakeDamage subtracts damage and reports whether the slicer is now dead.
func (s *Slicer) TakeDamage(damage int) bool {
	s.Health -= damage
	return s.Health <= 0
}

func (s *Slicer) State() SlicerState {
	return s.state
}

// InPlay reports whether the slicer has not yet been removed from its wave.
func (s *Slicer) InPlay() bool {
	return s.state == SlicerAlive
}

// Alive reports whether the slicer is still in play with health left.
func (s *Slicer) Alive() bool {
	return s.state == SlicerAlive && s.Health > 0
}

// MarkLeaked and MarkKilled move the slicer out of play. Both return false if
// it already left.
func (s *Slicer) MarkLeaked() bool {
	return s.leave(SlicerLeaked)
}

func (s *Slicer) MarkKilled() bool {
	return s.leave(SlicerKilled)
}

func (s *Slicer) leave(to SlicerState) bool {
	if s.state != SlicerAlive {
		return false
	}
	s.state = to
	return true
}

// SpawnChild creates one offspring of the child tier at the slicer's position
// plus offset, continuing from the parent's destination rather than the path
// origin.
func (s *Slicer) SpawnChild(offset geom.Point, movementScalar float64) (*Slicer, error) {
	child := NewSlicer(s.Def().ChildType, s.Path(), movementScalar)
	if err := child.SetDstNum(s.DstNum()); err != nil {
		return nil, err
	}
	child.Position = s.Position.Add(offset)
	return child, nil
}
