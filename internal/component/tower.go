// component/tower.go
package component

import (
	"shadow-defend/internal/defs"
	"shadow-defend/pkg/geom"
)

type Tower struct {
	Type     defs.TowerType
	Behavior defs.TowerBehavior
	Position geom.Point
	Facing   geom.Point // direction the sprite points

	// Stationary
	Radius       float64
	Cooldown     int // configured steps between shots
	CooldownLeft int // steps until the next shot, goes negative while idle
	Damage       int

	// Mobile
	Velocity        geom.Point
	ExplosiveDamage int
	DropCountdown   float64 // steps until the next explosive
}

// NewStationaryTower places a tower of type t at pos, ready to fire.
func NewStationaryTower(t defs.TowerType, pos geom.Point) *Tower {
	def := defs.Tower(t)
	return &Tower{
		Type:     t,
		Behavior: defs.BehaviorStationary,
		Position: pos,
		Facing:   geom.Right,
		Radius:   def.Radius,
		Cooldown: def.Cooldown,
		Damage:   def.Damage,
	}
}

// NewAirSupport creates a plane entering from the playfield edge. A
// horizontal plane starts at x=0 on the cursor's row and flies right; a
// vertical one starts at y=0 on the cursor's column and flies down. The
// sprite faces perpendicular to its flight.
func NewAirSupport(cursor geom.Point, horizontal bool, firstDrop float64) *Tower {
	def := defs.Tower(defs.TowerAirSupport)
	t := &Tower{
		Type:            defs.TowerAirSupport,
		Behavior:        defs.BehaviorMobile,
		ExplosiveDamage: def.ExplosiveDamage,
		DropCountdown:   firstDrop,
	}
	if horizontal {
		t.Position = geom.Point{X: 0, Y: cursor.Y}
		t.Facing = geom.Down
		t.Velocity = geom.Point{X: def.FlightSpeed}
	} else {
		t.Position = geom.Point{X: cursor.X, Y: 0}
		t.Facing = geom.Left
		t.Velocity = geom.Point{Y: def.FlightSpeed}
	}
	return t
}

func (t *Tower) IsMobile() bool {
	return t.Behavior == defs.BehaviorMobile
}

// Turn points the tower along direction.
func (t *Tower) Turn(direction geom.Point) {
	t.Facing = direction
}

// InBounds reports whether the tower's centre is still on a width x height
// playfield. Planes only ever move right or down, so only the far edges count.
func (t *Tower) InBounds(width, height float64) bool {
	return t.Position.X < width && t.Position.Y < height
}
