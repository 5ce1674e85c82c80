// internal/component/projectile.go
package component

import (
	"shadow-defend/internal/config"
	"shadow-defend/internal/defs"
	"shadow-defend/pkg/geom"
)

// Projectile represents a homing shot. It does not own its target.
type Projectile struct {
	Target   *Slicer
	Position geom.Point
	Heading  geom.Point
	Speed    float64
	Damage   int
	Source   defs.TowerType
}

func NewProjectile(from geom.Point, target *Slicer, damage int, source defs.TowerType) *Projectile {
	return &Projectile{
		Target:   target,
		Position: from,
		Speed:    config.ProjectileSpeed,
		Damage:   damage,
		Source:   source,
	}
}

// Move steers at the target's current position and advances one step.
func (p *Projectile) Move() {
	p.Heading = p.Target.Position.Sub(p.Position).Normalised().Mul(p.Speed)
	p.Position = p.Position.Add(p.Heading)
}

// ReachedTarget uses a generous radius (own speed plus the target's speed) so
// a chase never oscillates around a moving target.
func (p *Projectile) ReachedTarget() bool {
	return p.Position.DistanceTo(p.Target.Position) <= p.Speed+p.Target.Speed
}

func (p *Projectile) TargetAlive() bool {
	return p.Target != nil && p.Target.Alive()
}
