// internal/system/projectile.go
package system

import (
	"shadow-defend/internal/entity"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Update(field SlicerField) {
	projectiles := s.world.Projectiles
	kept := projectiles[:0]
	for _, p := range projectiles {
		// Цель пропала (убита другим снарядом или дошла до конца), снаряд исчезает без урона
		if !p.TargetAlive() {
			continue
		}
		p.Move()
		if !p.ReachedTarget() {
			kept = append(kept, p)
			continue
		}
		if p.Target.TakeDamage(p.Damage) {
			field.KillSlicer(s.world, p.Target)
		}
	}
	clear(projectiles[len(kept):])
	s.world.Projectiles = kept
}
