// internal/system/area_attack_system.go
package system

import (
	"shadow-defend/internal/entity"
	"shadow-defend/internal/event"
)

// AreaAttackSystem управляет взрывчаткой, которая наносит урон по области.
type AreaAttackSystem struct {
	world *entity.World
}

func NewAreaAttackSystem(world *entity.World) *AreaAttackSystem {
	return &AreaAttackSystem{world: world}
}

func (s *AreaAttackSystem) Update(field SlicerField) {
	explosives := s.world.Explosives
	kept := explosives[:0]
	for _, e := range explosives {
		if !e.Tick() {
			kept = append(kept, e)
			continue
		}
		// Снимок берётся до урона: дети убитых слайсеров в него не попадают.
		for _, sl := range field.AllInRange(e.Position, e.Radius) {
			if sl.TakeDamage(e.Damage) {
				field.KillSlicer(s.world, sl)
			}
		}
		s.world.Events.Dispatch(event.Event{Type: event.ExplosiveDetonated, Data: e})
	}
	clear(explosives[len(kept):])
	s.world.Explosives = kept
}
