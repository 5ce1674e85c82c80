package system

import (
	"shadow-defend/internal/component"
	"shadow-defend/internal/config"
	"shadow-defend/internal/entity"
	"shadow-defend/pkg/geom"
)

// SlicerField is the view of the active wave that attacks work against.
// *WaveScheduler implements it.
type SlicerField interface {
	NearestInRange(pos geom.Point, radius float64) *component.Slicer
	AllInRange(pos geom.Point, radius float64) []*component.Slicer
	KillSlicer(w *entity.World, s *component.Slicer) bool
}

// CombatSystem управляет атакой башен
type CombatSystem struct {
	world  *entity.World
	bounds geom.Point // playfield size; planes leaving it are removed
}

func NewCombatSystem(world *entity.World, bounds geom.Point) *CombatSystem {
	return &CombatSystem{world: world, bounds: bounds}
}

func (s *CombatSystem) Update(field SlicerField) {
	towers := s.world.Towers
	kept := towers[:0]
	for _, t := range towers {
		if t.IsMobile() {
			s.fly(t)
			if !t.InBounds(s.bounds.X, s.bounds.Y) {
				continue
			}
		} else {
			s.aim(t, field)
		}
		kept = append(kept, t)
	}
	clear(towers[len(kept):])
	s.world.Towers = kept
}

// aim поворачивает башню к ближайшему слайсеру и стреляет, если перезарядка прошла.
func (s *CombatSystem) aim(t *component.Tower, field SlicerField) {
	t.CooldownLeft--
	target := field.NearestInRange(t.Position, t.Radius)
	if target == nil {
		return
	}
	// Спрайт смотрит вверх, поэтому берём перпендикуляр к направлению на цель.
	t.Turn(target.Position.Sub(t.Position).Perp().Normalised())
	if t.CooldownLeft <= 0 {
		t.CooldownLeft = t.Cooldown
		s.world.AddProjectile(component.NewProjectile(t.Position, target, t.Damage, t.Type))
	}
}

func (s *CombatSystem) fly(t *component.Tower) {
	t.Position = t.Position.Add(t.Velocity)
	t.DropCountdown--
	if t.DropCountdown <= 0 {
		s.world.AddExplosive(component.NewExplosive(t.Position, t.ExplosiveDamage))
		t.DropCountdown = s.world.Rng.UpTo(config.AirDropMaxSteps)
	}
}
