package component

import (
	"shadow-defend/internal/config"
	"shadow-defend/pkg/geom"
)

// Explosive lies dormant for a fixed number of steps, then damages every
// slicer within Radius once.
type Explosive struct {
	Position geom.Point
	Damage   int
	Radius   float64
	Timer    float64 // steps left
}

func NewExplosive(pos geom.Point, damage int) *Explosive {
	return &Explosive{
		Position: pos,
		Damage:   damage,
		Radius:   config.ExplosiveRadius,
		Timer:    config.ExplosiveTimer,
	}
}

// Tick counts one step down and reports whether the explosive goes off.
func (e *Explosive) Tick() bool {
	e.Timer--
	return e.Timer <= 0
}
