// internal/entity/world.go
package entity

import (
	"shadow-defend/internal/component"
	"shadow-defend/internal/event"
	"shadow-defend/internal/utils"
)

// Economy is the player's purse and life counter as the simulation sees it.
// component.Player implements it.
type Economy interface {
	GainGold(amount int)
	SpendGold(amount int) bool
	LoseHealth(amount int)
	Health() int
	Gold() int
}

// World: общее состояние симуляции одного уровня. Слайсеры живут в своих
// WaveEvent, здесь хранятся только башни и снаряды.
type World struct {
	Frame          int     // steps simulated on this level
	MovementScalar float64 // global slicer speed multiplier, fixed per level

	Rng     *utils.PRNGService
	Economy Economy
	Events  *event.Dispatcher

	Towers      []*component.Tower
	Projectiles []*component.Projectile
	Explosives  []*component.Explosive

	nextFlightHorizontal bool
}

// NewWorld creates an empty world. A nil dispatcher is allowed; events are
// then dropped.
func NewWorld(rng *utils.PRNGService, economy Economy, events *event.Dispatcher) *World {
	return &World{
		MovementScalar:       1,
		Rng:                  rng,
		Economy:              economy,
		Events:               events,
		nextFlightHorizontal: true,
	}
}

// Reset clears every entity for a new level. The generator keeps its stream
// and the flight axis keeps alternating across levels.
func (w *World) Reset(economy Economy) {
	w.Frame = 0
	w.MovementScalar = 1
	w.Economy = economy
	w.Towers = nil
	w.Projectiles = nil
	w.Explosives = nil
}

// ResetFlightAxis makes the next plane fly horizontally. Called once per run.
func (w *World) ResetFlightAxis() {
	w.nextFlightHorizontal = true
}

// NextFlightHorizontal returns the axis for the next air support purchase.
// The first plane of a run flies horizontally, then the axes alternate.
func (w *World) NextFlightHorizontal() bool {
	h := w.nextFlightHorizontal
	w.nextFlightHorizontal = !h
	return h
}

func (w *World) AddTower(t *component.Tower) {
	w.Towers = append(w.Towers, t)
	w.Events.Dispatch(event.Event{Type: event.TowerPlaced, Data: t})
}

func (w *World) AddProjectile(p *component.Projectile) {
	w.Projectiles = append(w.Projectiles, p)
}

func (w *World) AddExplosive(e *component.Explosive) {
	w.Explosives = append(w.Explosives, e)
}
