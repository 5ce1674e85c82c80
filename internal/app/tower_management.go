// internal/app/tower_management.go
package app

import (
	"fmt"
	"log/slog"

	"shadow-defend/internal/component"
	"shadow-defend/internal/config"
	"shadow-defend/internal/defs"
	"shadow-defend/pkg/geom"
)

// PlaceTower buys a tower of type t at pos. The caller checks the spot with
// CanPlaceAt first; here only the purchase itself is validated.
func (g *Game) PlaceTower(pos geom.Point, t defs.TowerType) error {
	if g.Ended() {
		return ErrRunOver
	}
	if !t.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownTower, t)
	}

	def := defs.Tower(t)
	if !g.Player.SpendGold(def.Cost) {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientGold, def.Name, def.Cost, g.Player.Gold())
	}

	var tower *component.Tower
	if def.Behavior == defs.BehaviorMobile {
		tower = component.NewAirSupport(pos, g.World.NextFlightHorizontal(), g.Rng.UpTo(config.AirDropMaxSteps))
	} else {
		tower = component.NewStationaryTower(t, pos)
	}
	g.World.AddTower(tower)

	slog.Debug("Tower placed", "type", t, "x", pos.X, "y", pos.Y, "gold", g.Player.Gold())
	return nil
}

// CanAfford reports whether the player has gold for a tower of type t.
func (g *Game) CanAfford(t defs.TowerType) bool {
	return t.Valid() && g.Player.Gold() >= defs.Tower(t).Cost
}

// CanPlaceAt is the placement rule used by the input layer: the spot must be
// on the playfield between the panels. Stationary towers also keep clear of
// the path and of other stationary towers. Planes only need a playfield spot
// since the cursor just picks their row or column.
func (g *Game) CanPlaceAt(pos geom.Point, t defs.TowerType) bool {
	if !t.Valid() || !g.onPlayfield(pos) {
		return false
	}
	if defs.Tower(t).Behavior == defs.BehaviorMobile {
		return true
	}
	if g.Path().DistanceTo(pos) < config.PathClearance {
		return false
	}
	return g.TowerAt(pos) == nil
}

// TowerAt returns the stationary tower whose footprint covers pos, or nil.
func (g *Game) TowerAt(pos geom.Point) *component.Tower {
	for _, t := range g.World.Towers {
		if t.IsMobile() {
			continue
		}
		if t.Position.DistanceTo(pos) < config.TowerFootprint {
			return t
		}
	}
	return nil
}

func (g *Game) onPlayfield(pos geom.Point) bool {
	w := float64(g.Settings.ScreenWidth)
	h := float64(g.Settings.ScreenHeight)
	return pos.X >= 0 && pos.X < w &&
		pos.Y > config.BuyPanelHeight && pos.Y < h-config.StatusPanelHeight
}
