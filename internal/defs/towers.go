// internal/defs/towers.go
package defs

import "image/color"

// TowerType is the closed set of purchasable towers.
type TowerType int

const (
	TowerTank TowerType = iota
	TowerSuperTank
	TowerAirSupport
)

// TowerBehavior selects how a tower attacks.
type TowerBehavior int

const (
	// BehaviorStationary towers stand still and fire homing projectiles.
	BehaviorStationary TowerBehavior = iota
	// BehaviorMobile towers fly across the screen dropping explosives.
	BehaviorMobile
)

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	Type     TowerType
	Name     string
	Behavior TowerBehavior
	Cost     int

	// Stationary
	Radius   float64
	Cooldown int // steps between shots
	Damage   int

	// Mobile
	FlightSpeed     float64 // pixels per step
	ExplosiveDamage int

	Visuals Visuals
}

const tankDamage = 1

// TowerLibrary is indexed by TowerType.
var TowerLibrary = [...]TowerDefinition{
	TowerTank: {
		Type:     TowerTank,
		Name:     "Tank",
		Behavior: BehaviorStationary,
		Cost:     250,
		Radius:   100,
		Cooldown: 60,
		Damage:   tankDamage,
		Visuals:  Visuals{Color: color.RGBA{70, 130, 180, 255}, Radius: 14},
	},
	TowerSuperTank: {
		Type:     TowerSuperTank,
		Name:     "Super Tank",
		Behavior: BehaviorStationary,
		Cost:     600,
		Radius:   150,
		Cooldown: 30,
		Damage:   3 * tankDamage,
		Visuals:  Visuals{Color: color.RGBA{194, 178, 128, 255}, Radius: 16},
	},
	TowerAirSupport: {
		Type:            TowerAirSupport,
		Name:            "Air Support",
		Behavior:        BehaviorMobile,
		Cost:            500,
		FlightSpeed:     5,
		ExplosiveDamage: 500,
		Visuals:         Visuals{Color: color.RGBA{240, 240, 240, 255}, Radius: 12},
	},
}

// Tower returns the definition for t.
func Tower(t TowerType) TowerDefinition {
	return TowerLibrary[t]
}

// Valid reports whether t names a known tower.
func (t TowerType) Valid() bool {
	return t >= 0 && int(t) < len(TowerLibrary)
}

func (t TowerType) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return TowerLibrary[t].Name
}
