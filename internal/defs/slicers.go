// internal/defs/slicers.go
package defs

import (
	"image/color"
	"strings"
)

// SlicerType is the closed set of hostile unit tiers.
type SlicerType int

const (
	SlicerRegular SlicerType = iota
	SlicerSuper
	SlicerMega
	SlicerApex
)

// SlicerDefinition holds all the static data for a specific type of slicer.
type SlicerDefinition struct {
	Type      SlicerType
	Tag       string // wave script name
	Name      string
	Health    int
	Speed     float64 // pixels per step before the movement scalar
	Children  int
	ChildType SlicerType
	Reward    int
	Penalty   int
	Visuals   Visuals
}

const (
	regularHealth  = 1
	regularSpeed   = 2.0
	regularPenalty = 1
)

// SlicerLibrary is indexed by SlicerType. Stronger tiers are defined in terms
// of the tier they split into; the penalty of a parent is the sum of its
// children's penalties.
var SlicerLibrary = [...]SlicerDefinition{
	SlicerRegular: {
		Type:    SlicerRegular,
		Tag:     "slicer",
		Name:    "Slicer",
		Health:  regularHealth,
		Speed:   regularSpeed,
		Reward:  2,
		Penalty: regularPenalty,
		Visuals: Visuals{Color: color.RGBA{200, 200, 200, 255}, Radius: 8},
	},
	SlicerSuper: {
		Type:      SlicerSuper,
		Tag:       "superslicer",
		Name:      "Super Slicer",
		Health:    regularHealth,
		Speed:     0.75 * regularSpeed,
		Children:  2,
		ChildType: SlicerRegular,
		Reward:    15,
		Penalty:   2 * regularPenalty,
		Visuals:   Visuals{Color: color.RGBA{80, 160, 255, 255}, Radius: 10},
	},
	SlicerMega: {
		Type:      SlicerMega,
		Tag:       "megaslicer",
		Name:      "Mega Slicer",
		Health:    2 * regularHealth,
		Speed:     0.75 * regularSpeed,
		Children:  2,
		ChildType: SlicerSuper,
		Reward:    10,
		Penalty:   2 * 2 * regularPenalty,
		Visuals:   Visuals{Color: color.RGBA{180, 50, 230, 255}, Radius: 12},
	},
	SlicerApex: {
		Type:      SlicerApex,
		Tag:       "apexslicer",
		Name:      "Apex Slicer",
		Health:    25 * regularHealth,
		Speed:     0.5 * 0.75 * regularSpeed,
		Children:  4,
		ChildType: SlicerMega,
		Reward:    150,
		Penalty:   4 * 2 * 2 * regularPenalty,
		Visuals:   Visuals{Color: color.RGBA{230, 40, 40, 255}, Radius: 16},
	},
}

// Slicer returns the definition for t.
func Slicer(t SlicerType) SlicerDefinition {
	return SlicerLibrary[t]
}

// SlicerTypeFromTag resolves a wave script tag. Unknown tags fall back to the
// regular slicer.
func SlicerTypeFromTag(tag string) SlicerType {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, def := range SlicerLibrary {
		if def.Tag == tag {
			return def.Type
		}
	}
	return SlicerRegular
}

func (t SlicerType) String() string {
	if t < 0 || int(t) >= len(SlicerLibrary) {
		return "unknown"
	}
	return SlicerLibrary[t].Tag
}
