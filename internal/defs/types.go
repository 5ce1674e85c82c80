// internal/defs/types.go
package defs

import "image/color"

// Visuals describes how the presentation layer draws a unit type.
type Visuals struct {
	Color  color.RGBA
	Radius float32
}
