// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1024
	ScreenHeight = 768

	// Логика идёт фиксированными шагами, 60 шагов на одну секунду игрового времени.
	StepsPerSecond = 60

	StartingHealth = 25
	StartingGold   = 500

	WaveRewardFlat    = 100
	WaveRewardPerWave = 150

	MinTimeScale = 1
	MaxTimeScale = 5

	ProjectileSpeed = 10.0 // pixels per step

	ExplosiveRadius = 200.0
	ExplosiveTimer  = 2 * StepsPerSecond // steps until detonation

	// Air support drops are spaced uniformly in (0, AirDropMaxSteps].
	AirDropMaxSteps = 3 * StepsPerSecond

	// Children appear inside a ChildJitter x ChildJitter square from the parent.
	ChildJitter = 15.0

	BuyPanelHeight    = 100
	StatusPanelHeight = 25
	PathClearance     = 24.0 // minimum tower distance from the path centre line
	TowerFootprint    = 28.0
)

var (
	BackgroundColor  = color.RGBA{34, 48, 36, 255}
	PathColor        = color.RGBA{150, 128, 92, 255}
	PanelColor       = color.RGBA{20, 20, 30, 230}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	AffordableColor  = color.RGBA{50, 205, 50, 255}
	ExpensiveColor   = color.RGBA{220, 60, 60, 255}
	TimeScaleColor   = color.RGBA{50, 205, 50, 255}
	ProjectileColor  = color.RGBA{255, 215, 0, 255}
	ExplosiveColor   = color.RGBA{255, 120, 0, 255}
	HealthBarColor   = color.RGBA{220, 60, 60, 255}
	PreviewColor     = color.RGBA{255, 255, 255, 90}
	InvalidSpotColor = color.RGBA{220, 60, 60, 90}
	StrokeWidth      = float32(2.0)
)

// MsToSteps converts script milliseconds into simulation steps.
func MsToSteps(ms float64) float64 {
	return ms * StepsPerSecond / 1000
}
