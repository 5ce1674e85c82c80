// internal/event/types.go
package event

const (
	SlicerSpawned      EventType = "SlicerSpawned"      // Data: *component.Slicer
	SlicerKilled       EventType = "SlicerKilled"       // Data: *component.Slicer
	SlicerLeaked       EventType = "SlicerLeaked"       // Data: *component.Slicer
	WaveStarted        EventType = "WaveStarted"        // Data: WaveInfo
	WaveCleared        EventType = "WaveCleared"        // Data: WaveInfo
	TowerPlaced        EventType = "TowerPlaced"        // Data: *component.Tower
	ExplosiveDetonated EventType = "ExplosiveDetonated" // Data: *component.Explosive
	LevelStarted       EventType = "LevelStarted"       // Data: LevelInfo
	LevelCompleted     EventType = "LevelCompleted"     // Data: LevelInfo
	GameOver           EventType = "GameOver"           // Data: LevelInfo
)

// WaveInfo is the payload of wave lifecycle events.
type WaveInfo struct {
	Wave   int
	Reward int // gold paid on WaveCleared
}

// LevelInfo is the payload of level lifecycle events.
type LevelInfo struct {
	Index int
	Name  string
}
