// internal/system/player_system.go
package system

import (
	"log/slog"

	"shadow-defend/internal/component"
	"shadow-defend/internal/defs"
	"shadow-defend/internal/event"
)

// StatsSystem считает убийства и утечки слайсеров по типам. Итог показывается
// на финальном экране.
type StatsSystem struct {
	Kills      [len(defs.SlicerLibrary)]int
	Leaks      [len(defs.SlicerLibrary)]int
	Spawned    int
	Explosions int
	WavesClear int
}

// NewStatsSystem creates the counters and subscribes them to d.
func NewStatsSystem(d *event.Dispatcher) *StatsSystem {
	s := &StatsSystem{}
	for _, t := range []event.EventType{
		event.SlicerSpawned,
		event.SlicerKilled,
		event.SlicerLeaked,
		event.ExplosiveDetonated,
		event.WaveCleared,
	} {
		d.Subscribe(t, s)
	}
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *StatsSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.SlicerSpawned:
		s.Spawned++
	case event.SlicerKilled:
		if sl, ok := e.Data.(*component.Slicer); ok {
			s.Kills[sl.Type]++
			slog.Debug("Slicer killed", "type", sl.Type, "reward", sl.Reward(), "x", sl.Position.X, "y", sl.Position.Y)
		}
	case event.SlicerLeaked:
		if sl, ok := e.Data.(*component.Slicer); ok {
			s.Leaks[sl.Type]++
			slog.Debug("Slicer leaked", "type", sl.Type, "penalty", sl.Penalty())
		}
	case event.ExplosiveDetonated:
		s.Explosions++
	case event.WaveCleared:
		s.WavesClear++
	}
}

// TotalKills sums kills over all slicer types.
func (s *StatsSystem) TotalKills() int {
	n := 0
	for _, k := range s.Kills {
		n += k
	}
	return n
}

func (s *StatsSystem) TotalLeaks() int {
	n := 0
	for _, l := range s.Leaks {
		n += l
	}
	return n
}

// Reset zeroes the counters for a new run.
func (s *StatsSystem) Reset() {
	*s = StatsSystem{}
}
