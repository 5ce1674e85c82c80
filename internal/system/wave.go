// internal/system/wave.go
package system

import (
	"errors"
	"fmt"
	"log/slog"

	"shadow-defend/internal/component"
	"shadow-defend/internal/defs"
	"shadow-defend/internal/entity"
	"shadow-defend/pkg/geom"
)

var (
	// ErrEmptySchedule is returned for a wave script without any spawn record.
	ErrEmptySchedule = errors.New("wave schedule has no spawn records")
	// ErrWaveInProgress rejects starting a wave while the current one runs.
	ErrWaveInProgress = errors.New("wave in progress")
	// ErrAllWavesStarted rejects starting a wave past the last one.
	ErrAllWavesStarted = errors.New("all waves already started")
)

// WaveScheduler drives the waves of one level. Within a wave, events run in
// order: event j advances only once event j-1 allows it.
type WaveScheduler struct {
	waves   [][]*WaveEvent // index 0 unused
	current int
	total   int
}

// NewWaveScheduler builds the schedule for path from parsed wave records.
// The number of playable waves is the wave number of the last spawn record.
func NewWaveScheduler(path component.Path, records []defs.WaveRecord) (*WaveScheduler, error) {
	if path == nil {
		return nil, errors.New("wave scheduler: nil path")
	}

	s := &WaveScheduler{waves: make([][]*WaveEvent, 1)}
	for i, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("wave record %d: %w", i+1, err)
		}
		for len(s.waves) <= rec.Wave {
			s.waves = append(s.waves, nil)
		}
		s.waves[rec.Wave] = append(s.waves[rec.Wave], newWaveEvent(rec, path))
		if rec.Kind == defs.EventSpawn {
			s.total = rec.Wave
		}
	}
	if s.total == 0 {
		return nil, ErrEmptySchedule
	}
	return s, nil
}

// Update advances the current wave by one step.
func (s *WaveScheduler) Update(w *entity.World) {
	if s.current == 0 {
		return
	}
	events := s.waves[s.current]
	for j, e := range events {
		if e.Complete() {
			continue
		}
		if j == 0 || events[j-1].CanStartNext() {
			e.Advance(w)
		}
	}
}

// StartNextWave moves the wave pointer forward and returns the new wave number.
func (s *WaveScheduler) StartNextWave() (int, error) {
	if s.WaveInProgress() {
		return s.current, ErrWaveInProgress
	}
	if s.current >= s.total {
		return s.current, ErrAllWavesStarted
	}
	s.current++
	slog.Info("Wave started", "wave", s.current, "events", len(s.waves[s.current]))
	return s.current, nil
}

// CurrentWave is the number of the last started wave, 0 before the first.
func (s *WaveScheduler) CurrentWave() int {
	return s.current
}

func (s *WaveScheduler) TotalWaves() int {
	return s.total
}

// WaveInProgress reports whether a started wave still has unfinished events.
func (s *WaveScheduler) WaveInProgress() bool {
	if s.current == 0 {
		return false
	}
	for _, e := range s.waves[s.current] {
		if !e.Complete() {
			return true
		}
	}
	return false
}

// AllWavesComplete reports whether the last wave has been started and finished.
func (s *WaveScheduler) AllWavesComplete() bool {
	return s.current >= s.total && !s.WaveInProgress()
}

// Events returns the events of the current wave.
func (s *WaveScheduler) Events() []*WaveEvent {
	if s.current == 0 {
		return nil
	}
	return s.waves[s.current]
}

// Slicers collects the live slicers of the current wave, event by event.
func (s *WaveScheduler) Slicers() []*component.Slicer {
	var out []*component.Slicer
	for _, e := range s.Events() {
		out = append(out, e.slicers...)
	}
	return out
}

// NearestInRange returns the closest live slicer strictly within radius of
// pos, or nil. Equal distances go to the slicer met first: events in order,
// then each event's slicers in spawn order.
func (s *WaveScheduler) NearestInRange(pos geom.Point, radius float64) *component.Slicer {
	var nearest *component.Slicer
	best := radius
	for _, e := range s.Events() {
		for _, sl := range e.slicers {
			if !sl.Alive() {
				continue
			}
			if d := pos.DistanceTo(sl.Position); d < best {
				best = d
				nearest = sl
			}
		}
	}
	return nearest
}

// AllInRange returns a snapshot of every live slicer strictly within radius.
func (s *WaveScheduler) AllInRange(pos geom.Point, radius float64) []*component.Slicer {
	var out []*component.Slicer
	for _, e := range s.Events() {
		for _, sl := range e.slicers {
			if sl.Alive() && pos.DistanceTo(sl.Position) < radius {
				out = append(out, sl)
			}
		}
	}
	return out
}

// KillSlicer removes a slicer from whichever event of the current wave owns
// it. Killing a slicer that already left play is a no-op returning false.
func (s *WaveScheduler) KillSlicer(w *entity.World, sl *component.Slicer) bool {
	for _, e := range s.Events() {
		if e.kill(w, sl) {
			return true
		}
	}
	return false
}
