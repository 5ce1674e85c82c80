// internal/system/wave_event.go
package system

import (
	"log/slog"
	"slices"

	"shadow-defend/internal/component"
	"shadow-defend/internal/config"
	"shadow-defend/internal/defs"
	"shadow-defend/internal/entity"
	"shadow-defend/internal/event"
	"shadow-defend/pkg/geom"
)

// WaveEvent is one step of wave choreography: either a pause or a batch of
// slicers of a single type released at a fixed interval. A spawn event owns
// every slicer it releases, children of killed slicers included, until they
// leave play.
type WaveEvent struct {
	Kind defs.EventKind
	Wave int

	// Delay
	countdown float64

	// Spawn
	slicerType defs.SlicerType
	path       component.Path
	remaining  int
	interval   float64 // steps
	timer      float64
	slicers    []*component.Slicer
}

// NewDelayEvent creates a pause of durationMs milliseconds of game time.
func NewDelayEvent(wave int, durationMs float64) *WaveEvent {
	return &WaveEvent{
		Kind:      defs.EventDelay,
		Wave:      wave,
		countdown: config.MsToSteps(durationMs),
	}
}

// NewSpawnEvent creates an event releasing count slicers of type t along
// path, one every intervalMs. The first slicer appears on the first advance.
func NewSpawnEvent(wave int, path component.Path, t defs.SlicerType, count int, intervalMs float64) *WaveEvent {
	if path == nil {
		panic("path cannot be nil")
	}
	return &WaveEvent{
		Kind:       defs.EventSpawn,
		Wave:       wave,
		slicerType: t,
		path:       path,
		remaining:  count,
		interval:   config.MsToSteps(intervalMs),
	}
}

func newWaveEvent(rec defs.WaveRecord, path component.Path) *WaveEvent {
	if rec.Kind == defs.EventDelay {
		return NewDelayEvent(rec.Wave, rec.DurationMs)
	}
	return NewSpawnEvent(rec.Wave, path, rec.SlicerType(), rec.Count, rec.IntervalMs)
}

// Advance runs the event for one step.
func (e *WaveEvent) Advance(w *entity.World) {
	if e.Kind == defs.EventDelay {
		e.countdown--
		return
	}

	if e.remaining > 0 {
		e.timer--
		if e.timer <= 0 {
			e.spawn(w)
			e.timer = e.interval
		}
	}

	kept := e.slicers[:0]
	for _, s := range e.slicers {
		if !s.InPlay() {
			continue
		}
		if !s.Step() {
			e.leak(w, s)
			continue
		}
		kept = append(kept, s)
	}
	clear(e.slicers[len(kept):])
	e.slicers = kept
}

func (e *WaveEvent) spawn(w *entity.World) {
	s := component.NewSlicer(e.slicerType, e.path, w.MovementScalar)
	e.slicers = append(e.slicers, s)
	e.remaining--
	w.Events.Dispatch(event.Event{Type: event.SlicerSpawned, Data: s})
}

func (e *WaveEvent) leak(w *entity.World, s *component.Slicer) {
	if !s.MarkLeaked() {
		return
	}
	w.Economy.LoseHealth(s.Penalty())
	w.Events.Dispatch(event.Event{Type: event.SlicerLeaked, Data: s})
}

// kill removes s if this event owns it, pays its reward and releases its
// children where it died. Returns false when s is not a live member.
func (e *WaveEvent) kill(w *entity.World, s *component.Slicer) bool {
	i := slices.Index(e.slicers, s)
	if i < 0 || !s.MarkKilled() {
		return false
	}
	e.slicers = slices.Delete(e.slicers, i, i+1)

	w.Economy.GainGold(s.Reward())
	w.Events.Dispatch(event.Event{Type: event.SlicerKilled, Data: s})

	for range s.Children() {
		offset := geom.Point{
			X: w.Rng.Float64() * config.ChildJitter,
			Y: w.Rng.Float64() * config.ChildJitter,
		}
		child, err := s.SpawnChild(offset, w.MovementScalar)
		if err != nil {
			slog.Error("failed to spawn child slicer", "parent", s.Type, "error", err)
			continue
		}
		e.slicers = append(e.slicers, child)
		w.Events.Dispatch(event.Event{Type: event.SlicerSpawned, Data: child})
	}
	return true
}

// CanStartNext reports whether the following event of the wave may begin.
// A spawn event releases the next one as soon as it has nothing left to
// spawn, even while its slicers are still walking.
func (e *WaveEvent) CanStartNext() bool {
	if e.Kind == defs.EventDelay {
		return e.Complete()
	}
	return e.remaining <= 0
}

// Complete reports whether the event is finished: the delay has run out, or
// every slicer has been spawned and has left play.
func (e *WaveEvent) Complete() bool {
	if e.Kind == defs.EventDelay {
		return e.countdown <= 0
	}
	return e.remaining <= 0 && len(e.slicers) == 0
}

// Remaining is the number of slicers still to be spawned.
func (e *WaveEvent) Remaining() int {
	return e.remaining
}

// Slicers returns the live slicers. The slice must not be modified.
func (e *WaveEvent) Slicers() []*component.Slicer {
	return e.slicers
}
