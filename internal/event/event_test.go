package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatcher_DeliversInOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(WaveStarted, ListenerFunc(func(Event) { order = append(order, "a") }))
	d.Subscribe(WaveStarted, ListenerFunc(func(Event) { order = append(order, "b") }))

	d.Dispatch(Event{Type: WaveStarted, Data: WaveInfo{Wave: 1}})
	d.Dispatch(Event{Type: WaveCleared})

	assert.Equal(t, []string{"a", "b"}, order)
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(SlicerKilled, r)
	d.Dispatch(Event{Type: SlicerKilled})
	d.Unsubscribe(SlicerKilled, r)
	d.Dispatch(Event{Type: SlicerKilled})

	assert.Len(t, r.got, 1)
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: GameOver}) })
}
