package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type recordingState struct {
	name string
	log  *[]string
}

func (s *recordingState) Enter()                    { *s.log = append(*s.log, s.name+".enter") }
func (s *recordingState) Update(deltaTime float64)  { *s.log = append(*s.log, s.name+".update") }
func (s *recordingState) Draw(screen *ebiten.Image) {}
func (s *recordingState) Exit()                     { *s.log = append(*s.log, s.name+".exit") }

func TestStateMachineSwitchesStates(t *testing.T) {
	var log []string
	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}

	sm := NewStateMachine()
	assert.Nil(t, sm.Current())
	sm.Update(0.016)

	sm.SetState(a)
	assert.Same(t, a, sm.Current())
	sm.Update(0.016)

	sm.SetState(b)
	assert.Same(t, b, sm.Current())

	sm.SetState(nil)
	assert.Nil(t, sm.Current())

	assert.Equal(t, []string{"a.enter", "a.update", "a.exit", "b.enter", "b.exit"}, log)
}
