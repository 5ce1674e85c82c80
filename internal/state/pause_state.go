// internal/state/pause_state.go
package state

import (
	"image/color"

	"shadow-defend/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию поверх игрового состояния.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prev,
	}
}

func (s *PauseState) Enter() {
	s.previousState.Game().TogglePause()
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()), color.RGBA{0, 0, 0, 128}, false)
	drawCentered(screen, "PAUSED", s.previousState.fontFace, screen.Bounds().Dy()/2)
}

func (s *PauseState) Exit() {
	s.previousState.Game().TogglePause()
}

// drawCentered пишет строку по центру экрана по горизонтали.
func drawCentered(screen *ebiten.Image, str string, face font.Face, y int) {
	w := font.MeasureString(face, str).Ceil()
	text.Draw(screen, str, face, (screen.Bounds().Dx()-w)/2, y, config.TextLightColor)
}
