// internal/state/end_state.go
package state

import (
	"fmt"
	"log/slog"

	"shadow-defend/internal/config"
	"shadow-defend/internal/defs"
	"shadow-defend/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что EndState соответствует интерфейсу State
var _ State = (*EndState)(nil)

// EndState: экран победы или поражения со статистикой и перезапуском.
type EndState struct {
	sm      *StateMachine
	game    *GameState
	restart ui.Button
}

func NewEndState(sm *StateMachine, gs *GameState) *EndState {
	w := gs.game.Settings.ScreenWidth
	h := gs.game.Settings.ScreenHeight
	return &EndState{
		sm:      sm,
		game:    gs,
		restart: ui.NewCenteredButton(w/2, h*3/4, 200, 40, "Restart (Enter)"),
	}
}

func (m *EndState) Enter() {
	g := m.game.Game()
	slog.Info("Run finished", "won", g.Won(), "level", g.Level()+1, "kills", g.StatsSystem.TotalKills())
}

func (m *EndState) Update(deltaTime float64) {
	clicked := false
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		clicked = m.restart.Contains(ebiten.CursorPosition())
	}
	if !clicked && !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	if err := m.game.Game().Restart(); err != nil {
		slog.Error("Failed to restart", "error", err)
		return
	}
	m.sm.SetState(m.game)
}

func (m *EndState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g := m.game.Game()
	face := m.game.fontFace

	title := "Game Over"
	if g.Won() {
		title = "Winner!"
	}
	y := screen.Bounds().Dy() / 4
	drawCentered(screen, title, face, y)
	y += 30
	drawCentered(screen, fmt.Sprintf("Level %d: %s", g.Level()+1, g.LevelName()), face, y)
	y += 30

	stats := g.StatsSystem
	for _, def := range defs.SlicerLibrary {
		line := fmt.Sprintf("%-12s killed %4d   leaked %4d", def.Name, stats.Kills[def.Type], stats.Leaks[def.Type])
		drawCentered(screen, line, face, y)
		y += 20
	}
	y += 10
	drawCentered(screen, fmt.Sprintf("Explosions: %d   Waves cleared: %d", stats.Explosions, stats.WavesClear), face, y)

	x, cy := ebiten.CursorPosition()
	m.restart.Draw(screen, face, m.restart.Contains(x, cy))
}

func (m *EndState) Exit() {
	// Ничего не делаем при выходе
}
