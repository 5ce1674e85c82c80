// internal/state/game_state.go
package state

import (
	"log/slog"

	"shadow-defend/internal/app"
	"shadow-defend/internal/config"
	"shadow-defend/internal/defs"
	"shadow-defend/internal/render"
	"shadow-defend/internal/ui"
	"shadow-defend/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// Убеждаемся, что GameState соответствует интерфейсу State
var _ State = (*GameState)(nil)

// GameState: состояние игры
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	fontFace font.Face
	renderer *render.WorldRenderer
	status   *ui.StatusPanel
	buy      *ui.BuyPanel
	placing  *defs.TowerType // башня, которую игрок держит для установки
}

func NewGameState(sm *StateMachine, game *app.Game, face font.Face) *GameState {
	w := float32(game.Settings.ScreenWidth)
	h := float32(game.Settings.ScreenHeight)
	gs := &GameState{
		sm:       sm,
		game:     game,
		fontFace: face,
		renderer: render.NewWorldRenderer(game.Settings.ScreenWidth, game.Settings.ScreenHeight, game.EventDispatcher),
		status:   ui.NewStatusPanel(0, h-config.StatusPanelHeight, w, config.StatusPanelHeight, face),
		buy:      ui.NewBuyPanel(w, config.BuyPanelHeight, face),
	}
	gs.renderer.SetPath(game.Path())
	return gs
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.handleKeys()
	g.handleMouse()

	g.game.Frame()

	dt := float32(deltaTime)
	g.renderer.SetPath(g.game.Path())
	g.renderer.Update(dt)
	g.status.Update(dt, g.statusInfo())
	g.buy.Update(dt, g.game.Player.Gold())

	if g.game.Ended() {
		g.placing = nil
		g.sm.SetState(NewEndState(g.sm, g))
	}
}

func (g *GameState) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.game.StartNextWave(); err != nil {
			slog.Debug("Start wave rejected", "error", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.game.IncreaseTimeScale()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		g.game.DecreaseTimeScale()
	}
}

func (g *GameState) handleMouse() {
	// Правый клик отменяет покупку
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.placing = nil
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}

	x, y := ebiten.CursorPosition()
	if g.buy.Contains(x, y) {
		if t, ok := g.buy.TowerAt(x, y); ok && g.game.CanAfford(t) {
			g.placing = &t
		}
		return
	}
	if g.placing == nil {
		return
	}

	pos := geom.Point{X: float64(x), Y: float64(y)}
	if !g.game.CanPlaceAt(pos, *g.placing) {
		return
	}
	if err := g.game.PlaceTower(pos, *g.placing); err != nil {
		slog.Debug("Tower placement rejected", "error", err)
	}
	g.placing = nil
}

func (g *GameState) statusInfo() ui.StatusInfo {
	return ui.StatusInfo{
		Level:     g.game.Level() + 1,
		Wave:      g.game.DisplayedWave(),
		TimeScale: g.game.TimeScale(),
		Status:    g.game.StatusLabel(g.placing != nil),
		Lives:     g.game.Player.Health(),
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.World, g.game.Waves.Slicers())

	if g.placing != nil {
		x, y := ebiten.CursorPosition()
		if !g.buy.Contains(x, y) {
			pos := geom.Point{X: float64(x), Y: float64(y)}
			g.renderer.DrawPlacement(screen, *g.placing, pos, g.game.CanPlaceAt(pos, *g.placing))
		}
	}

	g.buy.Draw(screen, g.game.Player.Gold(), g.placing)
	g.status.Draw(screen, g.statusInfo())
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}

// Game returns the simulation driven by this state.
func (g *GameState) Game() *app.Game {
	return g.game
}
