// cmd/game/main.go
package main

import (
	"context"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"shadow-defend/internal/app"
	"shadow-defend/internal/config"
	"shadow-defend/internal/defs"
	"shadow-defend/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

const maxDeltaTime = 0.1 // seconds; clamps UI animations after a stall

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	if a.stateMachine.Current() == nil {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > maxDeltaTime {
		deltaTime = maxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	cfgPath := "config/game.yaml"
	if p := os.Getenv("SHADOW_DEFEND_CONFIG"); p != "" {
		cfgPath = p
	}
	settings, err := config.LoadSettings(cfgPath)
	if err != nil {
		slog.Error("failed to load config", "path", cfgPath, "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: config.ParseLogLevel(settings.LogLevel),
	})))

	if settings.PprofAddr != "" {
		go func() {
			slog.Info("pprof listening", "addr", settings.PprofAddr)
			if err := http.ListenAndServe(settings.PprofAddr, nil); err != nil {
				slog.Error("pprof server stopped", "error", err)
			}
		}()
	}

	levels, err := defs.LoadLevels(context.Background(), settings.Levels)
	if err != nil {
		slog.Error("failed to load levels", "error", err)
		os.Exit(1)
	}

	game, err := app.NewGame(levels, settings)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewGameState(sm, game, basicfont.Face7x13))

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          settings.ScreenWidth,
		height:         settings.ScreenHeight,
	}
	ebiten.SetWindowSize(settings.ScreenWidth, settings.ScreenHeight)
	ebiten.SetWindowTitle("Shadow Defend")
	ebiten.SetTPS(config.StepsPerSecond)
	if err := ebiten.RunGame(a); err != nil {
		slog.Error("game exited with error", "error", err)
		os.Exit(1)
	}
}
