// Raylib viewer: runs the simulation with a minimal 2D front end. Useful for
// checking level paths and wave scripts without the ebiten UI.
package main

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"shadow-defend/internal/app"
	"shadow-defend/internal/component"
	"shadow-defend/internal/config"
	"shadow-defend/internal/defs"
	"shadow-defend/pkg/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ColorLerp выполняет линейную интерполяцию между двумя цветами
func ColorLerp(c1, c2 rl.Color, t float32) rl.Color {
	return rl.NewColor(
		uint8(float32(c1.R)*(1-t)+float32(c2.R)*t),
		uint8(float32(c1.G)*(1-t)+float32(c2.G)*t),
		uint8(float32(c1.B)*(1-t)+float32(c2.B)*t),
		uint8(float32(c1.A)*(1-t)+float32(c2.A)*t),
	)
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func vec(p geom.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
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

	// --- Инициализация ---
	rl.InitWindow(int32(settings.ScreenWidth), int32(settings.ScreenHeight), "Path Viewer | S - wave, L/K - speed, LMB - tank, RMB - air support, R - restart")
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.StepsPerSecond)

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		handleInput(game)
		game.Frame()

		rl.BeginDrawing()
		rl.ClearBackground(toRL(config.BackgroundColor))
		drawPath(game)
		drawEntities(game)
		drawHUD(game)
		rl.EndDrawing()
	}
}

func handleInput(game *app.Game) {
	switch {
	case rl.IsKeyPressed(rl.KeyS):
		if err := game.StartNextWave(); err != nil {
			slog.Info("start wave rejected", "error", err)
		}
	case rl.IsKeyPressed(rl.KeyL):
		game.IncreaseTimeScale()
	case rl.IsKeyPressed(rl.KeyK):
		game.DecreaseTimeScale()
	case rl.IsKeyPressed(rl.KeyR):
		if err := game.Restart(); err != nil {
			slog.Error("restart failed", "error", err)
		}
	}

	m := rl.GetMousePosition()
	pos := geom.Point{X: float64(m.X), Y: float64(m.Y)}
	tower := defs.TowerType(-1)
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		tower = defs.TowerTank
	} else if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		tower = defs.TowerAirSupport
	}
	if tower.Valid() && game.CanPlaceAt(pos, tower) {
		if err := game.PlaceTower(pos, tower); err != nil {
			slog.Info("placement rejected", "error", err)
		}
	}
}

func drawPath(game *app.Game) {
	pts := game.Path().Points()
	pathColor := toRL(config.PathColor)
	for i := 1; i < len(pts); i++ {
		rl.DrawLineEx(vec(pts[i-1]), vec(pts[i]), 18, pathColor)
		rl.DrawCircleV(vec(pts[i]), 9, pathColor)
	}
	// Начало и конец пути
	rl.DrawCircleV(vec(pts[0]), 6, rl.Green)
	rl.DrawCircleV(vec(pts[len(pts)-1]), 6, rl.Red)
}

func drawEntities(game *app.Game) {
	for _, s := range game.Waves.Slicers() {
		drawSlicer(s)
	}
	for _, t := range game.World.Towers {
		v := defs.Tower(t.Type).Visuals
		rl.DrawCircleV(vec(t.Position), v.Radius, toRL(v.Color))
		if !t.IsMobile() {
			rl.DrawCircleLines(int32(t.Position.X), int32(t.Position.Y), float32(t.Radius), rl.Fade(rl.White, 0.2))
		}
	}
	for _, p := range game.World.Projectiles {
		rl.DrawCircleV(vec(p.Position), 3, toRL(config.ProjectileColor))
	}
	for _, e := range game.World.Explosives {
		rl.DrawCircleV(vec(e.Position), 5, toRL(config.ExplosiveColor))
		rl.DrawCircleLines(int32(e.Position.X), int32(e.Position.Y), float32(e.Radius), rl.Fade(toRL(config.ExplosiveColor), 0.4))
	}
}

// drawSlicer тускнеет по мере потери здоровья.
func drawSlicer(s *component.Slicer) {
	v := s.Def().Visuals
	t := float32(1)
	if s.MaxHealth > 0 {
		t = float32(s.Health) / float32(s.MaxHealth)
	}
	c := ColorLerp(rl.DarkGray, toRL(v.Color), t)
	rl.DrawCircleV(vec(s.Position), v.Radius, c)
}

func drawHUD(game *app.Game) {
	lines := []string{
		fmt.Sprintf("Level %d: %s", game.Level()+1, game.LevelName()),
		fmt.Sprintf("Wave %d/%d  %s", game.DisplayedWave(), game.Waves.TotalWaves(), game.StatusLabel(false)),
		fmt.Sprintf("Time Scale %d  Lives %d  Gold %d", game.TimeScale(), game.Player.Health(), game.Player.Gold()),
		fmt.Sprintf("Kills %d  Leaks %d", game.StatsSystem.TotalKills(), game.StatsSystem.TotalLeaks()),
	}
	for i, l := range lines {
		rl.DrawText(l, 10, int32(10+i*22), 20, toRL(config.TextLightColor))
	}
}
