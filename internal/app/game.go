// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"shadow-defend/internal/component"
	"shadow-defend/internal/config"
	"shadow-defend/internal/defs"
	"shadow-defend/internal/entity"
	"shadow-defend/internal/event"
	"shadow-defend/internal/system"
	"shadow-defend/internal/utils"
	"shadow-defend/pkg/geom"
	"shadow-defend/pkg/polyline"
)

var (
	ErrWaveInProgress   = system.ErrWaveInProgress
	ErrAllWavesStarted  = system.ErrAllWavesStarted
	ErrInsufficientGold = errors.New("not enough gold")
	ErrRunOver          = errors.New("run is over")
	ErrUnknownTower     = errors.New("unknown tower type")
	ErrNoLevels         = errors.New("no levels to play")
)

// Phase is what the run is doing right now, as the status panel shows it.
type Phase int

const (
	PhaseAwaitingStart Phase = iota
	PhaseWaveInProgress
	PhaseWon
	PhaseLost
)

// Game holds the main game state and logic.
type Game struct {
	Levels   []defs.LevelDefinition
	Settings config.Settings

	World            *entity.World
	Player           *component.Player
	Waves            *system.WaveScheduler
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	AreaAttackSystem *system.AreaAttackSystem
	StatsSystem      *system.StatsSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService

	level     int
	timeScale int
	paused    bool
	bonusPaid int // last wave whose clear bonus has been paid
	levelDone bool
	lost      bool
	won       bool
}

// NewGame validates every level's wave script and starts the first level.
func NewGame(levels []defs.LevelDefinition, settings config.Settings) (*Game, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	for _, lvl := range levels {
		if _, err := system.NewWaveScheduler(lvl.Path, lvl.Waves); err != nil {
			return nil, fmt.Errorf("level %q: %w", lvl.Name, err)
		}
	}

	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)
	g := &Game{
		Levels:          levels,
		Settings:        settings,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
	}
	g.World = entity.NewWorld(rng, nil, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(g.World, geom.Point{
		X: float64(settings.ScreenWidth),
		Y: float64(settings.ScreenHeight),
	})
	g.ProjectileSystem = system.NewProjectileSystem(g.World)
	g.AreaAttackSystem = system.NewAreaAttackSystem(g.World)
	g.StatsSystem = system.NewStatsSystem(eventDispatcher)

	slog.Info("New game", "levels", len(levels), "seed", rng.Seed())
	if err := g.loadLevel(0); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) loadLevel(i int) error {
	lvl := g.Levels[i]
	waves, err := system.NewWaveScheduler(lvl.Path, lvl.Waves)
	if err != nil {
		return fmt.Errorf("level %q: %w", lvl.Name, err)
	}

	g.Player = component.NewPlayer(g.Settings.StartingHealth, g.Settings.StartingGold)
	g.World.Reset(g.Player)
	g.Waves = waves
	g.level = i
	g.timeScale = config.MinTimeScale
	g.bonusPaid = 0
	g.levelDone = false

	slog.Info("Level started", "level", i+1, "name", lvl.Name, "waves", waves.TotalWaves())
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelStarted, Data: event.LevelInfo{Index: i, Name: lvl.Name}})
	return nil
}

// Restart begins a fresh run from the first level.
func (g *Game) Restart() error {
	g.lost = false
	g.won = false
	g.paused = false
	g.StatsSystem.Reset()
	g.World.ResetFlightAxis()
	return g.loadLevel(0)
}

// Frame runs one rendered frame worth of simulation: Step is executed
// timeScale times. A level change happens only between frames.
func (g *Game) Frame() {
	if g.paused || g.Ended() {
		return
	}
	for i := 0; i < g.timeScale; i++ {
		g.Step()
		if g.lost || g.levelDone {
			break
		}
	}
	if g.levelDone && !g.lost {
		g.nextLevel()
	}
}

// Step advances the simulation by one logical step. The phase order is fixed:
// later phases see entities created by earlier ones in the same step.
func (g *Game) Step() {
	g.World.Frame++

	// 1. Волны: спавн, движение, утечки
	g.Waves.Update(g.World)
	// 2. Башни стреляют, самолёты летят и сбрасывают взрывчатку
	g.CombatSystem.Update(g.Waves)
	// 3. Снаряды
	g.ProjectileSystem.Update(g.Waves)
	// 4. Взрывчатка
	g.AreaAttackSystem.Update(g.Waves)
	// 4b. Бонус за волну и завершение уровня
	g.settleWaves()
	// 5. Проверка конца игры
	if g.Player.Dead() && !g.lost {
		g.lost = true
		slog.Info("Game over", "level", g.level+1, "wave", g.Waves.CurrentWave())
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: g.levelInfo()})
	}
}

func (g *Game) settleWaves() {
	current := g.Waves.CurrentWave()
	if current > g.bonusPaid && !g.Waves.WaveInProgress() {
		reward := WaveReward(current)
		g.Player.GainGold(reward)
		g.bonusPaid = current
		slog.Info("Wave cleared", "wave", current, "reward", reward, "gold", g.Player.Gold())
		g.EventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: event.WaveInfo{Wave: current, Reward: reward}})
	}
	if !g.levelDone && g.Waves.AllWavesComplete() {
		g.levelDone = true
		g.EventDispatcher.Dispatch(event.Event{Type: event.LevelCompleted, Data: g.levelInfo()})
	}
}

func (g *Game) nextLevel() {
	if g.level+1 >= len(g.Levels) {
		g.won = true
		slog.Info("All levels complete", "kills", g.StatsSystem.TotalKills(), "leaks", g.StatsSystem.TotalLeaks())
		return
	}
	// Все уровни уже проверены в NewGame.
	if err := g.loadLevel(g.level + 1); err != nil {
		slog.Error("Failed to load next level", "error", err)
		g.lost = true
	}
}

// WaveReward is the gold paid once a wave has been cleared.
func WaveReward(wave int) int {
	return config.WaveRewardFlat + config.WaveRewardPerWave*wave
}

// StartNextWave starts the next wave of the current level.
func (g *Game) StartNextWave() error {
	if g.Ended() {
		return ErrRunOver
	}
	wave, err := g.Waves.StartNextWave()
	if err != nil {
		return err
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveInfo{Wave: wave, Reward: WaveReward(wave)}})
	return nil
}

func (g *Game) IncreaseTimeScale() {
	if g.timeScale < g.Settings.MaxTimeScale {
		g.timeScale++
	}
}

func (g *Game) DecreaseTimeScale() {
	if g.timeScale > config.MinTimeScale {
		g.timeScale--
	}
}

func (g *Game) TogglePause() {
	g.paused = !g.paused
}

func (g *Game) levelInfo() event.LevelInfo {
	return event.LevelInfo{Index: g.level, Name: g.Levels[g.level].Name}
}

func (g *Game) TimeScale() int { return g.timeScale }
func (g *Game) Paused() bool   { return g.paused }
func (g *Game) Lost() bool     { return g.lost }
func (g *Game) Won() bool      { return g.won }

// Ended reports whether the run has been won or lost.
func (g *Game) Ended() bool {
	return g.lost || g.won
}

// Level is the zero-based index of the level being played.
func (g *Game) Level() int {
	return g.level
}

func (g *Game) LevelName() string {
	return g.Levels[g.level].Name
}

// Path is the route of the current level.
func (g *Game) Path() *polyline.Polyline {
	return g.Levels[g.level].Path
}

func (g *Game) Phase() Phase {
	switch {
	case g.won:
		return PhaseWon
	case g.lost:
		return PhaseLost
	case g.Waves.WaveInProgress():
		return PhaseWaveInProgress
	default:
		return PhaseAwaitingStart
	}
}

// StatusLabel is the status panel text. placing is true while the player is
// holding a tower to put down.
func (g *Game) StatusLabel(placing bool) string {
	switch {
	case g.won:
		return "Winner!"
	case g.lost:
		return "Game Over"
	case placing:
		return "Placing"
	case g.Waves.WaveInProgress():
		return "Wave in Progress"
	default:
		return "Awaiting Start"
	}
}

// DisplayedWave is the wave number for the status panel: the running wave, or
// the one about to start while idle.
func (g *Game) DisplayedWave() int {
	current := g.Waves.CurrentWave()
	if g.Waves.WaveInProgress() || current >= g.Waves.TotalWaves() {
		return current
	}
	return current + 1
}
