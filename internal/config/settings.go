package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings holds the run-time knobs that may be overridden from YAML.
// Unit balance stays in code.
type Settings struct {
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`

	StartingHealth int `yaml:"starting_health"`
	StartingGold   int `yaml:"starting_gold"`
	MaxTimeScale   int `yaml:"max_time_scale"`

	// Seed for the simulation PRNG; 0 picks one from the clock.
	Seed int64 `yaml:"seed"`

	LogLevel  string `yaml:"log_level"`
	PprofAddr string `yaml:"pprof_addr"` // empty disables the profiler

	Levels []string `yaml:"levels"`
}

// DefaultSettings returns Settings matching the compiled-in constants.
func DefaultSettings() Settings {
	return Settings{
		ScreenWidth:    ScreenWidth,
		ScreenHeight:   ScreenHeight,
		StartingHealth: StartingHealth,
		StartingGold:   StartingGold,
		MaxTimeScale:   MaxTimeScale,
		LogLevel:       "info",
		Levels: []string{
			"assets/levels/1.yaml",
			"assets/levels/2.yaml",
		},
	}
}

// LoadSettings loads settings from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSettings(path string) (Settings, error) {
	cfg := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (s Settings) Validate() error {
	if s.ScreenWidth <= 0 || s.ScreenHeight <= 0 {
		return fmt.Errorf("screen size %dx%d must be positive", s.ScreenWidth, s.ScreenHeight)
	}
	if s.StartingHealth <= 0 {
		return fmt.Errorf("starting_health %d must be positive", s.StartingHealth)
	}
	if s.StartingGold < 0 {
		return fmt.Errorf("starting_gold %d must not be negative", s.StartingGold)
	}
	if s.MaxTimeScale < MinTimeScale {
		return fmt.Errorf("max_time_scale %d must be at least %d", s.MaxTimeScale, MinTimeScale)
	}
	return nil
}

// ParseLogLevel maps a settings string onto a slog level, defaulting to info.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
