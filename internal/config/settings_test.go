package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), cfg)
}

func TestLoadSettings_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := []byte("starting_gold: 900\nseed: 7\nlevels:\n  - a.yaml\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 900, cfg.StartingGold)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, []string{"a.yaml"}, cfg.Levels)
	assert.Equal(t, StartingHealth, cfg.StartingHealth)
	assert.Equal(t, MaxTimeScale, cfg.MaxTimeScale)
}

func TestLoadSettings_RejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":      "starting_gold: [",
		"zero health":   "starting_health: 0",
		"low timescale": "max_time_scale: 0",
		"negative gold": "starting_gold: -1",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := LoadSettings(path)
			assert.Error(t, err)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel(""))
}

func TestMsToSteps(t *testing.T) {
	assert.Equal(t, 60.0, MsToSteps(1000))
	assert.Equal(t, 3.0, MsToSteps(50))
}

func TestLoadSettings_ShippedConfig(t *testing.T) {
	cfg, err := LoadSettings(filepath.Join("..", "..", "config", "game.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), cfg)
}
