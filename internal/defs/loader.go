// internal/defs/loader.go
package defs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"shadow-defend/pkg/polyline"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// LevelDefinition is everything a level needs: the route slicers walk and the
// parsed wave script.
type LevelDefinition struct {
	Name  string
	Path  *polyline.Polyline
	Waves []WaveRecord
}

// levelFile is the on-disk YAML shape of a level.
type levelFile struct {
	Name  string       `yaml:"name"`
	Path  [][2]float64 `yaml:"path"`
	Waves string       `yaml:"waves"` // relative to the level file
}

// LoadLevel reads a level YAML file and the wave script it points to.
func LoadLevel(path string) (LevelDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LevelDefinition{}, fmt.Errorf("failed to read level file: %w", err)
	}

	var lf levelFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return LevelDefinition{}, fmt.Errorf("failed to unmarshal level %s: %w", path, err)
	}

	route, err := polyline.FromPairs(lf.Path)
	if err != nil {
		return LevelDefinition{}, fmt.Errorf("level %s: %w", path, err)
	}

	if lf.Waves == "" {
		return LevelDefinition{}, fmt.Errorf("level %s: no wave script", path)
	}
	wavesPath := lf.Waves
	if !filepath.IsAbs(wavesPath) {
		wavesPath = filepath.Join(filepath.Dir(path), wavesPath)
	}
	f, err := os.Open(wavesPath)
	if err != nil {
		return LevelDefinition{}, fmt.Errorf("failed to open wave script: %w", err)
	}
	defer f.Close()

	records, err := ParseWaveScript(f)
	if err != nil {
		return LevelDefinition{}, fmt.Errorf("wave script %s: %w", wavesPath, err)
	}

	name := lf.Name
	if name == "" {
		name = filepath.Base(path)
	}
	return LevelDefinition{Name: name, Path: route, Waves: records}, nil
}

// LoadLevels loads every level file concurrently and returns them in the
// order given.
func LoadLevels(ctx context.Context, paths []string) ([]LevelDefinition, error) {
	levels := make([]LevelDefinition, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lvl, err := LoadLevel(p)
			if err != nil {
				return err
			}
			levels[i] = lvl
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return levels, nil
}
