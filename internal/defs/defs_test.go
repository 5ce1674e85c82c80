package defs

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlicerLibrary_PenaltyIsSumOfChildren(t *testing.T) {
	for _, def := range SlicerLibrary {
		if def.Children == 0 {
			continue
		}
		child := Slicer(def.ChildType)
		assert.Equal(t, def.Children*child.Penalty, def.Penalty, def.Name)
		assert.Less(t, int(def.ChildType), int(def.Type), "%s must split into a weaker tier", def.Name)
	}
}

func TestSlicerTypeFromTag(t *testing.T) {
	tests := map[string]SlicerType{
		"slicer":       SlicerRegular,
		"superslicer":  SlicerSuper,
		" MegaSlicer ": SlicerMega,
		"apexslicer":   SlicerApex,
		"dragon":       SlicerRegular,
		"":             SlicerRegular,
	}
	for tag, want := range tests {
		assert.Equal(t, want, SlicerTypeFromTag(tag), "tag %q", tag)
	}
}

func TestTowerType_Valid(t *testing.T) {
	assert.True(t, TowerAirSupport.Valid())
	assert.False(t, TowerType(-1).Valid())
	assert.False(t, TowerType(len(TowerLibrary)).Valid())
	assert.Equal(t, BehaviorMobile, Tower(TowerAirSupport).Behavior)
}

func TestParseWaveScript(t *testing.T) {
	script := `
# wave one
1,spawn,5,slicer,1000
1,delay,2000

2,spawn,2,superslicer,1500
`
	records, err := ParseWaveScript(strings.NewReader(script))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, WaveRecord{Wave: 1, Kind: EventSpawn, Count: 5, SlicerTag: "slicer", IntervalMs: 1000}, records[0])
	assert.Equal(t, WaveRecord{Wave: 1, Kind: EventDelay, DurationMs: 2000}, records[1])
	assert.Equal(t, SlicerSuper, records[2].SlicerType())
}

func TestParseWaveScript_FailsFast(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"too short", "1,delay", ErrMalformedRecord},
		{"bad wave", "x,delay,10", ErrMalformedRecord},
		{"unknown kind", "1,teleport,10", ErrMalformedRecord},
		{"spawn arity", "1,spawn,5,slicer", ErrMalformedRecord},
		{"bad count", "1,spawn,many,slicer,10", ErrMalformedRecord},
		{"zero wave", "0,delay,10", ErrInvalidWave},
		{"negative delay", "1,delay,-5", ErrInvalidWave},
		{"negative count", "1,spawn,-1,slicer,10", ErrInvalidWave},
		{"NaN delay", "1,delay,NaN", ErrInvalidWave},
		{"infinite delay", "1,delay,+Inf", ErrInvalidWave},
		{"infinite interval", "1,spawn,1,slicer,Inf", ErrInvalidWave},
		{"NaN interval", "1,spawn,1,slicer,nan", ErrInvalidWave},
		{"wave above cap", "1001,delay,10", ErrInvalidWave},
		{"huge wave", "2000000000,delay,1", ErrInvalidWave},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWaveScript(strings.NewReader(tt.line))
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseWaveScript(%q) error = %v, want %v", tt.line, err, tt.want)
			}
		})
	}
}

func TestWaveRecordValidate_Bounds(t *testing.T) {
	last := WaveRecord{Wave: MaxWave, Kind: EventSpawn, Count: 1, SlicerTag: "slicer", IntervalMs: 100}
	assert.NoError(t, last.Validate())

	over := last
	over.Wave = MaxWave + 1
	assert.ErrorIs(t, over.Validate(), ErrInvalidWave)

	nan := WaveRecord{Wave: 1, Kind: EventDelay, DurationMs: math.NaN()}
	assert.ErrorIs(t, nan.Validate(), ErrInvalidWave)

	inf := last
	inf.IntervalMs = math.Inf(1)
	assert.ErrorIs(t, inf.Validate(), ErrInvalidWave)
}

func writeLevel(t *testing.T, dir, name, body, waves string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".txt"), []byte(waves), 0o644))
	p := filepath.Join(dir, name+".yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadLevels_KeepsOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeLevel(t, dir, "a", "name: A\npath: [[0, 0], [100, 0]]\nwaves: a.txt\n", "1,spawn,1,slicer,100\n")
	b := writeLevel(t, dir, "b", "path: [[0, 0], [0, 50], [50, 50]]\nwaves: b.txt\n", "1,delay,10\n2,spawn,3,megaslicer,100\n")

	levels, err := LoadLevels(context.Background(), []string{a, b})
	require.NoError(t, err)
	require.Len(t, levels, 2)

	assert.Equal(t, "A", levels[0].Name)
	assert.Equal(t, 2, levels[0].Path.Len())
	assert.Equal(t, "b.yaml", levels[1].Name)
	assert.Equal(t, 3, levels[1].Path.Len())
	assert.Len(t, levels[1].Waves, 2)
}

func TestLoadLevel_Errors(t *testing.T) {
	dir := t.TempDir()
	short := writeLevel(t, dir, "short", "path: [[0, 0]]\nwaves: short.txt\n", "1,spawn,1,slicer,100\n")
	bad := writeLevel(t, dir, "bad", "path: [[0, 0], [1, 1]]\nwaves: bad.txt\n", "1,spawn,oops\n")
	noWaves := writeLevel(t, dir, "nowaves", "path: [[0, 0], [1, 1]]\n", "")

	for _, p := range []string{short, bad, noWaves, filepath.Join(dir, "missing.yaml")} {
		_, err := LoadLevel(p)
		assert.Error(t, err, p)
	}

	_, err := LoadLevels(context.Background(), []string{short})
	assert.Error(t, err)
}
