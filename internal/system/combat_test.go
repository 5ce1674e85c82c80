package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shadow-defend/internal/component"
	"shadow-defend/internal/config"
	"shadow-defend/internal/defs"
	"shadow-defend/internal/event"
	"shadow-defend/pkg/geom"
)

var testBounds = geom.Point{X: config.ScreenWidth, Y: config.ScreenHeight}

func TestTowerOutOfRangeNeverFires(t *testing.T) {
	w, _ := newTestWorld(t)
	path := newTestPath(t, [2]float64{0, 0}, [2]float64{500, 0})
	s := startedScheduler(t, path, spawnRecord(1, 5, "slicer", 1000))

	tower := component.NewStationaryTower(defs.TowerTank, geom.Point{X: 250, Y: 300})
	w.AddTower(tower)
	combat := NewCombatSystem(w, testBounds)

	facing := tower.Facing
	steps := 0
	for s.WaveInProgress() {
		s.Update(w)
		combat.Update(s)
		steps++
		require.Empty(t, w.Projectiles)
		require.Less(t, steps, 10000)
	}
	assert.Equal(t, -steps, tower.CooldownLeft, "cooldown was never reset")
	assert.Equal(t, facing, tower.Facing, "no target, no rotation")
}

func TestStationaryTowerFiresOnCooldown(t *testing.T) {
	w, _ := newTestWorld(t)
	path := newTestPath(t, [2]float64{0, 0}, [2]float64{1000, 0})
	s := startedScheduler(t, path, spawnRecord(1, 1, "apexslicer", 0))
	s.Update(w)
	target := s.Slicers()[0]

	tower := component.NewStationaryTower(defs.TowerTank, geom.Point{X: 10, Y: 20})
	w.AddTower(tower)
	combat := NewCombatSystem(w, testBounds)

	combat.Update(s)
	require.Len(t, w.Projectiles, 1)
	assert.Same(t, target, w.Projectiles[0].Target)
	assert.Equal(t, tower.Position, w.Projectiles[0].Position)
	assert.Equal(t, 60, tower.CooldownLeft)

	// Facing is the direction to the target rotated by 90 degrees.
	want := target.Position.Sub(tower.Position).Perp().Normalised()
	assert.InDelta(t, want.X, tower.Facing.X, 1e-9)
	assert.InDelta(t, want.Y, tower.Facing.Y, 1e-9)

	for i := 0; i < 59; i++ {
		combat.Update(s)
	}
	assert.Len(t, w.Projectiles, 1)
	combat.Update(s)
	assert.Len(t, w.Projectiles, 2)
}

func TestAirSupportDropsAndLeaves(t *testing.T) {
	w, _ := newTestWorld(t)
	path := newTestPath(t, [2]float64{0, 0}, [2]float64{100, 0})
	s := startedScheduler(t, path, spawnRecord(1, 1, "slicer", 0))

	plane := component.NewAirSupport(geom.Point{X: 300, Y: 200}, w.NextFlightHorizontal(), 3)
	w.AddTower(plane)
	combat := NewCombatSystem(w, testBounds)

	for i := 0; i < 3; i++ {
		combat.Update(s)
	}
	require.Len(t, w.Explosives, 1)
	assert.Equal(t, geom.Point{X: 15, Y: 200}, w.Explosives[0].Position)
	assert.Greater(t, plane.DropCountdown, 0.0)
	assert.LessOrEqual(t, plane.DropCountdown, float64(config.AirDropMaxSteps))

	steps := 3
	for len(w.Towers) > 0 {
		combat.Update(s)
		steps++
		require.Less(t, steps, 1000)
	}
	// 5 px per step: x reaches 1024 on step 205.
	assert.Equal(t, 205, steps)
}

func TestAirSupportAlternatesAxis(t *testing.T) {
	w, _ := newTestWorld(t)
	cursor := geom.Point{X: 300, Y: 200}

	first := component.NewAirSupport(cursor, w.NextFlightHorizontal(), 1)
	second := component.NewAirSupport(cursor, w.NextFlightHorizontal(), 1)
	third := component.NewAirSupport(cursor, w.NextFlightHorizontal(), 1)

	assert.Equal(t, geom.Point{Y: 200}, first.Position)
	assert.Equal(t, geom.Point{X: 300}, second.Position)
	assert.Equal(t, geom.Point{Y: 200}, third.Position)
}

func TestProjectileKillCreditsOnce(t *testing.T) {
	w, player := newTestWorld(t)
	path := newTestPath(t, [2]float64{0, 0}, [2]float64{1000, 0})
	s := startedScheduler(t, path, spawnRecord(1, 1, "slicer", 0))
	s.Update(w)
	target := s.Slicers()[0]

	near := target.Position.Add(geom.Point{Y: 5})
	w.AddProjectile(component.NewProjectile(near, target, 1, defs.TowerTank))
	w.AddProjectile(component.NewProjectile(near, target, 1, defs.TowerTank))

	NewProjectileSystem(w).Update(s)

	assert.Equal(t, component.SlicerKilled, target.State())
	assert.Equal(t, 500+defs.Slicer(defs.SlicerRegular).Reward, player.Gold())
	assert.Empty(t, w.Projectiles)
}

func TestProjectileDroppedWhenTargetKilledElsewhere(t *testing.T) {
	w, player := newTestWorld(t)
	path := newTestPath(t, [2]float64{0, 0}, [2]float64{1000, 0})
	s := startedScheduler(t, path, spawnRecord(1, 1, "slicer", 0))
	s.Update(w)
	target := s.Slicers()[0]

	w.AddProjectile(component.NewProjectile(geom.Point{X: 500, Y: 500}, target, 1, defs.TowerTank))
	projectiles := NewProjectileSystem(w)
	projectiles.Update(s)
	require.Len(t, w.Projectiles, 1, "still chasing")

	target.TakeDamage(1)
	require.True(t, s.KillSlicer(w, target))
	gold := player.Gold()

	projectiles.Update(s)
	assert.Empty(t, w.Projectiles)
	assert.Equal(t, gold, player.Gold())
}

func TestProjectileDamagesWithoutKill(t *testing.T) {
	w, player := newTestWorld(t)
	path := newTestPath(t, [2]float64{0, 0}, [2]float64{1000, 0})
	s := startedScheduler(t, path, spawnRecord(1, 1, "apexslicer", 0))
	s.Update(w)
	target := s.Slicers()[0]

	w.AddProjectile(component.NewProjectile(target.Position, target, 3, defs.TowerSuperTank))
	NewProjectileSystem(w).Update(s)

	assert.Equal(t, 22, target.Health)
	assert.True(t, target.Alive())
	assert.Equal(t, 500, player.Gold())
	assert.Empty(t, w.Projectiles)
}

func TestExplosiveHitsAllInRangeOnce(t *testing.T) {
	w, player := newTestWorld(t)
	path := newTestPath(t, [2]float64{0, 0}, [2]float64{1000, 0})
	s := startedScheduler(t, path, spawnRecord(1, 3, "megaslicer", 0))
	for i := 0; i < 3; i++ {
		s.Update(w)
	}
	require.Len(t, s.Slicers(), 3)

	var detonations int
	w.Events.Subscribe(event.ExplosiveDetonated, event.ListenerFunc(func(event.Event) { detonations++ }))

	bomb := component.NewExplosive(geom.Point{}, 500)
	w.AddExplosive(bomb)
	area := NewAreaAttackSystem(w)

	for i := 1; i < config.ExplosiveTimer; i++ {
		area.Update(s)
		require.Len(t, w.Explosives, 1)
	}
	area.Update(s)

	assert.Empty(t, w.Explosives)
	assert.Equal(t, 1, detonations)
	assert.Equal(t, 500+3*defs.Slicer(defs.SlicerMega).Reward, player.Gold())

	children := s.Slicers()
	require.Len(t, children, 6)
	for _, c := range children {
		assert.Equal(t, defs.SlicerSuper, c.Type)
		assert.Equal(t, c.MaxHealth, c.Health, "children are outside the pulse")
	}
}

func TestExplosiveOutOfRangeMisses(t *testing.T) {
	w, _ := newTestWorld(t)
	path := newTestPath(t, [2]float64{0, 0}, [2]float64{1000, 0})
	s := startedScheduler(t, path, spawnRecord(1, 1, "apexslicer", 0))
	s.Update(w)

	bomb := component.NewExplosive(geom.Point{X: 500, Y: 500}, 500)
	bomb.Timer = 1
	w.AddExplosive(bomb)
	NewAreaAttackSystem(w).Update(s)

	assert.Empty(t, w.Explosives)
	assert.Equal(t, 25, s.Slicers()[0].Health)
}

func TestStatsSystemCounts(t *testing.T) {
	d := event.NewDispatcher()
	stats := NewStatsSystem(d)
	path := newTestPath(t, [2]float64{0, 0}, [2]float64{10, 0})

	mega := component.NewSlicer(defs.SlicerMega, path, 1)
	regular := component.NewSlicer(defs.SlicerRegular, path, 1)
	d.Dispatch(event.Event{Type: event.SlicerSpawned, Data: mega})
	d.Dispatch(event.Event{Type: event.SlicerKilled, Data: mega})
	d.Dispatch(event.Event{Type: event.SlicerLeaked, Data: regular})
	d.Dispatch(event.Event{Type: event.WaveCleared, Data: event.WaveInfo{Wave: 1}})

	assert.Equal(t, 1, stats.Spawned)
	assert.Equal(t, 1, stats.Kills[defs.SlicerMega])
	assert.Equal(t, 1, stats.TotalKills())
	assert.Equal(t, 1, stats.TotalLeaks())
	assert.Equal(t, 1, stats.WavesClear)

	stats.Reset()
	assert.Zero(t, stats.TotalKills())
}
