package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shadow-defend/internal/config"
	"shadow-defend/internal/defs"
	"shadow-defend/pkg/geom"
	"shadow-defend/pkg/polyline"
)

func straightPath(t *testing.T, pts ...geom.Point) *polyline.Polyline {
	t.Helper()
	p, err := polyline.New(pts)
	require.NoError(t, err)
	return p
}

func TestPathFollowerWalksAndLeaks(t *testing.T) {
	path := straightPath(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0})
	f := NewPathFollower(path, 2)

	assert.Equal(t, geom.Point{}, f.Position)
	assert.Equal(t, 1, f.DstNum())

	steps := 0
	for f.Step() {
		steps++
		require.Less(t, steps, 100, "follower never finished")
	}
	// 0 -> 2 -> 4 -> 6 -> 8 -> 10, then the destination is within one step.
	assert.Equal(t, 5, steps)
	assert.True(t, f.Finished())
	assert.Equal(t, path.Len(), f.DstNum())
	assert.InDelta(t, 10.0, f.Position.X, 1e-9)

	// A finished follower never moves again.
	pos := f.Position
	assert.False(t, f.Step())
	assert.Equal(t, pos, f.Position)
}

func TestPathFollowerTurnsCorners(t *testing.T) {
	path := straightPath(t,
		geom.Point{X: 0, Y: 0},
		geom.Point{X: 10, Y: 0},
		geom.Point{X: 10, Y: 10},
	)
	f := NewPathFollower(path, 3)
	for f.DstNum() == 1 {
		require.True(t, f.Step())
	}
	assert.Equal(t, 2, f.DstNum())
	assert.Greater(t, f.Heading.Y, 0.0)
	assert.InDelta(t, 0.0, f.Heading.X, 1.0)
}

func TestSetDstNumRejectsOutOfRange(t *testing.T) {
	path := straightPath(t, geom.Point{}, geom.Point{X: 10}, geom.Point{X: 20})
	f := NewPathFollower(path, 1)

	require.NoError(t, f.SetDstNum(2))
	assert.Equal(t, 2, f.DstNum())

	for _, n := range []int{0, 3, -1} {
		err := f.SetDstNum(n)
		assert.ErrorIs(t, err, ErrDstOutOfRange)
		assert.Equal(t, 2, f.DstNum(), "rejected index must not change the destination")
	}
}

func TestSlicerLifecycle(t *testing.T) {
	path := straightPath(t, geom.Point{}, geom.Point{X: 100})
	s := NewSlicer(defs.SlicerMega, path, 2)

	assert.Equal(t, 2, s.Health)
	assert.InDelta(t, 3.0, s.Speed, 1e-9)
	assert.True(t, s.Alive())

	assert.False(t, s.TakeDamage(1))
	assert.True(t, s.TakeDamage(1))
	assert.False(t, s.Alive())
	assert.True(t, s.InPlay())

	assert.True(t, s.MarkKilled())
	assert.False(t, s.MarkKilled())
	assert.False(t, s.MarkLeaked())
	assert.Equal(t, SlicerKilled, s.State())
}

func TestSlicerSpawnChildInheritsDestination(t *testing.T) {
	path := straightPath(t, geom.Point{}, geom.Point{X: 50}, geom.Point{X: 50, Y: 50})
	parent := NewSlicer(defs.SlicerSuper, path, 1)
	require.NoError(t, parent.SetDstNum(2))
	parent.Position = geom.Point{X: 50, Y: 10}

	child, err := parent.SpawnChild(geom.Point{X: 3, Y: 4}, 1)
	require.NoError(t, err)
	assert.Equal(t, defs.SlicerRegular, child.Type)
	assert.Equal(t, 2, child.DstNum())
	assert.Equal(t, geom.Point{X: 53, Y: 14}, child.Position)
	assert.True(t, child.Alive())
}

func TestAirSupportAxes(t *testing.T) {
	cursor := geom.Point{X: 300, Y: 200}

	h := NewAirSupport(cursor, true, 10)
	assert.Equal(t, geom.Point{X: 0, Y: 200}, h.Position)
	assert.Equal(t, geom.Down, h.Facing)
	assert.Equal(t, geom.Point{X: 5}, h.Velocity)
	assert.True(t, h.IsMobile())

	v := NewAirSupport(cursor, false, 10)
	assert.Equal(t, geom.Point{X: 300, Y: 0}, v.Position)
	assert.Equal(t, geom.Left, v.Facing)
	assert.Equal(t, geom.Point{Y: 5}, v.Velocity)

	assert.True(t, v.InBounds(1024, 768))
	v.Position.Y = 768
	assert.False(t, v.InBounds(1024, 768))
}

func TestStationaryTowerFromDefinition(t *testing.T) {
	tw := NewStationaryTower(defs.TowerSuperTank, geom.Point{X: 5, Y: 5})
	assert.False(t, tw.IsMobile())
	assert.Equal(t, 150.0, tw.Radius)
	assert.Equal(t, 30, tw.Cooldown)
	assert.Equal(t, 3, tw.Damage)
	assert.Equal(t, 0, tw.CooldownLeft)
}

func TestProjectileHoming(t *testing.T) {
	path := straightPath(t, geom.Point{X: 100}, geom.Point{X: 200})
	target := NewSlicer(defs.SlicerRegular, path, 1)
	p := NewProjectile(geom.Point{}, target, 1, defs.TowerTank)

	p.Move()
	assert.InDelta(t, 10.0, p.Position.X, 1e-9)
	assert.False(t, p.ReachedTarget())

	// Reach radius is projectile speed plus target speed.
	p.Position = geom.Point{X: 88}
	assert.True(t, p.ReachedTarget())
	p.Position = geom.Point{X: 87}
	assert.False(t, p.ReachedTarget())

	target.MarkLeaked()
	assert.False(t, p.TargetAlive())
}

func TestExplosiveTimer(t *testing.T) {
	e := NewExplosive(geom.Point{}, 500)
	for i := 1; i < config.ExplosiveTimer; i++ {
		require.False(t, e.Tick(), "step %d", i)
	}
	assert.True(t, e.Tick())
}

func TestPlayerEconomy(t *testing.T) {
	p := NewPlayer(25, 500)
	assert.False(t, p.SpendGold(501))
	assert.Equal(t, 500, p.Gold())
	assert.True(t, p.SpendGold(250))
	assert.Equal(t, 250, p.Gold())
	p.GainGold(15)
	assert.Equal(t, 265, p.Gold())

	p.LoseHealth(24)
	assert.False(t, p.Dead())
	p.LoseHealth(1)
	assert.True(t, p.Dead())
}
