// internal/render/world_renderer.go
package render

import (
	"shadow-defend/internal/component"
	"shadow-defend/internal/config"
	"shadow-defend/internal/defs"
	"shadow-defend/internal/entity"
	"shadow-defend/internal/event"
	"shadow-defend/pkg/geom"
	"shadow-defend/pkg/polyline"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	pathWidth       = 18
	blastFlashTime  = 0.4 // seconds
	healthBarWidth  = 20
	healthBarHeight = 3
)

// blastFlash: вспышка на месте сработавшей взрывчатки.
type blastFlash struct {
	pos   geom.Point
	alpha *gween.Tween
	value float32
}

// WorldRenderer рисует путь и все сущности симуляции. Карта рендерится один
// раз на уровень в отдельное изображение.
type WorldRenderer struct {
	width, height int
	path          *polyline.Polyline
	mapImage      *ebiten.Image
	flashes       []*blastFlash
}

// NewWorldRenderer creates a renderer and subscribes it to detonations.
func NewWorldRenderer(width, height int, events *event.Dispatcher) *WorldRenderer {
	r := &WorldRenderer{width: width, height: height}
	events.Subscribe(event.ExplosiveDetonated, r)
	events.Subscribe(event.LevelStarted, r)
	return r
}

// OnEvent реализует интерфейс event.Listener.
func (r *WorldRenderer) OnEvent(e event.Event) {
	switch e.Type {
	case event.ExplosiveDetonated:
		if ex, ok := e.Data.(*component.Explosive); ok {
			r.flashes = append(r.flashes, &blastFlash{
				pos:   ex.Position,
				alpha: gween.New(1, 0, blastFlashTime, ease.OutQuad),
				value: 1,
			})
		}
	case event.LevelStarted:
		r.flashes = nil
	}
}

// SetPath pre-renders the level background for path.
func (r *WorldRenderer) SetPath(path *polyline.Polyline) {
	if r.path == path && r.mapImage != nil {
		return
	}
	r.path = path
	if r.mapImage == nil {
		r.mapImage = ebiten.NewImage(r.width, r.height)
	}
	r.mapImage.Fill(config.BackgroundColor)
	pts := path.Points()
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(r.mapImage, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), pathWidth, config.PathColor, true)
		// Круги на стыках сглаживают углы
		vector.DrawFilledCircle(r.mapImage, float32(b.X), float32(b.Y), pathWidth/2, config.PathColor, true)
	}
	start := path.Start()
	vector.DrawFilledCircle(r.mapImage, float32(start.X), float32(start.Y), pathWidth/2, config.PathColor, true)
}

// Update advances visual effects by dt seconds of real time.
func (r *WorldRenderer) Update(dt float32) {
	kept := r.flashes[:0]
	for _, f := range r.flashes {
		v, done := f.alpha.Update(dt)
		f.value = v
		if !done {
			kept = append(kept, f)
		}
	}
	clear(r.flashes[len(kept):])
	r.flashes = kept
}

// Draw рисует кадр: фон, слайсеры, башни, снаряды, взрывчатку.
func (r *WorldRenderer) Draw(screen *ebiten.Image, w *entity.World, slicers []*component.Slicer) {
	if r.mapImage != nil {
		screen.DrawImage(r.mapImage, nil)
	} else {
		screen.Fill(config.BackgroundColor)
	}

	for _, s := range slicers {
		r.drawSlicer(screen, s)
	}
	for _, t := range w.Towers {
		r.drawTower(screen, t)
	}
	for _, p := range w.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), 3, config.ProjectileColor, true)
	}
	for _, e := range w.Explosives {
		r.drawExplosive(screen, e)
	}
	for _, f := range r.flashes {
		vector.DrawFilledCircle(screen, float32(f.pos.X), float32(f.pos.Y), config.ExplosiveRadius,
			WithAlpha(config.ExplosiveColor, f.value*0.5), true)
	}
}

func (r *WorldRenderer) drawSlicer(screen *ebiten.Image, s *component.Slicer) {
	v := s.Def().Visuals
	x, y := float32(s.Position.X), float32(s.Position.Y)
	vector.DrawFilledCircle(screen, x, y, v.Radius+1, DarkenColor(v.Color), true)
	vector.DrawFilledCircle(screen, x, y, v.Radius, v.Color, true)

	// Направление движения
	dir := s.Heading.Normalised()
	vector.StrokeLine(screen, x, y, x+float32(dir.X)*v.Radius, y+float32(dir.Y)*v.Radius, config.StrokeWidth, DarkenColor(v.Color), true)

	if s.MaxHealth > 1 && s.Health < s.MaxHealth {
		frac := float32(s.Health) / float32(s.MaxHealth)
		bx, by := x-healthBarWidth/2, y-v.Radius-6
		vector.DrawFilledRect(screen, bx, by, healthBarWidth, healthBarHeight, DarkenColor(config.HealthBarColor), false)
		vector.DrawFilledRect(screen, bx, by, healthBarWidth*frac, healthBarHeight, config.HealthBarColor, false)
	}
}

func (r *WorldRenderer) drawTower(screen *ebiten.Image, t *component.Tower) {
	v := defs.Tower(t.Type).Visuals
	x, y := float32(t.Position.X), float32(t.Position.Y)
	vector.DrawFilledCircle(screen, x, y, v.Radius+2, DarkenColor(v.Color), true)
	vector.DrawFilledCircle(screen, x, y, v.Radius, v.Color, true)

	// Спрайт по умолчанию смотрит вверх; Facing повёрнут на 90° относительно цели.
	f := t.Facing.Normalised()
	if t.IsMobile() {
		f = t.Velocity.Normalised()
	} else {
		f = geom.Point{X: f.Y, Y: -f.X}
	}
	vector.StrokeLine(screen, x, y, x+float32(f.X)*(v.Radius+6), y+float32(f.Y)*(v.Radius+6), 4, DarkenColor(v.Color), true)
}

func (r *WorldRenderer) drawExplosive(screen *ebiten.Image, e *component.Explosive) {
	x, y := float32(e.Position.X), float32(e.Position.Y)
	vector.DrawFilledCircle(screen, x, y, 5, config.ExplosiveColor, true)
	// Кольцо показывает зону поражения и растёт к моменту взрыва.
	elapsed := float32(config.ExplosiveTimer - e.Timer)
	radius := ease.InQuad(elapsed, 0, float32(e.Radius), config.ExplosiveTimer)
	vector.StrokeCircle(screen, x, y, radius, 1, WithAlpha(config.ExplosiveColor, 0.6), true)
}

// DrawPlacement previews a tower under the cursor: its range when the spot is
// legal, a red marker when it is not.
func (r *WorldRenderer) DrawPlacement(screen *ebiten.Image, t defs.TowerType, pos geom.Point, legal bool) {
	def := defs.Tower(t)
	x, y := float32(pos.X), float32(pos.Y)
	if !legal {
		vector.DrawFilledCircle(screen, x, y, def.Visuals.Radius, config.InvalidSpotColor, true)
		return
	}
	if def.Behavior == defs.BehaviorStationary {
		vector.DrawFilledCircle(screen, x, y, float32(def.Radius), config.PreviewColor, true)
	}
	vector.DrawFilledCircle(screen, x, y, def.Visuals.Radius, WithAlpha(def.Visuals.Color, 0.7), true)
}
