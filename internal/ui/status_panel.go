// internal/ui/status_panel.go
package ui

import (
	"fmt"
	"image/color"

	"shadow-defend/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
)

// StatusInfo is what the bottom panel shows for one frame.
type StatusInfo struct {
	Level     int
	Wave      int
	TimeScale int
	Status    string
	Lives     int
}

// StatusPanel: нижняя панель: волна, скорость, статус, жизни.
type StatusPanel struct {
	X, Y, Width, Height float32
	fontFace            font.Face

	lastScale int
	pop       *gween.Tween
	popOffset float32
}

func NewStatusPanel(x, y, width, height float32, face font.Face) *StatusPanel {
	return &StatusPanel{
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		fontFace:  face,
		lastScale: config.MinTimeScale,
	}
}

// Update animates the time scale label when the scale changes.
func (p *StatusPanel) Update(dt float32, info StatusInfo) {
	if info.TimeScale != p.lastScale {
		p.lastScale = info.TimeScale
		p.pop = gween.New(-6, 0, 0.3, ease.OutBack)
	}
	if p.pop != nil {
		v, done := p.pop.Update(dt)
		p.popOffset = v
		if done {
			p.pop = nil
		}
	}
}

func (p *StatusPanel) Draw(screen *ebiten.Image, info StatusInfo) {
	vector.DrawFilledRect(screen, p.X, p.Y, p.Width, p.Height, config.PanelColor, false)

	baseline := int(p.Y + p.Height/2 + 5)
	col := int(p.Width / 4)

	text.Draw(screen, fmt.Sprintf("Level: %d  Wave: %d", info.Level, info.Wave), p.fontFace, int(p.X)+10, baseline, config.TextLightColor)

	var scaleColor color.Color = config.TextLightColor
	if info.TimeScale > config.MinTimeScale {
		scaleColor = config.TimeScaleColor
	}
	text.Draw(screen, fmt.Sprintf("Time Scale: %d.0", info.TimeScale), p.fontFace, int(p.X)+col, baseline+int(p.popOffset), scaleColor)

	text.Draw(screen, "Status: "+info.Status, p.fontFace, int(p.X)+2*col, baseline, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Lives: %d", info.Lives), p.fontFace, int(p.X)+3*col+col/2, baseline, config.TextLightColor)
}
