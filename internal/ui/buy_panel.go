// internal/ui/buy_panel.go
package ui

import (
	"fmt"
	"image"

	"shadow-defend/internal/config"
	"shadow-defend/internal/defs"
	"shadow-defend/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
)

const (
	iconOffsetX  = 64
	iconSpacing  = 120
	iconBoxSize  = 56
	goldFlashSec = 0.5
)

var keyBinds = []string{
	"Key binds:",
	"S - Start Wave",
	"L - Increase Timescale",
	"K - Decrease Timescale",
	"P - Pause",
}

// BuyPanel: верхняя панель покупки башен.
type BuyPanel struct {
	Width, Height float32
	fontFace      font.Face
	icons         []Button
	towers        []defs.TowerType

	lastGold  int
	goldFlash *gween.Tween
	flash     float32
}

func NewBuyPanel(width, height float32, face font.Face) *BuyPanel {
	p := &BuyPanel{Width: width, Height: height, fontFace: face, lastGold: -1}
	top := int(height-iconBoxSize)/2 - 6
	for i := range defs.TowerLibrary {
		x := iconOffsetX + i*iconSpacing - iconBoxSize/2
		p.icons = append(p.icons, Button{
			Rect: image.Rect(x, top, x+iconBoxSize, top+iconBoxSize),
			Text: defs.TowerLibrary[i].Name,
		})
		p.towers = append(p.towers, defs.TowerType(i))
	}
	return p
}

// TowerAt returns the tower whose icon contains (x, y).
func (p *BuyPanel) TowerAt(x, y int) (defs.TowerType, bool) {
	pt := image.Point{X: x, Y: y}
	for i, b := range p.icons {
		if pt.In(b.Rect) {
			return p.towers[i], true
		}
	}
	return 0, false
}

// Contains reports whether (x, y) is on the panel.
func (p *BuyPanel) Contains(x, y int) bool {
	return float32(y) < p.Height && float32(x) < p.Width
}

// Update flashes the gold counter whenever it changes.
func (p *BuyPanel) Update(dt float32, gold int) {
	if p.lastGold >= 0 && gold != p.lastGold {
		p.goldFlash = gween.New(1, 0, goldFlashSec, ease.OutQuad)
	}
	p.lastGold = gold
	if p.goldFlash != nil {
		v, done := p.goldFlash.Update(dt)
		p.flash = v
		if done {
			p.goldFlash = nil
		}
	}
}

// Draw рисует иконки башен, цены, подсказки и золото.
func (p *BuyPanel) Draw(screen *ebiten.Image, gold int, selected *defs.TowerType) {
	vector.DrawFilledRect(screen, 0, 0, p.Width, p.Height, config.PanelColor, false)

	for i, b := range p.icons {
		def := defs.Tower(p.towers[i])
		r := b.Rect
		cx := float32(r.Min.X + r.Dx()/2)
		cy := float32(r.Min.Y + r.Dy()/2)

		border := config.TextLightColor
		if selected != nil && *selected == p.towers[i] {
			border = config.AffordableColor
		}
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, border, false)
		vector.DrawFilledCircle(screen, cx, cy, def.Visuals.Radius, def.Visuals.Color, true)

		priceColor := config.ExpensiveColor
		if gold >= def.Cost {
			priceColor = config.AffordableColor
		}
		price := fmt.Sprintf("$%d", def.Cost)
		w := font.MeasureString(p.fontFace, price).Ceil()
		text.Draw(screen, price, p.fontFace, int(cx)-w/2, r.Max.Y+16, priceColor)
	}

	lineHeight := p.fontFace.Metrics().Height.Ceil()
	x := int(p.Width/2) - 80
	for i, line := range keyBinds {
		text.Draw(screen, line, p.fontFace, x, 18+i*lineHeight, config.TextLightColor)
	}

	goldText := fmt.Sprintf("$%d", gold)
	gx := int(p.Width) - 200
	gy := int(p.Height/2) + 6
	if p.flash > 0 {
		w := font.MeasureString(p.fontFace, goldText).Ceil()
		vector.DrawFilledRect(screen, float32(gx-4), float32(gy-14), float32(w+8), 20,
			render.WithAlpha(config.AffordableColor, p.flash*0.6), false)
	}
	text.Draw(screen, goldText, p.fontFace, gx, gy, config.TextLightColor)
}
