// internal/ui/button.go
package ui

import (
	"image"

	"shadow-defend/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect image.Rectangle
	Text string
}

// NewCenteredButton creates a button of the given size centred on (cx, cy).
func NewCenteredButton(cx, cy, width, height int, label string) Button {
	return Button{
		Rect: image.Rect(cx-width/2, cy-height/2, cx+width/2, cy+height/2),
		Text: label,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку, подсвечивая её под курсором.
func (b Button) Draw(screen *ebiten.Image, face font.Face, hovered bool) {
	bg := config.PanelColor
	if hovered {
		bg = config.AffordableColor
	}
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, config.TextLightColor, false)

	w := font.MeasureString(face, b.Text).Ceil()
	textX := r.Min.X + (r.Dx()-w)/2
	textY := r.Min.Y + r.Dy()/2 + face.Metrics().Ascent.Ceil()/2
	text.Draw(screen, b.Text, face, textX, textY, config.TextLightColor)
}
