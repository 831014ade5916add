// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-path-defense/pkg/render"
)

var (
	buttonColor    = color.RGBA{R: 50, G: 70, B: 90, A: 255}
	buttonActive   = color.RGBA{R: 60, G: 120, B: 60, A: 255}
	buttonDisabled = color.RGBA{R: 40, G: 40, B: 44, A: 255}
	buttonBorder   = color.RGBA{R: 70, G: 130, B: 180, A: 255}
)

var buttonPalette = render.DefaultPalette()

// Button is a clickable rectangle with a centred label. Tint, when set,
// replaces the active fill.
type Button struct {
	Rect     image.Rectangle
	Text     string
	Disabled bool
	Active   bool
	Tint     color.RGBA
}

// Contains reports whether the point lies inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face, hovered bool) {
	bg := buttonColor
	switch {
	case b.Disabled:
		bg = buttonDisabled
	case b.Active && b.Tint.A != 0:
		bg = b.Tint
	case b.Active:
		bg = buttonActive
	}
	if hovered && !b.Disabled {
		bg = render.LightenColor(bg, 25)
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 1, buttonBorder, true)

	fg := buttonPalette.TextOn(bg)
	if b.Disabled {
		fg = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	}
	c := b.Rect.Min.Add(b.Rect.Size().Div(2))
	drawCentered(screen, b.Text, face, c.X, c.Y, fg)
}
