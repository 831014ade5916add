// internal/ui/wave_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-path-defense/pkg/render"
)

// WaveIndicator shows the wave number in roman numerals with a progress
// bar underneath while a wave runs.
type WaveIndicator struct {
	X, Y         float32
	Width        float32
	Color        color.RGBA
	BossColor    color.RGBA
	OutlineColor color.RGBA
	face         font.Face
}

func NewWaveIndicator(x, y, width float32, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Width:        width,
		Color:        color.RGBA{R: 90, G: 150, B: 230, A: 255},
		BossColor:    color.RGBA{R: 230, G: 60, B: 60, A: 255},
		OutlineColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		face:         face,
	}
}

// Draw renders wave n. progress < 0 hides the bar.
func (i *WaveIndicator) Draw(screen *ebiten.Image, n int, progress float64) {
	label := render.Roman(n)
	if label == "" {
		return
	}
	c := i.Color
	if n%10 == 0 {
		c = i.BossColor
	}
	b := text.BoundString(i.face, label)
	x := int(i.X+i.Width/2) - b.Dx()/2
	drawOutlined(screen, label, i.face, x, int(i.Y)-b.Min.Y, 1, c, i.OutlineColor)

	if progress < 0 {
		return
	}
	barY := i.Y + float32(b.Dy()) + 8
	vector.DrawFilledRect(screen, i.X, barY, i.Width, 6, color.RGBA{R: 40, G: 40, B: 50, A: 255}, true)
	vector.DrawFilledRect(screen, i.X, barY, i.Width*float32(progress), 6, c, true)
}
