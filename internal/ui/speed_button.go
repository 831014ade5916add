// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton toggles fast mode. It is drawn as a double triangle.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	Normal, Fast  color.RGBA
}

func NewSpeedButton(x, y, size float32) *SpeedButton {
	return &SpeedButton{
		X:      x,
		Y:      y,
		Size:   size,
		Normal: color.RGBA{R: 120, G: 120, B: 120, A: 255},
		Fast:   color.RGBA{R: 240, G: 190, B: 60, A: 255},
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image, fast bool) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	size := b.Size * float32(1.0+0.3*math.Exp(-elapsed*8))

	c := b.Normal
	if fast {
		c = b.Fast
	}
	height := size * 1.2
	width := size
	offset := width * 0.8
	for _, dx := range []float32{0, offset} {
		p := vector.Path{}
		p.MoveTo(b.X-width+dx, b.Y-height/2)
		p.LineTo(b.X+dx, b.Y)
		p.LineTo(b.X-width+dx, b.Y+height/2)
		p.Close()
		fillPath(screen, &p, c)
		strokePath(screen, &p, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
}

// Contains uses a circle since the shape is irregular.
func (b *SpeedButton) Contains(x, y int) bool {
	r := b.Size * 1.5
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) HandleClick() {
	b.LastClickTime = time.Now()
}
