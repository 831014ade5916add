// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton shows two bars while running and a play triangle while
// paused.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	Color         color.RGBA
}

func NewPauseButton(x, y, size float32) *PauseButton {
	return &PauseButton{X: x, Y: y, Size: size, Color: color.RGBA{R: 180, G: 180, B: 200, A: 255}}
}

func (b *PauseButton) Draw(screen *ebiten.Image, paused bool) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	s := b.Size * float32(1.0+0.3*math.Exp(-elapsed*8))

	if paused {
		p := vector.Path{}
		p.MoveTo(b.X-s, b.Y-s*1.2)
		p.LineTo(b.X-s, b.Y+s*1.2)
		p.LineTo(b.X+s, b.Y)
		p.Close()
		fillPath(screen, &p, b.Color)
		return
	}
	width := s * 0.6
	height := s * 2.0
	spacing := s * 0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.Color, true)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.Color, true)
}

func (b *PauseButton) Contains(x, y int) bool {
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*2
}

func (b *PauseButton) HandleClick() {
	b.LastClickTime = time.Now()
}
