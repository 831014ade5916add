// internal/ui/lives_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const livesBarHeight = 10

var (
	livesHigh  = color.RGBA{R: 70, G: 110, B: 220, A: 255}
	livesLow   = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	livesEmpty = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	goldColor  = color.RGBA{R: 240, G: 200, B: 60, A: 255}
)

// LivesIndicator shows remaining lives as a bar plus the gold count.
type LivesIndicator struct {
	X, Y  float32
	Width float32
	face  font.Face
}

func NewLivesIndicator(x, y, width float32, face font.Face) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, Width: width, face: face}
}

// Draw turns the bar red once lives drop to half.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives, gold int) {
	frac := 0.0
	if maxLives > 0 {
		frac = float64(max(lives, 0)) / float64(maxLives)
	}
	c := livesHigh
	if frac <= 0.5 {
		c = livesLow
	}

	label := fmt.Sprintf("Lives %d/%d", lives, maxLives)
	text.Draw(screen, label, i.face, int(i.X), int(i.Y)+14, color.White)
	barY := i.Y + 20
	vector.DrawFilledRect(screen, i.X, barY, i.Width, livesBarHeight, livesEmpty, true)
	vector.DrawFilledRect(screen, i.X, barY, i.Width*float32(min(frac, 1)), livesBarHeight, c, true)
	vector.StrokeRect(screen, i.X, barY, i.Width, livesBarHeight, 1, color.White, true)

	text.Draw(screen, fmt.Sprintf("Gold %d", gold), i.face, int(i.X), int(barY)+livesBarHeight+20, goldColor)
}

// Height is the vertical space Draw uses.
func (i *LivesIndicator) Height() float32 {
	return 20 + livesBarHeight + 26
}
