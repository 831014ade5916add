// internal/ui/ledger_chart.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/pkg/render"
)

const (
	ledgerRow = 16
	ledgerBar = 8
)

// LedgerChart draws total damage per archetype as horizontal bars scaled to
// the largest entry.
type LedgerChart struct {
	X, Y    float32
	Width   float32
	face    font.Face
	palette render.Palette
}

func NewLedgerChart(x, y, width float32, face font.Face, palette render.Palette) *LedgerChart {
	return &LedgerChart{X: x, Y: y, Width: width, face: face, palette: palette}
}

func (c *LedgerChart) Draw(screen *ebiten.Image, ledger component.DamageLedger) {
	top := 0.0
	for _, v := range ledger {
		top = max(top, v)
	}
	text.Draw(screen, "Damage dealt", c.face, int(c.X), int(c.Y)+12, color.White)
	y := c.Y + 20
	labelW := float32(60)
	for _, a := range defs.Archetypes() {
		v := ledger.Get(a)
		text.Draw(screen, a.String(), c.face, int(c.X), int(y)+ledgerBar+2, color.White)
		w := float32(0)
		if top > 0 {
			w = (c.Width - labelW - 50) * float32(v/top)
		}
		vector.DrawFilledRect(screen, c.X+labelW, y+2, w, ledgerBar, c.palette.Turret(int(a)), true)
		text.Draw(screen, fmt.Sprintf("%.0f", v), c.face, int(c.X+c.Width-45), int(y)+ledgerBar+2, color.White)
		y += ledgerRow
	}
}

func (c *LedgerChart) Height() float32 {
	return 20 + ledgerRow*defs.ArchetypeCount
}
