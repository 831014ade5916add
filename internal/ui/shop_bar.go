// internal/ui/shop_bar.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-path-defense/internal/defs"
	"go-path-defense/pkg/render"
)

const (
	shopButtonHeight = 28
	shopGap          = 4
)

// ShopBar lists the archetypes with their hotkey and price, two per row.
type ShopBar struct {
	X, Y    int
	Width   int
	buttons [defs.ArchetypeCount]Button
	costs   [defs.ArchetypeCount]int
	face    font.Face
}

func NewShopBar(x, y, width int, tables *defs.Tables, face font.Face, palette render.Palette) *ShopBar {
	s := &ShopBar{X: x, Y: y, Width: width, face: face}
	colW := (width - shopGap) / 2
	top := y + 20
	for _, a := range defs.Archetypes() {
		def := tables.Turret(a)
		col, row := int(a)%2, int(a)/2
		at := image.Pt(x+col*(colW+shopGap), top+row*(shopButtonHeight+shopGap))
		s.buttons[a] = Button{
			Rect: image.Rectangle{Min: at, Max: at.Add(image.Pt(colW, shopButtonHeight))},
			Text: fmt.Sprintf("%d %s %dg", int(a)+1, a, def.Cost),
			Tint: palette.Turret(int(a)),
		}
		s.costs[a] = def.Cost
	}
	return s
}

// HitTest returns the archetype under the cursor.
func (s *ShopBar) HitTest(x, y int) (defs.Archetype, bool) {
	for i := range s.buttons {
		if s.buttons[i].Contains(x, y) {
			return defs.Archetype(i), true
		}
	}
	return 0, false
}

// Draw greys out what the player cannot afford and highlights selected.
func (s *ShopBar) Draw(screen *ebiten.Image, gold int, selected defs.Archetype, cx, cy int) {
	text.Draw(screen, "Build", s.face, s.X, s.Y+12, color.White)
	for i := range s.buttons {
		b := &s.buttons[i]
		b.Disabled = s.costs[i] > gold
		b.Active = defs.Archetype(i) == selected
		b.Draw(screen, s.face, b.Contains(cx, cy))
	}
}

func (s *ShopBar) Height() int {
	rows := (defs.ArchetypeCount + 1) / 2
	return 20 + rows*(shopButtonHeight+shopGap)
}
