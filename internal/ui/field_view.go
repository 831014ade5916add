// internal/ui/field_view.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-path-defense/internal/app"
	"go-path-defense/internal/defs"
	"go-path-defense/pkg/render"
)

var (
	hpBack     = color.RGBA{R: 30, G: 30, B: 30, A: 220}
	hpFront    = color.RGBA{R: 80, G: 220, B: 90, A: 255}
	coldTint   = color.RGBA{R: 120, G: 220, B: 255, A: 255}
	burnTint   = color.RGBA{R: 255, G: 140, B: 30, A: 255}
	rangeRing  = color.RGBA{R: 255, G: 255, B: 255, A: 90}
	hoverOK    = color.RGBA{R: 90, G: 220, B: 90, A: 200}
	hoverBad   = color.RGBA{R: 220, G: 80, B: 80, A: 200}
	chargePip  = color.RGBA{R: 255, G: 250, B: 150, A: 255}
	fallbackFg = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// FieldView draws the moving parts of a snapshot over the cached grid.
type FieldView struct {
	palette  render.Palette
	cellSize float32
	colors   map[string]color.RGBA
}

func NewFieldView(palette render.Palette, cellSize float64) *FieldView {
	return &FieldView{
		palette:  palette,
		cellSize: float32(cellSize),
		colors:   make(map[string]color.RGBA),
	}
}

// enemyColor parses and caches the tier colours.
func (f *FieldView) enemyColor(hex string) color.RGBA {
	if c, ok := f.colors[hex]; ok {
		return c
	}
	c, err := render.ParseHex(hex)
	if err != nil {
		c = fallbackFg
	}
	f.colors[hex] = c
	return c
}

// Hover describes the cell under the cursor while placing.
type Hover struct {
	X, Y int
	OK   bool
	Show bool
}

func (f *FieldView) Draw(screen *ebiten.Image, s *app.Snapshot, selected *app.TurretView, hover Hover) {
	for i := range s.Turrets {
		f.drawTurret(screen, &s.Turrets[i])
	}
	for _, e := range s.Enemies {
		f.drawEnemy(screen, e)
	}
	for _, p := range s.Projectiles {
		f.drawProjectile(screen, p)
	}
	for _, h := range s.Hostiles {
		vector.DrawFilledCircle(screen, float32(h.Pos.X), float32(h.Pos.Y), 3, f.palette.Hostile, true)
	}

	if selected != nil {
		x, y := float32(selected.Pos.X), float32(selected.Pos.Y)
		if selected.Range > 0 {
			vector.StrokeCircle(screen, x, y, float32(selected.Range), 1, rangeRing, true)
		}
		if selected.MinRange > 0 {
			vector.StrokeCircle(screen, x, y, float32(selected.MinRange), 1, rangeRing, true)
		}
		cx, cy := float32(selected.X)*f.cellSize, float32(selected.Y)*f.cellSize
		vector.StrokeRect(screen, cx, cy, f.cellSize, f.cellSize, 2, color.White, true)
	}
	if hover.Show {
		c := hoverBad
		if hover.OK {
			c = hoverOK
		}
		vector.StrokeRect(screen, float32(hover.X)*f.cellSize, float32(hover.Y)*f.cellSize, f.cellSize, f.cellSize, 2, c, true)
	}
}

func (f *FieldView) drawTurret(screen *ebiten.Image, t *app.TurretView) {
	c := f.palette.Turret(int(t.Archetype))
	if t.Dead {
		c = render.DarkenColor(c)
	}
	inset := f.cellSize * 0.15
	x := float32(t.X)*f.cellSize + inset
	y := float32(t.Y)*f.cellSize + inset
	size := f.cellSize - 2*inset
	vector.DrawFilledRect(screen, x, y, size, size, c, true)
	vector.StrokeRect(screen, x, y, size, size, 1, render.LightenColor(c, 40), true)

	px, py := float32(t.Pos.X), float32(t.Pos.Y)
	switch t.Archetype {
	case defs.Laser:
		dx, dy := float32(math.Cos(t.Heading)), float32(math.Sin(t.Heading))
		vector.StrokeLine(screen, px, py, px+dx*size*0.6, py+dy*size*0.6, 3, render.DarkenColor(c), true)
	case defs.Zapper, defs.Repair:
		pips := int(t.Charge)
		for i := range pips {
			vector.DrawFilledCircle(screen, x+4+float32(i%5)*6, y+size-4-float32(i/5)*6, 2, chargePip, true)
		}
	}

	if t.MaxHP > 0 && t.HP < t.MaxHP {
		frac := float32(max(t.HP, 0) / t.MaxHP)
		vector.DrawFilledRect(screen, x, y-5, size, 3, hpBack, false)
		vector.DrawFilledRect(screen, x, y-5, size*frac, 3, hpFront, false)
	}
}

func (f *FieldView) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	x, y, r := float32(e.Pos.X), float32(e.Pos.Y), float32(e.Size)
	vector.DrawFilledCircle(screen, x, y, r, f.enemyColor(e.Color), true)
	switch {
	case e.Burn > 0:
		vector.StrokeCircle(screen, x, y, r+1, 2, burnTint, true)
	case e.Cold > 0:
		vector.StrokeCircle(screen, x, y, r+1, 2, coldTint, true)
	}
	if e.Ranged {
		vector.DrawFilledCircle(screen, x, y, r*0.35, f.palette.Hostile, true)
	}
	if e.MaxHP > 0 && e.HP < e.MaxHP {
		frac := float32(max(e.HP, 0) / e.MaxHP)
		vector.DrawFilledRect(screen, x-r, y-r-5, 2*r, 3, hpBack, false)
		vector.DrawFilledRect(screen, x-r, y-r-5, 2*r*frac, 3, hpFront, false)
	}
}

func (f *FieldView) drawProjectile(screen *ebiten.Image, p app.ProjectileView) {
	x, y, r := float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius)
	switch {
	case p.Laser > 0:
		dir := p.Vel.Normalize()
		ex, ey := x+float32(dir.X*p.Laser), y+float32(dir.Y*p.Laser)
		vector.StrokeLine(screen, x, y, ex, ey, max(r, 1)*2, f.palette.Laser, true)
	case p.Bomb:
		vector.DrawFilledCircle(screen, x, y, r, f.palette.Bomb, true)
		vector.StrokeCircle(screen, x, y, r, 1, color.White, true)
	case p.Fire:
		vector.DrawFilledCircle(screen, x, y, r, f.palette.Fire, true)
	default:
		vector.DrawFilledCircle(screen, x, y, r, f.palette.Turret(int(p.Source)), true)
	}
}
