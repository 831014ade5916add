// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-path-defense/internal/app"
	"go-path-defense/internal/defs"
)

const (
	panelMargin    = 5
	animationSpeed = 24.0
	lineHeight     = 18
	upgradeHeight  = 24
)

// UpgradeKeys are the hotkeys for a turret's upgrades, in table order.
var UpgradeKeys = []ebiten.Key{
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyR, ebiten.KeyT, ebiten.KeyY, ebiten.KeyU,
}

const upgradeKeyNames = "QWERTYU"

// PanelAction is what a click on the panel asks for.
type PanelAction struct {
	Sell    bool
	Upgrade defs.Upgrade
}

// InfoPanel shows the selected turret with its upgrade and sell buttons.
// It slides up from the bottom of the sidebar.
type InfoPanel struct {
	IsVisible    bool
	CellX, CellY int

	x, width  int
	bottom    float64
	currentY  float64
	targetY   float64
	height    int
	fontFace  font.Face
	titleFace font.Face

	upgrades []defs.Upgrade
	buttons  []Button
	sell     Button
}

func NewInfoPanel(x, width int, top, bottom float64, face, titleFace font.Face) *InfoPanel {
	return &InfoPanel{
		x:         x,
		width:     width,
		bottom:    bottom,
		currentY:  bottom,
		targetY:   bottom,
		height:    int(bottom - top),
		fontFace:  face,
		titleFace: titleFace,
	}
}

// SetTarget selects the turret on cell (x, y).
func (p *InfoPanel) SetTarget(x, y int) {
	p.CellX, p.CellY = x, y
	p.IsVisible = true
	p.targetY = p.bottom - float64(p.height)
}

func (p *InfoPanel) Hide() {
	p.targetY = p.bottom
}

// Update advances the slide animation.
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
	if p.currentY >= p.bottom {
		p.IsVisible = false
	}
}

// Contains reports whether (x, y) is over the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && x >= p.x && x < p.x+p.width && float64(y) >= p.currentY
}

// Refresh rebuilds the buttons for turret v.
func (p *InfoPanel) Refresh(v app.TurretView, tables *defs.Tables, gold int) {
	def := tables.Turret(v.Archetype)
	if def == nil {
		return
	}
	owned := defs.UpgradeSet(0)
	for _, u := range v.Upgrades {
		owned = owned.With(u)
	}

	top := int(p.currentY) + panelMargin + 140
	inner := p.width - 2*panelMargin
	p.upgrades = p.upgrades[:0]
	p.buttons = p.buttons[:0]
	for i, up := range def.Upgrades {
		if i >= len(UpgradeKeys) {
			break
		}
		at := image.Pt(p.x+panelMargin, top+i*(upgradeHeight+2))
		_, err := tables.CheckUpgrade(v.Archetype, owned, up.ID)
		p.upgrades = append(p.upgrades, up.ID)
		p.buttons = append(p.buttons, Button{
			Rect:     image.Rectangle{Min: at, Max: at.Add(image.Pt(inner, upgradeHeight))},
			Text:     fmt.Sprintf("%c %s %dg", upgradeKeyNames[i], up.Name, up.Cost),
			Active:   owned.Has(up.ID),
			Disabled: !owned.Has(up.ID) && (err != nil || up.Cost > gold),
		})
	}
	sellTop := top + len(p.buttons)*(upgradeHeight+2) + 6
	at := image.Pt(p.x+panelMargin, sellTop)
	p.sell = Button{
		Rect: image.Rectangle{Min: at, Max: at.Add(image.Pt(inner, upgradeHeight))},
		Text: fmt.Sprintf("Sell +%dg", v.Refund),
	}
}

// HitTest maps a click to an action.
func (p *InfoPanel) HitTest(x, y int) (PanelAction, bool) {
	if !p.IsVisible {
		return PanelAction{}, false
	}
	if p.sell.Contains(x, y) {
		return PanelAction{Sell: true}, true
	}
	for i := range p.buttons {
		if p.buttons[i].Contains(x, y) && !p.buttons[i].Disabled && !p.buttons[i].Active {
			return PanelAction{Upgrade: p.upgrades[i]}, true
		}
	}
	return PanelAction{}, false
}

// UpgradeForKey returns the upgrade bound to hotkey index i.
func (p *InfoPanel) UpgradeForKey(i int) (defs.Upgrade, bool) {
	if !p.IsVisible || i < 0 || i >= len(p.upgrades) {
		return 0, false
	}
	return p.upgrades[i], true
}

func (p *InfoPanel) Draw(screen *ebiten.Image, v app.TurretView, def *defs.TurretDef, cx, cy int) {
	if !p.IsVisible || def == nil {
		return
	}
	rect := image.Rect(p.x, int(p.currentY), p.x+p.width, int(p.bottom))
	bg := color.RGBA{R: 25, G: 35, B: 45, A: 235}
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, true)
	vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), 2, buttonBorder, true)

	x := rect.Min.X + panelMargin + 4
	y := rect.Min.Y + panelMargin + 18
	text.Draw(screen, def.Name, p.titleFace, x, y, color.White)
	y += lineHeight + 4
	for _, line := range turretLines(v, def) {
		text.Draw(screen, line, p.fontFace, x, y, color.White)
		y += lineHeight
	}

	for i := range p.buttons {
		p.buttons[i].Draw(screen, p.fontFace, p.buttons[i].Contains(cx, cy))
	}
	p.sell.Draw(screen, p.fontFace, p.sell.Contains(cx, cy))
}

// turretLines lists the numbers worth showing for each archetype.
func turretLines(v app.TurretView, def *defs.TurretDef) []string {
	hp := fmt.Sprintf("HP %.1f/%.0f", max(v.HP, 0), v.MaxHP)
	if v.Dead {
		hp += " (down)"
	}
	lines := []string{hp}
	s := v.Stats
	switch v.Archetype {
	case defs.Basic, defs.Splash, defs.Flame:
		lines = append(lines, fmt.Sprintf("Range %.0f  Reload %.2fs  Dmg %.1f", s.Range, s.Cooldown, s.Damage))
	case defs.Slow:
		lines = append(lines, fmt.Sprintf("Range %.0f  Pulse %.2fs  Cold %.1f", s.Range, s.Cooldown, s.Cold))
	case defs.Zapper:
		lines = append(lines, fmt.Sprintf("Range %.0f  Charge %.1f/%.0f", s.Range, v.Charge, s.MaxCharge))
	case defs.Laser:
		lines = append(lines, fmt.Sprintf("Range %.0f  DPS %.1f  Turn %.1f", s.Range, s.DPS, s.TurnRate))
	case defs.Repair:
		lines = append(lines, fmt.Sprintf("Range %.0f  Parts %.1f/%.0f", s.Range, v.Charge, s.MaxCharge))
	case defs.Wall:
		lines = append(lines, fmt.Sprintf("Damage taken x%.2f", s.DamageTaken))
	}
	names := make([]string, len(v.Upgrades))
	for i, u := range v.Upgrades {
		names[i] = u.String()
	}
	lines = append(lines, fmt.Sprintf("Upgrades %d/%d %s", len(v.Upgrades), def.MaxUpgrades, strings.Join(names, ",")))
	lines = append(lines, fmt.Sprintf("Invested %dg", v.Invested))
	return lines
}
