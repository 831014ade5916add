// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"go-path-defense/internal/app"
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/interfaces"
	"go-path-defense/internal/ui"
	"go-path-defense/pkg/render"
)

var archetypeKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8,
}

// GameState is the playing screen: the field on the left and the HUD
// column on the right.
type GameState struct {
	sm      *StateMachine
	sim     interfaces.Simulation
	tables  *defs.Tables
	fonts   ui.Fonts
	palette render.Palette
	log     *zap.Logger
	newGame NewGameFunc

	maxLives int
	fieldW   int
	fieldH   int
	cellSize float64
	layout   app.Layout

	grid      *ui.GridRenderer
	field     *ui.FieldView
	indicator *ui.StateIndicator
	speed     *ui.SpeedButton
	pause     *ui.PauseButton
	wave      *ui.WaveIndicator
	lives     *ui.LivesIndicator
	shop      *ui.ShopBar
	ledger    *ui.LedgerChart
	infoPanel *ui.InfoPanel

	build defs.Archetype
	snap  app.Snapshot
}

func NewGameState(sm *StateMachine, sim interfaces.Simulation, tables *defs.Tables, fonts ui.Fonts, maxLives int, newGame NewGameFunc, log *zap.Logger) *GameState {
	layout := sim.Layout()
	palette := render.DefaultPalette()
	fieldW, fieldH := int(layout.Width), int(layout.Height)

	grid := ui.NewGridRenderer(fieldW, fieldH, palette)
	grid.RenderMapImage(layout.CellSize, layout.Blocked, layout.Route)

	x0 := fieldW + 10
	inner := ui.SidebarWidth - 20
	lives := ui.NewLivesIndicator(float32(x0), 110, float32(inner), fonts.Regular)
	shopY := 110 + int(lives.Height()) + 10
	shop := ui.NewShopBar(x0, shopY, inner, tables, fonts.Regular, palette)
	ledgerY := shopY + shop.Height() + 10
	ledger := ui.NewLedgerChart(float32(x0), float32(ledgerY), float32(inner), fonts.Regular, palette)
	panelTop := float64(ledgerY) + float64(ledger.Height()) + 10

	return &GameState{
		sm:        sm,
		sim:       sim,
		tables:    tables,
		fonts:     fonts,
		palette:   palette,
		log:       log,
		newGame:   newGame,
		maxLives:  maxLives,
		fieldW:    fieldW,
		fieldH:    fieldH,
		cellSize:  layout.CellSize,
		layout:    layout,
		grid:      grid,
		field:     ui.NewFieldView(palette, layout.CellSize),
		indicator: ui.NewStateIndicator(float32(x0+20), 30, 14),
		speed:     ui.NewSpeedButton(float32(x0+75), 30, 10),
		pause:     ui.NewPauseButton(float32(x0+120), 30, 9),
		wave:      ui.NewWaveIndicator(float32(x0), 56, float32(inner), fonts.Large),
		lives:     lives,
		shop:      shop,
		ledger:    ledger,
		infoPanel: ui.NewInfoPanel(x0-5, inner+10, panelTop, float64(fieldH), fonts.Regular, fonts.Title),
		snap:      sim.Snapshot(),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.infoPanel.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.openPause()
		return
	}
	g.handleKeys()

	g.sim.Advance(deltaTime)
	g.snap = g.sim.Snapshot()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if x >= g.fieldW {
			g.handleUIClick(x, y)
		} else {
			g.handleFieldClick(x, y, ebiten.MouseButtonLeft)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		if x < g.fieldW {
			g.handleFieldClick(x, y, ebiten.MouseButtonRight)
		}
	}

	g.refreshPanel()

	if g.snap.State == component.DeadState || g.snap.Won {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.sm.SetState(g.endScreen())
		}
	}
}

func (g *GameState) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.startWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.toggleFast()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.infoPanel.Hide()
	}
	for i, k := range archetypeKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.build = defs.Archetype(i)
		}
	}
	if !g.infoPanel.IsVisible {
		return
	}
	for i, k := range ui.UpgradeKeys {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		if u, ok := g.infoPanel.UpgradeForKey(i); ok {
			g.upgrade(u)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) || inpututil.IsKeyJustPressed(ebiten.KeyDelete) {
		g.sell(g.infoPanel.CellX, g.infoPanel.CellY)
	}
}

func (g *GameState) handleUIClick(x, y int) {
	switch {
	case g.indicator.Contains(x, y):
		g.startWave()
	case g.speed.Contains(x, y):
		g.toggleFast()
	case g.pause.Contains(x, y):
		g.pause.HandleClick()
		g.openPause()
	case g.infoPanel.Contains(x, y):
		action, ok := g.infoPanel.HitTest(x, y)
		if !ok {
			return
		}
		if action.Sell {
			g.sell(g.infoPanel.CellX, g.infoPanel.CellY)
		} else {
			g.upgrade(action.Upgrade)
		}
	default:
		if a, ok := g.shop.HitTest(x, y); ok {
			g.build = a
		}
	}
}

// handleFieldClick selects a turret or places one on a free cell with the
// left button and sells with the right one.
func (g *GameState) handleFieldClick(x, y int, button ebiten.MouseButton) {
	cx, cy := g.cellAt(x, y)
	if button == ebiten.MouseButtonRight {
		g.sell(cx, cy)
		return
	}
	if _, ok := g.sim.TurretAt(cx, cy); ok {
		g.infoPanel.SetTarget(cx, cy)
		return
	}
	if g.sim.PlaceTurret(cx, cy, g.build) {
		g.log.Debug("turret placed", zap.Int("x", cx), zap.Int("y", cy), zap.Stringer("archetype", g.build))
		g.infoPanel.SetTarget(cx, cy)
	} else {
		g.infoPanel.Hide()
	}
	g.snap = g.sim.Snapshot()
}

func (g *GameState) cellAt(x, y int) (int, int) {
	cs := int(g.cellSize)
	return x / cs, y / cs
}

func (g *GameState) startWave() {
	if g.sim.StartWave() {
		g.indicator.HandleClick()
		g.snap = g.sim.Snapshot()
	}
}

func (g *GameState) toggleFast() {
	g.sim.SetFastMode(!g.sim.FastMode())
	g.speed.HandleClick()
}

func (g *GameState) upgrade(u defs.Upgrade) {
	if g.sim.PurchaseUpgrade(g.infoPanel.CellX, g.infoPanel.CellY, u) {
		g.snap = g.sim.Snapshot()
	}
}

func (g *GameState) sell(x, y int) {
	if g.sim.SellTurret(x, y) {
		if g.infoPanel.IsVisible && g.infoPanel.CellX == x && g.infoPanel.CellY == y {
			g.infoPanel.Hide()
		}
		g.snap = g.sim.Snapshot()
	}
}

// refreshPanel keeps the panel in sync with the selected turret.
func (g *GameState) refreshPanel() {
	if !g.infoPanel.IsVisible {
		return
	}
	v, ok := g.sim.TurretAt(g.infoPanel.CellX, g.infoPanel.CellY)
	if !ok {
		g.infoPanel.Hide()
		return
	}
	g.infoPanel.Refresh(v, g.tables, g.snap.Gold)
}

func (g *GameState) openPause() {
	g.sm.SetState(NewPauseState(g.sm, g, g.fonts.Large))
}

func (g *GameState) endScreen() State {
	title, subtitle := "DEFEATED", fmt.Sprintf("The line broke on wave %d", g.snap.Wave)
	if g.snap.Won {
		title, subtitle = "VICTORY", fmt.Sprintf("Held through wave %d", g.snap.Wave-1)
	}
	return NewMenuState(g.sm, title, subtitle, g.fonts.Large, g.fonts.Regular, g.newGame, g.log)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)
	g.grid.Draw(screen)

	var selected *app.TurretView
	if g.infoPanel.IsVisible {
		if v, ok := g.sim.TurretAt(g.infoPanel.CellX, g.infoPanel.CellY); ok {
			selected = &v
		}
	}
	g.field.Draw(screen, &g.snap, selected, g.hover())
	g.drawSidebar(screen, selected)

	switch {
	case g.snap.Won:
		g.drawOverlay(screen, "VICTORY", "Press Enter")
	case g.snap.State == component.DeadState:
		g.drawOverlay(screen, "DEFEATED", "Press Enter")
	}
}

// hover outlines the cell under the cursor in build colours.
func (g *GameState) hover() ui.Hover {
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= g.fieldW || y >= g.fieldH {
		return ui.Hover{}
	}
	cx, cy := g.cellAt(x, y)
	def := g.tables.Turret(g.build)
	ok := def != nil && def.Cost <= g.snap.Gold
	for _, t := range g.snap.Turrets {
		if t.X == cx && t.Y == cy {
			return ui.Hover{}
		}
	}
	if cy < len(g.layout.Blocked) && cx < len(g.layout.Blocked[cy]) && g.layout.Blocked[cy][cx] {
		ok = false
	}
	return ui.Hover{X: cx, Y: cy, OK: ok, Show: true}
}

func (g *GameState) drawSidebar(screen *ebiten.Image, selected *app.TurretView) {
	vector.DrawFilledRect(screen, float32(g.fieldW), 0, ui.SidebarWidth, float32(g.fieldH), color.RGBA{R: 16, G: 20, B: 26, A: 255}, false)

	stateColor := g.palette.Build
	switch g.snap.State {
	case component.WaveState:
		stateColor = g.palette.Wave
	case component.DeadState:
		stateColor = g.palette.Dead
	}
	g.indicator.Draw(screen, stateColor)
	g.speed.Draw(screen, g.snap.FastMode)
	g.pause.Draw(screen, false)

	progress := -1.0
	if g.snap.State == component.WaveState {
		progress = g.snap.WaveProgress
	}
	g.wave.Draw(screen, g.snap.Wave, progress)
	g.lives.Draw(screen, g.snap.Lives, g.maxLives, g.snap.Gold)

	cx, cy := ebiten.CursorPosition()
	g.shop.Draw(screen, g.snap.Gold, g.build, cx, cy)
	g.ledger.Draw(screen, g.snap.Ledger)
	if selected != nil {
		g.infoPanel.Draw(screen, *selected, g.tables.Turret(selected.Archetype), cx, cy)
	}
}

func (g *GameState) drawOverlay(screen *ebiten.Image, title, hint string) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.fieldW), float32(g.fieldH), color.RGBA{A: 110}, false)
	drawBanner(screen, g.fonts.Large, title, g.fieldH/2)
	drawBanner(screen, g.fonts.Regular, hint, g.fieldH/2+30)
}

func (g *GameState) Exit() {}
