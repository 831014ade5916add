// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"
	"golang.org/x/image/font"
)

// NewGameFunc builds a fresh game screen.
type NewGameFunc func() (State, error)

// MenuState is the title screen and the screen shown after a game ends.
// Space starts a new game.
type MenuState struct {
	sm       *StateMachine
	title    string
	subtitle string
	large    font.Face
	regular  font.Face
	newGame  NewGameFunc
	log      *zap.Logger
	failed   string
}

func NewMenuState(sm *StateMachine, title, subtitle string, large, regular font.Face, newGame NewGameFunc, log *zap.Logger) *MenuState {
	return &MenuState{
		sm:       sm,
		title:    title,
		subtitle: subtitle,
		large:    large,
		regular:  regular,
		newGame:  newGame,
		log:      log,
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return
	}
	st, err := m.newGame()
	if err != nil {
		m.log.Error("could not start a game", zap.Error(err))
		m.failed = err.Error()
		return
	}
	m.sm.SetState(st)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 14, B: 18, A: 255})
	h := screen.Bounds().Dy()
	drawBanner(screen, m.large, m.title, h/2-40)
	if m.subtitle != "" {
		drawBanner(screen, m.regular, m.subtitle, h/2+10)
	}
	drawBanner(screen, m.regular, "Press Space to start", h/2+40)
	if m.failed != "" {
		text.Draw(screen, m.failed, m.regular, 10, h-10, color.RGBA{R: 230, G: 80, B: 80, A: 255})
	}
}

func (m *MenuState) Exit() {}

// drawBanner centres s horizontally with its baseline near y.
func drawBanner(screen *ebiten.Image, face font.Face, s string, y int) {
	b := text.BoundString(face, s)
	x := (screen.Bounds().Dx() - b.Dx()) / 2
	text.Draw(screen, s, face, x, y, color.White)
}
