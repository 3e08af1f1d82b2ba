// internal/state/menu_state.go
package state

import (
	game "go-fog-of-war/internal/app"
	"go-fog-of-war/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var menuLines = []string{
	"FOG OF WAR",
	"",
	"WASD / arrows  move",
	"+ / -          vision radius",
	"F2             toggle HUD",
	"P / Esc        pause",
	"Q              quit",
	"",
	"press Space to start",
}

// MenuState — стартовый экран со списком клавиш
type MenuState struct {
	sm   *StateMachine
	game *game.Game
}

func NewMenuState(sm *StateMachine, g *game.Game) *MenuState {
	return &MenuState{sm: sm, game: g}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		m.sm.RequestQuit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.game))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	b := screen.Bounds()
	y := b.Dy()/2 - len(menuLines)*16/2
	for _, line := range menuLines {
		ebitenutil.DebugPrintAt(screen, line, (b.Dx()-len(line)*6)/2, y)
		y += 16
	}
}

func (m *MenuState) Exit() {}
