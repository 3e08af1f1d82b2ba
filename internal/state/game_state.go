// internal/state/game_state.go
package state

import (
	game "go-fog-of-war/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что GameState соответствует интерфейсу State
var _ State = (*GameState)(nil)

// GameState — состояние игры
type GameState struct {
	sm   *StateMachine
	game *game.Game
}

func NewGameState(sm *StateMachine, g *game.Game) *GameState {
	return &GameState{sm: sm, game: g}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.game.RecordFrame(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.sm.RequestQuit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.game.ToggleHUD()
	}

	// Радиус обзора: +/- на основной клавиатуре и на цифровом блоке
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.game.AdjustVisionRadius(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.game.AdjustVisionRadius(-1)
	}

	g.game.Update(deltaTime)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.Draw(screen)
}

func (g *GameState) Exit() {}

// Game возвращает игровую логику, которой управляет состояние
func (g *GameState) Game() *game.Game {
	return g.game
}
