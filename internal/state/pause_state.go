// internal/state/pause_state.go
package state

import (
	"go-fog-of-war/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию и рисует затемнённый кадр игры.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	s.previousState.Game().SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	// Кадры паузы тоже идут в статистику
	s.previousState.Game().RecordFrame(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.stateMachine.RequestQuit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), config.PauseShade, false)

	const pauseText = "PAUSED"
	// DebugPrint рисует глифы 6x16
	x := (b.Dx() - len(pauseText)*6) / 2
	y := b.Dy()/2 - 8
	ebitenutil.DebugPrintAt(screen, pauseText, x, y)
}

func (s *PauseState) Exit() {
	s.previousState.Game().SetPaused(false)
}
