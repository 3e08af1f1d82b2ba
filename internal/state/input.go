// internal/state/input.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// KeyboardInput читает WASD и стрелки.
type KeyboardInput struct{}

func (KeyboardInput) MoveAxis() (dx, dy float64) {
	if pressed(ebiten.KeyA, ebiten.KeyArrowLeft) {
		dx--
	}
	if pressed(ebiten.KeyD, ebiten.KeyArrowRight) {
		dx++
	}
	if pressed(ebiten.KeyW, ebiten.KeyArrowUp) {
		dy--
	}
	if pressed(ebiten.KeyS, ebiten.KeyArrowDown) {
		dy++
	}
	return dx, dy
}

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
