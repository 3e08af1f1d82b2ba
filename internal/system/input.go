// internal/system/input.go
package system

// Input — источник управления. Системы не знают про ebiten, реализация
// с клавиатурой живёт в state.
type Input interface {
	// MoveAxis возвращает желаемое направление движения, компоненты в [-1, 1].
	MoveAxis() (dx, dy float64)
}

// Bounds — прямоугольная область мира, в которой может находиться игрок.
type Bounds interface {
	Bounds() (minX, minY, maxX, maxY float64)
}
