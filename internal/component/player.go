// internal/component/player.go
package component

// Player помечает сущность, вокруг которой рассеивается туман.
type Player struct {
	VisionRadius float64 // радиус полной видимости
}
