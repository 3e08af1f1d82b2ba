// internal/component/camera.go
package component

// Camera — точка мира в центре экрана.
type Camera struct {
	X, Y       float64
	FollowLerp float64 // доля расстояния до цели, проходимая за кадр
	PixelSnap  bool
}
