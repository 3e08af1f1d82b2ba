// pkg/fog/view.go
package fog

import (
	"image"

	"golang.org/x/image/math/f32"
)

// View describes the part of the world visible on screen. Center is the world
// position shown in the middle of a Width x Height screen. World and screen axes
// point the same way (y down), only the origin differs.
type View struct {
	Center        f32.Vec2
	Width, Height int
}

// Bounds returns the screen rectangle of the view.
func (v View) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.Width, v.Height)
}

// ScreenToWorld converts a screen position to world space.
func (v View) ScreenToWorld(sx, sy float32) f32.Vec2 {
	return f32.Vec2{
		v.Center[0] + sx - float32(v.Width)/2,
		v.Center[1] + sy - float32(v.Height)/2,
	}
}

// WorldToScreen converts a world position to screen space.
func (v View) WorldToScreen(w f32.Vec2) (float32, float32) {
	return w[0] - v.Center[0] + float32(v.Width)/2,
		w[1] - v.Center[1] + float32(v.Height)/2
}
