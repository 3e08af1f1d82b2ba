// pkg/fog/evaluator.go
package fog

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/math/f32"
)

// Color is a straight-alpha RGBA value in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGBA converts c to an 8-bit color. The fog color is black, so the
// premultiplied and straight forms are the same.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: to8(c.R * c.A),
		G: to8(c.G * c.A),
		B: to8(c.B * c.A),
		A: to8(c.A),
	}
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Evaluator maps a fragment position to a fog color. FadeWidth is fixed for the
// lifetime of the evaluator. The zero value has no fade band and produces a hard
// edge at the vision radius.
type Evaluator struct {
	FadeWidth float32
}

// NewEvaluator returns an evaluator with the given fade width.
func NewEvaluator(fadeWidth float32) (Evaluator, error) {
	if !finite(fadeWidth) || fadeWidth <= 0 {
		return Evaluator{}, fmt.Errorf("%w: got %v", ErrInvalidFadeWidth, fadeWidth)
	}
	return Evaluator{FadeWidth: fadeWidth}, nil
}

// Alpha returns the fog opacity for a fragment at the given distance from the
// player: 0 inside the vision radius, 1 outside it, smooth in between. A fade
// width that is not a positive finite number gives a hard edge.
func (e Evaluator) Alpha(distance, radius float32) float32 {
	lower := radius - e.FadeWidth
	upper := radius + e.FadeWidth
	if !finite(e.FadeWidth) || e.FadeWidth <= 0 || lower >= upper {
		if distance < radius {
			return 0
		}
		return 1
	}
	if distance <= lower {
		return 0
	}
	if distance >= upper {
		return 1
	}
	// Position in the band measured from the radius, so distance == radius
	// maps to exactly 0.5 whatever the rounding of lower and upper.
	t := 0.5 + (distance-radius)/(2*e.FadeWidth)
	return hermite(t)
}

// Fragment evaluates one fragment.
func (e Evaluator) Fragment(pos f32.Vec2, p Params) Color {
	return Color{A: e.Alpha(Distance(pos, p.PlayerPos), p.VisionRadius)}
}

// hermite is the smoothstep polynomial 3t²-2t³ with t clamped to [0, 1].
func hermite(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b f32.Vec2) float32 {
	return float32(math.Hypot(float64(a[0]-b[0]), float64(a[1]-b[1])))
}
