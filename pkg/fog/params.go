// pkg/fog/params.go
package fog

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
)

// DefaultFadeWidth is the half-width of the soft band around the vision radius.
const DefaultFadeWidth float32 = 40.0

var (
	// ErrInvalidParams is returned when a per-frame parameter record is unusable.
	ErrInvalidParams = errors.New("fog: invalid params")
	// ErrInvalidFadeWidth is returned by NewEvaluator for a non-positive fade width.
	ErrInvalidFadeWidth = errors.New("fog: fade width must be positive")
)

// Params is the per-frame parameter record. Field order matches the uniform
// block the shader consumes: a two-float position followed by one float.
type Params struct {
	PlayerPos    f32.Vec2
	VisionRadius float32
}

// Validate reports whether p can be evaluated.
func (p Params) Validate() error {
	if !finite(p.PlayerPos[0]) || !finite(p.PlayerPos[1]) {
		return fmt.Errorf("%w: player position (%v, %v) is not finite", ErrInvalidParams, p.PlayerPos[0], p.PlayerPos[1])
	}
	if !finite(p.VisionRadius) {
		return fmt.Errorf("%w: vision radius %v is not finite", ErrInvalidParams, p.VisionRadius)
	}
	if p.VisionRadius < 0 {
		return fmt.Errorf("%w: vision radius %v is negative", ErrInvalidParams, p.VisionRadius)
	}
	return nil
}

// Uniforms returns p in the form expected by ebiten's shader options.
func (p Params) Uniforms() map[string]any {
	return map[string]any{
		"PlayerPos":    []float32{p.PlayerPos[0], p.PlayerPos[1]},
		"VisionRadius": p.VisionRadius,
	}
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
