package fog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
)

func defaultEvaluator(t *testing.T) Evaluator {
	t.Helper()
	e, err := NewEvaluator(DefaultFadeWidth)
	require.NoError(t, err)
	return e
}

func TestAlphaExamples(t *testing.T) {
	e := defaultEvaluator(t)
	p := Params{VisionRadius: 100}

	tests := []struct {
		name     string
		pos      f32.Vec2
		expected float32
	}{
		{name: "at player", pos: f32.Vec2{0, 0}, expected: 0},
		{name: "at lower bound", pos: f32.Vec2{60, 0}, expected: 0},
		{name: "at radius", pos: f32.Vec2{0, 100}, expected: 0.5},
		{name: "at upper bound", pos: f32.Vec2{-140, 0}, expected: 1},
		{name: "beyond upper bound", pos: f32.Vec2{0, -200}, expected: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := e.Fragment(tc.pos, p)
			assert.Equal(t, tc.expected, c.A)
			assert.Zero(t, c.R)
			assert.Zero(t, c.G)
			assert.Zero(t, c.B)
		})
	}
}

func TestAlphaExactHalfAtRadius(t *testing.T) {
	e := defaultEvaluator(t)
	// Radii whose band edges do not round evenly in float32.
	for _, radius := range []float32{123.456, 0.3, 33.3, 319.9, 1e7, 7777.77} {
		assert.Equal(t, float32(0.5), e.Alpha(radius, radius), "radius %v", radius)
	}
}

func TestAlphaHardEdgeNeverNaN(t *testing.T) {
	e := Evaluator{FadeWidth: float32(math.NaN())}
	c := e.Fragment(f32.Vec2{50, 0}, Params{VisionRadius: 100})
	assert.Equal(t, float32(0), c.A)
	assert.Equal(t, uint8(0), c.RGBA().A)

	c = e.Fragment(f32.Vec2{150, 0}, Params{VisionRadius: 100})
	assert.Equal(t, uint8(255), c.RGBA().A)
}

func TestAlphaDiagonalDistance(t *testing.T) {
	e := defaultEvaluator(t)
	// 3-4-5 triangle scaled to the radius.
	p := Params{PlayerPos: f32.Vec2{10, 20}, VisionRadius: 100}
	c := e.Fragment(f32.Vec2{70, 100}, p)
	assert.Equal(t, float32(0.5), c.A)
}

func TestAlphaExactOutsideBand(t *testing.T) {
	e := defaultEvaluator(t)
	const radius = 250

	for d := float32(0); d < radius-DefaultFadeWidth; d += 3.7 {
		require.Equal(t, float32(0), e.Alpha(d, radius), "distance %v", d)
	}
	for d := float32(radius + DefaultFadeWidth + 0.01); d < 2000; d += 11.3 {
		require.Equal(t, float32(1), e.Alpha(d, radius), "distance %v", d)
	}
}

func TestAlphaMonotonic(t *testing.T) {
	e := defaultEvaluator(t)
	prev := float32(-1)
	for d := float32(0); d <= 400; d += 0.25 {
		a := e.Alpha(d, 200)
		require.GreaterOrEqual(t, a, prev, "alpha decreased at distance %v", d)
		prev = a
	}
}

func TestAlphaSymmetry(t *testing.T) {
	e := defaultEvaluator(t)
	const radius = 320
	for d := float32(0); d <= DefaultFadeWidth; d += 0.5 {
		sum := e.Alpha(radius-d, radius) + e.Alpha(radius+d, radius)
		assert.InDelta(t, 1.0, sum, 1e-5, "d=%v", d)
	}
}

func TestAlphaZeroSlopeAtBounds(t *testing.T) {
	e := defaultEvaluator(t)
	const (
		radius = 100
		h      = 0.01
	)
	lower := float32(radius - DefaultFadeWidth)
	upper := float32(radius + DefaultFadeWidth)

	slope := func(x float32) float64 {
		return float64(e.Alpha(x+h, radius)-e.Alpha(x-h, radius)) / (2 * h)
	}

	assert.InDelta(t, 0, slope(lower), 1e-3)
	assert.InDelta(t, 0, slope(upper), 1e-3)
	// Steepest point sits at the radius: 3 / (2 * 2 * fade).
	assert.InDelta(t, 3.0/(4*float64(DefaultFadeWidth)), slope(radius), 1e-3)
}

func TestAlphaHardEdgeFallback(t *testing.T) {
	tests := []struct {
		name string
		e    Evaluator
	}{
		{name: "zero value", e: Evaluator{}},
		{name: "negative fade", e: Evaluator{FadeWidth: -5}},
		{name: "NaN fade", e: Evaluator{FadeWidth: float32(math.NaN())}},
		{name: "infinite fade", e: Evaluator{FadeWidth: float32(math.Inf(1))}},
		{name: "negative infinite fade", e: Evaluator{FadeWidth: float32(math.Inf(-1))}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, float32(0), tc.e.Alpha(0, 100))
			assert.Equal(t, float32(0), tc.e.Alpha(99.99, 100))
			assert.Equal(t, float32(1), tc.e.Alpha(100, 100))
			assert.Equal(t, float32(1), tc.e.Alpha(1000, 100))
			assert.False(t, math.IsNaN(float64(tc.e.Alpha(100, 100))))
		})
	}
}

func TestAlphaApproachesStepAsFadeShrinks(t *testing.T) {
	for _, fade := range []float32{10, 1, 0.1, 0.001} {
		e, err := NewEvaluator(fade)
		require.NoError(t, err)
		assert.Equal(t, float32(0), e.Alpha(100-2*fade, 100), "fade %v", fade)
		assert.Equal(t, float32(1), e.Alpha(100+2*fade, 100), "fade %v", fade)
	}
}

func TestAlphaZeroRadius(t *testing.T) {
	e := defaultEvaluator(t)
	// Band straddles zero, so even the player's own pixel is half fogged.
	assert.Equal(t, float32(0.5), e.Alpha(0, 0))
	assert.Equal(t, float32(1), e.Alpha(40, 0))
}

func TestNewEvaluatorRejectsBadFade(t *testing.T) {
	for _, fade := range []float32{0, -1, float32(math.NaN()), float32(math.Inf(1))} {
		_, err := NewEvaluator(fade)
		assert.ErrorIs(t, err, ErrInvalidFadeWidth, "fade %v", fade)
	}
}

func TestHermite(t *testing.T) {
	tests := []struct {
		name     string
		x        float32
		expected float32
	}{
		{name: "below", x: -1, expected: 0},
		{name: "lower edge", x: 0, expected: 0},
		{name: "quarter", x: 0.25, expected: 0.15625},
		{name: "middle", x: 0.5, expected: 0.5},
		{name: "three quarters", x: 0.75, expected: 0.84375},
		{name: "upper edge", x: 1, expected: 1},
		{name: "above", x: 2, expected: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, hermite(tc.x), 1e-6)
		})
	}
}

func TestColorRGBA(t *testing.T) {
	assert.Equal(t, uint8(0), Color{A: 0}.RGBA().A)
	assert.Equal(t, uint8(128), Color{A: 0.5}.RGBA().A)
	assert.Equal(t, uint8(255), Color{A: 1}.RGBA().A)

	c := Color{A: 0.7}.RGBA()
	assert.Zero(t, c.R)
	assert.Zero(t, c.G)
	assert.Zero(t, c.B)
}

func TestParamsValidate(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(-1))

	tests := []struct {
		name    string
		p       Params
		wantErr bool
	}{
		{name: "zero", p: Params{}},
		{name: "typical", p: Params{PlayerPos: f32.Vec2{-12, 400}, VisionRadius: 320}},
		{name: "negative radius", p: Params{VisionRadius: -1}, wantErr: true},
		{name: "nan radius", p: Params{VisionRadius: nan}, wantErr: true},
		{name: "inf position", p: Params{PlayerPos: f32.Vec2{inf, 0}, VisionRadius: 10}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidParams)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParamsUniforms(t *testing.T) {
	u := Params{PlayerPos: f32.Vec2{3, 4}, VisionRadius: 320}.Uniforms()
	assert.Equal(t, []float32{3, 4}, u["PlayerPos"])
	assert.Equal(t, float32(320), u["VisionRadius"])
	assert.Len(t, u, 2)
}
