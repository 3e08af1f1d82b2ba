// pkg/render/fog_overlay.go
package render

import (
	_ "embed"
	"fmt"
	"math"

	"go-fog-of-war/pkg/fog"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/circular_fog.kage
var circularFogSrc []byte

// FogOverlay draws the fog of war on the GPU. It covers the whole screen with
// one quad whose source coordinates are world positions, so the shader sees
// each fragment's world position as srcPos.
type FogOverlay struct {
	shader    *ebiten.Shader
	evaluator fog.Evaluator
	vertices  []ebiten.Vertex
	indices   []uint16
	uniforms  map[string]any
}

// NewFogOverlay compiles the fog shader.
func NewFogOverlay(e fog.Evaluator) (*FogOverlay, error) {
	shader, err := ebiten.NewShader(circularFogSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create fog shader: %w", err)
	}
	return &FogOverlay{
		shader:    shader,
		evaluator: e,
		vertices:  make([]ebiten.Vertex, 4),
		indices:   []uint16{0, 1, 2, 1, 2, 3},
		uniforms:  make(map[string]any, 3),
	}, nil
}

// Draw composites the fog for p over screen. v must describe the same camera
// the scene underneath was drawn with.
func (o *FogOverlay) Draw(screen *ebiten.Image, p fog.Params, v fog.View) {
	w, h := float32(v.Width), float32(v.Height)
	corners := [4][2]float32{{0, 0}, {w, 0}, {0, h}, {w, h}}
	for i, c := range corners {
		world := v.ScreenToWorld(c[0], c[1])
		o.vertices[i] = ebiten.Vertex{
			DstX:   c[0],
			DstY:   c[1],
			SrcX:   world[0],
			SrcY:   world[1],
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}

	for k, val := range p.Uniforms() {
		o.uniforms[k] = val
	}
	o.uniforms["FadeWidth"] = o.fadeWidth()

	op := &ebiten.DrawTrianglesShaderOptions{}
	op.Uniforms = o.uniforms
	screen.DrawTrianglesShader(o.vertices, o.indices, o.shader, op)
}

// fadeWidth is the evaluator's width, or 0 (hard edge) when it is not a
// positive finite number.
func (o *FogOverlay) fadeWidth() float32 {
	w := o.evaluator.FadeWidth
	if math.IsNaN(float64(w)) || math.IsInf(float64(w), 0) || w <= 0 {
		return 0
	}
	return w
}

// Dispose releases the compiled shader.
func (o *FogOverlay) Dispose() {
	o.shader.Deallocate()
}
