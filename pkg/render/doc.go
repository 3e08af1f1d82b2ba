// Package render draws the world, the entities and the fog overlay with Ebiten.
//
// The fog overlay runs the same evaluation as fog.Evaluator on the GPU. Tests
// that need a display are behind the gpu build tag:
//
//	go test -tags gpu ./pkg/render
//
// They compile the fog shader, render one frame offscreen and compare it pixel
// by pixel with fog.MaskRenderer.
package render
