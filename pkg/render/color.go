// pkg/render/color.go
package render

import "image/color"

// TilePalette holds all the color definitions needed to render the static map.
type TilePalette struct {
	Background color.RGBA
	Grass      color.RGBA
	DryGrass   color.RGBA
	Dirt       color.RGBA
	Rock       color.RGBA
	Tree       color.RGBA
	GridLine   color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
