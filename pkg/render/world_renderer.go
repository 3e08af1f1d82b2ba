// pkg/render/world_renderer.go
package render

import (
	"image/color"

	"go-fog-of-war/internal/world"
	"go-fog-of-war/pkg/fog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/math/f32"
)

// WorldRenderer draws the tile map. The map is static, so it is rendered once
// into mapImage and then blitted with the camera offset every frame.
type WorldRenderer struct {
	tileMap  *world.TileMap
	palette  TilePalette
	mapImage *ebiten.Image
}

func NewWorldRenderer(tileMap *world.TileMap, palette TilePalette) *WorldRenderer {
	return &WorldRenderer{tileMap: tileMap, palette: palette}
}

// RenderMapImage (re)builds the cached map image.
func (r *WorldRenderer) RenderMapImage() {
	m := r.tileMap
	size := float32(m.TileSize)
	w, h := int(float32(m.Cols)*size), int(float32(m.Rows)*size)
	if r.mapImage != nil {
		r.mapImage.Deallocate()
	}
	r.mapImage = ebiten.NewImage(w, h)

	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			tile, _ := m.At(col, row)
			x, y := float32(col)*size, float32(row)*size
			vector.DrawFilledRect(r.mapImage, x, y, size, size, r.groundColor(tile), false)
			vector.StrokeRect(r.mapImage, x, y, size, size, 1, r.palette.GridLine, false)

			cx, cy := x+size/2, y+size/2
			switch tile {
			case world.Rock:
				vector.DrawFilledCircle(r.mapImage, cx, cy, size*0.3, r.palette.Rock, true)
				vector.StrokeCircle(r.mapImage, cx, cy, size*0.3, 2, DarkenColor(r.palette.Rock), true)
			case world.Tree:
				trunk := color.RGBA{90, 60, 30, 255}
				vector.DrawFilledRect(r.mapImage, cx-size*0.06, cy, size*0.12, size*0.35, trunk, false)
				vector.DrawFilledCircle(r.mapImage, cx, cy-size*0.08, size*0.32, r.palette.Tree, true)
			}
		}
	}
}

func (r *WorldRenderer) groundColor(t world.TileType) color.RGBA {
	switch t {
	case world.DryGrass:
		return r.palette.DryGrass
	case world.Dirt:
		return r.palette.Dirt
	default:
		// Под объектами тоже трава
		return r.palette.Grass
	}
}

// Draw draws the map as seen through v.
func (r *WorldRenderer) Draw(screen *ebiten.Image, v fog.View) {
	screen.Fill(r.palette.Background)
	if r.mapImage == nil {
		r.RenderMapImage()
	}
	x0, y0 := r.tileMap.Origin()
	sx, sy := v.WorldToScreen(f32.Vec2{float32(x0), float32(y0)})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(sx), float64(sy))
	screen.DrawImage(r.mapImage, op)
}

// DrawCircle draws a filled circle with an optional outline at a world position.
func DrawCircle(screen *ebiten.Image, v fog.View, x, y float64, radius float32, fill color.Color, stroke color.Color) {
	sx, sy := v.WorldToScreen(f32.Vec2{float32(x), float32(y)})
	if stroke != nil {
		vector.DrawFilledCircle(screen, sx, sy, radius+2, stroke, true)
	}
	vector.DrawFilledCircle(screen, sx, sy, radius, fill, true)
}
