// pkg/fog/mask.go
package fog

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultTileSize is the edge length of the square tiles a mask is split into.
const DefaultTileSize = 64

// ErrNilTarget is returned when Render is given no destination image.
var ErrNilTarget = errors.New("fog: nil render target")

// MaskRenderer evaluates the fog for every pixel of an image on the CPU.
// Tiles are rendered concurrently; each worker gets its own copy of the
// params and writes only to its own tile.
type MaskRenderer struct {
	Evaluator Evaluator
	Workers   int // <= 0: GOMAXPROCS
	TileSize  int // <= 0: DefaultTileSize
}

// NewMaskRenderer returns a renderer using all CPUs and the default tile size.
func NewMaskRenderer(e Evaluator) *MaskRenderer {
	return &MaskRenderer{Evaluator: e}
}

func (r *MaskRenderer) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (r *MaskRenderer) tileSize() int {
	if r.TileSize > 0 {
		return r.TileSize
	}
	return DefaultTileSize
}

// Render fills dst with the fog mask for p as seen through v. Pixel (x, y) of
// dst is evaluated at the world position of its centre.
func (r *MaskRenderer) Render(ctx context.Context, dst *image.RGBA, p Params, v View) error {
	if dst == nil {
		return ErrNilTarget
	}
	if err := p.Validate(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())

	for _, tile := range Tiles(dst.Bounds(), r.tileSize()) {
		if gctx.Err() != nil {
			break
		}
		tile := tile
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r.renderTile(dst, tile, p, v)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("render fog mask: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("render fog mask: %w", err)
	}
	return nil
}

func (r *MaskRenderer) renderTile(dst *image.RGBA, tile image.Rectangle, p Params, v View) {
	for y := tile.Min.Y; y < tile.Max.Y; y++ {
		for x := tile.Min.X; x < tile.Max.X; x++ {
			pos := v.ScreenToWorld(float32(x)+0.5, float32(y)+0.5)
			c := r.Evaluator.Fragment(pos, p).RGBA()
			i := dst.PixOffset(x, y)
			px := dst.Pix[i : i+4 : i+4]
			px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
		}
	}
}

// NewMask allocates a mask the size of v and renders it.
func (r *MaskRenderer) NewMask(ctx context.Context, p Params, v View) (*image.RGBA, error) {
	dst := image.NewRGBA(v.Bounds())
	if err := r.Render(ctx, dst, p, v); err != nil {
		return nil, err
	}
	return dst, nil
}

// Tiles splits b into disjoint squares of the given size, row by row. Tiles on
// the right and bottom edges are clipped to b.
func Tiles(b image.Rectangle, size int) []image.Rectangle {
	if size <= 0 || b.Empty() {
		return nil
	}
	var tiles []image.Rectangle
	for y := b.Min.Y; y < b.Max.Y; y += size {
		for x := b.Min.X; x < b.Max.X; x += size {
			tiles = append(tiles, image.Rect(x, y, x+size, y+size).Intersect(b))
		}
	}
	return tiles
}
