// Package snapshot turns CPU fog masks into viewable PNG files.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

var (
	checkerLight = color.RGBA{200, 200, 200, 255}
	checkerDark  = color.RGBA{140, 140, 140, 255}
)

// Checkerboard returns an opaque checkerboard of the given bounds.
func Checkerboard(b image.Rectangle, cell int) *image.RGBA {
	if cell <= 0 {
		cell = 16
	}
	img := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := checkerLight
			if ((x-b.Min.X)/cell+(y-b.Min.Y)/cell)%2 == 1 {
				c = checkerDark
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Composite draws mask over a checkerboard so the fade can be seen in any
// image viewer.
func Composite(mask *image.RGBA, cell int) *image.RGBA {
	dst := Checkerboard(mask.Bounds(), cell)
	draw.Draw(dst, dst.Bounds(), mask, mask.Bounds().Min, draw.Over)
	return dst
}

// Scale resizes img by an integer factor with Catmull-Rom filtering.
func Scale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Prepare optionally flattens mask over a checkerboard, then scales it once.
func Prepare(mask *image.RGBA, composite bool, scale int) image.Image {
	var img image.Image = mask
	if composite {
		img = Composite(mask, 16)
	}
	return Scale(img, scale)
}

// WritePNG encodes img to path, creating parent directories.
func WritePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("snapshot: cannot create directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	return f.Close()
}
