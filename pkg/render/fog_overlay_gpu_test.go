//go:build gpu

package render

import (
	"context"
	"errors"
	"image"
	"os"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"

	"go-fog-of-war/pkg/fog"
)

const (
	frameWidth  = 160
	frameHeight = 120
)

var (
	frameParams = fog.Params{PlayerPos: f32.Vec2{37, -12}, VisionRadius: 45}
	frameView   = fog.View{Center: f32.Vec2{20, 5}, Width: frameWidth, Height: frameHeight}
)

// offscreenFrame renders the overlay once inside the game loop and stops it.
// Ebiten only reads pixels back while the loop is running.
type offscreenFrame struct {
	evaluator fog.Evaluator
	pixels    []byte
	err       error
}

func (f *offscreenFrame) Update() error {
	overlay, err := NewFogOverlay(f.evaluator)
	if err != nil {
		f.err = err
		return ebiten.Termination
	}
	defer overlay.Dispose()

	img := ebiten.NewImage(frameWidth, frameHeight)
	defer img.Deallocate()
	overlay.Draw(img, frameParams, frameView)

	f.pixels = make([]byte, 4*frameWidth*frameHeight)
	img.ReadPixels(f.pixels)
	return ebiten.Termination
}

func (f *offscreenFrame) Draw(screen *ebiten.Image) {}

func (f *offscreenFrame) Layout(int, int) (int, int) {
	return frameWidth, frameHeight
}

var gpuFrame = &offscreenFrame{}

// The game loop has to own the main thread, so the frame is rendered before
// the tests run and the tests only inspect the result.
func TestMain(m *testing.M) {
	e, err := fog.NewEvaluator(fog.DefaultFadeWidth)
	if err != nil {
		panic(err)
	}
	gpuFrame.evaluator = e

	ebiten.SetWindowSize(frameWidth, frameHeight)
	ebiten.SetWindowTitle("fog overlay test")
	if err := ebiten.RunGame(gpuFrame); err != nil && !errors.Is(err, ebiten.Termination) {
		gpuFrame.err = err
	}
	os.Exit(m.Run())
}

func TestFogShaderCompiles(t *testing.T) {
	require.NoError(t, gpuFrame.err)
	require.Len(t, gpuFrame.pixels, 4*frameWidth*frameHeight)
}

func TestFogOverlayMatchesMaskRenderer(t *testing.T) {
	require.NoError(t, gpuFrame.err)

	cpu, err := fog.NewMaskRenderer(gpuFrame.evaluator).NewMask(context.Background(), frameParams, frameView)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, frameWidth, frameHeight), cpu.Bounds())

	for y := 0; y < frameHeight; y++ {
		for x := 0; x < frameWidth; x++ {
			i := cpu.PixOffset(x, y)
			gpu := gpuFrame.pixels[i : i+4]
			want := cpu.Pix[i : i+4]
			// Fog is black: colour channels stay zero, alpha follows the evaluator.
			assert.LessOrEqual(t, gpu[0], uint8(1), "red at (%d, %d)", x, y)
			if !assert.InDelta(t, int(want[3]), int(gpu[3]), 2, "alpha at (%d, %d)", x, y) {
				return
			}
		}
	}
}
