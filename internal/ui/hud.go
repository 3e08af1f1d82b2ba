// internal/ui/hud.go
package ui

import (
	"fmt"
	"strings"

	"go-fog-of-war/internal/config"
	"go-fog-of-war/internal/perf"
	"go-fog-of-war/pkg/fog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// HUD — отладочная панель в левом верхнем углу.
type HUD struct {
	Visible   bool
	fadeWidth float32
	lines     []string
}

func NewHUD(fadeWidth float32) *HUD {
	return &HUD{Visible: true, fadeWidth: fadeWidth}
}

// Toggle переключает видимость и возвращает новое состояние.
func (h *HUD) Toggle() bool {
	h.Visible = !h.Visible
	return h.Visible
}

// Draw рисует панель. Туман уже нарисован, поэтому текст всегда читаем.
// ground описывает клетку под игроком.
func (h *HUD) Draw(screen *ebiten.Image, p fog.Params, stats perf.Stats, ground string) {
	if !h.Visible {
		return
	}
	h.lines = append(h.lines[:0],
		fmt.Sprintf("FPS %.1f  avg %.2fms  max %.2fms", stats.FPS, ms(stats.AvgFrame.Seconds()), ms(stats.MaxFrame.Seconds())),
		fmt.Sprintf("player (%.0f, %.0f)  on %s", p.PlayerPos[0], p.PlayerPos[1], ground),
		fmt.Sprintf("vision %.0f  fade %.0f", p.VisionRadius, h.fadeWidth),
		"WASD/arrows move  +/- radius  P pause  F2 hud",
	)
	ebitenutil.DebugPrintAt(screen, strings.Join(h.lines, "\n"), config.HUDMarginX, config.HUDMarginY)
}

func ms(seconds float64) float64 {
	return seconds * 1000
}
