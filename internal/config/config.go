// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

const (
	MaxDeltaTime = 0.06 // верхняя граница шага симуляции, сек

	DefaultScreenWidth  = 1200
	DefaultScreenHeight = 900
	DefaultVisionRadius = 320.0
	DefaultFadeWidth    = 40.0

	HUDMarginX = 8
	HUDMarginY = 8
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255} // за пределами карты чёрный, как туман
	GrassColor      = color.RGBA{74, 122, 58, 255}
	DryGrassColor   = color.RGBA{158, 150, 72, 255}
	DirtColor       = color.RGBA{110, 84, 56, 255}
	RockColor       = color.RGBA{120, 120, 128, 255}
	TreeColor       = color.RGBA{30, 78, 40, 255}
	PlayerColor     = color.RGBA{240, 220, 120, 255}
	PlayerStroke    = color.RGBA{20, 20, 30, 255}
	GridLineColor   = color.RGBA{0, 0, 0, 40}
	PauseShade      = color.RGBA{0, 0, 0, 128}
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config is the full runtime configuration, loaded from YAML.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Fog     FogConfig     `yaml:"fog"`
	Player  PlayerConfig  `yaml:"player"`
	Camera  CameraConfig  `yaml:"camera"`
	World   WorldConfig   `yaml:"world"`
	Mask    MaskConfig    `yaml:"mask"`
	Perf    PerfConfig    `yaml:"perf"`
	Storage StorageConfig `yaml:"storage"`
}

// WindowConfig defines the game window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// FogConfig defines the visibility mask.
type FogConfig struct {
	VisionRadius float64 `yaml:"vision_radius"`
	FadeWidth    float64 `yaml:"fade_width"`  // half-width of the soft band
	RadiusStep   float64 `yaml:"radius_step"` // +/- keys
	MaxRadius    float64 `yaml:"max_radius"`
}

// PlayerConfig defines the player entity.
type PlayerConfig struct {
	Speed  float64 `yaml:"speed"` // px/s
	Radius float64 `yaml:"radius"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// CameraConfig defines how the camera follows the player.
type CameraConfig struct {
	FollowLerp float64 `yaml:"follow_lerp"` // fraction of the gap closed per update
	PixelSnap  bool    `yaml:"pixel_snap"`
}

// WorldConfig defines the generated tile map.
type WorldConfig struct {
	TileSize   int     `yaml:"tile_size"`
	Cols       int     `yaml:"cols"`
	Rows       int     `yaml:"rows"`
	Seed       int64   `yaml:"seed"` // 0 = time based
	RockChance float64 `yaml:"rock_chance"`
	TreeChance float64 `yaml:"tree_chance"`
}

// MaskConfig defines the CPU mask renderer.
type MaskConfig struct {
	Workers  int `yaml:"workers"`   // 0 = GOMAXPROCS
	TileSize int `yaml:"tile_size"` // 0 = default
}

// PerfConfig defines the performance monitor.
type PerfConfig struct {
	Window      int     `yaml:"window"`       // frames kept for min/avg/max
	ReportEvery float64 `yaml:"report_every"` // seconds between reports
}

// StorageConfig defines where session history is kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// Validate checks the invariants the rest of the program relies on.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	check(c.Window.TPS >= 0, "window.tps %d must not be negative", c.Window.TPS)

	check(finite(c.Fog.VisionRadius) && c.Fog.VisionRadius >= 0, "fog.vision_radius %v must be >= 0", c.Fog.VisionRadius)
	check(finite(c.Fog.FadeWidth) && c.Fog.FadeWidth > 0, "fog.fade_width %v must be > 0", c.Fog.FadeWidth)
	check(c.Fog.RadiusStep >= 0, "fog.radius_step %v must not be negative", c.Fog.RadiusStep)
	check(c.Fog.MaxRadius >= c.Fog.VisionRadius, "fog.max_radius %v is below fog.vision_radius %v", c.Fog.MaxRadius, c.Fog.VisionRadius)

	check(c.Player.Speed >= 0, "player.speed %v must not be negative", c.Player.Speed)
	check(c.Player.Radius > 0, "player.radius %v must be positive", c.Player.Radius)

	check(c.Camera.FollowLerp > 0 && c.Camera.FollowLerp <= 1, "camera.follow_lerp %v must be in (0, 1]", c.Camera.FollowLerp)

	check(c.World.TileSize > 0, "world.tile_size %d must be positive", c.World.TileSize)
	check(c.World.Cols > 0 && c.World.Rows > 0, "world size %dx%d must be positive", c.World.Cols, c.World.Rows)
	check(c.World.RockChance >= 0 && c.World.TreeChance >= 0 && c.World.RockChance+c.World.TreeChance <= 1,
		"world.rock_chance + world.tree_chance must be within [0, 1]")

	check(c.Mask.Workers >= 0, "mask.workers %d must not be negative", c.Mask.Workers)
	check(c.Mask.TileSize >= 0, "mask.tile_size %d must not be negative", c.Mask.TileSize)

	check(c.Perf.Window > 0, "perf.window %d must be positive", c.Perf.Window)
	check(c.Perf.ReportEvery > 0, "perf.report_every %v must be positive", c.Perf.ReportEvery)

	return errors.Join(errs...)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
