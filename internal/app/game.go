// internal/app/game.go
package app

import (
	"time"

	"go-fog-of-war/internal/component"
	"go-fog-of-war/internal/config"
	"go-fog-of-war/internal/entity"
	"go-fog-of-war/internal/event"
	"go-fog-of-war/internal/perf"
	"go-fog-of-war/internal/storage"
	"go-fog-of-war/internal/system"
	"go-fog-of-war/internal/types"
	"go-fog-of-war/internal/ui"
	"go-fog-of-war/internal/world"
	"go-fog-of-war/pkg/fog"
	"go-fog-of-war/pkg/render"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game holds the main game state and logic.
type Game struct {
	Config          config.Config
	ECS             *entity.ECS
	TileMap         *world.TileMap
	EventDispatcher *event.Dispatcher
	MovementSystem  *system.MovementSystem
	CameraSystem    *system.CameraSystem
	FogSystem       *system.FogSystem
	Perf            *perf.Monitor
	HUD             *ui.HUD
	PlayerID        types.EntityID

	evaluator      fog.Evaluator
	worldRenderer  *render.WorldRenderer
	entityRenderer *render.EntityRenderer
	fogOverlay     *render.FogOverlay
	logger         *log.Logger
	startedAt      time.Time
	paused         bool
}

// NewGame initializes a new game instance. cfg must already be validated.
func NewGame(cfg config.Config, input system.Input, logger *log.Logger) (*Game, error) {
	if logger == nil {
		panic("logger cannot be nil")
	}

	evaluator, err := fog.NewEvaluator(float32(cfg.Fog.FadeWidth))
	if err != nil {
		return nil, err
	}
	overlay, err := render.NewFogOverlay(evaluator)
	if err != nil {
		return nil, err
	}

	ecs := entity.NewECS()
	ecs.Camera = &component.Camera{
		FollowLerp: cfg.Camera.FollowLerp,
		PixelSnap:  cfg.Camera.PixelSnap,
	}
	tileMap := world.Generate(cfg.World)
	dispatcher := event.NewDispatcher()

	g := &Game{
		Config:          cfg,
		ECS:             ecs,
		TileMap:         tileMap,
		EventDispatcher: dispatcher,
		MovementSystem:  system.NewMovementSystem(ecs, input, tileMap),
		CameraSystem:    system.NewCameraSystem(ecs),
		FogSystem:       system.NewFogSystem(ecs, dispatcher, cfg.Fog.MaxRadius),
		Perf:            perf.NewMonitor(cfg.Perf.Window, seconds(cfg.Perf.ReportEvery), logger),
		HUD:             ui.NewHUD(evaluator.FadeWidth),
		evaluator:       evaluator,
		worldRenderer:   render.NewWorldRenderer(tileMap, defaultPalette()),
		entityRenderer:  render.NewEntityRenderer(ecs),
		fogOverlay:      overlay,
		logger:          logger,
		startedAt:       time.Now(),
	}

	dispatcher.Subscribe(event.VisionRadiusChanged, event.ListenerFunc(func(e event.Event) {
		d := e.Data.(event.VisionRadiusData)
		logger.Info("vision radius changed", "from", d.Old, "to", d.New)
	}))
	dispatcher.Subscribe(event.PauseToggled, event.ListenerFunc(func(e event.Event) {
		logger.Info("pause", "paused", e.Data)
	}))
	dispatcher.Subscribe(event.HUDToggled, event.ListenerFunc(func(e event.Event) {
		logger.Debug("hud toggled", "visible", e.Data)
	}))

	g.createPlayerEntity()
	g.CameraSystem.CenterOnPlayer()
	g.FogSystem.Update()

	logger.Info("world generated",
		"cols", tileMap.Cols, "rows", tileMap.Rows, "tile", tileMap.TileSize, "seed", tileMap.Seed)
	return g, nil
}

func (g *Game) createPlayerEntity() {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: g.Config.Player.StartX, Y: g.Config.Player.StartY}
	g.ECS.Velocities[id] = &component.Velocity{Speed: g.Config.Player.Speed}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:       config.PlayerColor,
		StrokeColor: config.PlayerStroke,
		Radius:      float32(g.Config.Player.Radius),
		HasStroke:   true,
	}
	g.ECS.Players[id] = &component.Player{VisionRadius: g.Config.Fog.VisionRadius}
	g.PlayerID = id
}

// Update advances the simulation. The fog snapshot is taken last, so every
// fragment drawn this frame sees the final player position.
func (g *Game) Update(deltaTime float64) {
	g.MovementSystem.Update(deltaTime)
	g.CameraSystem.Update()
	g.FogSystem.Update()
}

// RecordFrame feeds the performance monitor. Called for paused frames too.
func (g *Game) RecordFrame(deltaTime float64) {
	g.Perf.Update(deltaTime)
}

// AdjustVisionRadius changes the radius by delta steps of fog.radius_step.
func (g *Game) AdjustVisionRadius(steps int) {
	g.FogSystem.AdjustRadius(float64(steps) * g.Config.Fog.RadiusStep)
}

// SetPaused records the pause state and notifies listeners on change.
func (g *Game) SetPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	g.EventDispatcher.Dispatch(event.Event{Type: event.PauseToggled, Data: paused})
}

// ToggleHUD shows or hides the HUD.
func (g *Game) ToggleHUD() {
	visible := g.HUD.Toggle()
	g.EventDispatcher.Dispatch(event.Event{Type: event.HUDToggled, Data: visible})
}

// Draw renders the scene, then the fog over it, then the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	view := g.FogSystem.View(b.Dx(), b.Dy())
	params := g.FogSystem.Params()

	g.worldRenderer.Draw(screen, view)
	g.entityRenderer.Draw(screen, view)
	g.fogOverlay.Draw(screen, params, view)
	ground := g.TileMap.Describe(float64(params.PlayerPos[0]), float64(params.PlayerPos[1]))
	g.HUD.Draw(screen, params, g.Perf.Stats(), ground)
}

// Session summarises the run for storage.
func (g *Game) Session() storage.Session {
	st := g.Perf.Stats()
	params := g.FogSystem.Params()
	return storage.Session{
		StartedAt:    g.startedAt,
		Duration:     time.Since(g.startedAt),
		VisionRadius: float64(params.VisionRadius),
		FadeWidth:    float64(g.evaluator.FadeWidth),
		Frames:       st.TotalFrames,
		AvgFPS:       st.FPS,
		AvgFrameMS:   float64(st.AvgFrame) / float64(time.Millisecond),
		MinFrameMS:   float64(st.MinFrame) / float64(time.Millisecond),
		MaxFrameMS:   float64(st.MaxFrame) / float64(time.Millisecond),
		WorldSeed:    g.TileMap.Seed,
	}
}

// Cleanup releases GPU resources.
func (g *Game) Cleanup() {
	g.fogOverlay.Dispose()
}

func defaultPalette() render.TilePalette {
	return render.TilePalette{
		Background: config.BackgroundColor,
		Grass:      config.GrassColor,
		DryGrass:   config.DryGrassColor,
		Dirt:       config.DirtColor,
		Rock:       config.RockColor,
		Tree:       config.TreeColor,
		GridLine:   config.GridLineColor,
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
