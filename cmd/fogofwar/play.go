package main

import (
	"context"
	"errors"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	game "go-fog-of-war/internal/app"
	"go-fog-of-war/internal/config"
	"go-fog-of-war/internal/state"
	"go-fog-of-war/internal/storage"
)

var (
	flagPprof string
	flagMenu  bool
	flagSeed  int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window and walk around the generated map.

Controls:
  WASD/Arrows  - Move
  +/-          - Grow or shrink the vision radius
  F2           - Toggle the HUD
  P/Esc        - Pause
  Q            - Quit

The session (fog settings and frame statistics) is saved to the
sessions database on exit.

Examples:
  fogofwar play
  fogofwar play --seed 42
  fogofwar play --pprof localhost:6060`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPprof, "pprof", "", "Serve net/http/pprof on this address (e.g. localhost:6060)")
	playCmd.Flags().BoolVar(&flagMenu, "menu", false, "Start from the title screen")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "World seed (overrides world.seed, 0 = keep config)")
}

// AppGame adapts the state machine to ebiten.Game.
type AppGame struct {
	stateMachine   *state.StateMachine
	width, height  int
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSeed != 0 {
		cfg.World.Seed = flagSeed
	}

	if flagPprof != "" {
		go func() {
			logger.Info("pprof listening", "addr", flagPprof)
			if err := http.ListenAndServe(flagPprof, nil); err != nil {
				logger.Error("pprof server stopped", "error", err)
			}
		}()
	}

	g, err := game.NewGame(cfg, state.KeyboardInput{}, logger)
	if err != nil {
		return err
	}
	defer g.Cleanup()

	sm := state.NewStateMachine()
	gameState := state.NewGameState(sm, g)
	if flagMenu {
		sm.SetState(state.NewMenuState(sm, g))
	} else {
		sm.SetState(gameState)
	}
	app := &AppGame{
		stateMachine:   sm,
		width:          cfg.Window.Width,
		height:         cfg.Window.Height,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.TPS > 0 {
		ebiten.SetTPS(cfg.Window.TPS)
	}
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}

	saveSession(cmd.Context(), cfg.Storage.DBPath, g.Session(), logger)
	return nil
}

// saveSession logs failures instead of returning them.
func saveSession(ctx context.Context, dbPath string, sess storage.Session, logger *log.Logger) {
	store, err := storage.Open(dbPath)
	if err != nil {
		logger.Warn("could not open sessions database", "error", err)
		return
	}
	defer store.Close()

	id, err := store.SaveSession(ctx, sess)
	if err != nil {
		logger.Warn("could not save session", "error", err)
		return
	}
	logger.Info("session saved",
		"id", id,
		"duration", sess.Duration.Round(time.Second),
		"frames", sess.Frames,
		"avg_fps", sess.AvgFPS,
	)
}
