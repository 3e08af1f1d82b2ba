// fogofwar is a top-down walking demo with a soft-edged fog of war.
//
// Usage:
//
//	fogofwar play              - Open the game window
//	fogofwar mask              - Render one fog mask frame to PNG on the CPU
//	fogofwar sessions          - Show recent play sessions
//
// Global flags:
//
//	--config <path>     - Config YAML (default: search ~/.fogofwar, ./configs, built-in)
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--db <path>         - Session database (default: storage.db_path from config)
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"go-fog-of-war/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagDBPath   string
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fogofwar",
	Short: "Fog of war - a circular visibility mask around the player",
	Long: `Walk a generated map while everything beyond your vision radius
fades to black.

Available commands:
  play      - Open the game window
  mask      - Render a single fog mask to PNG without a GPU
  sessions  - Show recent play sessions

Examples:
  fogofwar play
  fogofwar play --config ./my-fog.yaml
  fogofwar mask --radius 200 --out mask.png
  fogofwar sessions --limit 5`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to sessions database (overrides storage.db_path)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(maskCmd)
	rootCmd.AddCommand(sessionsCmd)
}

func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "fog",
		Level:           level,
	}), nil
}

// loadConfig applies the global flags on top of the loaded file.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	return cfg, nil
}
