package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"go-fog-of-war/internal/storage"
)

var flagLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show recent play sessions",
	Long: `List the most recent play sessions, newest first.

Examples:
  fogofwar sessions
  fogofwar sessions --limit 20
  fogofwar sessions --db ./sessions.db`,
	Args: cobra.NoArgs,
	RunE: runSessions,
}

func init() {
	sessionsCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of sessions to show")
}

func runSessions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening sessions database: %w", err)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(cmd.Context(), flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving sessions: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'fogofwar play' to record one.")
		return nil
	}

	fmt.Fprintf(out, "  %-16s  %-8s  %-7s  %-5s  %-8s  %-7s  %s\n", "Started", "Duration", "Radius", "Fade", "Frames", "FPS", "Max ms")
	fmt.Fprintf(out, "  %-16s  %-8s  %-7s  %-5s  %-8s  %-7s  %s\n", "-------", "--------", "------", "----", "------", "---", "------")
	for _, s := range sessions {
		fmt.Fprintf(out, "  %-16s  %-8s  %-7.0f  %-5.0f  %-8d  %-7.1f  %.1f\n",
			s.StartedAt.Local().Format("2006-01-02 15:04"),
			s.Duration.Round(time.Second),
			s.VisionRadius,
			s.FadeWidth,
			s.Frames,
			s.AvgFPS,
			s.MaxFrameMS,
		)
	}
	return nil
}
