package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gridnav",
	Short: "Potential-field path planning on occupancy grids",
	Long: `gridnav plans paths for rectangular robots on static 2D occupancy
grids. Obstacles are inflated for the robot footprint, an artificial
potential field is built toward the goal, and a path is extracted by
heuristic search with a gradient-descent fallback.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with signal-driven cancellation.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

// logger builds the CLI's structured logger; --verbose enables debug.
func logger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
