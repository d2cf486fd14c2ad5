// Package cmd wires the CLI. `prowl run` opens the window, `prowl headless`
// drives the same tick loop without one.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"prowl/internal/buildinfo"
)

var (
	configPath string
	logLevel   string
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prowl",
		Short:   "Pursuit-evasion sandbox: hunters chase a fleeing prey",
		Version: buildinfo.Short(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
		// A bare `prowl` opens the window.
		RunE: runWindow,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML tuning file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.AddCommand(runCmd())
	cmd.AddCommand(headlessCmd())
	return cmd
}

func setupLogging(level string) error {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", level)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
