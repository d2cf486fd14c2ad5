package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"prowl/config"
	"prowl/host"
	"prowl/ui"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the simulation window",
		RunE:  runWindow,
	}
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := slog.Default()
	game := ui.New(cfg, log)

	// Edits to the tuning file apply to the running window.
	if configPath != "" {
		watcher, err := config.NewWatcher(configPath)
		if err != nil {
			log.Warn("config watch unavailable", "err", err)
		} else {
			watcher.OnChange(game.Apply)
			if err := watcher.Start(); err != nil {
				log.Warn("config watch unavailable", "err", err)
			} else {
				defer watcher.Close()
			}
		}
	}

	return host.RunWindow(game, ui.ScreenW, ui.ScreenH)
}
