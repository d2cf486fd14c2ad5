package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"prowl/config"
	"prowl/host"
	"prowl/sim"
)

func headlessCmd() *cobra.Command {
	var (
		hz           int
		ticks        uint64
		hunters      int
		safeDistance float64
		seed         int64
	)
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run without a window, logging a heartbeat each second",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("hunters") {
				cfg.Hunters = hunters
			}
			if cmd.Flags().Changed("safe-distance") {
				cfg.SafeDistance = safeDistance
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			w := sim.New(cfg.Params())
			slog.Info("headless run",
				"hunters", w.Params().Hunters,
				"safe_distance", w.Params().SafeDistance,
				"hz", hz, "ticks", ticks)
			err = host.RunHeadless(ctx, w, host.HeadlessConfig{Hz: hz, Ticks: ticks}, slog.Default())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().IntVar(&hz, "hz", 60, "tick rate")
	cmd.Flags().Uint64Var(&ticks, "ticks", 0, "stop after N ticks (0 = run until capture)")
	cmd.Flags().IntVar(&hunters, "hunters", 0, "hunter count (1-5), overrides config")
	cmd.Flags().Float64Var(&safeDistance, "safe-distance", 0, "capture threshold, overrides config")
	cmd.Flags().Int64Var(&seed, "seed", 0, "spawn seed, overrides config (0 = time-seeded)")
	return cmd
}
