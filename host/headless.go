package host

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"prowl/sim"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64
}

// RunHeadless drives the world off a ticker until capture, the tick limit,
// or context cancellation. Ticks == 0 means run until capture.
func RunHeadless(ctx context.Context, w *sim.World, cfg HeadlessConfig, log *slog.Logger) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if log == nil {
		log = slog.Default()
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	heartbeat := uint64(cfg.Hz)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if w.Step() {
				log.Info("prey captured",
					"tick", w.Tick(),
					"distance", w.NearestHunterDistance())
				return nil
			}
			if w.Tick()%heartbeat == 0 {
				log.Info("tick",
					"tick", w.Tick(),
					"nearest", w.NearestHunterDistance())
			}
			if cfg.Ticks > 0 && w.Tick() >= cfg.Ticks {
				log.Info("tick limit reached without capture",
					"tick", w.Tick(),
					"nearest", w.NearestHunterDistance())
				return nil
			}
		}
	}
}
