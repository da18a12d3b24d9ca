package game

import (
	"log/slog"

	"github.com/pthm-cable/lumina/systems"
	"github.com/pthm-cable/lumina/telemetry"
)

// initTelemetry sets up the perf collector, the trail stats window and the
// optional CSV output.
func (g *Game) initTelemetry(opts Options) {
	cfg := g.cfg
	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)

	window := cfg.Telemetry.StatsWindow
	if opts.StatsWindow > 0 {
		window = opts.StatsWindow
	}
	g.collector = telemetry.NewTrailCollector(window, g.dt, g.cursor.Trail.Params())
	g.cursor.Trail.OnStep(func(step systems.TrailStep) {
		g.collector.Record(step)
	})

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		return
	}
	g.outputManager = om
	if err := g.outputManager.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}
	if om != nil {
		slog.Info("writing telemetry", "dir", om.Dir())
	}
}

// flushTelemetry emits trail and perf stats once per stats window.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush() {
		return
	}

	stats := g.collector.Flush()
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTrail(stats); err != nil {
			slog.Error("failed to write trail stats", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
