package game

import (
	"log/slog"

	"github.com/pthm-cable/metaballs/sim"
)

// afterFrame feeds one frame's report to the collector, samples slots and
// flushes the stats window when it is due.
func (g *Game) afterFrame(rep sim.Report) {
	g.recordReport(rep)

	frame := g.state.FrameCount()
	if g.sampleInterval > 0 && frame%g.sampleInterval == 0 {
		if err := g.outputManager.WriteSlots(g.state.Samples()); err != nil {
			slog.Error("failed to write slots", "error", err)
		}
	}

	g.flushTelemetry()
}

func (g *Game) recordReport(rep sim.Report) {
	for i := 0; i < rep.Placed; i++ {
		g.collector.RecordPlaced(i < rep.Wrapped)
	}
	for i := 0; i < rep.Committed; i++ {
		g.collector.RecordCommitted()
	}
	for i := 0; i < rep.Commands; i++ {
		g.collector.RecordCommand(i < rep.Resets)
	}
	if rep.Paused {
		g.collector.RecordPausedFrame()
	}
}

// flushTelemetry checks if the stats window should be flushed.
func (g *Game) flushTelemetry() {
	frame := g.state.FrameCount()
	if !g.collector.ShouldFlush(frame) {
		return
	}

	speeds, radii := g.state.Kinematics()
	stats := g.collector.Flush(frame, g.state.Table.Filled(), speeds, radii, g.state.Switches())
	perfStats := g.perfCollector.Stats()

	// Log stats if enabled (console output)
	if g.logStats {
		slog.Info("window", "stats", stats)
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteWindow(stats); err != nil {
		slog.Error("failed to write window stats", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndFrame); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
