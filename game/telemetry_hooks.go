package game

import (
	"log/slog"

	"github.com/pthm-cable/pond/components"
	"github.com/pthm-cable/pond/telemetry"
)

// flushTelemetry closes the stats window when it is due, then reports the
// result and any bookmarks it triggers.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.sample())
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}

	for _, bm := range g.bookmarkDetector.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if g.outputManager != nil {
			if err := g.outputManager.WriteBookmark(bm); err != nil {
				slog.Error("failed to write bookmark", "error", err)
			}
		}
	}
}

// sample reads the population distributions for the closing window.
func (g *Game) sample() telemetry.Sample {
	s := telemetry.Sample{Counts: g.counts}

	query := g.entityFilter.Query()
	for query.Next() {
		e, id, _ := query.Get()
		if e.Dead {
			continue
		}
		switch id.Kind {
		case components.KindPlant:
			continue
		case components.KindGrazer:
			s.GrazerHealth = append(s.GrazerHealth, e.Health)
		}
		s.Speeds = append(s.Speeds, e.Speed())
	}
	return s
}
