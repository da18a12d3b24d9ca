package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// TrailWindowStats holds aggregated trail statistics for a window of ticks.
type TrailWindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Live population per tick
	LiveMean float64 `csv:"live_mean"`
	LiveStd  float64 `csv:"live_std"`
	LiveP50  float64 `csv:"live_p50"`
	LiveP90  float64 `csv:"live_p90"`
	LiveMax  int     `csv:"live_max"`

	// Events during window
	Spawned int `csv:"spawned"`
	Expired int `csv:"expired"`

	// Pointer activity
	MovingTicks   int     `csv:"moving_ticks"`   // Ticks whose travel crossed the spawn threshold
	IdleTicks     int     `csv:"idle_ticks"`     // Ticks with no spawn-eligible movement
	SpawnPerMove  float64 `csv:"spawn_per_move"` // Mean spawned per moving tick
	DistanceMean  float64 `csv:"distance_mean"`  // Mean pointer travel per tick (px)
	DistanceP90   float64 `csv:"distance_p90"`
	PopulationCap int     `csv:"population_cap"` // max_steps * lifetime ticks
}

// Percentile calculates the p-th percentile of a sorted slice with linear
// interpolation between neighbours. p should be in [0, 1]. Returns 0 if
// slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Summary holds the mean, standard deviation and percentiles of a sample.
type Summary struct {
	Mean, Std     float64
	P10, P50, P90 float64
	Max           float64
}

// Summarize computes a Summary of values. Empty input gives a zero Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, std := stat.PopMeanStdDev(sorted, nil)
	return Summary{
		Mean: mean,
		Std:  std,
		P10:  Percentile(sorted, 0.10),
		P50:  Percentile(sorted, 0.50),
		P90:  Percentile(sorted, 0.90),
		Max:  sorted[len(sorted)-1],
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s TrailWindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Float64("live_mean", s.LiveMean),
		slog.Float64("live_std", s.LiveStd),
		slog.Float64("live_p50", s.LiveP50),
		slog.Float64("live_p90", s.LiveP90),
		slog.Int("live_max", s.LiveMax),
		slog.Int("spawned", s.Spawned),
		slog.Int("expired", s.Expired),
		slog.Int("moving_ticks", s.MovingTicks),
		slog.Int("idle_ticks", s.IdleTicks),
		slog.Float64("spawn_per_move", s.SpawnPerMove),
		slog.Float64("distance_mean", s.DistanceMean),
		slog.Float64("distance_p90", s.DistanceP90),
		slog.Int("population_cap", s.PopulationCap),
	)
}

// LogStats logs the window stats using slog.
func (s TrailWindowStats) LogStats() {
	slog.Info("trail stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"live_mean", s.LiveMean,
		"live_p90", s.LiveP90,
		"live_max", s.LiveMax,
		"spawned", s.Spawned,
		"expired", s.Expired,
		"moving_ticks", s.MovingTicks,
		"idle_ticks", s.IdleTicks,
		"spawn_per_move", s.SpawnPerMove,
		"distance_mean", s.DistanceMean,
	)
	if s.LiveMax > s.PopulationCap {
		slog.Warn("trail population above cap", "live_max", s.LiveMax, "cap", s.PopulationCap)
	}
}
