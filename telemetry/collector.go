package telemetry

import "github.com/pthm-cable/lumina/systems"

// TrailCollector accumulates per-tick trail results within windows and
// produces TrailWindowStats.
type TrailCollector struct {
	windowDurationTicks int32
	dt                  float32
	params              systems.TrailParams

	// Current window tracking
	windowStartTick int32
	tick            int32

	live        []float64
	distances   []float64
	moveSpawns  []float64
	spawned     int
	expired     int
	idleTicks   int
	movingTicks int
}

// NewTrailCollector creates a collector flushing every windowTicks ticks.
// dt is seconds per tick; params supplies the spawn threshold and the
// population cap.
func NewTrailCollector(windowTicks int, dt float32, params systems.TrailParams) *TrailCollector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &TrailCollector{
		windowDurationTicks: int32(windowTicks),
		dt:                  dt,
		params:              params,
		live:                make([]float64, 0, windowTicks),
		distances:           make([]float64, 0, windowTicks),
	}
}

// Record adds one tick's result and advances the tick counter.
func (c *TrailCollector) Record(step systems.TrailStep) {
	c.tick++
	c.live = append(c.live, float64(step.Live))
	c.distances = append(c.distances, float64(step.Distance))
	c.spawned += step.Spawned
	c.expired += step.Expired

	if step.Distance > c.params.MinDistance {
		c.movingTicks++
		c.moveSpawns = append(c.moveSpawns, float64(step.Spawned))
	} else {
		c.idleTicks++
	}
}

// Tick returns the number of ticks recorded so far.
func (c *TrailCollector) Tick() int32 {
	return c.tick
}

// ShouldFlush returns true once the current window is full.
func (c *TrailCollector) ShouldFlush() bool {
	return c.tick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces stats for the current window and starts a new one.
func (c *TrailCollector) Flush() TrailWindowStats {
	live := Summarize(c.live)
	dist := Summarize(c.distances)
	moves := Summarize(c.moveSpawns)

	stats := TrailWindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   c.tick,
		SimTimeSec:      float64(c.tick) * float64(c.dt),

		LiveMean: live.Mean,
		LiveStd:  live.Std,
		LiveP50:  live.P50,
		LiveP90:  live.P90,
		LiveMax:  int(live.Max),

		Spawned: c.spawned,
		Expired: c.expired,

		MovingTicks:   c.movingTicks,
		IdleTicks:     c.idleTicks,
		SpawnPerMove:  moves.Mean,
		DistanceMean:  dist.Mean,
		DistanceP90:   dist.P90,
		PopulationCap: c.params.MaxSteps * c.params.LifetimeTicks(),
	}

	// Reset for next window
	c.windowStartTick = c.tick
	c.live = c.live[:0]
	c.distances = c.distances[:0]
	c.moveSpawns = c.moveSpawns[:0]
	c.spawned = 0
	c.expired = 0
	c.idleTicks = 0
	c.movingTicks = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *TrailCollector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
