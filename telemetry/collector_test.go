package telemetry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/lumina/systems"
)

func TestTrailCollectorWindow(t *testing.T) {
	params := systems.DefaultTrailParams()
	c := NewTrailCollector(4, 1.0/60, params)

	steps := []systems.TrailStep{
		{Distance: 0, Live: 0},
		{Distance: 50, Spawned: 6, Live: 6},
		{Distance: 12, Spawned: 2, Live: 8},
		{Distance: 1, Expired: 1, Live: 7},
	}
	for i, s := range steps {
		if c.ShouldFlush() {
			t.Fatalf("flush requested after %d ticks", i)
		}
		c.Record(s)
	}
	if !c.ShouldFlush() {
		t.Fatal("flush not requested at window end")
	}

	stats := c.Flush()
	if stats.WindowEndTick != 4 {
		t.Errorf("window end = %d, want 4", stats.WindowEndTick)
	}
	if stats.Spawned != 8 || stats.Expired != 1 {
		t.Errorf("spawned/expired = %d/%d, want 8/1", stats.Spawned, stats.Expired)
	}
	if stats.MovingTicks != 2 || stats.IdleTicks != 2 {
		t.Errorf("moving/idle = %d/%d, want 2/2", stats.MovingTicks, stats.IdleTicks)
	}
	if stats.SpawnPerMove != 4 {
		t.Errorf("spawn per move = %v, want 4", stats.SpawnPerMove)
	}
	if stats.LiveMax != 8 {
		t.Errorf("live max = %d, want 8", stats.LiveMax)
	}
	if math.Abs(stats.LiveMean-5.25) > 1e-9 {
		t.Errorf("live mean = %v, want 5.25", stats.LiveMean)
	}
	if stats.PopulationCap != 500 {
		t.Errorf("population cap = %d, want 500", stats.PopulationCap)
	}
	if math.Abs(stats.SimTimeSec-4.0/60) > 1e-6 {
		t.Errorf("sim time = %v", stats.SimTimeSec)
	}

	// Counters reset for the next window
	if c.ShouldFlush() {
		t.Error("flush requested right after flushing")
	}
	c.Record(systems.TrailStep{})
	next := c.Flush()
	if next.WindowStartTick != 4 || next.Spawned != 0 || next.MovingTicks != 0 {
		t.Errorf("second window = %+v", next)
	}
}

func TestTrailCollectorBoundedPopulation(t *testing.T) {
	params := systems.DefaultTrailParams()
	rng := rand.New(rand.NewSource(42))
	trail := systems.NewTrailSystem(params, rng, 0, 0)
	c := NewTrailCollector(600, 1.0/60, params)

	for i := 0; i < 600; i++ {
		x := float32((i % 2) * 2000)
		c.Record(trail.Update(x, 0))
	}
	stats := c.Flush()
	if stats.LiveMax > stats.PopulationCap {
		t.Errorf("live max %d above cap %d", stats.LiveMax, stats.PopulationCap)
	}
	if stats.SpawnPerMove < 3.5 || stats.SpawnPerMove > 6.5 {
		t.Errorf("spawn per capped move = %v, want ~5", stats.SpawnPerMove)
	}
}
