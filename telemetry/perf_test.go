package telemetry

import (
	"testing"
	"time"
)

func runFrames(pc *PerfCollector, n int, particles func(i int) int, cursorSleep time.Duration) {
	for i := 0; i < n; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseHover)
		pc.StartPhase(PhaseCursor)
		time.Sleep(cursorSleep)
		pc.SetParticles(particles(i))
		pc.StartPhase(PhaseRender)
		pc.EndTick()
	}
}

func TestPerfCollectorPhases(t *testing.T) {
	pc := NewPerfCollector(10)
	runFrames(pc, 5, func(int) int { return 0 }, 200*time.Microsecond)

	stats := pc.Stats()
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	for _, phase := range []string{PhaseHover, PhaseCursor, PhaseRender} {
		if _, ok := stats.PhaseAvg[phase]; !ok {
			t.Errorf("phase %q not tracked", phase)
		}
	}
	if stats.PhasePct[PhaseCursor] <= stats.PhasePct[PhaseHover] {
		t.Errorf("cursor %v%% should exceed hover %v%%", stats.PhasePct[PhaseCursor], stats.PhasePct[PhaseHover])
	}
	if stats.MinTickDuration > stats.P95TickDuration || stats.P95TickDuration > stats.MaxTickDuration {
		t.Errorf("min %v, p95 %v, max %v out of order", stats.MinTickDuration, stats.P95TickDuration, stats.MaxTickDuration)
	}
}

func TestPerfCollectorParticleLoad(t *testing.T) {
	pc := NewPerfCollector(4)
	// Only the last four frames stay in the window: 60, 70, 80, 90
	runFrames(pc, 10, func(i int) int { return i * 10 }, 50*time.Microsecond)

	stats := pc.Stats()
	if stats.AvgParticles != 75 {
		t.Errorf("avg particles = %v, want 75", stats.AvgParticles)
	}
	if stats.PeakParticles != 90 {
		t.Errorf("peak particles = %d, want 90", stats.PeakParticles)
	}
	want := time.Duration(float64(stats.PhaseAvg[PhaseCursor]) / 75)
	if stats.CursorPerParticle != want {
		t.Errorf("cursor per particle = %v, want %v", stats.CursorPerParticle, want)
	}
}

func TestPerfCollectorNoParticlesNoCost(t *testing.T) {
	pc := NewPerfCollector(10)
	runFrames(pc, 3, func(int) int { return 0 }, 0)
	if got := pc.Stats().CursorPerParticle; got != 0 {
		t.Errorf("cursor per particle = %v with an empty trail", got)
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	stats := NewPerfCollector(10).Stats()
	if stats.AvgTickDuration != 0 || stats.PeakParticles != 0 {
		t.Errorf("empty collector stats = %+v", stats)
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfCollectorFrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)
	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("frame duration = %v, want >= 15ms", stats.FrameDuration)
	}
	if stats.FPS <= 0 || stats.FPS > 70 {
		t.Errorf("fps = %v, want in (0, 70]", stats.FPS)
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	stats := PerfStats{
		AvgTickDuration:   2 * time.Millisecond,
		AvgParticles:      120,
		PeakParticles:     180,
		CursorPerParticle: 150 * time.Nanosecond,
		PhasePct: map[string]float64{
			PhaseCursor: 12.5,
			PhaseRender: 80,
		},
	}
	row := stats.ToCSV(120)
	if row.WindowEnd != 120 || row.AvgTickUS != 2000 {
		t.Errorf("row = %+v", row)
	}
	if row.PeakParticles != 180 || row.CursorNSParticle != 150 {
		t.Errorf("particle columns = peak %d cost %d", row.PeakParticles, row.CursorNSParticle)
	}
	if row.CursorPct != 12.5 || row.RenderPct != 80 || row.ChatPct != 0 {
		t.Errorf("phase columns = cursor %v render %v chat %v", row.CursorPct, row.RenderPct, row.ChatPct)
	}
}
