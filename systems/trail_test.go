package systems

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/lumina/config"
)

func newTestTrail(seed int64, params TrailParams) *TrailSystem {
	return NewTrailSystem(params, rand.New(rand.NewSource(seed)), 0, 0)
}

func alwaysSpawn() TrailParams {
	p := DefaultTrailParams()
	p.SpawnChance = 1
	return p
}

func TestTrailParticleLifetime(t *testing.T) {
	s := newTestTrail(1, DefaultTrailParams())
	s.Particles = append(s.Particles, TrailParticle{X: 50, Y: 50, Life: 1, Size: 2})

	for tick := 1; tick <= 49; tick++ {
		s.Update(0, 0)
		if s.Count() != 1 {
			t.Fatalf("tick %d: particle expired early (count=%d)", tick, s.Count())
		}
	}
	if got := s.Particles[0].Life; math.Abs(float64(got-0.02)) > 1e-4 {
		t.Errorf("life after 49 ticks = %v, want ~0.02", got)
	}

	step := s.Update(0, 0)
	if s.Count() != 0 {
		t.Errorf("particle still live at tick 50 (life=%v)", s.Particles[0].Life)
	}
	if step.Expired != 1 {
		t.Errorf("expired = %d, want 1", step.Expired)
	}
}

func TestTrailLifetimeTicks(t *testing.T) {
	tests := []struct {
		decay float32
		want  int
	}{
		{0.02, 50},
		{0.05, 20},
		{0.03, 34},
		{1, 1},
	}
	for _, tt := range tests {
		p := DefaultTrailParams()
		p.Decay = tt.decay
		if got := p.LifetimeTicks(); got != tt.want {
			t.Errorf("LifetimeTicks(decay=%v) = %d, want %d", tt.decay, got, tt.want)
		}
	}
}

func TestTrailBoundedLifetimeForSpawnedParticles(t *testing.T) {
	s := newTestTrail(2, alwaysSpawn())
	s.Update(100, 0)
	if s.Count() == 0 {
		t.Fatal("expected particles to spawn")
	}

	lifetime := s.Params().LifetimeTicks()
	// The spawn tick already aged them once
	for tick := 2; tick <= lifetime; tick++ {
		s.Update(100, 0)
	}
	if s.Count() != 0 {
		t.Errorf("%d particles outlived %d ticks", s.Count(), lifetime)
	}
}

func TestTrailNeverHoldsNonPositiveLife(t *testing.T) {
	s := newTestTrail(3, DefaultTrailParams())
	rng := rand.New(rand.NewSource(99))

	var x, y float32
	for tick := 0; tick < 2000; tick++ {
		x += (rng.Float32() - 0.5) * 80
		y += (rng.Float32() - 0.5) * 80
		s.Update(x, y)
		for i, p := range s.Particles {
			if p.Life <= 0 {
				t.Fatalf("tick %d: particle %d has life %v", tick, i, p.Life)
			}
			if p.Life > 1 {
				t.Fatalf("tick %d: particle %d has life %v > 1", tick, i, p.Life)
			}
		}
	}
}

func TestTrailSpawnCap(t *testing.T) {
	s := newTestTrail(4, alwaysSpawn())

	tests := []struct {
		name string
		x, y float32
		want int
	}{
		{"huge jump is capped", 5000, 0, 10},
		{"diagonal jump is capped", 5000 + 300, 400, 10},
		{"12px gives three points", 5000 + 300 + 12, 400, 3},
		{"5px gives one point", 5000 + 300 + 12, 405, 1},
		{"3px gives one point", 5000 + 300 + 15, 405, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := s.Update(tt.x, tt.y)
			if step.Spawned != tt.want {
				t.Errorf("spawned = %d, want %d (distance %v)", step.Spawned, tt.want, step.Distance)
			}
		})
	}
}

func TestTrailSpawnNeverExceedsMaxSteps(t *testing.T) {
	s := newTestTrail(5, alwaysSpawn())
	rng := rand.New(rand.NewSource(5))

	for tick := 0; tick < 500; tick++ {
		step := s.Update(rng.Float32()*4000, rng.Float32()*4000)
		if step.Spawned > s.Params().MaxSteps {
			t.Fatalf("tick %d: spawned %d > %d", tick, step.Spawned, s.Params().MaxSteps)
		}
	}
}

func TestTrailSmallMovementSuppressed(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float32
	}{
		{"no movement", 0, 0},
		{"one pixel", 1, 0},
		{"diagonal under threshold", 1.4, 1.4},
		{"exactly two pixels", 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestTrail(6, alwaysSpawn())
			step := s.Update(tt.dx, tt.dy)
			if step.Spawned != 0 || s.Count() != 0 {
				t.Errorf("spawned %d particles for a %v px move", step.Spawned, step.Distance)
			}
		})
	}
}

func TestTrailIdleQuiescence(t *testing.T) {
	s := newTestTrail(7, DefaultTrailParams())

	// Sweep the pointer to build up a population
	for i := 1; i <= 60; i++ {
		s.Update(float32(i*20), float32(i*7))
	}
	if s.Count() == 0 {
		t.Fatal("expected a live population after sweeping")
	}

	x, y := s.Previous()
	idle := s.Params().LifetimeTicks()
	for i := 0; i < idle; i++ {
		if step := s.Update(x, y); step.Spawned != 0 {
			t.Fatalf("idle tick %d spawned %d particles", i, step.Spawned)
		}
	}
	if s.Count() != 0 {
		t.Errorf("%d particles remain after %d idle ticks", s.Count(), idle)
	}
}

func TestTrailSteadyStateBounded(t *testing.T) {
	s := newTestTrail(8, alwaysSpawn())
	bound := s.Params().MaxSteps * s.Params().LifetimeTicks()

	for i := 0; i < 1000; i++ {
		// Alternate far corners: every tick is a capped jump
		x := float32((i % 2) * 1000)
		s.Update(x, 0)
		if s.Count() > bound {
			t.Fatalf("tick %d: %d live particles exceed bound %d", i, s.Count(), bound)
		}
	}
}

func TestTrailMeanSpawnForLongJump(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	counts := make([]float64, 1000)
	for i := range counts {
		s := NewTrailSystem(DefaultTrailParams(), rng, 0, 0)
		counts[i] = float64(s.Update(100, 0).Spawned)
	}

	mean := stat.Mean(counts, nil)
	if mean < 3.5 || mean > 6.5 {
		t.Errorf("mean spawn count = %.2f, want within [3.5, 6.5]", mean)
	}
	for i, c := range counts {
		if c > 10 {
			t.Fatalf("trial %d spawned %v particles", i, c)
		}
	}
}

func TestTrailSpawnedParticleRanges(t *testing.T) {
	p := alwaysSpawn()
	rng := rand.New(rand.NewSource(9))
	for trial := 0; trial < 200; trial++ {
		s := NewTrailSystem(p, rng, 0, 0)
		s.Update(200, 0)
		for _, pt := range s.Particles {
			if pt.VelX < -p.DriftX || pt.VelX > p.DriftX {
				t.Fatalf("VelX %v outside [-%v, %v]", pt.VelX, p.DriftX, p.DriftX)
			}
			if pt.VelY < p.FallMin || pt.VelY > p.FallMax {
				t.Fatalf("VelY %v outside [%v, %v]", pt.VelY, p.FallMin, p.FallMax)
			}
			if pt.Size < p.SizeMin || pt.Size > p.SizeMax {
				t.Fatalf("size %v outside [%v, %v]", pt.Size, p.SizeMin, p.SizeMax)
			}
			if int(pt.Color) >= p.PaletteSize {
				t.Fatalf("colour index %d outside palette", pt.Color)
			}
			if pt.RotationSpeed < -p.RotationSpeed || pt.RotationSpeed > p.RotationSpeed {
				t.Fatalf("rotation speed %v out of range", pt.RotationSpeed)
			}
			// Aged once in the spawn tick
			if math.Abs(float64(pt.Life-(1-p.Decay))) > 1e-6 {
				t.Fatalf("life %v after spawn tick, want %v", pt.Life, 1-p.Decay)
			}
			// Jitter plus one tick of drift
			if pt.Y < -p.Jitter || pt.Y > p.Jitter+p.FallMax {
				t.Fatalf("Y %v outside jittered segment", pt.Y)
			}
			if pt.X < -p.Jitter-p.DriftX || pt.X > 200+p.Jitter+p.DriftX {
				t.Fatalf("X %v outside jittered segment", pt.X)
			}
		}
	}
}

func TestTrailParticlesDriftDown(t *testing.T) {
	s := newTestTrail(10, alwaysSpawn())
	s.Update(100, 0)
	before := make([]float32, s.Count())
	for i, p := range s.Particles {
		before[i] = p.Y
	}
	s.Update(100, 0)
	for i, p := range s.Particles {
		if p.Y <= before[i] {
			t.Errorf("particle %d did not fall: %v -> %v", i, before[i], p.Y)
		}
	}
}

func TestTrailReset(t *testing.T) {
	s := newTestTrail(11, alwaysSpawn())
	s.Update(300, 300)
	if s.Count() == 0 {
		t.Fatal("expected particles")
	}

	s.Reset(40, 50)
	if s.Count() != 0 {
		t.Errorf("count after reset = %d", s.Count())
	}
	if x, y := s.Previous(); x != 40 || y != 50 {
		t.Errorf("previous = (%v, %v), want (40, 50)", x, y)
	}
	// Re-anchored: a 1px move from the new anchor spawns nothing
	if step := s.Update(41, 50); step.Spawned != 0 {
		t.Errorf("spawned %d after reset", step.Spawned)
	}
}

func TestTrailParamsFromConfig(t *testing.T) {
	cfg := config.Defaults()
	got := TrailParamsFromConfig(&cfg.Trail)
	want := DefaultTrailParams()
	if got != want {
		t.Errorf("params from defaults.yaml = %+v, want %+v", got, want)
	}
}
