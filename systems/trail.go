package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/lumina/config"
)

// trailLifeEpsilon absorbs float32 rounding in the per-tick decay so a
// particle with Life 1 and decay 1/n is gone after exactly n ticks.
const trailLifeEpsilon = 1e-4

// TrailParticle is one star of the pointer trail.
type TrailParticle struct {
	X, Y          float32
	VelX, VelY    float32
	Life          float32 // 1 at spawn, opacity while drawn
	Size          float32 // outer radius, inner radius is Size/2
	Color         uint8   // palette index
	Rotation      float32 // degrees
	RotationSpeed float32 // degrees per tick
}

// TrailParams holds the tuning constants of the trail, in per-tick units.
type TrailParams struct {
	MinDistance   float32
	StepSpacing   float32
	MaxSteps      int
	SpawnChance   float32
	Jitter        float32
	DriftX        float32
	FallMin       float32
	FallMax       float32
	Decay         float32
	SizeMin       float32
	SizeMax       float32
	RotationSpeed float32
	PaletteSize   int
}

// DefaultTrailParams returns the stock trail tuning.
func DefaultTrailParams() TrailParams {
	return TrailParams{
		MinDistance:   2,
		StepSpacing:   5,
		MaxSteps:      10,
		SpawnChance:   0.5,
		Jitter:        5,
		DriftX:        0.25,
		FallMin:       0.25,
		FallMax:       0.75,
		Decay:         0.02,
		SizeMin:       1,
		SizeMax:       4,
		RotationSpeed: 2.5,
		PaletteSize:   4,
	}
}

// TrailParamsFromConfig converts the trail config section to simulation params.
func TrailParamsFromConfig(cfg *config.TrailConfig) TrailParams {
	return TrailParams{
		MinDistance:   float32(cfg.MinDistance),
		StepSpacing:   float32(cfg.StepSpacing),
		MaxSteps:      cfg.MaxSteps,
		SpawnChance:   float32(cfg.SpawnChance),
		Jitter:        float32(cfg.Jitter),
		DriftX:        float32(cfg.DriftX),
		FallMin:       float32(cfg.FallMin),
		FallMax:       float32(cfg.FallMax),
		Decay:         float32(cfg.Decay),
		SizeMin:       float32(cfg.SizeMin),
		SizeMax:       float32(cfg.SizeMax),
		RotationSpeed: float32(cfg.RotationSpeed),
		PaletteSize:   len(cfg.Palette),
	}
}

// LifetimeTicks returns the maximum number of ticks a particle stays live.
func (p TrailParams) LifetimeTicks() int {
	return int(math.Ceil(1/float64(p.Decay) - 1e-4))
}

// TrailStep reports what a single Update did.
type TrailStep struct {
	Distance float32 // pointer travel since the previous tick
	Spawned  int
	Expired  int
	Live     int
}

// TrailSystem owns the live particle set of the pointer trail.
// Update must be called from a single goroutine, once per frame.
type TrailSystem struct {
	Particles []TrailParticle

	params       TrailParams
	rng          *rand.Rand
	prevX, prevY float32
}

// NewTrailSystem creates a trail anchored at (x, y) so the first tick
// does not draw a streak from the window origin.
func NewTrailSystem(params TrailParams, rng *rand.Rand, x, y float32) *TrailSystem {
	if params.PaletteSize < 1 {
		params.PaletteSize = 1
	}
	capacity := params.MaxSteps * params.LifetimeTicks()
	if capacity < 16 {
		capacity = 16
	}
	return &TrailSystem{
		Particles: make([]TrailParticle, 0, capacity),
		params:    params,
		rng:       rng,
		prevX:     x,
		prevY:     y,
	}
}

// Params returns the tuning the system was created with.
func (s *TrailSystem) Params() TrailParams {
	return s.params
}

// SetParams swaps the tuning; live particles keep their spawn values.
func (s *TrailSystem) SetParams(params TrailParams) {
	if params.PaletteSize < 1 {
		params.PaletteSize = 1
	}
	s.params = params
}

// Update advances the trail by one tick toward pointer position (x, y).
func (s *TrailSystem) Update(x, y float32) TrailStep {
	dx := x - s.prevX
	dy := y - s.prevY
	dist := distance(x, y, s.prevX, s.prevY)

	step := TrailStep{Distance: dist}

	// Interpolate along the segment so fast swipes leave no gaps
	if dist > s.params.MinDistance {
		steps := dist / s.params.StepSpacing
		if limit := float32(s.params.MaxSteps); steps > limit {
			steps = limit
		}
		for i := 0; float32(i) < steps; i++ {
			t := float32(i) / steps
			if s.rng.Float32() < s.params.SpawnChance {
				s.spawn(s.prevX+dx*t, s.prevY+dy*t)
				step.Spawned++
			}
		}
	}

	s.prevX = x
	s.prevY = y

	alive := 0
	for i := range s.Particles {
		p := &s.Particles[i]

		p.Life -= s.params.Decay
		p.X += p.VelX
		p.Y += p.VelY
		p.Rotation += p.RotationSpeed

		if p.Life <= trailLifeEpsilon {
			step.Expired++
			continue
		}

		s.Particles[alive] = s.Particles[i]
		alive++
	}
	s.Particles = s.Particles[:alive]

	step.Live = alive
	return step
}

func (s *TrailSystem) spawn(x, y float32) {
	p := s.params
	s.Particles = append(s.Particles, TrailParticle{
		X:             x + (s.rng.Float32()-0.5)*2*p.Jitter,
		Y:             y + (s.rng.Float32()-0.5)*2*p.Jitter,
		VelX:          (s.rng.Float32() - 0.5) * 2 * p.DriftX,
		VelY:          p.FallMin + s.rng.Float32()*(p.FallMax-p.FallMin),
		Life:          1,
		Size:          p.SizeMin + s.rng.Float32()*(p.SizeMax-p.SizeMin),
		Color:         uint8(s.rng.Intn(p.PaletteSize)),
		Rotation:      s.rng.Float32() * 360,
		RotationSpeed: (s.rng.Float32() - 0.5) * 2 * p.RotationSpeed,
	})
}

// Reset empties the live set and re-anchors the previous pointer position.
func (s *TrailSystem) Reset(x, y float32) {
	s.Particles = s.Particles[:0]
	s.prevX = x
	s.prevY = y
}

// Previous returns the pointer position recorded at the end of the last tick.
func (s *TrailSystem) Previous() (x, y float32) {
	return s.prevX, s.prevY
}

// Count returns the current number of live particles.
func (s *TrailSystem) Count() int {
	return len(s.Particles)
}
