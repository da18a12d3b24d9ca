package cursor

import (
	"math"
	"testing"

	"github.com/pthm-cable/lumina/components"
	"github.com/pthm-cable/lumina/config"
	"github.com/pthm-cable/lumina/systems"
)

func newTestMarker(t *testing.T) (*Marker, *systems.PointerBus, *systems.FrameScheduler) {
	t.Helper()
	cfg := config.Defaults()
	m := NewMarker(MarkerParamsFromConfig(&cfg.Marker), 60)
	bus := systems.NewPointerBus()
	frames := systems.NewFrameScheduler()
	m.Mount(bus, frames, 0, 0)
	return m, bus, frames
}

func runFrames(frames *systems.FrameScheduler, n int) {
	for i := 0; i < n; i++ {
		frames.Run()
	}
}

func TestMarkerStartsOffscreen(t *testing.T) {
	cfg := config.Defaults()
	m := NewMarker(MarkerParamsFromConfig(&cfg.Marker), 60)
	s := m.State()
	if s.X != markerStartX || s.Y != markerStartY {
		t.Errorf("start = (%v, %v), want (%v, %v)", s.X, s.Y, markerStartX, markerStartY)
	}
	if s.Scale != 1 {
		t.Errorf("scale = %v, want 1", s.Scale)
	}
}

func TestMarkerFollowsPointer(t *testing.T) {
	m, bus, frames := newTestMarker(t)
	bus.Publish(300, 200)

	frames.Run()
	first := m.State()
	if first.X >= 300 {
		t.Errorf("marker reached target in one tick: x=%v", first.X)
	}

	runFrames(frames, 120)
	s := m.State()
	if math.Abs(float64(s.X-300)) > 1 || math.Abs(float64(s.Y-200)) > 1 {
		t.Errorf("marker at (%v, %v), want near (300, 200)", s.X, s.Y)
	}
	if math.Abs(float64(s.Tilt)) > 0.1 {
		t.Errorf("tilt at rest = %v, want ~0", s.Tilt)
	}
}

func TestMarkerTiltFollowsHorizontalMotion(t *testing.T) {
	m, bus, frames := newTestMarker(t)
	runFrames(frames, 120)

	bus.Publish(600, m.State().Y)
	runFrames(frames, 3)
	if m.State().Tilt <= 0 {
		t.Errorf("tilt moving right = %v, want positive", m.State().Tilt)
	}
}

func TestMarkerHintTargets(t *testing.T) {
	tests := []struct {
		hint      components.Hint
		scale     float32
		rotation  float32
		ring      float32
		ringAlpha float32
	}{
		{components.HintDefault, 1, 0, 0, 0},
		{components.HintText, 1, 0, 0, 0},
		{components.HintHover, 1.5, 45, 0, 0},
		{components.HintButton, 1, 0, 40, 1},
	}

	for _, tt := range tests {
		t.Run(tt.hint.String(), func(t *testing.T) {
			m, _, frames := newTestMarker(t)
			m.SetHint(tt.hint)
			runFrames(frames, 180)

			s := m.State()
			near := func(got, want float32) bool { return math.Abs(float64(got-want)) < 0.05 }
			if !near(s.Scale, tt.scale) {
				t.Errorf("scale = %v, want %v", s.Scale, tt.scale)
			}
			if !near(s.Rotation, tt.rotation) {
				t.Errorf("rotation = %v, want %v", s.Rotation, tt.rotation)
			}
			if !near(s.RingDiameter, tt.ring) {
				t.Errorf("ring = %v, want %v", s.RingDiameter, tt.ring)
			}
			if !near(s.RingAlpha, tt.ringAlpha) {
				t.Errorf("ring alpha = %v, want %v", s.RingAlpha, tt.ringAlpha)
			}
			if s.Hint != tt.hint {
				t.Errorf("hint = %v, want %v", s.Hint, tt.hint)
			}
		})
	}
}

func TestMarkerRingAlphaClamped(t *testing.T) {
	m, _, frames := newTestMarker(t)
	m.SetHint(components.HintButton)
	for i := 0; i < 60; i++ {
		frames.Run()
		s := m.State()
		if s.RingAlpha < 0 || s.RingAlpha > 1 {
			t.Fatalf("tick %d: ring alpha %v outside [0, 1]", i, s.RingAlpha)
		}
	}
}

func TestMarkerUnmountTeardown(t *testing.T) {
	m, bus, frames := newTestMarker(t)
	bus.Publish(300, 300)
	runFrames(frames, 10)

	m.Unmount()
	if bus.Len() != 0 || frames.Pending() != 0 {
		t.Fatalf("listeners=%d frames=%d after unmount", bus.Len(), frames.Pending())
	}
	parked := m.State()

	m.HandlePointer(10, 10)
	m.HandleFrame()
	if m.State() != parked {
		t.Errorf("state changed after unmount: %+v -> %+v", parked, m.State())
	}
}
