package cursor

import (
	"github.com/pthm-cable/lumina/components"
	"github.com/pthm-cable/lumina/config"
	"github.com/pthm-cable/lumina/systems"
)

// Marker starts off-screen so it glides in on the first pointer move.
const (
	markerStartX = -100
	markerStartY = -100
)

// MarkerParams tunes the smoothed marker.
type MarkerParams struct {
	Follow        systems.SpringParams
	Hint          systems.SpringParams
	TiltFactor    float64
	HoverScale    float64
	HoverRotation float64
	RingDiameter  float64
}

// MarkerParamsFromConfig converts the marker config section.
func MarkerParamsFromConfig(cfg *config.MarkerConfig) MarkerParams {
	return MarkerParams{
		Follow: systems.SpringParams{
			Stiffness: cfg.Stiffness,
			Damping:   cfg.Damping,
			Mass:      cfg.Mass,
		},
		Hint: systems.SpringParams{
			Stiffness: cfg.HintStiffness,
			Damping:   cfg.HintDamping,
			Mass:      1,
		},
		TiltFactor:    cfg.TiltFactor,
		HoverScale:    cfg.HoverScale,
		HoverRotation: cfg.HoverRotation,
		RingDiameter:  cfg.RingDiameter,
	}
}

// MarkerState is everything the renderer needs to draw the marker.
type MarkerState struct {
	X, Y         float32
	Tilt         float32 // degrees, from horizontal velocity
	Scale        float32
	Rotation     float32 // degrees, from the hint
	RingDiameter float32
	RingAlpha    float32 // 0..1
	Hint         components.Hint
}

// Marker is a spring-smoothed glyph following the pointer. It keeps its own
// state and shares nothing with the trail except the pointer bus.
type Marker struct {
	params MarkerParams

	pos      *systems.Spring2D
	scale    *systems.Spring
	rotation *systems.Spring
	ring     *systems.Spring
	ringA    *systems.Spring

	latest PointerSample
	hint   components.Hint
	tilt   float64

	frames      *systems.FrameScheduler
	unsubscribe func()
	frameID     systems.FrameID
	mounted     bool
}

// NewMarker creates an unmounted marker stepped fps times per second.
func NewMarker(params MarkerParams, fps int) *Marker {
	m := &Marker{
		params:   params,
		pos:      systems.NewSpring2D(fps, params.Follow, markerStartX, markerStartY),
		scale:    systems.NewSpring(fps, params.Hint, 1),
		rotation: systems.NewSpring(fps, params.Hint, 0),
		ring:     systems.NewSpring(fps, params.Hint, 0),
		ringA:    systems.NewSpring(fps, params.Hint, 0),
	}
	m.latest = PointerSample{X: markerStartX, Y: markerStartY}
	return m
}

// Mount attaches the marker; it glides from its current position toward (x, y).
func (m *Marker) Mount(bus *systems.PointerBus, frames *systems.FrameScheduler, x, y float32) {
	if m.mounted {
		return
	}
	m.mounted = true
	m.latest = PointerSample{X: x, Y: y}
	m.frames = frames
	m.unsubscribe = bus.Subscribe(m.HandlePointer)
	m.frameID = frames.Request(m.HandleFrame)
}

// Unmount detaches the marker and parks it off-screen.
func (m *Marker) Unmount() {
	if !m.mounted {
		return
	}
	m.mounted = false
	m.unsubscribe()
	m.unsubscribe = nil
	m.frames.Cancel(m.frameID)
	m.frames = nil

	m.pos.Snap(markerStartX, markerStartY)
	m.scale.Snap(1)
	m.rotation.Snap(0)
	m.ring.Snap(0)
	m.ringA.Snap(0)
	m.tilt = 0
	m.hint = components.HintDefault
}

// HandlePointer records the latest pointer position.
func (m *Marker) HandlePointer(x, y float32) {
	if !m.mounted {
		return
	}
	m.latest = PointerSample{X: x, Y: y}
}

// HandleFrame advances every spring one tick and schedules the next frame.
func (m *Marker) HandleFrame() {
	if !m.mounted {
		return
	}
	m.step()
	m.frameID = m.frames.Request(m.HandleFrame)
}

// SetHint sets the hint the next frame animates toward.
func (m *Marker) SetHint(h components.Hint) {
	m.hint = h
}

func (m *Marker) step() {
	prevX := m.pos.X.Pos
	x, _ := m.pos.Update(float64(m.latest.X), float64(m.latest.Y))
	m.tilt = (x - prevX) * m.params.TiltFactor

	scale, rotation, ring, ringA := 1.0, 0.0, 0.0, 0.0
	switch m.hint {
	case components.HintHover:
		scale = m.params.HoverScale
		rotation = m.params.HoverRotation
	case components.HintButton:
		ring = m.params.RingDiameter
		ringA = 1
	}
	m.scale.Update(scale)
	m.rotation.Update(rotation)
	m.ring.Update(ring)
	m.ringA.Update(ringA)
}

// State returns the current visual state.
func (m *Marker) State() MarkerState {
	alpha := m.ringA.Pos
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	diameter := m.ring.Pos
	if diameter < 0 {
		diameter = 0
	}
	return MarkerState{
		X:            float32(m.pos.X.Pos),
		Y:            float32(m.pos.Y.Pos),
		Tilt:         float32(m.tilt),
		Scale:        float32(m.scale.Pos),
		Rotation:     float32(m.rotation.Pos),
		RingDiameter: float32(diameter),
		RingAlpha:    float32(alpha),
		Hint:         m.hint,
	}
}

// Mounted reports whether the marker is attached.
func (m *Marker) Mounted() bool {
	return m.mounted
}
