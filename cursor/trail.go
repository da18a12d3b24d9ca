// Package cursor implements the custom pointer: a trail of falling stars and a
// spring-smoothed marker, both mounted onto the main loop's event plumbing.
package cursor

import (
	"math/rand"

	"github.com/pthm-cable/lumina/systems"
)

// PointerSample is the last known pointer position in window pixels.
type PointerSample struct {
	X, Y float32
}

// Trail is the mounted pointer-trail effect. The pointer handler only records
// the latest sample; all particle state changes happen in the frame handler.
type Trail struct {
	sim    *systems.TrailSystem
	latest PointerSample

	frames      *systems.FrameScheduler
	unsubscribe func()
	frameID     systems.FrameID
	mounted     bool

	lastStep systems.TrailStep
	onStep   func(systems.TrailStep)
}

// NewTrail creates an unmounted trail.
func NewTrail(params systems.TrailParams, rng *rand.Rand) *Trail {
	return &Trail{sim: systems.NewTrailSystem(params, rng, 0, 0)}
}

// OnStep registers a callback receiving every tick's result (telemetry).
func (t *Trail) OnStep(fn func(systems.TrailStep)) {
	t.onStep = fn
}

// Mount attaches the trail to the pointer bus and starts its frame loop.
// (x, y) is the current pointer position; mounting twice is a no-op.
func (t *Trail) Mount(bus *systems.PointerBus, frames *systems.FrameScheduler, x, y float32) {
	if t.mounted {
		return
	}
	t.mounted = true
	t.latest = PointerSample{X: x, Y: y}
	t.sim.Reset(x, y)
	t.frames = frames
	t.unsubscribe = bus.Subscribe(t.HandlePointer)
	t.frameID = frames.Request(t.HandleFrame)
}

// Unmount detaches the listener, cancels the pending frame and drops every
// particle, all in one step.
func (t *Trail) Unmount() {
	if !t.mounted {
		return
	}
	t.mounted = false
	t.unsubscribe()
	t.unsubscribe = nil
	t.frames.Cancel(t.frameID)
	t.frames = nil
	t.sim.Reset(t.latest.X, t.latest.Y)
	t.lastStep = systems.TrailStep{}
}

// HandlePointer records the latest pointer position.
func (t *Trail) HandlePointer(x, y float32) {
	if !t.mounted {
		return
	}
	t.latest = PointerSample{X: x, Y: y}
}

// HandleFrame runs one simulation tick and schedules the next one.
func (t *Trail) HandleFrame() {
	if !t.mounted {
		return
	}
	t.lastStep = t.sim.Update(t.latest.X, t.latest.Y)
	if t.onStep != nil {
		t.onStep(t.lastStep)
	}
	t.frameID = t.frames.Request(t.HandleFrame)
}

// Mounted reports whether the trail is attached.
func (t *Trail) Mounted() bool {
	return t.mounted
}

// Particles returns the live particle set for drawing. The slice is only
// valid until the next frame.
func (t *Trail) Particles() []systems.TrailParticle {
	return t.sim.Particles
}

// Latest returns the most recent pointer sample.
func (t *Trail) Latest() PointerSample {
	return t.latest
}

// LastStep returns what the most recent tick did.
func (t *Trail) LastStep() systems.TrailStep {
	return t.lastStep
}

// SetParams retunes the simulation in place.
func (t *Trail) SetParams(params systems.TrailParams) {
	t.sim.SetParams(params)
}

// Params returns the active tuning.
func (t *Trail) Params() systems.TrailParams {
	return t.sim.Params()
}
