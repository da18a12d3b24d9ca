package cursor

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/lumina/components"
	"github.com/pthm-cable/lumina/config"
	"github.com/pthm-cable/lumina/systems"
)

// Cursor owns the trail and the marker and switches both on and off as the
// environment changes.
type Cursor struct {
	Trail  *Trail
	Marker *Marker

	bus        *systems.PointerBus
	frames     *systems.FrameScheduler
	breakpoint int
	enabled    bool
}

// New creates a cursor with both effects unmounted. Call Sync to mount them.
func New(cfg *config.Config, rng *rand.Rand, bus *systems.PointerBus, frames *systems.FrameScheduler) *Cursor {
	return &Cursor{
		Trail:      NewTrail(systems.TrailParamsFromConfig(&cfg.Trail), rng),
		Marker:     NewMarker(MarkerParamsFromConfig(&cfg.Marker), cfg.Screen.TargetFPS),
		bus:        bus,
		frames:     frames,
		breakpoint: cfg.Breakpoint.MobileMaxWidth,
	}
}

// Sync mounts or unmounts the effects to match env. It reports whether the
// enabled state changed.
func (c *Cursor) Sync(env Environment) bool {
	want := EffectsEnabled(env, c.breakpoint)
	if want == c.enabled {
		return false
	}
	c.enabled = want

	if want {
		c.Trail.Mount(c.bus, c.frames, env.PointerX, env.PointerY)
		c.Marker.Mount(c.bus, c.frames, env.PointerX, env.PointerY)
		slog.Info("cursor effects mounted",
			"width", env.Width,
			"breakpoint", c.breakpoint,
		)
		return true
	}

	c.Trail.Unmount()
	c.Marker.Unmount()
	slog.Info("cursor effects unmounted",
		"width", env.Width,
		"pointer", env.PointerCapable,
		"reduced_motion", env.ReducedMotion,
	)
	return true
}

// SetHint forwards the resolved hint to the marker.
func (c *Cursor) SetHint(h components.Hint) {
	c.Marker.SetHint(h)
}

// Enabled reports whether the effects are mounted.
func (c *Cursor) Enabled() bool {
	return c.enabled
}

// Close unmounts both effects.
func (c *Cursor) Close() {
	if !c.enabled {
		return
	}
	c.enabled = false
	c.Trail.Unmount()
	c.Marker.Unmount()
}
