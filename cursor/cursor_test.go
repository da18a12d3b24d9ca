package cursor

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/lumina/components"
	"github.com/pthm-cable/lumina/config"
	"github.com/pthm-cable/lumina/systems"
)

func TestEffectsEnabled(t *testing.T) {
	tests := []struct {
		name string
		env  Environment
		want bool
	}{
		{"desktop", Environment{Width: 1280, PointerCapable: true}, true},
		{"exactly breakpoint", Environment{Width: 768, PointerCapable: true}, false},
		{"one above breakpoint", Environment{Width: 769, PointerCapable: true}, true},
		{"phone", Environment{Width: 390, PointerCapable: true}, false},
		{"touch only", Environment{Width: 1280}, false},
		{"reduced motion", Environment{Width: 1280, PointerCapable: true, ReducedMotion: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectsEnabled(tt.env, 768); got != tt.want {
				t.Errorf("EffectsEnabled(%+v) = %v, want %v", tt.env, got, tt.want)
			}
		})
	}
}

func newTestCursor() (*Cursor, *systems.PointerBus, *systems.FrameScheduler) {
	bus := systems.NewPointerBus()
	frames := systems.NewFrameScheduler()
	c := New(config.Defaults(), rand.New(rand.NewSource(3)), bus, frames)
	return c, bus, frames
}

func TestCursorSyncMountsAndUnmounts(t *testing.T) {
	c, bus, frames := newTestCursor()

	desktop := Environment{Width: 1280, Height: 800, PointerCapable: true}
	if !c.Sync(desktop) {
		t.Fatal("first desktop sync reported no change")
	}
	if !c.Trail.Mounted() || !c.Marker.Mounted() {
		t.Fatal("effects not mounted on desktop")
	}
	if bus.Len() != 2 || frames.Pending() != 2 {
		t.Errorf("listeners=%d frames=%d, want 2 and 2", bus.Len(), frames.Pending())
	}
	if c.Sync(desktop) {
		t.Error("repeated sync reported a change")
	}

	bus.Publish(600, 400)
	frames.Run()

	narrow := desktop
	narrow.Width = 600
	if !c.Sync(narrow) {
		t.Fatal("narrow sync reported no change")
	}
	if c.Enabled() || c.Trail.Mounted() || c.Marker.Mounted() {
		t.Error("effects still mounted on a narrow window")
	}
	if bus.Len() != 0 || frames.Pending() != 0 {
		t.Errorf("listeners=%d frames=%d after unmount", bus.Len(), frames.Pending())
	}
	if len(c.Trail.Particles()) != 0 {
		t.Error("trail kept particles after unmount")
	}
}

func TestCursorStartsDisabledOnSmallScreen(t *testing.T) {
	c, bus, _ := newTestCursor()
	if c.Sync(Environment{Width: 500, PointerCapable: true}) {
		t.Error("sync on a small screen reported a change")
	}
	if bus.Len() != 0 {
		t.Errorf("listeners = %d, want 0", bus.Len())
	}
}

func TestCursorSetHintAndClose(t *testing.T) {
	c, bus, frames := newTestCursor()
	c.Sync(Environment{Width: 1280, PointerCapable: true})

	c.SetHint(components.HintHover)
	frames.Run()
	if c.Marker.State().Hint != components.HintHover {
		t.Errorf("marker hint = %v, want Hover", c.Marker.State().Hint)
	}

	c.Close()
	c.Close()
	if bus.Len() != 0 || frames.Pending() != 0 {
		t.Errorf("listeners=%d frames=%d after close", bus.Len(), frames.Pending())
	}
}
