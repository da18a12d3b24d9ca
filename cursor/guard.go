package cursor

// Environment describes the host as far as pointer effects care.
type Environment struct {
	Width, Height  float32 // window size in pixels
	PointerCapable bool    // false on touch-only hosts with no hover pointer
	ReducedMotion  bool
	PointerX       float32 // pointer position when the environment was sampled
	PointerY       float32
}

// EffectsEnabled reports whether the trail and marker should run at all.
// At or below the breakpoint width the host is treated as a small touch screen.
func EffectsEnabled(env Environment, breakpoint int) bool {
	if !env.PointerCapable || env.ReducedMotion {
		return false
	}
	return env.Width > float32(breakpoint)
}
