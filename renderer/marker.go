package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lumina/cursor"
)

// Marker glyph dimensions at scale 1, in pixels.
const (
	markerArmLength = 24
	markerArmWidth  = 4
	markerDot       = 4
)

// MarkerRenderer draws the smoothed cursor marker.
type MarkerRenderer struct {
	accent rl.Color
}

// NewMarkerRenderer creates a marker renderer using accent for the dot and ring.
func NewMarkerRenderer(accent color.RGBA) *MarkerRenderer {
	return &MarkerRenderer{accent: rl.Color{R: accent.R, G: accent.G, B: accent.B, A: 255}}
}

// Draw renders the marker at its current state.
func (m *MarkerRenderer) Draw(s cursor.MarkerState) {
	rotation := s.Tilt + s.Rotation
	length := markerArmLength * s.Scale
	width := markerArmWidth * s.Scale

	// Cross arms, rotated about the marker centre
	rl.DrawRectanglePro(
		rl.Rectangle{X: s.X, Y: s.Y, Width: width, Height: length},
		rl.Vector2{X: width / 2, Y: length / 2},
		rotation,
		rl.White,
	)
	rl.DrawRectanglePro(
		rl.Rectangle{X: s.X, Y: s.Y, Width: length, Height: width},
		rl.Vector2{X: length / 2, Y: width / 2},
		rotation,
		rl.White,
	)

	// Blurred accent dot
	glow := m.accent
	glow.A = 90
	rl.DrawCircleGradient(int32(s.X), int32(s.Y), markerDot*s.Scale*1.5, glow, rl.Blank)
	rl.DrawCircleV(rl.Vector2{X: s.X, Y: s.Y}, markerDot*s.Scale/2, m.accent)

	// Button ring
	if s.RingAlpha > 0.01 && s.RingDiameter > 0.5 {
		ring := m.accent
		ring.A = uint8(127 * s.RingAlpha)
		radius := s.RingDiameter / 2
		rl.DrawRing(rl.Vector2{X: s.X, Y: s.Y}, radius-1, radius, 0, 360, 48, ring)
	}
}
