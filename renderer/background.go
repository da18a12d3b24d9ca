package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lumina/systems"
)

// BackgroundRenderer renders the aurora blobs over a flat base colour.
type BackgroundRenderer struct {
	base  rl.Color
	blobs []rl.Color
	alpha uint8

	screenW, screenH float32
}

// NewBackgroundRenderer creates a new background renderer.
func NewBackgroundRenderer(screenW, screenH int32, base color.RGBA, blobs []color.RGBA, alpha int) *BackgroundRenderer {
	b := &BackgroundRenderer{
		base:    rl.Color{R: base.R, G: base.G, B: base.B, A: 255},
		alpha:   uint8(max(0, min(alpha, 255))),
		screenW: float32(screenW),
		screenH: float32(screenH),
	}
	for _, c := range blobs {
		b.blobs = append(b.blobs, rl.Color{R: c.R, G: c.G, B: c.B, A: 255})
	}
	return b
}

// Resize updates the screen dimensions.
func (b *BackgroundRenderer) Resize(screenW, screenH int32) {
	b.screenW = float32(screenW)
	b.screenH = float32(screenH)
}

// Draw clears to the base colour and renders each blob as a soft radial fill.
func (b *BackgroundRenderer) Draw(aurora *systems.AuroraSystem) {
	rl.ClearBackground(b.base)
	if aurora == nil || len(b.blobs) == 0 {
		return
	}

	side := b.screenW
	if b.screenH > side {
		side = b.screenH
	}

	rl.BeginBlendMode(rl.BlendAdditive)
	for i, blob := range aurora.Blobs {
		c := b.blobs[int(blob.Color)%len(b.blobs)]
		c.A = uint8(float32(b.alpha) * (0.7 + 0.3*aurora.Pulse(i)))
		rl.DrawCircleGradient(
			int32(blob.X*b.screenW),
			int32(blob.Y*b.screenH),
			blob.Radius*side,
			c,
			rl.Blank,
		)
	}
	rl.EndBlendMode()
}
