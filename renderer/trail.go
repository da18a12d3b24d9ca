package renderer

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lumina/systems"
)

const starSpikes = 4

// TrailRenderer renders pointer-trail stars.
type TrailRenderer struct {
	palette []rl.Color
	glow    float32

	// Reused fan buffer: centre, 2*spikes outline points, closing point
	fan [2*starSpikes + 2]rl.Vector2
}

// NewTrailRenderer creates a trail renderer for the given palette.
// glow scales a soft additive halo around each star (0 disables it).
func NewTrailRenderer(palette []color.RGBA, glow float32) *TrailRenderer {
	r := &TrailRenderer{glow: glow}
	for _, c := range palette {
		r.palette = append(r.palette, rl.Color{R: c.R, G: c.G, B: c.B, A: c.A})
	}
	if len(r.palette) == 0 {
		r.palette = []rl.Color{rl.White}
	}
	return r
}

// Draw renders all particles. Opacity follows each particle's remaining life.
func (r *TrailRenderer) Draw(particles []systems.TrailParticle) {
	if r.glow > 0 {
		rl.BeginBlendMode(rl.BlendAdditive)
		for i := range particles {
			p := &particles[i]
			c := r.color(p)
			c.A = uint8(float32(c.A) * p.Life * 0.35)
			rl.DrawCircleGradient(int32(p.X), int32(p.Y), p.Size*r.glow, c, rl.Blank)
		}
		rl.EndBlendMode()
	}

	for i := range particles {
		p := &particles[i]
		c := r.color(p)
		c.A = uint8(float32(c.A) * p.Life)
		r.drawStar(p.X, p.Y, p.Size, p.Rotation, c)
	}
}

func (r *TrailRenderer) color(p *systems.TrailParticle) rl.Color {
	return r.palette[int(p.Color)%len(r.palette)]
}

// drawStar fills a four-spiked star with outer radius size and inner radius
// size/2, rotated by rotation degrees.
func (r *TrailRenderer) drawStar(x, y, size, rotation float32, c rl.Color) {
	rot := float64(rotation) * math.Pi / 180
	r.fan[0] = rl.Vector2{X: x, Y: y}
	// raylib fans wind with decreasing angle in screen space
	for i := 0; i < 2*starSpikes; i++ {
		radius := size
		if i%2 == 1 {
			radius = size / 2
		}
		angle := rot - math.Pi/starSpikes*float64(i)
		r.fan[i+1] = rl.Vector2{
			X: x + float32(math.Cos(angle))*radius,
			Y: y + float32(math.Sin(angle))*radius,
		}
	}
	r.fan[len(r.fan)-1] = r.fan[1]
	rl.DrawTriangleFan(r.fan[:], c)
}
