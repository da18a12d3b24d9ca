package systems

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// AuroraBlob is one drifting colour field of the background, in screen
// fractions so it survives window resizes.
type AuroraBlob struct {
	X, Y   float32 // centre, 0..1 of the screen
	Radius float32 // fraction of the larger screen side
	Color  uint8   // index into the blob colours
}

// AuroraSystem moves a few large blobs along smooth noise paths.
type AuroraSystem struct {
	Blobs []AuroraBlob

	noise  opensimplex.Noise
	anchor [][2]float32
	speed  float64
	wander float32
	t      float64
}

// NewAuroraSystem creates count blobs spread across the screen.
// speed is noise-space distance per second; wander is how far (as a
// screen fraction) a blob may stray from its anchor.
func NewAuroraSystem(count int, seed int64, speed, wander float64) *AuroraSystem {
	a := &AuroraSystem{
		Blobs:  make([]AuroraBlob, count),
		noise:  opensimplex.New(seed),
		anchor: make([][2]float32, count),
		speed:  speed,
		wander: float32(wander),
	}
	for i := range a.Blobs {
		// Anchors on a diagonal, alternating sides
		fx := (float32(i) + 0.5) / float32(count)
		fy := float32(0.3)
		if i%2 == 1 {
			fy = 0.7
		}
		a.anchor[i] = [2]float32{fx, fy}
		a.Blobs[i] = AuroraBlob{X: fx, Y: fy, Radius: 0.35, Color: uint8(i)}
	}
	return a
}

// Update advances the drift by dt seconds.
func (a *AuroraSystem) Update(dt float32) {
	a.t += float64(dt) * a.speed
	for i := range a.Blobs {
		b := &a.Blobs[i]
		// Separate noise rows per blob and axis
		row := float64(i) * 17.3
		nx := a.noise.Eval2(a.t, row)
		ny := a.noise.Eval2(a.t, row+101.7)
		nr := a.noise.Eval2(a.t*0.5, row+53.1)

		b.X = a.anchor[i][0] + float32(nx)*a.wander
		b.Y = a.anchor[i][1] + float32(ny)*a.wander
		b.Radius = 0.35 + float32(nr)*0.08
	}
}

// Time returns the accumulated noise-space time.
func (a *AuroraSystem) Time() float64 {
	return a.t
}

// Pulse returns a slow 0..1 breathing factor for blob i.
func (a *AuroraSystem) Pulse(i int) float32 {
	return float32(0.5 + 0.5*math.Sin(a.t*2+float64(i)*2.1))
}
