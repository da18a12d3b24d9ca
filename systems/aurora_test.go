package systems

import (
	"math"
	"testing"
)

func TestAuroraStaysNearAnchors(t *testing.T) {
	a := NewAuroraSystem(3, 7, 0.05, 0.15)
	for step := 0; step < 5000; step++ {
		a.Update(1.0 / 60)
		for i, b := range a.Blobs {
			ax, ay := a.anchor[i][0], a.anchor[i][1]
			if math.Abs(float64(b.X-ax)) > 0.15+1e-6 || math.Abs(float64(b.Y-ay)) > 0.15+1e-6 {
				t.Fatalf("step %d: blob %d at (%v, %v) strayed from (%v, %v)", step, i, b.X, b.Y, ax, ay)
			}
			if b.Radius < 0.25 || b.Radius > 0.45 {
				t.Fatalf("step %d: blob %d radius %v", step, i, b.Radius)
			}
		}
	}
}

func TestAuroraMovesSmoothly(t *testing.T) {
	a := NewAuroraSystem(3, 1, 0.05, 0.15)
	a.Update(1.0 / 60)
	prev := append([]AuroraBlob(nil), a.Blobs...)

	moved := false
	for step := 0; step < 600; step++ {
		a.Update(1.0 / 60)
		for i, b := range a.Blobs {
			d := math.Hypot(float64(b.X-prev[i].X), float64(b.Y-prev[i].Y))
			if d > 0.01 {
				t.Fatalf("step %d: blob %d jumped %v", step, i, d)
			}
			if d > 0 {
				moved = true
			}
		}
		copy(prev, a.Blobs)
	}
	if !moved {
		t.Error("blobs never moved")
	}
}

func TestAuroraDeterministic(t *testing.T) {
	a := NewAuroraSystem(3, 99, 0.05, 0.15)
	b := NewAuroraSystem(3, 99, 0.05, 0.15)
	for i := 0; i < 100; i++ {
		a.Update(1.0 / 60)
		b.Update(1.0 / 60)
	}
	for i := range a.Blobs {
		if a.Blobs[i] != b.Blobs[i] {
			t.Errorf("blob %d differs: %+v vs %+v", i, a.Blobs[i], b.Blobs[i])
		}
	}
}

func TestAuroraPulseRange(t *testing.T) {
	a := NewAuroraSystem(3, 2, 0.5, 0.1)
	for step := 0; step < 500; step++ {
		a.Update(0.1)
		for i := range a.Blobs {
			if p := a.Pulse(i); p < 0 || p > 1 {
				t.Fatalf("pulse %v out of range", p)
			}
		}
	}
}
