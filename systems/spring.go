package systems

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringParams describes a mass-spring-damper in the form
// a = stiffness*(target-x)/mass - damping*v.
type SpringParams struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// AngularFrequency returns sqrt(stiffness/mass).
func (p SpringParams) AngularFrequency() float64 {
	return math.Sqrt(p.Stiffness / p.Mass)
}

// DampingRatio returns damping/(2*omega); 1 is critical damping.
func (p SpringParams) DampingRatio() float64 {
	return p.Damping / (2 * p.AngularFrequency())
}

// Spring smooths a scalar toward a moving target, one tick at a time.
type Spring struct {
	Pos, Vel float64

	spring harmonica.Spring
}

// NewSpring creates a spring resting at pos, stepped fps times per second.
func NewSpring(fps int, params SpringParams, pos float64) *Spring {
	return &Spring{
		Pos:    pos,
		spring: harmonica.NewSpring(harmonica.FPS(fps), params.AngularFrequency(), params.DampingRatio()),
	}
}

// Update advances one tick toward target and returns the new position.
func (s *Spring) Update(target float64) float64 {
	s.Pos, s.Vel = s.spring.Update(s.Pos, s.Vel, target)
	return s.Pos
}

// Snap moves the spring to pos and stops it.
func (s *Spring) Snap(pos float64) {
	s.Pos = pos
	s.Vel = 0
}

// Spring2D is a pair of independent springs for a point.
type Spring2D struct {
	X, Y *Spring
}

// NewSpring2D creates a point spring resting at (x, y).
func NewSpring2D(fps int, params SpringParams, x, y float64) *Spring2D {
	return &Spring2D{
		X: NewSpring(fps, params, x),
		Y: NewSpring(fps, params, y),
	}
}

// Update advances both axes toward (tx, ty).
func (s *Spring2D) Update(tx, ty float64) (x, y float64) {
	return s.X.Update(tx), s.Y.Update(ty)
}

// Snap moves the point to (x, y) and stops it.
func (s *Spring2D) Snap(x, y float64) {
	s.X.Snap(x)
	s.Y.Snap(y)
}
