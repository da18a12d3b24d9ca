package components

// Position represents a point in window pixels.
type Position struct {
	X, Y float32
}

// Velocity represents a per-tick displacement.
type Velocity struct {
	X, Y float32
}

// Bounds is an axis-aligned rectangle in window pixels.
type Bounds struct {
	X, Y, W, H float32
}

// Contains reports whether the point lies inside the rectangle.
// The right and bottom edges are exclusive.
func (b Bounds) Contains(x, y float32) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Offset returns the rectangle moved by (dx, dy).
func (b Bounds) Offset(dx, dy float32) Bounds {
	return Bounds{X: b.X + dx, Y: b.Y + dy, W: b.W, H: b.H}
}
