// Package camera provides the scrolling viewport over the page content.
package camera

// Camera controls the vertical viewport into the page. Content coordinates
// have their origin at the top-left of the page; screen coordinates at the
// top-left of the window.
type Camera struct {
	// Y is the content coordinate shown at the top of the viewport
	Y float32

	// Target is where Y eases toward
	Target float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// ContentH is the total page height
	ContentH float32

	// Easing is the fraction of the remaining distance covered per tick
	Easing float32
}

// New creates a camera at the top of an empty page.
func New(viewportW, viewportH, easing float32) *Camera {
	if easing <= 0 || easing > 1 {
		easing = 1
	}
	return &Camera{
		ViewportW: viewportW,
		ViewportH: viewportH,
		Easing:    easing,
	}
}

// WorldToScreen converts content coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	return wx, wy - c.Y
}

// ScreenToWorld converts screen coordinates to content coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	return sx, sy + c.Y
}

// IsVisible returns true if a span [wy, wy+h] of content overlaps the viewport.
func (c *Camera) IsVisible(wy, h float32) bool {
	return wy+h >= c.Y && wy <= c.Y+c.ViewportH
}

// MaxScroll returns the largest valid offset.
func (c *Camera) MaxScroll() float32 {
	if m := c.ContentH - c.ViewportH; m > 0 {
		return m
	}
	return 0
}

// SetContentHeight updates the page height and keeps the offset in range.
func (c *Camera) SetContentHeight(h float32) {
	c.ContentH = h
	c.Target = clamp(c.Target, 0, c.MaxScroll())
	c.Y = clamp(c.Y, 0, c.MaxScroll())
}

// Resize updates viewport dimensions and re-clamps the offset.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.SetContentHeight(c.ContentH)
}

// ScrollBy moves the target by dy screen pixels.
func (c *Camera) ScrollBy(dy float32) {
	c.ScrollTo(c.Target + dy)
}

// ScrollTo eases toward content offset y.
func (c *Camera) ScrollTo(y float32) {
	c.Target = clamp(y, 0, c.MaxScroll())
}

// Jump moves to content offset y without easing.
func (c *Camera) Jump(y float32) {
	c.ScrollTo(y)
	c.Y = c.Target
}

// Update advances the eased offset by one tick.
func (c *Camera) Update() {
	d := c.Target - c.Y
	if absf(d) < 0.5 {
		c.Y = c.Target
		return
	}
	c.Y += d * c.Easing
}

// Reset returns to the top of the page.
func (c *Camera) Reset() {
	c.Jump(0)
}

// VisibleWorldBounds returns the content-coordinate bounds of the visible area.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	return 0, c.Y, c.ViewportW, c.Y + c.ViewportH
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
