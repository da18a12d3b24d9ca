package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"

	"github.com/pthm-cable/lumina/page"
)

// NavView draws the fixed navigation bar.
type NavView struct {
	renderer *Renderer
}

// NewNavView creates a nav bar drawer sharing r's theme.
func NewNavView(r *Renderer) *NavView {
	return &NavView{renderer: r}
}

// Draw renders bar and returns the target whose button was clicked.
func (n *NavView) Draw(bar page.NavBar, brandSize int32) (page.Target, bool) {
	t := n.renderer.Theme
	b := bar.Bounds
	rl.DrawRectangle(int32(b.X), int32(b.Y), int32(b.W), int32(b.H), t.NavBg)
	rl.DrawRectangle(int32(b.X), int32(b.Y+b.H-1), int32(b.W), 1, t.Divider)

	y := b.Y + (b.H-float32(brandSize))/2
	rl.DrawText(Printable(bar.Brand), 24, int32(y), brandSize, t.Text)
	dotX := 24 + MeasureText(bar.Brand, brandSize)
	rl.DrawText(".", int32(dotX), int32(y), brandSize, t.Accent)

	var clicked page.Target
	ok := false
	for _, item := range bar.Items {
		if gui.Button(Rect(item.Bounds), item.Label) {
			clicked, ok = item.Target, true
		}
	}
	return clicked, ok
}
