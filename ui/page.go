package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lumina/camera"
	"github.com/pthm-cable/lumina/components"
	"github.com/pthm-cable/lumina/page"
)

// PageView draws a laid-out page through the scroll camera.
type PageView struct {
	renderer *Renderer
}

// NewPageView creates a page drawer sharing r's theme.
func NewPageView(r *Renderer) *PageView {
	return &PageView{renderer: r}
}

// Draw renders every visible block of l. hovered is the index of the block
// under the pointer, or -1.
func (v *PageView) Draw(l *page.Layout, cam *camera.Camera, hovered int, lineSpacing float32) {
	for i := range l.Blocks {
		b := &l.Blocks[i]
		if !cam.IsVisible(b.Bounds.Y, b.Bounds.H) {
			continue
		}
		sx, sy := cam.WorldToScreen(b.Bounds.X, b.Bounds.Y)
		bounds := components.Bounds{X: sx, Y: sy, W: b.Bounds.W, H: b.Bounds.H}
		v.drawBlock(b, bounds, i == hovered, lineSpacing)
	}
}

func (v *PageView) drawBlock(b *page.Block, bounds components.Bounds, hovered bool, lineSpacing float32) {
	t := v.renderer.Theme
	c := t.StyleColor(b.Style)

	switch b.Kind {
	case page.BlockDivider:
		rl.DrawRectangle(int32(bounds.X), int32(bounds.Y), int32(bounds.W), 1, t.Divider)

	case page.BlockTag:
		v.renderer.DrawRoundedPanel(bounds, t.TagBg, 1)
		v.drawPillLabel(b, bounds, c)

	case page.BlockLink, page.BlockButton:
		fill := t.TagBg
		if hovered {
			fill = rl.Fade(t.Accent, 0.18)
		}
		rl.DrawRectangleRounded(Rect(bounds), 1, 8, fill)
		border := t.PanelBorder
		if hovered || b.Kind == page.BlockLink {
			border = rl.Fade(t.Accent, 0.6)
		}
		rl.DrawRectangleRoundedLinesEx(Rect(bounds), 1, 8, 1, border)
		v.drawPillLabel(b, bounds, c)

	default:
		if hovered && b.Hint == components.HintText {
			c = t.Text
		}
		v.renderer.DrawLines(b.Lines, bounds.X, bounds.Y, b.Size, float32(b.Size)+lineSpacing, c)
	}
}

func (v *PageView) drawPillLabel(b *page.Block, bounds components.Bounds, c rl.Color) {
	if len(b.Lines) == 0 {
		return
	}
	x := bounds.X + (bounds.W-MeasureText(b.Lines[0], b.Size))/2
	y := bounds.Y + (bounds.H-float32(b.Size))/2
	rl.DrawText(Printable(b.Lines[0]), int32(x), int32(y), b.Size, c)
}
