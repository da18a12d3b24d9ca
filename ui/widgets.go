package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"

	"github.com/pthm-cable/lumina/components"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// NewThemedRenderer creates a renderer with the given theme.
func NewThemedRenderer(theme Theme) *Renderer {
	return &Renderer{Theme: theme}
}

// ApplyGuiStyle sets raygui's default control colours to the theme.
// Call once after the window is created.
func (r *Renderer) ApplyGuiStyle(textSize int32) {
	t := r.Theme
	set := func(prop int32, c rl.Color) {
		gui.SetStyle(gui.DEFAULT, prop, int64(rl.ColorToInt(c)))
	}
	set(gui.BASE_COLOR_NORMAL, rl.Color{R: 24, G: 28, B: 38, A: 255})
	set(gui.BORDER_COLOR_NORMAL, rl.Color{R: 60, G: 66, B: 80, A: 255})
	set(gui.TEXT_COLOR_NORMAL, t.Text)
	set(gui.BASE_COLOR_FOCUSED, rl.Color{R: 30, G: 40, B: 56, A: 255})
	set(gui.BORDER_COLOR_FOCUSED, t.Accent)
	set(gui.TEXT_COLOR_FOCUSED, t.Accent)
	set(gui.BASE_COLOR_PRESSED, t.Accent)
	set(gui.BORDER_COLOR_PRESSED, t.Accent)
	set(gui.TEXT_COLOR_PRESSED, rl.Black)
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, int64(textSize))
}

// Rect converts bounds to a raylib rectangle.
func Rect(b components.Bounds) rl.Rectangle {
	return rl.Rectangle{X: b.X, Y: b.Y, Width: b.W, Height: b.H}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawRoundedPanel draws a rounded panel filling b.
func (r *Renderer) DrawRoundedPanel(b components.Bounds, fill rl.Color, roundness float32) {
	rl.DrawRectangleRounded(Rect(b), roundness, 8, fill)
	rl.DrawRectangleRoundedLinesEx(Rect(b), roundness, 8, 1, r.Theme.PanelBorder)
}

// DrawLines draws wrapped lines of text starting at (x, y) and returns the
// y below the last line.
func (r *Renderer) DrawLines(lines []string, x, y float32, size int32, lineHeight float32, c rl.Color) float32 {
	for _, l := range lines {
		rl.DrawText(Printable(l), int32(x), int32(y), size, c)
		y += lineHeight
	}
	return y
}

// DrawLabel draws a text label.
func (r *Renderer) DrawLabel(x, y int32, text string) {
	rl.DrawText(text, x, y, r.Theme.FontSize, r.Theme.Muted)
}

// DrawValue draws a value text.
func (r *Renderer) DrawValue(x, y int32, text string) {
	rl.DrawText(text, x, y, r.Theme.FontSize, r.Theme.Text)
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string, labelWidth int32) int32 {
	r.DrawLabel(x, y, label+":")
	r.DrawValue(x+labelWidth, y, value)
	return y + r.Theme.LineHeight
}
