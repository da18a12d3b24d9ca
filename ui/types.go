// Package ui draws the portfolio chrome and pages with raylib and raygui.
// Layout comes from the page package; this package only renders it and
// reports clicks.
package ui

import (
	"image/color"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lumina/page"
)

// Theme holds UI styling constants.
type Theme struct {
	Background  rl.Color
	Text        rl.Color
	Muted       rl.Color
	Accent      rl.Color
	PanelBg     rl.Color
	PanelBorder rl.Color
	NavBg       rl.Color
	TagBg       rl.Color
	UserBubble  rl.Color
	ModelBubble rl.Color
	Divider     rl.Color

	Padding        int32
	LineHeight     int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		Background:     rl.Color{R: 5, G: 5, B: 8, A: 255},
		Text:           rl.Color{R: 229, G: 231, B: 235, A: 255},
		Muted:          rl.Color{R: 148, G: 163, B: 184, A: 255},
		Accent:         rl.Color{R: 56, G: 189, B: 248, A: 255},
		PanelBg:        rl.Color{R: 17, G: 20, B: 28, A: 235},
		PanelBorder:    rl.Color{R: 255, G: 255, B: 255, A: 26},
		NavBg:          rl.Color{R: 5, G: 5, B: 8, A: 200},
		TagBg:          rl.Color{R: 255, G: 255, B: 255, A: 13},
		UserBubble:     rl.Color{R: 56, G: 189, B: 248, A: 255},
		ModelBubble:    rl.Color{R: 255, G: 255, B: 255, A: 20},
		Divider:        rl.Color{R: 255, G: 255, B: 255, A: 20},
		Padding:        10,
		LineHeight:     16,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}

// WithAccent returns the theme with a different accent colour.
func (t Theme) WithAccent(c color.RGBA) Theme {
	t.Accent = rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
	t.UserBubble = t.Accent
	return t
}

// StyleColor returns the text colour for a page style.
func (t Theme) StyleColor(s page.Style) rl.Color {
	switch s {
	case page.StyleMuted:
		return t.Muted
	case page.StyleAccent:
		return t.Accent
	default:
		return t.Text
	}
}

// The default raylib font only covers ASCII.
var glyphFallback = strings.NewReplacer(
	"–", "-", "—", "-", "•", "*", "←", "<", "→", ">",
	"·", "|", "’", "'", "“", "\"", "”", "\"",
)

// Printable maps characters the default font lacks to ASCII look-alikes.
func Printable(text string) string {
	return glyphFallback.Replace(text)
}

// MeasureText measures text with the default font. It satisfies page.Measurer.
func MeasureText(text string, size int32) float32 {
	return float32(rl.MeasureText(Printable(text), size))
}
