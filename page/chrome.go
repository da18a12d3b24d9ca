package page

import (
	"github.com/pthm-cable/lumina/chat"
	"github.com/pthm-cable/lumina/components"
)

// NavItem is a navigation button in screen coordinates.
type NavItem struct {
	Target Target
	Label  string
	Bounds components.Bounds
}

// NavBar is the fixed bar at the top of the window.
type NavBar struct {
	Bounds components.Bounds
	Brand  string
	Items  []NavItem
}

// BuildNav lays out the navigation bar; buttons are right-aligned.
func BuildNav(brand string, m Metrics) NavBar {
	bar := NavBar{
		Bounds: components.Bounds{X: 0, Y: 0, W: m.ScreenW, H: m.NavHeight},
		Brand:  brand,
	}

	h := m.NavHeight - 24
	if h < float32(m.FontSize)+4 {
		h = float32(m.FontSize) + 4
	}
	y := (m.NavHeight - h) / 2

	targets := NavTargets()
	widths := make([]float32, len(targets))
	total := float32(0)
	for i, t := range targets {
		widths[i] = m.Measure(t.Label(), m.FontSize) + 32
		total += widths[i]
	}

	x := m.ScreenW - sideMargin - total
	for i, t := range targets {
		bar.Items = append(bar.Items, NavItem{
			Target: t,
			Label:  t.Label(),
			Bounds: components.Bounds{X: x, Y: y, W: widths[i], H: h},
		})
		x += widths[i]
	}
	return bar
}

// ChatGeometry holds the chat widget rectangles in screen coordinates.
type ChatGeometry struct {
	Toggle   components.Bounds
	Panel    components.Bounds
	Header   components.Bounds
	Messages components.Bounds
	Input    components.Bounds
	Send     components.Bounds
}

// Chat widget spacing.
const (
	chatMargin     = 32
	chatToggleSize = 56
	chatHeader     = 48
	chatInput      = 44
	chatSendWidth  = 72
	chatPadding    = 12
)

// BuildChat lays out the chat toggle and panel for a panel of at most
// width x height pixels.
func BuildChat(m Metrics, width, height float32) ChatGeometry {
	var g ChatGeometry
	g.Toggle = components.Bounds{
		X: m.ScreenW - chatMargin - chatToggleSize,
		Y: m.ScreenH - chatMargin - chatToggleSize,
		W: chatToggleSize,
		H: chatToggleSize,
	}

	if limit := m.ScreenW * 0.9; width > limit {
		width = limit
	}
	bottom := g.Toggle.Y - 16
	if limit := bottom - m.NavHeight - 16; height > limit {
		height = limit
	}
	if height < chatHeader+chatInput+2*chatPadding {
		height = chatHeader + chatInput + 2*chatPadding
	}

	g.Panel = components.Bounds{X: m.ScreenW - chatMargin - width, Y: bottom - height, W: width, H: height}
	g.Header = components.Bounds{X: g.Panel.X, Y: g.Panel.Y, W: width, H: chatHeader}

	inputY := g.Panel.Y + height - chatPadding - chatInput
	g.Input = components.Bounds{
		X: g.Panel.X + chatPadding,
		Y: inputY,
		W: width - 3*chatPadding - chatSendWidth,
		H: chatInput,
	}
	g.Send = components.Bounds{
		X: g.Input.X + g.Input.W + chatPadding,
		Y: inputY,
		W: chatSendWidth,
		H: chatInput,
	}
	g.Messages = components.Bounds{
		X: g.Panel.X + chatPadding,
		Y: g.Header.Y + chatHeader + chatPadding,
		W: width - 2*chatPadding,
		H: inputY - chatPadding - (g.Header.Y + chatHeader + chatPadding),
	}
	return g
}

// Bubble is a positioned chat message.
type Bubble struct {
	Role   chat.Role
	Lines  []string
	Bounds components.Bounds
}

const bubblePadding = 10

// LayoutMessages stacks messages top to bottom inside area, user messages on
// the right. When they overflow, everything shifts up so the newest message
// sits at the bottom of area.
func LayoutMessages(msgs []chat.Message, area components.Bounds, size int32, lineSpacing float32, measure Measurer) []Bubble {
	maxW := area.W * 0.8
	lineH := float32(size) + lineSpacing

	bubbles := make([]Bubble, 0, len(msgs))
	y := area.Y
	for _, msg := range msgs {
		lines := Wrap(msg.Text, size, maxW-2*bubblePadding, measure)
		if len(lines) == 0 {
			lines = []string{""}
		}
		w := float32(0)
		for _, l := range lines {
			if lw := measure(l, size); lw > w {
				w = lw
			}
		}
		w += 2 * bubblePadding
		h := float32(len(lines))*lineH + 2*bubblePadding

		x := area.X
		if msg.Role == chat.RoleUser {
			x = area.X + area.W - w
		}
		bubbles = append(bubbles, Bubble{
			Role:   msg.Role,
			Lines:  lines,
			Bounds: components.Bounds{X: x, Y: y, W: w, H: h},
		})
		y += h + 8
	}

	if overflow := y - 8 - (area.Y + area.H); overflow > 0 {
		for i := range bubbles {
			bubbles[i].Bounds.Y -= overflow
		}
	}
	return bubbles
}
