package ui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"

	"github.com/pthm-cable/lumina/chat"
	"github.com/pthm-cable/lumina/components"
	"github.com/pthm-cable/lumina/page"
)

// maxInputLen bounds the raygui text buffer.
const maxInputLen = 280

// ChatEvents reports what the user did with the chat widget this frame.
type ChatEvents struct {
	Toggled bool
	Submit  string // non-empty when the user sent a message
}

// ChatPanel draws the floating assistant widget and owns its input state.
type ChatPanel struct {
	renderer *Renderer
	title    string
	subtitle string

	fontSize    int32
	lineSpacing float32

	open    bool
	input   string
	editing bool
}

// NewChatPanel creates a closed chat panel.
func NewChatPanel(r *Renderer, title, subtitle string, fontSize int32, lineSpacing float32) *ChatPanel {
	return &ChatPanel{
		renderer:    r,
		title:       title,
		subtitle:    subtitle,
		fontSize:    fontSize,
		lineSpacing: lineSpacing,
	}
}

// Layout positions msgs inside the message area of g.
func (c *ChatPanel) Layout(msgs []chat.Message, g page.ChatGeometry) []page.Bubble {
	return page.LayoutMessages(msgs, g.Messages, c.fontSize, c.lineSpacing, MeasureText)
}

// IsOpen reports whether the panel is expanded.
func (c *ChatPanel) IsOpen() bool { return c.open }

// Toggle opens or closes the panel and returns the new state.
func (c *ChatPanel) Toggle() bool {
	c.open = !c.open
	c.editing = c.open
	return c.open
}

// Close collapses the panel.
func (c *ChatPanel) Close() {
	c.open = false
	c.editing = false
}

// Input returns the pending input text.
func (c *ChatPanel) Input() string { return c.input }

// ClearInput empties the input box after a message was accepted.
func (c *ChatPanel) ClearInput() { c.input = "" }

// Editing reports whether the input box has keyboard focus.
func (c *ChatPanel) Editing() bool { return c.open && c.editing }

// Draw renders the widget. bubbles must come from Layout. frame drives the loading animation.
func (c *ChatPanel) Draw(g page.ChatGeometry, bubbles []page.Bubble, loading bool, frame int) ChatEvents {
	var ev ChatEvents
	t := c.renderer.Theme

	label := "AI"
	if c.open {
		label = "X"
	}
	if gui.Button(Rect(g.Toggle), label) {
		c.Toggle()
		ev.Toggled = true
	}
	if !c.open {
		return ev
	}

	c.renderer.DrawRoundedPanel(g.Panel, t.PanelBg, 0.08)
	c.drawHeader(g.Header, loading)
	c.drawMessages(g.Messages, bubbles, loading, frame)

	enter := c.editing && rl.IsKeyPressed(rl.KeyEnter)
	if gui.TextBox(Rect(g.Input), &c.input, maxInputLen, c.editing) {
		c.editing = !c.editing
	}
	if len(c.input) > maxInputLen {
		c.input = c.input[:maxInputLen]
	}

	send := gui.Button(Rect(g.Send), "Send")
	if enter {
		c.editing = true
	}
	if (send || enter) && strings.TrimSpace(c.input) != "" && !loading {
		ev.Submit = c.input
	}
	return ev
}

func (c *ChatPanel) drawHeader(h components.Bounds, loading bool) {
	t := c.renderer.Theme
	rl.DrawRectangle(int32(h.X), int32(h.Y+h.H-1), int32(h.W), 1, t.Divider)
	rl.DrawCircle(int32(h.X+22), int32(h.Y+h.H/2), 5, t.Accent)
	rl.DrawText(c.title, int32(h.X+36), int32(h.Y+10), t.HeaderFontSize+2, t.Text)

	status := c.subtitle
	if loading {
		status = "Thinking..."
	}
	rl.DrawText(Printable(status), int32(h.X+36), int32(h.Y+30), t.FontSize-2, t.Muted)
}

func (c *ChatPanel) drawMessages(area components.Bounds, bubbles []page.Bubble, loading bool, frame int) {
	t := c.renderer.Theme
	rl.BeginScissorMode(int32(area.X), int32(area.Y), int32(area.W), int32(area.H))
	defer rl.EndScissorMode()

	for _, b := range bubbles {
		fill, text := t.ModelBubble, t.Text
		if b.Role == chat.RoleUser {
			fill, text = t.UserBubble, rl.Black
		}
		rl.DrawRectangleRounded(Rect(b.Bounds), 0.3, 6, fill)
		c.renderer.DrawLines(b.Lines, b.Bounds.X+10, b.Bounds.Y+10, c.fontSize, float32(c.fontSize)+c.lineSpacing, text)
	}

	if loading {
		// Three dots bouncing in turn below the last bubble
		y := area.Y + area.H - 16
		if n := len(bubbles); n > 0 {
			if below := bubbles[n-1].Bounds.Y + bubbles[n-1].Bounds.H + 16; below < y {
				y = below
			}
		}
		for i := 0; i < 3; i++ {
			lift := float32(0)
			if (frame/10)%3 == i {
				lift = 3
			}
			rl.DrawCircle(int32(area.X+12+float32(i)*12), int32(y-lift), 3, t.Muted)
		}
	}
}
