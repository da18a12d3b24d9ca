package game

import (
	"strconv"
	"strings"

	"github.com/pthm-cable/lumina/components"
)

// Region ID prefixes used for click routing.
const (
	regionBlock = "block:"
	regionNav   = "nav:"
	regionChat  = "chat:"
)

// registerRegions rebuilds the hover regions for this frame from the
// layout, the nav bar and the chat widget, all in screen coordinates.
func (g *Game) registerRegions() {
	g.hover.Clear()

	for i := range g.layout.Blocks {
		b := &g.layout.Blocks[i]
		if b.Hint == components.HintDefault {
			continue
		}
		if !g.camera.IsVisible(b.Bounds.Y, b.Bounds.H) {
			continue
		}
		_, sy := g.camera.WorldToScreen(b.Bounds.X, b.Bounds.Y)
		g.hover.Add(components.Bounds{X: b.Bounds.X, Y: sy, W: b.Bounds.W, H: b.Bounds.H}, components.HintRegion{
			Hint:  b.Hint,
			Layer: components.LayerContent,
			ID:    regionBlock + strconv.Itoa(i),
		})
	}

	// The bar itself masks content scrolled underneath it
	g.hover.Add(g.navBar.Bounds, components.HintRegion{
		Hint:  components.HintDefault,
		Layer: components.LayerNav,
		ID:    regionNav + "bar",
	})
	for _, item := range g.navBar.Items {
		g.hover.Add(item.Bounds, components.HintRegion{
			Hint:  components.HintHover,
			Layer: components.LayerNav,
			ID:    regionNav + item.Target.Label(),
		})
	}

	g.hover.Add(g.chatGeom.Toggle, components.HintRegion{
		Hint:  components.HintButton,
		Layer: components.LayerChat,
		ID:    regionChat + "toggle",
	})
	if g.chatOpen() {
		g.hover.Add(g.chatGeom.Panel, components.HintRegion{
			Hint:  components.HintDefault,
			Layer: components.LayerChat,
			ID:    regionChat + "panel",
		})
		g.hover.Add(g.chatGeom.Input, components.HintRegion{
			Hint:  components.HintText,
			Layer: components.LayerChat,
			ID:    regionChat + "input",
		})
		g.hover.Add(g.chatGeom.Send, components.HintRegion{
			Hint:  components.HintButton,
			Layer: components.LayerChat,
			ID:    regionChat + "send",
		})
	}
}

// updateHover resolves the region under the pointer, hands its hint to the
// marker and routes a pending click to the page block underneath.
func (g *Game) updateHover() {
	g.registerRegions()

	region, ok := g.hover.Lookup(g.pointerX, g.pointerY)
	if !ok {
		region = components.HintRegion{Hint: components.HintDefault}
	}
	g.cursor.SetHint(region.Hint)
	g.hint = region.Hint.String()

	g.hovered = blockIndex(region.ID)
	if g.clicked && g.hovered >= 0 {
		g.activateBlock(g.hovered)
	}
	g.clicked = false
}

// pointerOverChat reports whether the pointer is over the open chat panel.
func (g *Game) pointerOverChat() bool {
	return g.chatOpen() && g.chatGeom.Panel.Contains(g.pointerX, g.pointerY)
}

// blockIndex extracts the block index from a region ID, or returns -1.
func blockIndex(id string) int {
	rest, ok := strings.CutPrefix(id, regionBlock)
	if !ok {
		return -1
	}
	i, err := strconv.Atoi(rest)
	if err != nil {
		return -1
	}
	return i
}
