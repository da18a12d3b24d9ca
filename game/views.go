package game

import (
	"log/slog"

	"github.com/pthm-cable/lumina/page"
)

// Chat panel size requested from the layout; it shrinks on small windows.
func (g *Game) chatSize() (w, h float32) {
	return float32(g.cfg.UI.ChatWidth), float32(g.cfg.UI.ChatHeight)
}

func (g *Game) metrics() page.Metrics {
	return page.MetricsFromConfig(&g.cfg.UI, g.screenWidth, g.screenHeight, g.measure)
}

// rebuildLayout lays out the current view and the chrome for the current
// window size.
func (g *Game) rebuildLayout() {
	m := g.metrics()
	g.layout = page.Build(g.nav.Current(), g.profile, m)
	g.navBar = page.BuildNav(g.profile.FirstName(), m)
	w, h := g.chatSize()
	g.chatGeom = page.BuildChat(m, w, h)
	g.camera.SetContentHeight(g.layout.Height)
	g.layoutDirty = false
}

// updateLayout rebuilds the layout when needed and eases the scroll offset.
func (g *Game) updateLayout() {
	if g.layoutDirty {
		g.rebuildLayout()
	}
	g.camera.Update()
}

// navigate switches to target. A changed view starts at the top of the
// page; the about target scrolls to its section instead.
func (g *Game) navigate(t page.Target) {
	from := g.nav.Current()
	view, anchor, changed := g.nav.Go(t)

	if changed {
		g.rebuildLayout()
		g.camera.Jump(0)
		g.hovered = -1
		slog.Info("view changed", "from", from.String(), "to", view.String(), "target", t.Label())
	}

	if anchor != "" {
		if y, ok := g.layout.Anchors[anchor]; ok {
			g.camera.ScrollTo(y)
		}
	} else if !changed {
		g.camera.ScrollTo(0)
	}
}

// activateBlock runs the click action of block i.
func (g *Game) activateBlock(i int) {
	if i < 0 || i >= len(g.layout.Blocks) {
		return
	}
	b := &g.layout.Blocks[i]
	switch b.Action {
	case page.ActionBack:
		g.navigate(page.TargetHome)
	case page.ActionOpenURL:
		g.openURL(b.URL)
	}
}
