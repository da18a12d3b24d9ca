package game

import (
	"errors"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lumina/chat"
	"github.com/pthm-cable/lumina/telemetry"
	"github.com/pthm-cable/lumina/ui"
)

// Draw renders the frame: background, page, chrome, then the cursor
// effects on top of everything.
func (g *Game) Draw() {
	g.perfCollector.StartPhase(telemetry.PhaseRender)

	rl.BeginDrawing()
	rl.ClearBackground(g.ui.Theme.Background)

	g.background.Draw(g.aurora)
	g.pageView.Draw(&g.layout, g.camera, g.hovered, float32(g.cfg.UI.LineSpacing))

	if target, ok := g.navView.Draw(g.navBar, int32(g.cfg.UI.HeadingSize)); ok {
		g.navigate(target)
	}
	g.drawChat()

	if g.cursor.Enabled() {
		g.trailDraw.Draw(g.cursor.Trail.Particles())
		g.markerDraw.Draw(g.cursor.Marker.State())
	}

	if g.showHUD {
		g.drawHUD()
	}

	rl.EndDrawing()

	g.perfCollector.EndTick()
	g.perfCollector.RecordFrame()
}

// drawChat draws the assistant widget and submits what the user typed.
func (g *Game) drawChat() {
	bubbles := g.chatPanel.Layout(g.chat.Messages(), g.chatGeom)
	ev := g.chatPanel.Draw(g.chatGeom, bubbles, g.chat.Loading(), int(g.tick))
	if ev.Toggled {
		slog.Debug("chat toggled", "open", g.chatPanel.IsOpen())
	}
	if ev.Submit == "" {
		return
	}

	err := g.chat.Submit(g.ctx, ev.Submit)
	switch {
	case err == nil:
		g.chatPanel.ClearInput()
	case errors.Is(err, chat.ErrBusy), errors.Is(err, chat.ErrEmptyMessage):
		// Keep the text; the user can send it once the reply arrives
	default:
		slog.Warn("chat submit rejected", "error", err)
	}
}

// drawHUD renders the debug overlay.
func (g *Game) drawHUD() {
	g.hud.Draw(ui.HUDData{
		FPS:          rl.GetFPS(),
		Tick:         g.tick,
		LiveStars:    len(g.cursor.Trail.Particles()),
		LifetimeCap:  g.cursor.Trail.Params().MaxSteps * g.cursor.Trail.Params().LifetimeTicks(),
		Hint:         g.hint,
		View:         g.nav.Current().String(),
		Effects:      g.cursor.Enabled(),
		Regions:      g.hover.Count(),
		ScrollY:      g.camera.Y,
		MaxScroll:    g.camera.MaxScroll(),
		PointerX:     g.pointerX,
		PointerY:     g.pointerY,
		ChatOpen:     g.chatPanel.IsOpen(),
		ChatLoading:  g.chat.Loading(),
		ScreenWidth:  int32(g.screenWidth),
		ScreenHeight: int32(g.screenHeight),
	})
	g.perfPanel.Draw(g.perfCollector.Stats())
	g.hud.DrawControls(int32(g.screenWidth), int32(g.screenHeight), "F3 HUD | F11 fullscreen | Esc close chat / quit")
}
