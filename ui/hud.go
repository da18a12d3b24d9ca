package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lumina/telemetry"
)

// HUDData holds all the data needed to render the debug HUD.
type HUDData struct {
	FPS          int32
	Tick         int32
	LiveStars    int
	LifetimeCap  int
	Hint         string
	View         string
	Effects      bool
	Regions      int
	ScrollY      float32
	MaxScroll    float32
	PointerX     float32
	PointerY     float32
	ChatOpen     bool
	ChatLoading  bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the debug heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD(r *Renderer) *HUD {
	return &HUD{renderer: r}
}

// Draw renders the HUD in the bottom-left corner.
func (h *HUD) Draw(data HUDData) {
	const width, lines = 250, 8
	lh := h.renderer.Theme.LineHeight
	x := int32(10)
	y := data.ScreenHeight - 10 - lines*lh - 2*h.renderer.Theme.Padding
	h.renderer.DrawPanel(x, y, width, lines*lh+2*h.renderer.Theme.Padding)

	x += h.renderer.Theme.Padding
	y += h.renderer.Theme.Padding
	const lw = 80

	effects := "on"
	if !data.Effects {
		effects = "off"
	}
	chatState := "closed"
	switch {
	case data.ChatLoading:
		chatState = "waiting"
	case data.ChatOpen:
		chatState = "open"
	}

	y = h.renderer.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d  tick %d", data.FPS, data.Tick), lw)
	y = h.renderer.DrawLabelValue(x, y, "Effects", effects, lw)
	y = h.renderer.DrawLabelValue(x, y, "Stars", fmt.Sprintf("%d / %d", data.LiveStars, data.LifetimeCap), lw)
	y = h.renderer.DrawLabelValue(x, y, "Hint", data.Hint, lw)
	y = h.renderer.DrawLabelValue(x, y, "View", data.View, lw)
	y = h.renderer.DrawLabelValue(x, y, "Scroll", fmt.Sprintf("%.0f / %.0f", data.ScrollY, data.MaxScroll), lw)
	y = h.renderer.DrawLabelValue(x, y, "Pointer", fmt.Sprintf("%.0f, %.0f  (%d regions)", data.PointerX, data.PointerY, data.Regions), lw)
	h.renderer.DrawLabelValue(x, y, "Chat", chatState, lw)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	w := rl.MeasureText(controls, 14)
	rl.DrawText(controls, screenWidth-w-10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders the per-phase frame timing panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(r *Renderer, x, y int32) *PerfPanel {
	return &PerfPanel{renderer: r, x: x, y: y}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel with phases in frame order.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	x := p.x
	y := p.y
	h := int32(72 + 14*len(telemetry.Phases))
	p.renderer.DrawPanel(x-8, y-8, 250, h)

	rl.DrawText("Frame Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Tick: %s  FPS: %.0f", stats.AvgTickDuration.Round(time.Microsecond), stats.FPS), x, y, 14, rl.Yellow)
	y += 16
	rl.DrawText(fmt.Sprintf("Stars: %.0f avg %d peak  %s/star", stats.AvgParticles, stats.PeakParticles, stats.CursorPerParticle), x, y, 12, rl.SkyBlue)
	y += 16

	for _, phase := range telemetry.Phases {
		avg := stats.PhaseAvg[phase]
		pct := stats.PhasePct[phase]

		color := rl.LightGray
		if pct > 40 {
			color = rl.Red
		} else if pct > 20 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", phase, avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
