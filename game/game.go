// Package game wires the cursor effects, page layout, chat and telemetry
// into one frame loop.
package game

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/lumina/camera"
	"github.com/pthm-cable/lumina/chat"
	"github.com/pthm-cable/lumina/config"
	"github.com/pthm-cable/lumina/cursor"
	"github.com/pthm-cable/lumina/page"
	"github.com/pthm-cable/lumina/profile"
	"github.com/pthm-cable/lumina/renderer"
	"github.com/pthm-cable/lumina/systems"
	"github.com/pthm-cable/lumina/telemetry"
	"github.com/pthm-cable/lumina/ui"
)

// Options holds configuration for creating a new Game.
type Options struct {
	Seed          int64
	Profile       *profile.Profile // nil = embedded profile
	Sender        chat.Sender      // nil = assistant unavailable
	LogStats      bool
	StatsWindow   int    // ticks per stats window, 0 = config
	OutputDir     string // empty = no CSV output
	Headless      bool
	ReducedMotion bool
	Touch         bool // pretend the device has no fine pointer
}

// Game holds the complete viewer state.
type Game struct {
	cfg     *config.Config
	rng     *rand.Rand
	profile *profile.Profile
	dt      float32

	// Event plumbing
	bus    *systems.PointerBus
	frames *systems.FrameScheduler

	// Cursor effects and hint resolution
	cursor *cursor.Cursor
	hover  *systems.HoverSystem
	hint   string

	// Page state
	camera      *camera.Camera
	nav         page.Navigator
	layout      page.Layout
	layoutDirty bool
	navBar      page.NavBar
	chatGeom    page.ChatGeometry
	measure     page.Measurer
	hovered     int // index of the block under the pointer, -1 for none

	// Chat
	chat *chat.Session
	ctx  context.Context
	stop context.CancelFunc

	// Background
	aurora *systems.AuroraSystem

	// Rendering (nil in headless mode)
	ui         *ui.Renderer
	pageView   *ui.PageView
	navView    *ui.NavView
	chatPanel  *ui.ChatPanel
	hud        *ui.HUD
	perfPanel  *ui.PerfPanel
	background *renderer.BackgroundRenderer
	trailDraw  *renderer.TrailRenderer
	markerDraw *renderer.MarkerRenderer

	// Telemetry
	perfCollector *telemetry.PerfCollector
	collector     *telemetry.TrailCollector
	outputManager *telemetry.OutputManager
	logStats      bool

	// State
	tick          int32
	headless      bool
	showHUD       bool
	quit          bool
	reducedMotion bool
	touch         bool
	screenWidth   float32
	screenHeight  float32
	pointerX      float32
	pointerY      float32
	clicked       bool
	headlessPath  lissajous
}

// NewGameWithOptions creates a new game instance. The raylib window must
// already be open unless opts.Headless is set.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	prof := opts.Profile
	if prof == nil {
		prof = profile.Default()
	}
	sender := opts.Sender
	if sender == nil {
		sender = chat.Unavailable(chat.ErrAPIKeyMissing)
	}

	ctx, stop := context.WithCancel(context.Background())
	g := &Game{
		cfg:           cfg,
		rng:           rand.New(rand.NewSource(opts.Seed)),
		profile:       prof,
		dt:            1 / float32(cfg.Screen.TargetFPS),
		bus:           systems.NewPointerBus(),
		frames:        systems.NewFrameScheduler(),
		hover:         systems.NewHoverSystem(),
		hovered:       -1,
		layoutDirty:   true,
		ctx:           ctx,
		stop:          stop,
		headless:      opts.Headless,
		logStats:      opts.LogStats,
		reducedMotion: opts.ReducedMotion,
		touch:         opts.Touch,
		screenWidth:   cfg.Derived.ScreenW32,
		screenHeight:  cfg.Derived.ScreenH32,
		pointerX:      -1,
		pointerY:      -1,
	}

	g.cursor = cursor.New(cfg, g.rng, g.bus, g.frames)
	g.camera = camera.New(g.screenWidth, g.screenHeight, float32(cfg.UI.ScrollEasing))
	g.chat = chat.NewSession(sender, chat.SessionConfigFromConfig(&cfg.Chat, prof.FirstName()))
	g.aurora = systems.NewAuroraSystem(len(cfg.Derived.BlobColors), cfg.Background.Seed,
		cfg.Background.NoiseScale, cfg.Background.Wander)

	if opts.Headless {
		g.measure = approxMeasure
		g.headlessPath = newLissajous(g.screenWidth, g.screenHeight)
	} else {
		g.initRendering()
	}

	g.initTelemetry(opts)
	g.seedPointer()
	g.syncCursor()
	g.rebuildLayout()

	slog.Info("viewer started",
		"seed", opts.Seed,
		"headless", opts.Headless,
		"width", g.screenWidth,
		"height", g.screenHeight,
		"profile", prof.Name,
	)
	return g
}

// initRendering creates the raylib-backed drawing components.
func (g *Game) initRendering() {
	cfg := g.cfg
	theme := ui.DefaultTheme().WithAccent(cfg.Derived.Accent)
	g.ui = ui.NewThemedRenderer(theme)
	g.ui.ApplyGuiStyle(int32(cfg.UI.FontSize))
	g.measure = ui.MeasureText

	g.pageView = ui.NewPageView(g.ui)
	g.navView = ui.NewNavView(g.ui)
	g.chatPanel = ui.NewChatPanel(g.ui, cfg.Chat.AssistantName, "Ask about "+g.profile.FirstName(),
		int32(cfg.UI.FontSize)-2, float32(cfg.UI.LineSpacing))
	g.hud = ui.NewHUD(g.ui)
	g.perfPanel = ui.NewPerfPanel(g.ui, int32(g.screenWidth)-250, int32(cfg.UI.NavHeight)+16)

	g.background = renderer.NewBackgroundRenderer(int32(g.screenWidth), int32(g.screenHeight),
		theme.Background, cfg.Derived.BlobColors, cfg.Background.Alpha)
	g.trailDraw = renderer.NewTrailRenderer(cfg.Derived.Palette, float32(cfg.Trail.Glow))
	g.markerDraw = renderer.NewMarkerRenderer(cfg.Derived.Accent)
}

// Update runs one frame of input, layout, hover resolution and simulation.
func (g *Game) Update() {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseInput)
	if g.headless {
		g.headlessInput()
	} else {
		g.handleInput()
	}

	g.perfCollector.StartPhase(telemetry.PhaseLayout)
	g.updateLayout()

	g.perfCollector.StartPhase(telemetry.PhaseHover)
	g.updateHover()

	g.perfCollector.StartPhase(telemetry.PhaseCursor)
	g.frames.Run()
	g.perfCollector.SetParticles(len(g.cursor.Trail.Particles()))
	if !g.reducedMotion {
		g.aurora.Update(g.dt)
	}

	g.perfCollector.StartPhase(telemetry.PhaseChat)
	if g.chat.Poll() {
		slog.Debug("chat reply received", "messages", len(g.chat.Messages()))
	}

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.tick++
	if g.headless {
		g.perfCollector.EndTick()
	}
}

// UpdateHeadless runs one frame without a window.
func (g *Game) UpdateHeadless() {
	g.Update()
}

// Tick returns the number of frames run so far.
func (g *Game) Tick() int32 {
	return g.tick
}

// ShouldQuit reports whether the user asked to close the viewer.
func (g *Game) ShouldQuit() bool {
	return g.quit
}

// Unload releases resources and stops background work.
func (g *Game) Unload() {
	g.cursor.Close()
	g.chat.Close()
	g.stop()
	g.hover.Clear()
	if g.outputManager != nil {
		if err := g.outputManager.Close(); err != nil {
			slog.Error("failed to close output files", "error", err)
		}
		g.outputManager = nil
	}
}
