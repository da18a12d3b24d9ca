package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lumina/chat"
	"github.com/pthm-cable/lumina/config"
	"github.com/pthm-cable/lumina/game"
	"github.com/pthm-cable/lumina/profile"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	profilePath := flag.String("profile", "", "Path to profile.yaml (empty = embedded profile)")
	headless := flag.Bool("headless", false, "Run the cursor simulation without a window")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Int("stats-window", 0, "Stats window size in ticks (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	reducedMotion := flag.Bool("reduced-motion", false, "Disable the cursor effects and background drift")
	touch := flag.Bool("touch", false, "Behave as a device without a fine pointer")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	prof, err := profile.Load(*profilePath)
	if err != nil {
		slog.Error("failed to load profile", "error", err)
		os.Exit(1)
	}

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:          rngSeed,
		Profile:       prof,
		Sender:        newSender(cfg, prof),
		LogStats:      *logStats,
		StatsWindow:   *statsWindow,
		OutputDir:     *outputDir,
		Headless:      *headless,
		ReducedMotion: *reducedMotion,
		Touch:         *touch,
	}

	if *headless {
		// Headless mode - cursor simulation on a synthetic pointer path, no window
		g := game.NewGameWithOptions(opts)
		defer g.Unload()

		slog.Info("starting headless run",
			"seed", rngSeed,
			"max_ticks", *maxTicks,
		)

		for {
			g.UpdateHeadless()

			if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
				slog.Info("max ticks reached", "tick", g.Tick())
				return
			}
		}
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	// Esc is handled by the viewer: it closes the chat before it quits
	rl.SetExitKey(0)
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGameWithOptions(opts)
	defer g.Unload()

	for !rl.WindowShouldClose() && !g.ShouldQuit() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			break
		}
	}
}

// newSender connects the assistant, or returns nil when it cannot run.
func newSender(cfg *config.Config, prof *profile.Profile) chat.Sender {
	key := os.Getenv(cfg.Chat.APIKeyEnv)
	if key == "" {
		slog.Warn("assistant disabled: API key not set", "env", cfg.Chat.APIKeyEnv)
		return nil
	}

	prompt, err := profile.SystemPrompt(prof)
	if err != nil {
		slog.Error("failed to render system prompt", "error", err)
		return nil
	}

	client, err := chat.NewGeminiClient(context.Background(), key, cfg.Chat.Model, prompt)
	if err != nil {
		slog.Warn("assistant disabled", "error", err)
		return nil
	}
	slog.Info("assistant connected", "model", cfg.Chat.Model)
	return client
}
