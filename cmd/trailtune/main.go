// Trail tuning tool - interactive trail preview with sliders.
//
// Usage: go run ./cmd/trailtune [-config path]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/lumina/config"
	"github.com/pthm-cable/lumina/renderer"
	"github.com/pthm-cable/lumina/systems"
	"github.com/pthm-cable/lumina/telemetry"
)

const (
	windowWidth  = 1100
	windowHeight = 720
	previewW     = 640
	previewH     = 640
	panelWidth   = windowWidth - previewW - 40
)

// slider binds one trail constant to a slider row.
type slider struct {
	label    string
	value    *float64
	min, max float64
	format   string
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	defaults := cfg.Trail
	tc := &cfg.Trail
	maxSteps := float64(tc.MaxSteps)

	sliders := []slider{
		{"Min distance (px before spawning)", &tc.MinDistance, 0, 20, "%.1f"},
		{"Step spacing (px per point)", &tc.StepSpacing, 1, 30, "%.1f"},
		{"Max steps (points per tick)", &maxSteps, 1, 30, "%.0f"},
		{"Spawn chance", &tc.SpawnChance, 0, 1, "%.2f"},
		{"Jitter (+/- px)", &tc.Jitter, 0, 20, "%.1f"},
		{"Horizontal drift (px/tick)", &tc.DriftX, 0, 2, "%.2f"},
		{"Fall min (px/tick)", &tc.FallMin, 0, 3, "%.2f"},
		{"Fall max (px/tick)", &tc.FallMax, 0, 3, "%.2f"},
		{"Decay (life per tick)", &tc.Decay, 0.005, 0.2, "%.3f"},
		{"Size min", &tc.SizeMin, 0.5, 10, "%.1f"},
		{"Size max", &tc.SizeMax, 0.5, 10, "%.1f"},
		{"Rotation speed (deg/tick)", &tc.RotationSpeed, 0, 10, "%.1f"},
		{"Glow", &tc.Glow, 0, 6, "%.1f"},
	}

	rl.InitWindow(windowWidth, windowHeight, "Trail Tuning")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	rng := rand.New(rand.NewSource(1))
	params := systems.TrailParamsFromConfig(tc)
	trail := systems.NewTrailSystem(params, rng, previewW/2, previewH/2)
	draw := renderer.NewTrailRenderer(cfg.Derived.Palette, float32(tc.Glow))
	collector := telemetry.NewTrailCollector(cfg.Screen.TargetFPS, 1/float32(cfg.Screen.TargetFPS), params)
	var window telemetry.TrailWindowStats

	preview := rl.Rectangle{X: 10, Y: 10, Width: previewW, Height: previewH}
	target := rl.LoadRenderTexture(previewW, previewH)
	defer rl.UnloadRenderTexture(target)

	auto := true
	var t float64
	status := ""

	for !rl.WindowShouldClose() {
		// Pointer: the real mouse inside the preview, otherwise a Lissajous sweep
		mouse := rl.GetMousePosition()
		var px, py float32
		if !auto && rl.CheckCollisionPointRec(mouse, preview) {
			px, py = mouse.X-preview.X, mouse.Y-preview.Y
		} else {
			t += 1 / float64(cfg.Screen.TargetFPS)
			px = previewW/2 + previewW*0.38*float32(math.Sin(3*t+math.Pi/2))
			py = previewH/2 + previewH*0.38*float32(math.Sin(2*t))
		}

		step := trail.Update(px, py)
		collector.Record(step)
		if collector.ShouldFlush() {
			window = collector.Flush()
		}

		// Draw the trail into its own texture so it stays inside the preview
		rl.BeginTextureMode(target)
		rl.ClearBackground(rl.Color{R: 5, G: 5, B: 8, A: 255})
		draw.Draw(trail.Particles)
		rl.EndTextureMode()

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Render textures are stored upside down
		rl.DrawTextureRec(target.Texture,
			rl.Rectangle{X: 0, Y: 0, Width: previewW, Height: -previewH},
			rl.Vector2{X: preview.X, Y: preview.Y}, rl.White)
		rl.DrawRectangleLinesEx(preview, 1, rl.DarkGray)

		statsY := int32(previewH + 20)
		bound := params.MaxSteps * params.LifetimeTicks()
		rl.DrawText(fmt.Sprintf("Live: %d  Bound: %d  Lifetime: %d ticks", trail.Count(), bound, params.LifetimeTicks()),
			15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Last second: live p90 %.0f  max %d  spawn/move %.2f", window.LiveP90, window.LiveMax, window.SpawnPerMove),
			15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewW + 30)
		panelY := float32(10)

		rl.DrawText("Trail Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 30

		changed := false
		for _, s := range sliders {
			rl.DrawText(s.label, int32(panelX), int32(panelY), 12, rl.Gray)
			panelY += 14
			v := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 16},
				"", "",
				float32(*s.value), float32(s.min), float32(s.max),
			)
			rl.DrawText(fmt.Sprintf(s.format, *s.value), int32(panelX+float32(panelWidth-70)), int32(panelY), 14, rl.DarkGray)
			if float64(v) != *s.value {
				*s.value = float64(v)
				changed = true
			}
			panelY += 26
		}

		if changed {
			tc.MaxSteps = int(math.Round(maxSteps))
			params = sanitize(systems.TrailParamsFromConfig(tc))
			trail.SetParams(params)
			draw = renderer.NewTrailRenderer(cfg.Derived.Palette, float32(tc.Glow))
			status = ""
		}

		panelY += 6
		rl.DrawLine(int32(panelX), int32(panelY), int32(panelX)+int32(panelWidth)-20, int32(panelY), rl.LightGray)
		panelY += 12

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(auto, "Use Mouse", "Auto Sweep")) {
			auto = !auto
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Clear") {
			trail.Reset(px, py)
		}
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			*tc = defaults
			maxSteps = float64(tc.MaxSteps)
			params = systems.TrailParamsFromConfig(tc)
			trail.SetParams(params)
			draw = renderer.NewTrailRenderer(cfg.Derived.Palette, float32(tc.Glow))
			status = "defaults restored"
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Copy YAML") {
			out, err := trailYAML(tc)
			if err != nil {
				status = err.Error()
			} else {
				rl.SetClipboardText(out)
				fmt.Println(out)
				status = "copied to clipboard"
			}
		}
		panelY += 40

		if status != "" {
			rl.DrawText(status, int32(panelX), int32(panelY), 14, rl.DarkGreen)
		}

		rl.EndDrawing()
	}
}

// sanitize keeps slider combinations the simulation cannot run with in range.
func sanitize(p systems.TrailParams) systems.TrailParams {
	if p.Decay <= 0 {
		p.Decay = 0.005
	}
	if p.StepSpacing <= 0 {
		p.StepSpacing = 1
	}
	if p.FallMax < p.FallMin {
		p.FallMax = p.FallMin
	}
	if p.SizeMax < p.SizeMin {
		p.SizeMax = p.SizeMin
	}
	return p
}

// trailYAML renders the trail section ready to paste into config.yaml.
func trailYAML(tc *config.TrailConfig) (string, error) {
	data, err := yaml.Marshal(map[string]*config.TrailConfig{"trail": tc})
	if err != nil {
		return "", fmt.Errorf("marshaling trail config: %w", err)
	}
	return string(data), nil
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
