package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Trail.Decay != 0.02 {
		t.Errorf("trail.decay = %v, want 0.02", cfg.Trail.Decay)
	}
	if cfg.Trail.MaxSteps != 10 {
		t.Errorf("trail.max_steps = %d, want 10", cfg.Trail.MaxSteps)
	}
	if cfg.Derived.LifetimeTicks != 50 {
		t.Errorf("lifetime ticks = %d, want 50", cfg.Derived.LifetimeTicks)
	}
	if len(cfg.Derived.Palette) != 4 {
		t.Fatalf("palette size = %d, want 4", len(cfg.Derived.Palette))
	}
	want := color.RGBA{R: 0x38, G: 0xbd, B: 0xf8, A: 255}
	if cfg.Derived.Palette[0] != want {
		t.Errorf("palette[0] = %v, want %v", cfg.Derived.Palette[0], want)
	}
	if cfg.Chat.Timeout != 30*time.Second {
		t.Errorf("chat.timeout = %v, want 30s", cfg.Chat.Timeout)
	}
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "trail:\n  decay: 0.05\nscreen:\n  width: 1920\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Trail.Decay != 0.05 {
		t.Errorf("decay = %v, want 0.05", cfg.Trail.Decay)
	}
	if cfg.Derived.LifetimeTicks != 20 {
		t.Errorf("lifetime ticks = %d, want 20", cfg.Derived.LifetimeTicks)
	}
	if cfg.Screen.Width != 1920 {
		t.Errorf("width = %d, want 1920", cfg.Screen.Width)
	}
	// Untouched defaults survive the merge
	if cfg.Screen.Height != 800 {
		t.Errorf("height = %d, want default 800", cfg.Screen.Height)
	}
	if cfg.Trail.SpawnChance != 0.5 {
		t.Errorf("spawn chance = %v, want default 0.5", cfg.Trail.SpawnChance)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero decay", "trail:\n  decay: 0\n", "trail.decay"},
		{"spawn chance above one", "trail:\n  spawn_chance: 1.5\n", "spawn_chance"},
		{"empty palette", "trail:\n  palette: []\n", "palette"},
		{"bad hex", "trail:\n  palette: [\"#zzzzzz\"]\n", "palette"},
		{"zero mass", "marker:\n  mass: 0\n", "mass"},
		{"inverted sizes", "trail:\n  size_min: 5\n  size_max: 1\n", "size range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Defaults()
	cfg.Trail.SpawnChance = 0.25

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load snapshot failed: %v", err)
	}
	if loaded.Trail.SpawnChance != 0.25 {
		t.Errorf("spawn chance = %v, want 0.25", loaded.Trail.SpawnChance)
	}
	if loaded.Chat.Timeout != cfg.Chat.Timeout {
		t.Errorf("timeout = %v, want %v", loaded.Chat.Timeout, cfg.Chat.Timeout)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected panic from Cfg() before Init()")
		}
	}()
	Cfg()
}
