package config

import (
	"errors"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Surface.Width != 500 || cfg.Surface.Height != 500 {
		t.Errorf("expected 500x500 surface, got %dx%d", cfg.Surface.Width, cfg.Surface.Height)
	}
	if cfg.Physics.Restitution != 0.8 {
		t.Errorf("expected restitution 0.8, got %f", cfg.Physics.Restitution)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("gentle")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Physics.Gravity != 0.1 || cfg.Physics.VY != 2 {
		t.Errorf("unexpected gentle physics %+v", cfg.Physics)
	}

	cfg.Physics.Gravity = 42
	if Presets["gentle"].Physics.Gravity != 0.1 {
		t.Error("GetPreset returned shared state")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValid(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d names, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bounce.yaml")
	data := []byte("physics:\n  gravity: 0.5\nscheduler:\n  max_fps: 24\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("expected gravity 0.5, got %f", cfg.Physics.Gravity)
	}
	if cfg.Scheduler.MaxFPS != 24 {
		t.Errorf("expected max_fps 24, got %f", cfg.Scheduler.MaxFPS)
	}
	if cfg.Surface.Width != DefaultWidth || cfg.Ball.Color != DefaultColor {
		t.Error("defaults not preserved")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bounce.yaml")
	cfg := GetPreset("superball")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n%+v\n%+v", loaded, cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
	}{
		{"zero width", func(c *Config) { c.Surface.Width = 0 }},
		{"negative radius", func(c *Config) { c.Ball.Radius = -1 }},
		{"negative fps", func(c *Config) { c.Scheduler.MaxFPS = -1 }},
		{"zero refresh", func(c *Config) { c.Scheduler.RefreshRate = 0 }},
		{"negative frames", func(c *Config) { c.Scheduler.Frames = -3 }},
		{"bad color", func(c *Config) { c.Ball.Color = "nope" }},
		{"bad background", func(c *Config) { c.Surface.Background = "#12" }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad restitution", func(c *Config) { c.Physics.Restitution = 2 }},
		{"nan radius", func(c *Config) { c.Ball.Radius = math.NaN() }},
		{"nan refresh", func(c *Config) { c.Scheduler.RefreshRate = math.NaN() }},
		{"inf refresh", func(c *Config) { c.Scheduler.RefreshRate = math.Inf(1) }},
		{"nan max fps", func(c *Config) { c.Scheduler.MaxFPS = math.NaN() }},
		{"inf max fps", func(c *Config) { c.Scheduler.MaxFPS = math.Inf(1) }},
		{"nan x", func(c *Config) { c.Ball.X = math.NaN() }},
		{"inf y", func(c *Config) { c.Ball.Y = math.Inf(-1) }},
		{"nan gravity", func(c *Config) { c.Physics.Gravity = math.NaN() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"":      slog.LevelInfo,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}

func TestRefreshInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scheduler.RefreshRate = 50
	if got := cfg.RefreshInterval(); got != 20 {
		t.Errorf("expected 20ms, got %f", got)
	}
}

func TestLoadOverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "over.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  color: green\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOver(path, GetPreset("clay"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Ball.Color != "green" {
		t.Errorf("expected color green, got %s", cfg.Ball.Color)
	}
	if cfg.Physics.Restitution != 0.3 {
		t.Errorf("expected preset restitution 0.3 kept, got %f", cfg.Physics.Restitution)
	}
}

func TestLoadRejectsNaN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nan.yaml")
	data := []byte("scheduler:\n  refresh_rate: .nan\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for a NaN refresh rate, got %v", err)
	}
}
