package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchGoDefaults(t *testing.T) {
	for _, id := range []string{BlocksID, ShapesID} {
		t.Run(id, func(t *testing.T) {
			var embedded FallingConfig
			if err := yaml.Unmarshal(GetDefaultYAML(id), &embedded); err != nil {
				t.Fatalf("embedded yaml does not parse: %v", err)
			}
			if err := embedded.Validate(); err != nil {
				t.Fatalf("embedded yaml is invalid: %v", err)
			}

			def, ok := DefaultFor(id)
			if !ok {
				t.Fatalf("no Go default for %q", id)
			}
			if embedded.TimeModel != def.TimeModel || embedded.TickRate != def.TickRate {
				t.Errorf("time model mismatch: yaml %s@%d, go %s@%d",
					embedded.TimeModel, embedded.TickRate, def.TimeModel, def.TickRate)
			}
			if embedded.Physics.InitialFallSpeed != def.Physics.InitialFallSpeed {
				t.Errorf("initial fall speed mismatch: %f vs %f",
					embedded.Physics.InitialFallSpeed, def.Physics.InitialFallSpeed)
			}
			if len(embedded.Obstacles.Shapes) != len(def.Obstacles.Shapes) {
				t.Errorf("shape count mismatch: %d vs %d",
					len(embedded.Obstacles.Shapes), len(def.Obstacles.Shapes))
			}
			if embedded.HitThresholdOrDefault() != def.HitThresholdOrDefault() {
				t.Errorf("hit threshold mismatch: %f vs %f",
					embedded.HitThresholdOrDefault(), def.HitThresholdOrDefault())
			}
		})
	}
}

func TestHitThresholdOrDefault(t *testing.T) {
	basic := DefaultBlocksConfig()
	if got := basic.HitThresholdOrDefault(); got != 0.1 {
		t.Errorf("basic threshold = %f, expected 0.1", got)
	}

	enhanced := DefaultShapesConfig()
	want := enhanced.Player.Size + enhanced.Obstacles.Size
	if got := enhanced.HitThresholdOrDefault(); got != want {
		t.Errorf("enhanced threshold = %f, expected %f", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FallingConfig)
	}{
		{"unknown time model", func(c *FallingConfig) { c.TimeModel = "warp" }},
		{"zero spawn interval", func(c *FallingConfig) { c.Obstacles.SpawnSeconds = 0 }},
		{"no lives", func(c *FallingConfig) { c.Player.Lives = 0 }},
		{"no shapes", func(c *FallingConfig) { c.Obstacles.Shapes = nil; c.Obstacles.Colors = nil }},
		{"color count mismatch", func(c *FallingConfig) { c.Obstacles.Colors = c.Obstacles.Colors[:2] }},
		{"spawn range outside playfield", func(c *FallingConfig) { c.Obstacles.SpawnRange = 1.5 }},
		{"zero fall speed", func(c *FallingConfig) { c.Physics.InitialFallSpeed = 0 }},
		{"ramp without period", func(c *FallingConfig) { c.Difficulty.Every = 0 }},
		{"zero tick rate", func(c *FallingConfig) { c.TickRate = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShapesConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadFallingCustomPathOverlays(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("player:\n  lives: 7\nphysics:\n  initial_fall_speed: 0.2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFalling(BlocksID, path)
	if err != nil {
		t.Fatalf("LoadFalling() error: %v", err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Player.Lives)
	}
	if cfg.Physics.InitialFallSpeed != 0.2 {
		t.Errorf("initial fall speed = %f, expected 0.2", cfg.Physics.InitialFallSpeed)
	}
	// Untouched keys keep the variant defaults
	if cfg.TimeModel != TimeModelTick || cfg.Obstacles.SpawnEvery != 30 {
		t.Errorf("defaults lost: time model %q, spawn every %d", cfg.TimeModel, cfg.Obstacles.SpawnEvery)
	}
}

func TestLoadFallingErrors(t *testing.T) {
	if _, err := LoadFalling("tetris", ""); err == nil {
		t.Error("unknown variant should fail")
	}

	if _, err := LoadFalling(ShapesID, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("time_model: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFalling(ShapesID, bad); err == nil {
		t.Error("malformed yaml should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFalling(ShapesID, invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid config error = %v, expected ErrInvalid", err)
	}
}

func TestLoadFallingDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadFalling(ShapesID, "")
	if err != nil {
		t.Fatalf("LoadFalling() error: %v", err)
	}
	if cfg.TimeModel != TimeModelDelta {
		t.Errorf("time model = %q, expected delta", cfg.TimeModel)
	}
	if len(cfg.Obstacles.Shapes) != 6 {
		t.Errorf("shapes = %v, expected six", cfg.Obstacles.Shapes)
	}
}

func TestApplyFallingPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantSpeed   float64
		wantLives   int
		wantEnabled bool
	}{
		{"", 0.4, 3, true},
		{DifficultyEasy, 0.4 * 0.8, 5, true},
		{DifficultyNormal, 0.4, 3, true},
		{DifficultyHard, 0.4 * 1.25, 2, true},
		{DifficultyFixed, 0.4, 3, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultShapesConfig()
			ApplyFallingPreset(&cfg, tc.preset)
			if math.Abs(cfg.Physics.InitialFallSpeed-tc.wantSpeed) > 1e-12 {
				t.Errorf("speed = %f, expected %f", cfg.Physics.InitialFallSpeed, tc.wantSpeed)
			}
			if cfg.Player.Lives != tc.wantLives {
				t.Errorf("lives = %d, expected %d", cfg.Player.Lives, tc.wantLives)
			}
			if cfg.Difficulty.Enabled != tc.wantEnabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.wantEnabled)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) error: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := ExpandHome("~/music/a.mp3"); got != filepath.Join(home, "music/a.mp3") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/abs/a.mp3"); got != "/abs/a.mp3" {
		t.Errorf("absolute path changed: %q", got)
	}
}
