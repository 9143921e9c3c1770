package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFalling loads the configuration for a Falling Blocks variant.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Files found on the search path are layered over the variant's embedded
// default, so a user file only needs the keys it changes.
func LoadFalling(id, customPath string) (FallingConfig, error) {
	base, ok := DefaultFor(id)
	if !ok {
		return FallingConfig{}, fmt.Errorf("config: unknown variant %q", id)
	}

	// Embedded YAML is the source of truth; the Go defaults back it up
	if data := GetDefaultYAML(id); data != nil {
		var embedded FallingConfig
		if err := yaml.Unmarshal(data, &embedded); err == nil {
			base = embedded
		}
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(ExpandHome(customPath))
		if err != nil {
			return base, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := overlay(base, data)
		if err != nil {
			return base, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return base, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory.
	// Broken files on these paths are skipped rather than fatal.
	candidates := []string{userConfigPath(id + ".yaml"), filepath.Join("configs", id+".yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := overlay(base, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return base, nil
}

// overlay decodes data on top of a copy of base.
func overlay(base FallingConfig, data []byte) (FallingConfig, error) {
	cfg := base
	// Copy slices so the result never shares backing arrays with base
	cfg.Obstacles.Shapes = append([]string(nil), base.Obstacles.Shapes...)
	cfg.Obstacles.Colors = append([]string(nil), base.Obstacles.Colors...)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// ApplyFallingPreset modifies the config based on a difficulty preset.
func ApplyFallingPreset(cfg *FallingConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Physics.InitialFallSpeed *= SpeedScaleForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
	case DifficultyHard:
		cfg.Player.Lives = 2
	}
}
