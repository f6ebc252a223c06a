package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source values reported by LoadPuyo besides file paths.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadPuyo loads the configuration for a variant and reports where it came
// from. Search order: customPath -> ~/.puyo/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default -> hardcoded default.
// Files are decoded over the variant's defaults, so they may set only the
// keys they change. A custom path that cannot be read or parsed is an error;
// the other locations are skipped when unusable.
func LoadPuyo(customPath, variant string) (PuyoConfig, string, error) {
	filename := variant + ".yaml"

	if customPath != "" {
		cfg, err := decodeFile(customPath, variant)
		if err != nil {
			return DefaultPuyoConfig(variant), SourceBuiltin, err
		}
		return cfg, customPath, nil
	}

	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if cfg, err := decodeFile(p, variant); err == nil {
			return cfg, p, nil
		}
	}

	if data, err := DefaultYAML(variant); err == nil {
		cfg := DefaultPuyoConfig(variant)
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, SourceEmbedded, nil
		}
	}
	return DefaultPuyoConfig(variant), SourceBuiltin, nil
}

// decodeFile reads a YAML file over the variant's defaults and validates it.
func decodeFile(path, variant string) (PuyoConfig, error) {
	cfg := DefaultPuyoConfig(variant)

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".puyo", "configs", filename)
}

// ApplyPuyoPreset modifies the config based on a difficulty preset.
func ApplyPuyoPreset(cfg *PuyoConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == "none" || cfg.Difficulty.Progression.Type == "" {
		cfg.Difficulty.Progression.Type = "score"
	}
}
