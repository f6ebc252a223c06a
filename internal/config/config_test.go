package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-puyo/internal/games/puyo/core"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	for _, variant := range []string{VariantClassic, VariantArcade} {
		t.Run(variant, func(t *testing.T) {
			data, err := DefaultYAML(variant)
			require.NoError(t, err)

			var cfg PuyoConfig
			require.NoError(t, yaml.Unmarshal(data, &cfg))
			assert.Equal(t, DefaultPuyoConfig(variant), cfg)
			assert.NoError(t, cfg.Validate())
		})
	}

	_, err := DefaultYAML("tetris")
	assert.Error(t, err)
}

func TestVariantDefaults(t *testing.T) {
	classic := DefaultPuyoConfig(VariantClassic)
	assert.Equal(t, 0, classic.Board.SpawnRow)
	assert.Equal(t, 10, classic.Rules.CellValue)
	assert.False(t, classic.Rules.Progressive)
	assert.Equal(t, 700*time.Millisecond, classic.FallInterval())

	arcade := DefaultPuyoConfig(VariantArcade)
	assert.Equal(t, 1, arcade.Board.SpawnRow)
	assert.Equal(t, 5000, arcade.Rules.CellValue)
	assert.True(t, arcade.Rules.Progressive)
}

func TestToOptions(t *testing.T) {
	opts := DefaultPuyoConfig(VariantClassic).ToOptions(99)

	want := core.DefaultOptions()
	want.Seed = 99
	assert.Equal(t, want, opts)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PuyoConfig)
		errMsg string
	}{
		{"narrow board", func(c *PuyoConfig) { c.Board.Cols = 1 }, "cols"},
		{"too many colors", func(c *PuyoConfig) { c.Pieces.Colors = 6 }, "colors"},
		{"bad policy", func(c *PuyoConfig) { c.Rules.SpawnCollision = "bounce" }, "bounce"},
		{"zero interval", func(c *PuyoConfig) { c.Timing.FallIntervalMS = 0 }, "fall_interval_ms"},
		{"min above base", func(c *PuyoConfig) { c.Timing.MinFallIntervalMS = 900 }, "min_fall_interval_ms"},
		{"no stage frames", func(c *PuyoConfig) { c.Timing.StageFrames = 0 }, "stage_frames"},
		{"bad progression", func(c *PuyoConfig) { c.Difficulty.Progression.Type = "time" }, "progression"},
		{"level out of range", func(c *PuyoConfig) { c.Difficulty.InitialLevel = 1.5 }, "initial_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPuyoConfig(VariantClassic)
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadPuyoCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "rules:\n  cell_value: 50\ntiming:\n  fall_interval_ms: 400\n")

	cfg, source, err := LoadPuyo(path, VariantArcade)
	require.NoError(t, err)

	assert.Equal(t, path, source)
	assert.Equal(t, 50, cfg.Rules.CellValue)
	assert.Equal(t, 400, cfg.Timing.FallIntervalMS)
	assert.True(t, cfg.Rules.Progressive, "unset keys keep the variant default")
	assert.Equal(t, 1, cfg.Board.SpawnRow)
}

func TestLoadPuyoCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := LoadPuyo(filepath.Join(dir, "missing.yaml"), VariantClassic)
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "board: [1, 2\n")
	_, _, err = LoadPuyo(broken, VariantClassic)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "board:\n  cols: 1\n")
	cfg, source, err := LoadPuyo(invalid, VariantClassic)
	assert.Error(t, err)
	assert.Equal(t, SourceBuiltin, source)
	assert.NoError(t, cfg.Validate(), "fallback config is usable")
}

func TestLoadPuyoSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, source, err := LoadPuyo("", VariantClassic)
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, source)
	assert.Equal(t, DefaultPuyoConfig(VariantClassic), cfg)

	userPath := filepath.Join(home, ".puyo", "configs", "puyo.yaml")
	writeFile(t, userPath, "pieces:\n  colors: 3\n")

	cfg, source, err = LoadPuyo("", VariantClassic)
	require.NoError(t, err)
	assert.Equal(t, userPath, source)
	assert.Equal(t, 3, cfg.Pieces.Colors)

	// An invalid user file is skipped.
	writeFile(t, userPath, "pieces:\n  colors: 0\n")
	_, source, err = LoadPuyo("", VariantClassic)
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, source)
}

func TestLoadPuyoUnknownVariant(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, source, err := LoadPuyo("", "nope")
	require.NoError(t, err)
	assert.Equal(t, SourceBuiltin, source)
	assert.Equal(t, DefaultPuyoConfig(VariantClassic), cfg)
}
