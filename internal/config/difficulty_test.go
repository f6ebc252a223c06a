package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	baseInterval = 700 * time.Millisecond
	minInterval  = 150 * time.Millisecond
)

func TestFallIntervalFixedByDefault(t *testing.T) {
	cfg := DefaultPuyoConfig(VariantClassic)
	d := NewDifficultyManager(cfg.Difficulty)

	assert.False(t, d.IsEnabled())
	assert.Equal(t, baseInterval, d.FallInterval(baseInterval, minInterval, 0, 0))
	assert.Equal(t, baseInterval, d.FallInterval(baseInterval, minInterval, 1_000_000, 500))
}

func TestApplyPuyoPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		wantLevel float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultPuyoConfig(VariantClassic)
			ApplyPuyoPreset(&cfg, tt.preset)

			d := NewDifficultyManager(cfg.Difficulty)
			assert.Equal(t, tt.enabled, d.IsEnabled())
			assert.InDelta(t, tt.wantLevel, d.Level(0, 0), 1e-9)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestFallIntervalScalesWithScore(t *testing.T) {
	cfg := DefaultPuyoConfig(VariantClassic)
	ApplyPuyoPreset(&cfg, DifficultyEasy)
	cfg.Difficulty.Progression.MaxAt = 1000
	d := NewDifficultyManager(cfg.Difficulty)

	assert.Equal(t, baseInterval, d.FallInterval(baseInterval, minInterval, 0, 0))

	// Halfway: level 0.5, multiplier 2 -> baseInterval / 2.
	assert.Equal(t, baseInterval/2, d.FallInterval(baseInterval, minInterval, 500, 0))

	// Max level: baseInterval / 3 is still above the floor.
	assert.Equal(t, baseInterval/3, d.FallInterval(baseInterval, minInterval, 5000, 0))

	cfg.Difficulty.Scaling.SpeedMultiplier = 10
	d = NewDifficultyManager(cfg.Difficulty)
	assert.Equal(t, minInterval, d.FallInterval(baseInterval, minInterval, 5000, 0))
}

func TestLevelByPieces(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "pieces", MaxAt: 10},
	})

	assert.InDelta(t, 0.5, d.Level(0, 0), 1e-9)
	assert.InDelta(t, 0.75, d.Level(0, 5), 1e-9)
	assert.InDelta(t, 1.0, d.Level(0, 50), 1e-9)
}

func TestParsePreset(t *testing.T) {
	assert.Equal(t, DifficultyHard, ParsePreset("hard"))
	assert.Equal(t, DifficultyPreset(""), ParsePreset("insane"))
	assert.Equal(t, DifficultyPreset(""), ParsePreset(""))
}
