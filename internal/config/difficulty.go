package config

import (
	"math"
	"time"
)

// DifficultyManager derives the current fall speed from score and pieces.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none" && d.cfg.Progression.Type != ""
}

// Level returns the current difficulty level in [0, 1].
func (d *DifficultyManager) Level(score, pieces int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "pieces":
		progress = float64(pieces) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	// Interpolate from the initial level up to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// FallInterval returns the gravity interval at the current level:
// base / (1 + level*speed_multiplier), never below min.
func (d *DifficultyManager) FallInterval(base, min time.Duration, score, pieces int) time.Duration {
	level := d.Level(score, pieces)
	interval := time.Duration(float64(base) / (1.0 + level*d.cfg.Scaling.SpeedMultiplier))
	if interval < min {
		return min
	}
	return interval
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
