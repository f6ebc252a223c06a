// Package config provides YAML-based variant configuration loading and
// difficulty management for Puyo Puyo.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-puyo/internal/games/puyo/core"
)

// PuyoConfig contains all configuration for one Puyo Puyo variant.
type PuyoConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Pieces     PiecesConfig     `yaml:"pieces"`
	Rules      RulesConfig      `yaml:"rules"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Rows       int `yaml:"rows"`        // Total rows including hidden rows
	Cols       int `yaml:"cols"`        // Columns
	HiddenRows int `yaml:"hidden_rows"` // Rows above the visible play area
	SpawnRow   int `yaml:"spawn_row"`   // Pivot row for new pieces
}

// PiecesConfig defines the piece queue.
type PiecesConfig struct {
	Colors        int `yaml:"colors"`          // Number of piece colors
	QueueLowWater int `yaml:"queue_low_water"` // Refill when fewer pairs remain
	QueueBatch    int `yaml:"queue_batch"`     // Pairs generated per refill
}

// RulesConfig defines clearing and scoring.
type RulesConfig struct {
	MinGroup       int    `yaml:"min_group"`       // Smallest group that clears
	CellValue      int    `yaml:"cell_value"`      // Points per cell per chain step
	SpawnCollision string `yaml:"spawn_collision"` // "overlap" or "game_over"
	Progressive    bool   `yaml:"progressive"`     // Animate settling and clearing
}

// TimingConfig defines fall and animation speeds.
type TimingConfig struct {
	FallIntervalMS    int `yaml:"fall_interval_ms"`     // Gravity tick interval at level 0
	MinFallIntervalMS int `yaml:"min_fall_interval_ms"` // Fastest interval at max difficulty
	StageFrames       int `yaml:"stage_frames"`         // Frames per progressive cascade stage
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "pieces", or "none"
	MaxAt int    `yaml:"max_at"` // Score or piece count at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Fall speed gain at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown or empty values
// return "" which keeps the config's own settings.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// FallInterval returns the base gravity interval.
func (c PuyoConfig) FallInterval() time.Duration {
	return time.Duration(c.Timing.FallIntervalMS) * time.Millisecond
}

// ToOptions converts the config to engine options.
func (c PuyoConfig) ToOptions(seed int64) core.Options {
	return core.Options{
		Rows:           c.Board.Rows,
		Cols:           c.Board.Cols,
		HiddenRows:     c.Board.HiddenRows,
		SpawnRow:       c.Board.SpawnRow,
		Colors:         c.Pieces.Colors,
		MinGroup:       c.Rules.MinGroup,
		CellValue:      c.Rules.CellValue,
		QueueLowWater:  c.Pieces.QueueLowWater,
		QueueBatch:     c.Pieces.QueueBatch,
		SpawnCollision: core.SpawnCollision(c.Rules.SpawnCollision),
		Progressive:    c.Rules.Progressive,
		Seed:           seed,
	}
}

// Validate checks the config for values the engine or the timing loop
// cannot work with.
func (c PuyoConfig) Validate() error {
	var errs []error
	if err := c.ToOptions(0).Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Timing.FallIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("fall_interval_ms must be positive, got %d", c.Timing.FallIntervalMS))
	}
	if c.Timing.MinFallIntervalMS <= 0 || c.Timing.MinFallIntervalMS > c.Timing.FallIntervalMS {
		errs = append(errs, fmt.Errorf("min_fall_interval_ms must be in (0, %d], got %d", c.Timing.FallIntervalMS, c.Timing.MinFallIntervalMS))
	}
	if c.Timing.StageFrames < 1 {
		errs = append(errs, fmt.Errorf("stage_frames must be at least 1, got %d", c.Timing.StageFrames))
	}
	switch c.Difficulty.Progression.Type {
	case "score", "pieces", "none", "":
	default:
		errs = append(errs, fmt.Errorf("unknown progression type %q", c.Difficulty.Progression.Type))
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		errs = append(errs, fmt.Errorf("initial_level must be in [0, 1], got %v", c.Difficulty.InitialLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
