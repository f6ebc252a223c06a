package config

import (
	"embed"
	"fmt"
	"path"

	"github.com/vovakirdan/tui-puyo/internal/games/puyo/core"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// Variant IDs with an embedded default config.
const (
	VariantClassic = "puyo"
	VariantArcade  = "puyo_arcade"
)

// DefaultYAML returns the embedded default config file for a variant.
func DefaultYAML(variant string) ([]byte, error) {
	data, err := defaultsFS.ReadFile(path.Join("defaults", variant+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("config: no default config for variant %q", variant)
	}
	return data, nil
}

// DefaultPuyoConfig returns the hardcoded configuration for a variant,
// used when neither a file nor the embedded default can be read.
func DefaultPuyoConfig(variant string) PuyoConfig {
	cfg := PuyoConfig{
		Board: BoardConfig{
			Rows:       13,
			Cols:       6,
			HiddenRows: 1,
			SpawnRow:   0,
		},
		Pieces: PiecesConfig{
			Colors:        5,
			QueueLowWater: 10,
			QueueBatch:    100,
		},
		Rules: RulesConfig{
			MinGroup:       4,
			CellValue:      10,
			SpawnCollision: string(core.SpawnOverlap),
			Progressive:    false,
		},
		Timing: TimingConfig{
			FallIntervalMS:    700,
			MinFallIntervalMS: 150,
			StageFrames:       6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
			},
		},
	}

	if variant == VariantArcade {
		cfg.Board.SpawnRow = cfg.Board.HiddenRows
		cfg.Rules.CellValue = 5000
		cfg.Rules.Progressive = true
	}
	return cfg
}
