// Package puyo adapts the Puyo Puyo engine to the platform: it loads the
// variant config, turns fixed-rate frames into gravity ticks and cascade
// stages, maps semantic actions to engine commands and draws the board.
package puyo

import (
	"errors"
	"math"
	"time"

	"github.com/vovakirdan/tui-puyo/internal/config"
	"github.com/vovakirdan/tui-puyo/internal/core"
	engine "github.com/vovakirdan/tui-puyo/internal/games/puyo/core"
	"github.com/vovakirdan/tui-puyo/internal/registry"
)

// Variant IDs.
const (
	IDClassic = config.VariantClassic
	IDArcade  = config.VariantArcade
)

// configPath and difficultyPreset are set from the CLI before a game starts.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config's own difficulty settings.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New(IDClassic)
	})
	registry.Register(IDArcade, func() registry.Game {
		return New(IDArcade)
	})
}

// Game is one Puyo Puyo session driven by platform frames.
type Game struct {
	variant string

	runtime    core.RuntimeConfig
	cfg        config.PuyoConfig
	cfgSource  string
	cfgErr     error
	difficulty *config.DifficultyManager
	engine     *engine.Engine

	fallFrames  int // Frames since the last gravity tick
	stageFrames int // Frames since the last cascade stage
	frame       uint64
	tooSmall    bool
}

// New creates a game for the given variant ID. Call Reset before Step.
func New(variant string) *Game {
	return &Game{variant: variant}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == IDArcade {
		return "Puyo Puyo Arcade"
	}
	return "Puyo Puyo"
}

// Reset loads the config and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	cfg, source, err := config.LoadPuyo(configPath, g.variant)
	if difficultyPreset != "" {
		config.ApplyPuyoPreset(&cfg, difficultyPreset)
	}

	e, engErr := engine.New(cfg.ToOptions(runtime.Seed))
	if engErr != nil {
		cfg = config.DefaultPuyoConfig(g.variant)
		source = config.SourceBuiltin
		err = errors.Join(err, engErr)
		e, _ = engine.New(cfg.ToOptions(runtime.Seed))
	}

	g.cfg = cfg
	g.cfgSource = source
	g.cfgErr = err
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.engine = e
	g.fallFrames = 0
	g.stageFrames = 0
	g.frame = 0

	g.engine.SpawnNext()
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize updates the screen size without restarting the session.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	w, h := g.layoutSize()
	g.tooSmall = width < w || height < h
}

// ConfigSource reports where the active config was loaded from: a file
// path, "embedded" or "builtin".
func (g *Game) ConfigSource() string {
	return g.cfgSource
}

// ConfigErr returns the error that forced a fallback config, if any.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// Step advances the session by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++

	if in.Has(core.ActionNewGame) {
		g.newGame()
		return core.StepResult{State: g.State()}
	}
	if g.engine.GameOver() {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.engine.TogglePause()
	}
	if g.tooSmall || !g.engine.Running() {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(in)

	switch g.engine.Phase() {
	case engine.PhaseResolving:
		g.stageFrames++
		if g.stageFrames >= g.cfg.Timing.StageFrames {
			g.stageFrames = 0
			g.engine.Advance()
		}
	case engine.PhaseFalling:
		g.fallFrames++
		if g.fallFrames >= g.fallIntervalFrames() {
			g.fallFrames = 0
			g.engine.Tick()
		}
	}

	return core.StepResult{State: g.State()}
}

// applyInput maps actions to engine commands. Commands the engine rejects
// in its current phase are dropped.
func (g *Game) applyInput(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.engine.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.engine.MoveRight()
	}
	if in.Has(core.ActionUp) || in.Has(core.ActionRotateCW) {
		g.engine.RotateCW()
	}
	if in.Has(core.ActionRotateCCW) {
		g.engine.RotateCCW()
	}
	if in.Has(core.ActionDown) && g.engine.SoftDrop() {
		g.fallFrames = 0
	}
	if in.Has(core.ActionHardDrop) {
		g.engine.HardDrop()
		g.fallFrames = 0
	}
}

func (g *Game) newGame() {
	g.engine.NewGame()
	g.engine.SpawnNext()
	g.fallFrames = 0
	g.stageFrames = 0
}

// FallInterval returns the current gravity interval.
func (g *Game) FallInterval() time.Duration {
	base := g.cfg.FallInterval()
	floor := time.Duration(g.cfg.Timing.MinFallIntervalMS) * time.Millisecond
	return g.difficulty.FallInterval(base, floor, g.engine.Score(), g.engine.Pieces())
}

// fallIntervalFrames converts the gravity interval to frames at the
// runtime tick rate.
func (g *Game) fallIntervalFrames() int {
	frames := int(math.Round(g.FallInterval().Seconds() * float64(g.runtime.TickRate)))
	return max(1, frames)
}

// State returns the score and status flags.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.GameOver(),
		Paused:   !g.engine.Running() && !g.engine.GameOver(),
		Chains:   g.engine.Chains(),
		MaxChain: g.engine.MaxChain(),
	}
}

// Snapshot returns a copy of the engine state.
func (g *Game) Snapshot() engine.Snapshot {
	return g.engine.Snapshot()
}

// Pieces returns the number of pieces spawned this game.
func (g *Game) Pieces() int {
	return g.engine.Pieces()
}
