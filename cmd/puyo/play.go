package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-puyo/internal/config"
	"github.com/vovakirdan/tui-puyo/internal/core"
	"github.com/vovakirdan/tui-puyo/internal/games/puyo"
	"github.com/vovakirdan/tui-puyo/internal/platform/tui"
	"github.com/vovakirdan/tui-puyo/internal/registry"
	"github.com/vovakirdan/tui-puyo/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: puyo).

Controls:
  Left/Right, A/D  - Move
  Up/X             - Rotate clockwise
  Z                - Rotate counter-clockwise
  Down/S           - Soft drop
  Space            - Hard drop
  P                - Pause
  N/R              - New game
  Esc              - Quit (when paused or over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start slow, speed up as the score grows
  normal - Start at 30% speed-up
  hard   - Start at 70% speed-up
  fixed  - No progression

Examples:
  puyo play
  puyo play puyo_arcade
  puyo play --difficulty hard
  puyo play --config ./my-puyo.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name recorded with high scores")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := config.VariantClassic
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'puyo list' to see available modes.")
		os.Exit(1)
	}
	if err := checkDifficulty(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := mustLogger(true)
	defer closeLog()

	puyo.SetConfigPath(flagConfig)
	puyo.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}

	cfg := runtimeConfig()
	logger.Info("starting game", "game", gameID, "seed", cfg.Seed, "fps", cfg.TickRate)

	runErr := tui.Run(game, store, cfg, flagPlayer, logger)
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// checkDifficulty rejects preset names the config layer does not know.
func checkDifficulty(name string) error {
	if name != "" && config.ParsePreset(name) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
	return nil
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}
