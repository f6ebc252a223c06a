// puyo plays Puyo Puyo in the terminal, locally or over SSH.
//
// Usage:
//
//	puyo list               - List available modes
//	puyo play [mode]        - Play a mode (default: puyo)
//	puyo menu               - Pick a mode interactively
//	puyo serve              - Start SSH server for remote play
//	puyo scores <mode>      - Show high scores for a mode
//	puyo config <mode>      - Print the default config for a mode
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible piece order
//	--db <path>          - Set database path (default: ~/.puyo/scores.db)
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register the variants
	_ "github.com/vovakirdan/tui-puyo/internal/games/puyo"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puyo",
	Short: "Puyo Puyo in your terminal",
	Long: `Drop pairs of colored puyos, connect four or more of a color to pop
them, and set off chains for bigger scores.

Available commands:
  list     - Show all modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print a mode's default config

Examples:
  puyo play
  puyo play puyo_arcade --difficulty hard
  puyo menu
  puyo serve --ssh :2222
  puyo scores puyo`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.puyo/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger from the global flags. Without --log-file,
// interactive commands discard log output because Bubble Tea owns the
// terminal; the server logs to stderr. The returned func closes the log file.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "puyo",
	})
	return logger, closeFn, nil
}

// mustLogger is newLogger for command handlers: it exits on bad flags.
func mustLogger(interactive bool) (*log.Logger, func()) {
	logger, closeFn, err := newLogger(interactive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closeFn
}
