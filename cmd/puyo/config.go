package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puyo/internal/config"
)

var flagConfigCheck string

var configCmd = &cobra.Command{
	Use:   "config <mode>",
	Short: "Print the default config for a mode",
	Long: `Print the embedded default YAML for a mode. Save it to
~/.puyo/configs/<mode>.yaml or ./configs/<mode>.yaml to override it, or pass
it to 'puyo play --config'.

With --check, load the given file the way 'play' does and report whether it
is valid.

Examples:
  puyo config puyo > ~/.puyo/configs/puyo.yaml
  puyo config puyo_arcade
  puyo config puyo --check ./my-puyo.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigCheck, "check", "", "Validate a config file instead of printing the default")
}

func runConfig(_ *cobra.Command, args []string) {
	variant := args[0]

	if flagConfigCheck != "" {
		cfg, source, err := config.LoadPuyo(flagConfigCheck, variant)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("OK: %s (%dx%d, %d colors, cell value %d)\n",
			source, cfg.Board.Rows, cfg.Board.Cols, cfg.Pieces.Colors, cfg.Rules.CellValue)
		return
	}

	data, err := config.DefaultYAML(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
