// starfighter is a side-scrolling space shooter for the terminal.
//
// Usage:
//
//	starfighter              - Play the game
//	starfighter sim          - Run the simulation headless and print a summary
//	starfighter sprite       - Preview a sprite from the asset catalog
//
// Global flags:
//
//	--config <path>    - Custom config YAML
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--fps <rate>       - Override the tick rate (default: from config, 100)
//	--log-file <path>  - Write logs to a file
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-starfighter/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagFPS      int
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
	Use:   "starfighter",
	Short: "Starfighter - a space shooter in your terminal",
	Long: `Starfighter is a side-scrolling shooter. Fly over the starfield, keep
the beam gauge from running dry and shoot down the monsters drifting in
from the right before they reach you.

Run starfighter with no arguments to play. The flags below only override
settings from the config file, and the sim and sprite subcommands are
development helpers.

Controls:
  Arrows/WASD  - Move (two keys for diagonals)
  Mouse button - Climb
  Space/F      - Fire
  Q/Esc/Ctrl+C - Quit

Examples:
  starfighter
  starfighter --seed 42
  starfighter --config ./my-starfighter.yaml --log-file ./starfighter.log
  starfighter sim --ticks 6000 --fire
  starfighter sprite monster --width 60`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(spriteCmd)
}

// loadConfig loads the game config and applies command-line overrides.
func loadConfig() (config.StarfighterConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}
