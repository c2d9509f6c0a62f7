// birdshot is a terminal arcade game: steer a bird around the arena, shoot
// the bouncing bombs with beams and don't touch any of them.
//
// Usage:
//
//	birdshot                 - Play
//	birdshot config          - Print the default configuration
//
// Flags:
//
//	--config <path>     - Game config YAML (default: search ~/.birdshot, ./configs)
//	--assets <path>     - Asset catalog YAML (default: embedded)
//	--fps <rate>        - Override the tick rate from the config
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--mute              - Disable sound
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagAssets   string
	flagFPS      int
	flagSeed     int64
	flagMute     bool
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
	Use:   "birdshot",
	Short: "Birdshot - dodge and shoot bouncing bombs in your terminal",
	Long: `Birdshot puts a bird in an arena full of bouncing bombs.
Shoot them down with beams; touching one ends the game.

Controls:
  Arrows/WASD  - Move (keys combine for diagonals)
  Space        - Fire a beam where the bird is facing
  Q/Esc/Ctrl+C - Quit

Examples:
  birdshot
  birdshot --seed 42 --mute
  birdshot --config ./my-birdshot.yaml --log-file birdshot.log`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "Path to custom asset catalog YAML")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logs)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(configCmd)
}
