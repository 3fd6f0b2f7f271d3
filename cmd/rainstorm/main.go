// rainstorm is a terminal zombie shooter played in a thunderstorm.
//
// Usage:
//
//	rainstorm list            - List available games
//	rainstorm play [game]     - Play a game (default: rainstorm)
//	rainstorm sim             - Run a headless simulation and print a summary
//	rainstorm config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom game config YAML
//	--log-file <path>     - Write logs to a file (default: discard)
//	--log-level <level>   - debug, info, warn or error
//	--mute                - Disable sound effects
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/rainstorm/internal/games/rainstorm"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rainstorm",
	Short: "Rainstorm - survive the zombie horde in your terminal",
	Long: `Rainstorm is a side-on zombie shooter for the terminal. Zombies shamble in
from both edges, faster and more often the longer you last.

Available commands:
  list     - Show all available games
  play     - Play the game
  sim      - Run a headless simulation with a scripted player
  config   - Print the default configuration

Examples:
  rainstorm play
  rainstorm play --seed 42 --mute
  rainstorm sim --seconds 120 --seed 7
  rainstorm config > ~/.rainstorm/configs/rainstorm.yaml`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, nil)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
