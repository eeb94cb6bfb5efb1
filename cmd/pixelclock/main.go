// pixelclock simulates an LED-matrix wall clock with built-in mini-games
// in the terminal.
//
// Usage:
//
//	pixelclock                 - Run the clock simulator
//	pixelclock serve           - Serve the simulator over SSH
//	pixelclock scores <game>   - Show stored scores for a game
//	pixelclock reset           - Wipe stored scores and settings
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--db <path>      - Scores database path (default: ~/.pixelclock/clock.db)
//	--seed <value>   - RNG seed for reproducible games
//	--debug          - Verbose logging to stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/pixelclock/internal/games/dino"
	_ "github.com/vovakirdan/pixelclock/internal/games/dodge"
	_ "github.com/vovakirdan/pixelclock/internal/games/snake"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   int64
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixelclock",
	Short: "LED-matrix clock with mini-games, simulated in your terminal",
	Long: `pixelclock renders a 32x16 LED wall clock in the terminal: time and
date on the panel, arithmetic quizzes, and three built-in games played
with the arrow keys.

Controls:
  arrows/wasd  - Remote control pad
  enter        - Ok
  esc          - Return
  o            - Options
  1/2/3        - Launch dino / dodge / snake directly
  b / m / l    - Physical button: tap, hold, long hold
  q            - Quit

Examples:
  pixelclock
  pixelclock --config ./clock.yaml --seed 42
  pixelclock serve --ssh :2222
  pixelclock scores snake`,
	Run: runClock,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pixelclock/clock.db", "Path to scores database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Verbose logging to stderr")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
}
