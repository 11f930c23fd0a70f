// snake is a terminal Snake game.
//
// Usage:
//
//	snake                    - Play
//	snake config             - Print the default configuration
//	snake config --effective - Print the configuration that would be used
//
// Global flags (all optional):
//
//	--config <path>      - Game config YAML (default: ~/.snake/snake.yaml, ./configs/snake.yaml, built-in)
//	--difficulty <name>  - easy, normal, hard or fixed
//	--fps <rate>         - Override the frame rate
//	--seed <value>       - RNG seed for reproducible runs
//	--log-file <path>    - Write logs to this file
//	--debug              - Verbose logging
//	--watch              - Reload the config file when it changes
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagLogFile    string
	flagDebug      bool
	flagWatch      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `Steer the snake around the board, eat food to grow and avoid the walls
and your own tail.

Controls:
  Arrows/WASD/hjkl  - Steer
  P/Esc             - Pause
  R                 - Restart after game over
  Ctrl+S            - Save a snapshot of the board
  Q/Ctrl+C          - Quit

Examples:
  snake
  snake --difficulty hard
  snake --config ./my-snake.yaml --watch
  snake --seed 42 --log-file /tmp/snake.log --debug`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logging)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")

	rootCmd.AddCommand(configCmd)
}
