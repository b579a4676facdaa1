// memory is a terminal tile-matching memory game.
//
// Usage:
//
//	memory play                  - Pick a board size and play
//	memory play -d hard          - Play the 5x4 board directly
//	memory difficulties          - List board sizes
//	memory deal -d 4x4           - Print a shuffled board
//	memory serve                 - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set UI tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--config <path>     - Use a custom config YAML
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/KIM-17/matching-card-game/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory - flip cards and find the pairs in your terminal",
	Long: `Memory is a terminal tile-matching game. Flip two cards at a time,
keep the pairs that match, and clear the board in as few moves as you can.

Available commands:
  play          - Play on this terminal
  difficulties  - Show the board sizes
  deal          - Print a shuffled board
  serve         - Start SSH server for remote play

Examples:
  memory play
  memory play --difficulty 5x4
  memory deal --difficulty easy --seed 42
  memory serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "UI tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(difficultiesCmd)
	rootCmd.AddCommand(dealCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the game config or exits with an error.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger creates a logger at the --log-level threshold.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
