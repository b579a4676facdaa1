package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/KIM-17/matching-card-game/internal/config"
	"github.com/KIM-17/matching-card-game/internal/core"
	"github.com/KIM-17/matching-card-game/internal/platform/tui"
	"github.com/KIM-17/matching-card-game/internal/storage"
)

var (
	flagDifficulty string
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on this terminal",
	Long: `Start a game. Without --difficulty a board size picker is shown first.

Controls:
  Arrows/HJKL  - Move the cursor
  Enter/Space  - Flip the card under the cursor
  1-9          - Switch board size (deals a new board)
  R            - Deal a new board
  Tab          - Scoreboard
  B/Esc        - Back to the picker
  Q/Ctrl+C     - Quit

Best scores and finished rounds last until you quit.

Examples:
  memory play
  memory play --difficulty 3x4
  memory play --difficulty hard --seed 7
  memory play --log-file ./memory.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagDifficulty, "difficulty", "d", "", "Board size or alias: 3x4/easy, 4x4/normal, 5x4/hard")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the game owns the terminal)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()

	skipPicker := cmd.Flags().Changed("difficulty")
	difficulty, err := cfg.ResolveDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, config.ErrUnknownDifficulty) {
			fmt.Fprintln(os.Stderr, "Run 'memory difficulties' to see board sizes.")
		}
		os.Exit(1)
	}

	logger, closeLog, err := playLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Round log for the scoreboard; lives only as long as this process
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open round log", "error", err)
		store = nil
	}

	runErr := tui.Run(tui.SessionOptions{
		Tiers:      cfg.DeckTiers(),
		Difficulty: difficulty,
		SkipPicker: skipPicker,
		HideDelay:  cfg.HideDelay(),
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playLogger returns a logger writing to --log-file, or a discarding one.
func playLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard, "memory")
		return logger, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, "memory")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}
