package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KIM-17/matching-card-game/internal/config"
	"github.com/KIM-17/matching-card-game/internal/deck"
)

var (
	flagDealDifficulty string
	flagDealJSON       bool
)

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Print a shuffled board",
	Long: `Deal one board and print it face-up, as a grid or as JSON.
The same --seed always deals the same board.

Examples:
  memory deal
  memory deal --difficulty 5x4 --seed 42
  memory deal -d easy --json`,
	Args: cobra.NoArgs,
	Run:  runDeal,
}

func init() {
	dealCmd.Flags().StringVarP(&flagDealDifficulty, "difficulty", "d", "", "Board size or alias (default from config)")
	dealCmd.Flags().BoolVar(&flagDealJSON, "json", false, "Print the board as JSON")
}

// dealtBoard is the JSON form of a dealt board.
type dealtBoard struct {
	Difficulty deck.Difficulty `json:"difficulty"`
	Columns    int             `json:"columns"`
	Seed       int64           `json:"seed"`
	Cards      deck.Board      `json:"cards"`
}

func runDeal(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board, err := deal(cfg, flagDealDifficulty, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDealJSON {
		err = writeBoardJSON(os.Stdout, board)
	} else {
		err = writeBoardGrid(os.Stdout, board)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// deal generates one board of the named difficulty from seed.
func deal(cfg config.Config, name string, seed int64) (dealtBoard, error) {
	d, err := cfg.ResolveDifficulty(name)
	if err != nil {
		return dealtBoard{}, err
	}

	gen := deck.NewGenerator(cfg.DeckTiers(), rand.New(rand.NewSource(seed)))
	tier, _ := gen.Tier(d)

	return dealtBoard{
		Difficulty: d,
		Columns:    tier.Columns,
		Seed:       seed,
		Cards:      gen.Generate(d),
	}, nil
}

func writeBoardJSON(w io.Writer, b dealtBoard) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

func writeBoardGrid(w io.Writer, b dealtBoard) error {
	fmt.Fprintf(w, "%s board (seed %d)\n\n", b.Difficulty, b.Seed)
	for _, row := range b.Cards.Rows(b.Columns) {
		faces := deck.Board(row).Values()
		if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(faces, "  ")); err != nil {
			return err
		}
	}
	return nil
}
