package deck

import (
	"fmt"
	"math/rand"
	"strings"
)

// Card is one position on the board.
type Card struct {
	Position int    `json:"position"`
	Value    string `json:"value"`
}

// Board is the ordered card sequence for one round.
// Positions are indices into the slice and never change within a round.
type Board []Card

// Len returns the number of positions on the board.
func (b Board) Len() int {
	return len(b)
}

// Values returns the card faces in position order.
func (b Board) Values() []string {
	out := make([]string, len(b))
	for i, c := range b {
		out[i] = c.Value
	}
	return out
}

// Rows splits the board into rows of the given width.
// The last row may be shorter.
func (b Board) Rows(columns int) [][]Card {
	if columns <= 0 {
		return nil
	}
	rows := make([][]Card, 0, (len(b)+columns-1)/columns)
	for start := 0; start < len(b); start += columns {
		end := start + columns
		if end > len(b) {
			end = len(b)
		}
		rows = append(rows, b[start:end])
	}
	return rows
}

// Generator deals boards for a fixed tier table.
type Generator struct {
	tiers []Tier
	rng   *rand.Rand
}

// NewGenerator creates a generator over tiers using rng for shuffling.
// A nil rng is seeded from 1 so output stays reproducible; callers wanting
// fresh boards per process pass a time-seeded source.
// Panics if the tier table is invalid.
func NewGenerator(tiers []Tier, rng *rand.Rand) *Generator {
	if err := ValidateTiers(tiers); err != nil {
		panic(err.Error())
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	owned := make([]Tier, len(tiers))
	for i, t := range tiers {
		t.Symbols = cloneSymbols(t.Symbols)
		owned[i] = t
	}
	return &Generator{tiers: owned, rng: rng}
}

// ValidateTiers checks that every tier can produce a well-formed board.
func ValidateTiers(tiers []Tier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("deck: no tiers defined")
	}
	seen := make(map[string]bool)
	for _, t := range tiers {
		if t.Difficulty == "" {
			return fmt.Errorf("deck: tier with empty name")
		}
		for _, name := range []string{string(t.Difficulty), t.Alias} {
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			if seen[key] {
				return fmt.Errorf("deck: duplicate tier name %q", name)
			}
			seen[key] = true
		}
		if t.Pairs < 1 {
			return fmt.Errorf("deck: tier %q needs at least one pair", t.Difficulty)
		}
		if t.Columns < 1 {
			return fmt.Errorf("deck: tier %q needs at least one column", t.Difficulty)
		}
		if len(t.Symbols) < t.Pairs {
			return fmt.Errorf("deck: tier %q has %d symbols for %d pairs", t.Difficulty, len(t.Symbols), t.Pairs)
		}
		symbols := make(map[string]bool, t.Pairs)
		for _, s := range t.Symbols[:t.Pairs] {
			if s == "" {
				return fmt.Errorf("deck: tier %q has an empty symbol", t.Difficulty)
			}
			if symbols[s] {
				return fmt.Errorf("deck: tier %q repeats symbol %q", t.Difficulty, s)
			}
			symbols[s] = true
		}
	}
	return nil
}

// Tiers returns a copy of the tier table in its configured order.
func (g *Generator) Tiers() []Tier {
	out := make([]Tier, len(g.tiers))
	for i, t := range g.tiers {
		t.Symbols = cloneSymbols(t.Symbols)
		out[i] = t
	}
	return out
}

// Tier looks up a tier by difficulty.
func (g *Generator) Tier(d Difficulty) (Tier, bool) {
	for _, t := range g.tiers {
		if t.Difficulty == d {
			return t, true
		}
	}
	return Tier{}, false
}

// Resolve maps a user-supplied name or alias to a difficulty.
func (g *Generator) Resolve(name string) (Difficulty, bool) {
	for _, t := range g.tiers {
		if t.matches(name) {
			return t.Difficulty, true
		}
	}
	return "", false
}

// Generate deals a freshly shuffled board for d.
// Every symbol of the tier appears exactly twice and positions run 0..2N-1.
// Panics if d is not in the tier table.
func (g *Generator) Generate(d Difficulty) Board {
	tier, ok := g.Tier(d)
	if !ok {
		panic(fmt.Sprintf("deck: unknown difficulty %q", d))
	}

	values := make([]string, 0, tier.Size())
	for _, s := range tier.Symbols[:tier.Pairs] {
		values = append(values, s, s)
	}

	g.rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	// Positions are assigned after the shuffle
	board := make(Board, len(values))
	for i, v := range values {
		board[i] = Card{Position: i, Value: v}
	}
	return board
}
