// Package deck builds shuffled boards of paired cards for each difficulty tier.
package deck

import "strings"

// Difficulty names a tier of the game. The name doubles as the grid shape
// shown to the player, e.g. "4x4".
type Difficulty string

// Built-in tiers.
const (
	Small  Difficulty = "3x4"
	Medium Difficulty = "4x4"
	Large  Difficulty = "5x4"
)

// Tier defines the board shape and card faces for one difficulty.
type Tier struct {
	Difficulty Difficulty
	Alias      string   // Alternate name accepted on the command line
	Pairs      int      // Distinct values on the board, each appearing twice
	Columns    int      // Grid columns used by renderers
	Symbols    []string // Card faces; the first Pairs entries are dealt
}

// Size returns the number of positions on a board for this tier.
func (t Tier) Size() int {
	return t.Pairs * 2
}

// Rows returns the number of grid rows needed for this tier.
func (t Tier) Rows() int {
	if t.Columns <= 0 {
		return 0
	}
	return (t.Size() + t.Columns - 1) / t.Columns
}

// defaultSymbols are the card faces shared by the built-in tiers.
var defaultSymbols = []string{
	"🌸", "🌟", "🍓", "🐰", "🦋", "🍭", "🌈", "🐱", "🍩", "🎀",
}

// DefaultTiers returns the built-in tier table, smallest board first.
func DefaultTiers() []Tier {
	return []Tier{
		{Difficulty: Small, Alias: "easy", Pairs: 6, Columns: 3, Symbols: cloneSymbols(defaultSymbols)},
		{Difficulty: Medium, Alias: "normal", Pairs: 8, Columns: 4, Symbols: cloneSymbols(defaultSymbols)},
		{Difficulty: Large, Alias: "hard", Pairs: 10, Columns: 5, Symbols: cloneSymbols(defaultSymbols)},
	}
}

func cloneSymbols(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// matches reports whether name refers to this tier by name or alias.
func (t Tier) matches(name string) bool {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, string(t.Difficulty)) {
		return true
	}
	return t.Alias != "" && strings.EqualFold(name, t.Alias)
}
