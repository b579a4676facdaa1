package deck

import (
	"math/rand"
	"strings"
	"testing"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(DefaultTiers(), rand.New(rand.NewSource(seed)))
}

func TestGenerateInvariants(t *testing.T) {
	g := newTestGenerator(42)

	for _, tier := range g.Tiers() {
		t.Run(string(tier.Difficulty), func(t *testing.T) {
			for round := 0; round < 50; round++ {
				board := g.Generate(tier.Difficulty)

				if board.Len() != tier.Pairs*2 {
					t.Fatalf("board length = %d, expected %d", board.Len(), tier.Pairs*2)
				}

				// Positions are a permutation of 0..2N-1 in slice order
				for i, c := range board {
					if c.Position != i {
						t.Fatalf("card %d has position %d", i, c.Position)
					}
				}

				counts := make(map[string]int)
				for _, c := range board {
					counts[c.Value]++
				}
				if len(counts) != tier.Pairs {
					t.Fatalf("distinct values = %d, expected %d", len(counts), tier.Pairs)
				}
				for v, n := range counts {
					if n != 2 {
						t.Fatalf("value %q appears %d times, expected 2", v, n)
					}
				}
			}
		})
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	b1 := newTestGenerator(7).Generate(Medium)
	b2 := newTestGenerator(7).Generate(Medium)

	if strings.Join(b1.Values(), ",") != strings.Join(b2.Values(), ",") {
		t.Errorf("same seed produced different boards:\n%v\n%v", b1.Values(), b2.Values())
	}
}

func TestGenerateFreshEachCall(t *testing.T) {
	g := newTestGenerator(99)
	first := strings.Join(g.Generate(Large).Values(), ",")

	// 20 cards have 20!/2^10 arrangements; a repeat in 10 deals means the
	// shuffle is not being applied.
	for i := 0; i < 10; i++ {
		if strings.Join(g.Generate(Large).Values(), ",") != first {
			return
		}
	}
	t.Error("generator returned the same arrangement on every call")
}

func TestGenerateUnknownDifficultyPanics(t *testing.T) {
	g := newTestGenerator(1)

	defer func() {
		if recover() == nil {
			t.Error("Generate with unknown difficulty should panic")
		}
	}()
	g.Generate("9x9")
}

func TestResolve(t *testing.T) {
	g := newTestGenerator(1)

	tests := []struct {
		name     string
		input    string
		expected Difficulty
		ok       bool
	}{
		{"tier name", "4x4", Medium, true},
		{"alias", "hard", Large, true},
		{"alias mixed case", "Easy", Small, true},
		{"padded", " 3x4 ", Small, true},
		{"unknown", "impossible", "", false},
		{"empty", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := g.Resolve(tc.input)
			if d != tc.expected || ok != tc.ok {
				t.Errorf("Resolve(%q) = (%q, %v), expected (%q, %v)", tc.input, d, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestValidateTiers(t *testing.T) {
	tests := []struct {
		name    string
		tiers   []Tier
		wantErr bool
	}{
		{"defaults", DefaultTiers(), false},
		{"empty table", nil, true},
		{"zero pairs", []Tier{{Difficulty: "a", Pairs: 0, Columns: 2, Symbols: []string{"x"}}}, true},
		{"zero columns", []Tier{{Difficulty: "a", Pairs: 1, Columns: 0, Symbols: []string{"x"}}}, true},
		{"too few symbols", []Tier{{Difficulty: "a", Pairs: 3, Columns: 2, Symbols: []string{"x", "y"}}}, true},
		{"repeated symbol", []Tier{{Difficulty: "a", Pairs: 2, Columns: 2, Symbols: []string{"x", "x"}}}, true},
		{"duplicate name", []Tier{
			{Difficulty: "a", Pairs: 1, Columns: 2, Symbols: []string{"x"}},
			{Difficulty: "b", Alias: "a", Pairs: 1, Columns: 2, Symbols: []string{"x"}},
		}, true},
		{"alias differs only in case", []Tier{
			{Difficulty: "easy", Pairs: 1, Columns: 2, Symbols: []string{"x"}},
			{Difficulty: "big", Alias: "EASY", Pairs: 1, Columns: 2, Symbols: []string{"x"}},
		}, true},
		{"names differ only in case", []Tier{
			{Difficulty: "4x4", Pairs: 1, Columns: 2, Symbols: []string{"x"}},
			{Difficulty: "4X4", Pairs: 1, Columns: 2, Symbols: []string{"x"}},
		}, true},
		{"extra symbols are fine", []Tier{{Difficulty: "a", Pairs: 1, Columns: 2, Symbols: []string{"x", "x"}}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTiers(tc.tiers)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateTiers() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestTierShape(t *testing.T) {
	tiers := DefaultTiers()
	expected := []struct {
		size, rows int
	}{
		{12, 4},
		{16, 4},
		{20, 4},
	}
	for i, tier := range tiers {
		if tier.Size() != expected[i].size || tier.Rows() != expected[i].rows {
			t.Errorf("%s: Size()=%d Rows()=%d, expected %d/%d",
				tier.Difficulty, tier.Size(), tier.Rows(), expected[i].size, expected[i].rows)
		}
	}
}

func TestBoardRows(t *testing.T) {
	board := Board{{0, "a"}, {1, "b"}, {2, "a"}, {3, "b"}, {4, "c"}}
	rows := board.Rows(2)

	if len(rows) != 3 {
		t.Fatalf("Rows(2) produced %d rows, expected 3", len(rows))
	}
	if len(rows[2]) != 1 || rows[2][0].Position != 4 {
		t.Errorf("last row = %v, expected single card at position 4", rows[2])
	}
	if board.Rows(0) != nil {
		t.Error("Rows(0) should return nil")
	}
}
