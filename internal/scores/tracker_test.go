package scores

import (
	"sync"
	"testing"

	"github.com/KIM-17/matching-card-game/internal/deck"
)

func TestTrackerUnset(t *testing.T) {
	tr := NewTracker()

	if _, ok := tr.Best(deck.Medium); ok {
		t.Error("new tracker should have no best for any difficulty")
	}
	if tr.IsNewBest(deck.Medium, 0) {
		t.Error("IsNewBest should be false when nothing is recorded")
	}
}

func TestTrackerKeepsMinimum(t *testing.T) {
	tests := []struct {
		name     string
		rounds   []int
		expected int
	}{
		{"single round", []int{5}, 5},
		{"improves", []int{9, 7, 5}, 5},
		{"worse round ignored", []int{5, 7}, 5},
		{"repeat is idempotent", []int{6, 6, 6}, 6},
		{"mixed", []int{12, 8, 15, 8, 10}, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTracker()
			prev := -1
			for _, moves := range tc.rounds {
				tr.RecordCompletion(deck.Small, moves)
				best, _ := tr.Best(deck.Small)
				if prev >= 0 && best > prev {
					t.Fatalf("best increased from %d to %d", prev, best)
				}
				prev = best
			}
			if best, _ := tr.Best(deck.Small); best != tc.expected {
				t.Errorf("Best() = %d, expected %d", best, tc.expected)
			}
		})
	}
}

func TestTrackerPerDifficulty(t *testing.T) {
	tr := NewTracker()
	tr.RecordCompletion(deck.Small, 4)
	tr.RecordCompletion(deck.Large, 20)

	if best, _ := tr.Best(deck.Small); best != 4 {
		t.Errorf("Small best = %d, expected 4", best)
	}
	if best, _ := tr.Best(deck.Large); best != 20 {
		t.Errorf("Large best = %d, expected 20", best)
	}
	if _, ok := tr.Best(deck.Medium); ok {
		t.Error("Medium should still be unset")
	}

	all := tr.All()
	if len(all) != 2 {
		t.Errorf("All() has %d entries, expected 2", len(all))
	}
	all[deck.Small] = 1
	if best, _ := tr.Best(deck.Small); best != 4 {
		t.Error("mutating All() result changed the tracker")
	}
}

func TestTrackerNewBestFlag(t *testing.T) {
	tr := NewTracker()

	tr.RecordCompletion(deck.Medium, 5)
	if !tr.IsNewBest(deck.Medium, 5) {
		t.Error("first completion should be a new best")
	}

	tr.RecordCompletion(deck.Medium, 7)
	if tr.IsNewBest(deck.Medium, 7) {
		t.Error("worse completion should not be a new best")
	}
	if best, _ := tr.Best(deck.Medium); best != 5 {
		t.Errorf("best = %d, expected 5", best)
	}
}

func TestTrackerConcurrentUse(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(moves int) {
			defer wg.Done()
			tr.RecordCompletion(deck.Large, moves)
			tr.Best(deck.Large)
		}(i)
	}
	wg.Wait()

	if best, _ := tr.Best(deck.Large); best != 1 {
		t.Errorf("best = %d, expected 1", best)
	}
}
