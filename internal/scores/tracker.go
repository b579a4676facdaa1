// Package scores tracks the best (lowest) completed move count per difficulty
// for the lifetime of one play session.
package scores

import (
	"sync"

	"github.com/KIM-17/matching-card-game/internal/deck"
)

// Tracker holds the session's best scores. A difficulty that has never been
// completed has no entry, which reads as "unset".
// Safe for concurrent use.
type Tracker struct {
	mu   sync.RWMutex
	best map[deck.Difficulty]int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{best: make(map[deck.Difficulty]int)}
}

// RecordCompletion stores moves as the best for d if it beats the current
// best. Scores never get worse.
func (t *Tracker) RecordCompletion(d deck.Difficulty, moves int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if current, ok := t.best[d]; ok && current <= moves {
		return
	}
	t.best[d] = moves
}

// Best returns the best move count for d and whether one exists.
func (t *Tracker) Best(d deck.Difficulty) (int, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	moves, ok := t.best[d]
	return moves, ok
}

// IsNewBest reports whether moves equals the recorded best for d.
// Call it after RecordCompletion; it keeps no state of its own.
func (t *Tracker) IsNewBest(d deck.Difficulty, moves int) bool {
	best, ok := t.Best(d)
	return ok && best == moves
}

// All returns a copy of every recorded best.
func (t *Tracker) All() map[deck.Difficulty]int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[deck.Difficulty]int, len(t.best))
	for d, moves := range t.best {
		out[d] = moves
	}
	return out
}
