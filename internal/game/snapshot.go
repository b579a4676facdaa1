package game

import (
	"sort"

	"github.com/KIM-17/matching-card-game/internal/deck"
)

// Phase is the machine state keyed by how many unmatched cards are face-up.
type Phase string

const (
	PhaseIdle      Phase = "idle"      // No unmatched card face-up
	PhaseOneUp     Phase = "one_up"    // First card of a pair is face-up
	PhaseComparing Phase = "comparing" // Mismatched pair waiting to hide
	PhaseComplete  Phase = "complete"  // Every card matched
)

// CardView is the renderer-facing state of one position.
type CardView struct {
	Position int    `json:"position"`
	Value    string `json:"value"`
	FaceUp   bool   `json:"faceUp"`
	Matched  bool   `json:"matched"`
}

// Snapshot is an immutable copy of the machine state for rendering.
type Snapshot struct {
	Difficulty       deck.Difficulty `json:"difficulty"`
	BoardSize        int             `json:"boardSize"`
	Columns          int             `json:"columns"`
	Cards            []CardView      `json:"cards"`
	Revealed         []int           `json:"revealed"`
	MatchedPositions []int           `json:"matchedPositions"`
	Moves            int             `json:"moves"`
	BestScore        int             `json:"bestScore,omitempty"`
	HasBest          bool            `json:"hasBest"`
	Phase            Phase           `json:"phase"`
	IsComplete       bool            `json:"isComplete"`
	IsNewBest        bool            `json:"isNewBest"`
	InProgress       bool            `json:"inProgress"` // Some pair matched, round not finished
}

// Snapshot returns the current state. FaceUp is set for revealed and
// matched positions.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	tier, _ := m.gen.Tier(m.difficulty)

	cards := make([]CardView, len(m.board))
	for i, c := range m.board {
		matched := m.matched[c.Position]
		cards[i] = CardView{
			Position: c.Position,
			Value:    c.Value,
			FaceUp:   matched || m.isRevealedLocked(c.Position),
			Matched:  matched,
		}
	}

	revealed := make([]int, len(m.revealed))
	copy(revealed, m.revealed)

	matched := make([]int, 0, len(m.matched))
	for pos := range m.matched {
		matched = append(matched, pos)
	}
	sort.Ints(matched)

	complete := len(m.board) > 0 && len(m.matched) == len(m.board)
	best, hasBest := m.tracker.Best(m.difficulty)

	return Snapshot{
		Difficulty:       m.difficulty,
		BoardSize:        len(m.board),
		Columns:          tier.Columns,
		Cards:            cards,
		Revealed:         revealed,
		MatchedPositions: matched,
		Moves:            m.moves,
		BestScore:        best,
		HasBest:          hasBest,
		Phase:            m.phaseLocked(complete),
		IsComplete:       complete,
		IsNewBest:        complete && hasBest && best == m.moves,
		InProgress:       len(m.matched) > 0 && !complete,
	}
}

func (m *Machine) phaseLocked(complete bool) Phase {
	switch {
	case complete:
		return PhaseComplete
	case len(m.revealed) == 2:
		return PhaseComparing
	case len(m.revealed) == 1:
		return PhaseOneUp
	default:
		return PhaseIdle
	}
}
