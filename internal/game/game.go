// Package game implements the memory game state machine: card selection,
// pair evaluation, the delayed hide after a mismatch, and completion
// bookkeeping. It has no terminal or rendering dependencies.
package game

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/KIM-17/matching-card-game/internal/clock"
	"github.com/KIM-17/matching-card-game/internal/deck"
	"github.com/KIM-17/matching-card-game/internal/scores"
)

// DefaultHideDelay is how long a mismatched pair stays face-up.
const DefaultHideDelay = time.Second

// Options configures a Machine. Zero values select defaults.
type Options struct {
	// Difficulty is the tier of the first round. Defaults to the first tier.
	Difficulty deck.Difficulty

	// HideDelay is how long a mismatched pair stays visible.
	HideDelay time.Duration

	// Scheduler runs the delayed hide. Defaults to clock.Real.
	Scheduler clock.Scheduler

	// Logger receives debug events. Defaults to a discarding logger.
	Logger *log.Logger

	// OnComplete is called after a round is fully matched, outside the
	// machine's lock.
	OnComplete func(Completion)

	// Now returns the current time for round durations. Defaults to time.Now.
	Now func() time.Time
}

// Completion describes a finished round.
type Completion struct {
	Difficulty deck.Difficulty
	Moves      int
	NewBest    bool
	Duration   time.Duration
}

// Machine owns one board and enforces the two-cards-at-a-time protocol.
// All methods are safe to call from multiple goroutines; the delayed hide
// takes the same lock as user events.
type Machine struct {
	mu sync.Mutex

	gen        *deck.Generator
	tracker    *scores.Tracker
	scheduler  clock.Scheduler
	hideDelay  time.Duration
	logger     *log.Logger
	onComplete func(Completion)
	now        func() time.Time

	difficulty deck.Difficulty
	board      deck.Board
	revealed   []int // Face-up, unmatched positions in reveal order (0-2)
	matched    map[int]bool
	moves      int
	startedAt  time.Time

	// epoch changes on every reset and every scheduled hide, so a hide that
	// fires late for an older board or comparison is ignored.
	epoch   uint64
	pending clock.Timer
}

// New creates a machine and deals the first round.
// Panics if opts.Difficulty is set but unknown to gen.
func New(gen *deck.Generator, tracker *scores.Tracker, opts Options) *Machine {
	if tracker == nil {
		tracker = scores.NewTracker()
	}
	if opts.HideDelay <= 0 {
		opts.HideDelay = DefaultHideDelay
	}
	if opts.Scheduler == nil {
		opts.Scheduler = clock.Real{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Difficulty == "" {
		opts.Difficulty = gen.Tiers()[0].Difficulty
	}

	m := &Machine{
		gen:        gen,
		tracker:    tracker,
		scheduler:  opts.Scheduler,
		hideDelay:  opts.HideDelay,
		logger:     opts.Logger,
		onComplete: opts.OnComplete,
		now:        opts.Now,
	}

	m.mu.Lock()
	m.resetLocked(opts.Difficulty)
	m.mu.Unlock()

	return m
}

// SelectDifficulty switches tier and starts a new round on it.
func (m *Machine) SelectDifficulty(d deck.Difficulty) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Debug("difficulty selected", "from", m.difficulty, "to", d)
	m.resetLocked(d)
}

// Restart starts a new round on the current tier with a fresh shuffle.
func (m *Machine) Restart() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.resetLocked(m.difficulty)
}

// resetLocked deals a new board and clears all round state.
// Caller holds mu.
func (m *Machine) resetLocked(d deck.Difficulty) {
	// Generate panics on unknown difficulty before any state is touched
	board := m.gen.Generate(d)

	m.cancelHideLocked()
	m.difficulty = d
	m.board = board
	m.revealed = nil
	m.matched = make(map[int]bool, len(board))
	m.moves = 0
	m.startedAt = m.now()
	m.epoch++

	m.logger.Debug("round started", "difficulty", d, "cards", len(board))
}

// cancelHideLocked stops any pending hide. Caller holds mu.
func (m *Machine) cancelHideLocked() {
	if m.pending != nil {
		m.pending.Stop()
		m.pending = nil
	}
}

// SelectCard flips the card at pos. Returns false without changing anything
// when the position is out of range, two cards are already being compared,
// the card is already face-up, or the card is already matched.
func (m *Machine) SelectCard(pos int) bool {
	m.mu.Lock()

	if pos < 0 || pos >= len(m.board) ||
		len(m.revealed) == 2 ||
		m.isRevealedLocked(pos) ||
		m.matched[pos] {
		m.mu.Unlock()
		return false
	}

	m.revealed = append(m.revealed, pos)
	if len(m.revealed) == 1 {
		m.mu.Unlock()
		return true
	}

	// Second card: one move per comparison
	m.moves++
	first, second := m.revealed[0], m.revealed[1]

	var done *Completion
	if m.board[first].Value == m.board[second].Value {
		m.matched[first] = true
		m.matched[second] = true
		m.revealed = nil

		if len(m.matched) == len(m.board) {
			m.tracker.RecordCompletion(m.difficulty, m.moves)
			done = &Completion{
				Difficulty: m.difficulty,
				Moves:      m.moves,
				NewBest:    m.tracker.IsNewBest(m.difficulty, m.moves),
				Duration:   m.now().Sub(m.startedAt),
			}
			m.logger.Debug("round complete",
				"difficulty", m.difficulty,
				"moves", m.moves,
				"new_best", done.NewBest,
			)
		}
	} else {
		m.scheduleHideLocked()
		m.logger.Debug("mismatch", "first", first, "second", second, "moves", m.moves)
	}

	hook := m.onComplete
	m.mu.Unlock()

	if done != nil && hook != nil {
		hook(*done)
	}
	return true
}

// scheduleHideLocked arms the one-shot hide for the current comparison.
// Caller holds mu.
func (m *Machine) scheduleHideLocked() {
	m.epoch++
	epoch := m.epoch
	m.pending = m.scheduler.AfterFunc(m.hideDelay, func() {
		m.hide(epoch)
	})
}

// hide turns the compared pair face-down if epoch is still current.
func (m *Machine) hide(epoch uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if epoch != m.epoch || len(m.revealed) != 2 {
		return
	}
	m.revealed = nil
	m.pending = nil
}

func (m *Machine) isRevealedLocked(pos int) bool {
	for _, p := range m.revealed {
		if p == pos {
			return true
		}
	}
	return false
}

// Difficulty returns the current tier.
func (m *Machine) Difficulty() deck.Difficulty {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.difficulty
}

// Tracker returns the best-score tracker the machine reports to.
func (m *Machine) Tracker() *scores.Tracker {
	return m.tracker
}

// Generator returns the deck generator used for new rounds.
func (m *Machine) Generator() *deck.Generator {
	return m.gen
}

// Close cancels any pending hide. The machine stays usable.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelHideLocked()
}
