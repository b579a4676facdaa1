package tui

import (
	"io"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/KIM-17/matching-card-game/internal/clock"
	"github.com/KIM-17/matching-card-game/internal/core"
	"github.com/KIM-17/matching-card-game/internal/deck"
	"github.com/KIM-17/matching-card-game/internal/game"
	"github.com/KIM-17/matching-card-game/internal/scores"
	"github.com/KIM-17/matching-card-game/internal/storage"
)

// SessionOptions configures one player's session.
type SessionOptions struct {
	// Tiers is the difficulty table. Defaults to deck.DefaultTiers().
	Tiers []deck.Tier

	// Difficulty is the tier of the first board and where the picker
	// cursor starts. Defaults to the first tier.
	Difficulty deck.Difficulty

	// SkipPicker opens the board directly instead of the picker.
	SkipPicker bool

	// HideDelay is how long a mismatched pair stays visible.
	HideDelay time.Duration

	// Config holds screen size, tick rate and seed. Seed 0 uses the time.
	Config core.RuntimeConfig

	// Store receives every completed round. May be nil.
	Store *storage.Store

	// Logger receives session and board events. Defaults to discarding.
	Logger *log.Logger

	// SessionID tags logged rounds. Generated when empty.
	SessionID string

	// Player is the display name on the scoreboard.
	Player string
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full flow of one player: picker -> board ->
// scoreboard. It owns the player's machine, tracker and clock, so no state
// is shared between sessions except the round log.
type SessionModel struct {
	machine   *game.Machine
	tracker   *scores.Tracker
	store     *storage.Store
	tiers     []deck.Tier
	config    core.RuntimeConfig
	sessionID string
	logger    *log.Logger

	active   sessionScreen
	returnTo sessionScreen // Screen the scoreboard goes back to
	menu     MenuModel
	game     GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session and deals its first board.
func NewSessionModel(opts SessionOptions) SessionModel {
	if len(opts.Tiers) == 0 {
		opts.Tiers = deck.DefaultTiers()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger.With("session", opts.SessionID)
	gen := deck.NewGenerator(opts.Tiers, rand.New(rand.NewSource(cfg.Seed)))
	tracker := scores.NewTracker()
	clk := clock.NewManual()

	machine := game.New(gen, tracker, game.Options{
		Difficulty: opts.Difficulty,
		HideDelay:  opts.HideDelay,
		Scheduler:  clk,
		Logger:     logger,
		OnComplete: roundRecorder(opts.Store, logger, opts.SessionID, opts.Player),
	})

	m := SessionModel{
		machine:   machine,
		tracker:   tracker,
		store:     opts.Store,
		tiers:     gen.Tiers(),
		config:    cfg,
		sessionID: opts.SessionID,
		logger:    logger,
		game:      NewGameModel(machine, clk, cfg),
	}

	if opts.SkipPicker {
		m.active = screenGame
	} else {
		m.openMenu()
	}
	return m
}

// roundRecorder logs a completed round to the store. Failures are logged
// and otherwise ignored so the game continues. A round that ties or beats
// every logged round of its tier is announced as a lobby best.
func roundRecorder(store *storage.Store, logger *log.Logger, sessionID, player string) func(game.Completion) {
	return func(c game.Completion) {
		logger.Info("round complete",
			"difficulty", c.Difficulty,
			"moves", c.Moves,
			"new_best", c.NewBest,
			"duration", c.Duration.Round(time.Millisecond),
		)
		if store == nil {
			return
		}
		_, err := store.SaveRound(storage.RoundRecord{
			SessionID:  sessionID,
			Player:     player,
			Difficulty: string(c.Difficulty),
			Moves:      c.Moves,
			Duration:   c.Duration,
			NewBest:    c.NewBest,
		})
		if err != nil {
			logger.Warn("could not log round", "error", err)
			return
		}
		best, ok, err := store.BestMoves(string(c.Difficulty))
		if err != nil {
			logger.Warn("could not read lobby best", "error", err)
			return
		}
		if ok && c.Moves <= best {
			logger.Info("lobby best", "difficulty", c.Difficulty, "moves", c.Moves)
		}
	}
}

// Init starts the board clock's tick loop.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		// The board clock keeps running behind the picker and scoreboard.
		newGame, cmd := m.game.Update(msg)
		m.game = newGame.(GameModel)
		return m, cmd

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		newGame, _ := m.game.Update(msg)
		m.game = newGame.(GameModel)
		newMenu, _ := m.menu.Update(msg)
		m.menu = newMenu.(MenuModel)
		newScores, _ := m.scores.Update(msg)
		m.scores = newScores.(ScoreboardModel)
		return m, nil
	}

	switch m.active {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when the picker is shown.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	m.menu = newMenu.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		return m.quit()

	case m.menu.WantsScoreboard():
		m.openScores(screenMenu)
		return m, nil

	case m.menu.Selected() != nil:
		m.machine.SelectDifficulty(m.menu.Selected().Difficulty)
		m.game.cursor = 0
		m.active = screenGame
		return m, nil
	}

	return m, cmd
}

// updateGame handles updates when the board is shown.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newGame, cmd := m.game.Update(msg)
	m.game = newGame.(GameModel)

	switch {
	case m.game.IsQuitting():
		return m.quit()

	case m.game.BackToMenu():
		m.game.backToMenu = false
		m.openMenu()
		return m, nil

	case m.game.WantsScoreboard():
		m.game.wantsScoreboard = false
		m.openScores(screenGame)
		return m, nil
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	m.scores = newScores.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		return m.quit()

	case m.scores.IsGoingBack():
		if m.returnTo == screenGame {
			m.active = screenGame
		} else {
			m.openMenu()
		}
		return m, nil
	}

	return m, cmd
}

func (m *SessionModel) openMenu() {
	m.menu = NewMenuModel(m.tiers, m.tracker, m.machine.Difficulty(), m.config.ScreenW, m.config.ScreenH)
	m.active = screenMenu
}

func (m *SessionModel) openScores(from sessionScreen) {
	m.scores = NewScoreboardModel(m.store, m.tracker, m.sessionID, m.tiers, m.machine.Difficulty(), m.config.ScreenW, m.config.ScreenH)
	m.returnTo = from
	m.active = screenScores
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.machine.Close()
	m.logger.Info("session closed", "bests", m.tracker.All())
	return m, tea.Quit
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.active {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Machine returns the session's game machine.
func (m SessionModel) Machine() *game.Machine {
	return m.machine
}

// Tracker returns the session's best-score tracker.
func (m SessionModel) Tracker() *scores.Tracker {
	return m.tracker
}

// SessionID returns the ID that tags this session's rounds.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// Run starts a local session on the current terminal.
func Run(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
