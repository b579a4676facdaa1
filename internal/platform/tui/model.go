package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KIM-17/matching-card-game/internal/clock"
	"github.com/KIM-17/matching-card-game/internal/core"
	"github.com/KIM-17/matching-card-game/internal/deck"
	"github.com/KIM-17/matching-card-game/internal/game"
)

// GameModel is the Bubble Tea model for the board screen.
// The machine's hide timer runs on clk, which the model advances on every
// tick, so all state changes happen on the UI goroutine.
type GameModel struct {
	machine   *game.Machine
	clock     *clock.Manual
	tiers     []deck.Tier
	screen    *core.Screen
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	cursor    int
	lastTick  time.Time

	quitting        bool
	backToMenu      bool
	wantsScoreboard bool
}

// NewGameModel creates a board model for machine. clk must be the
// scheduler the machine was created with.
func NewGameModel(machine *game.Machine, clk *clock.Manual, cfg core.RuntimeConfig) GameModel {
	return GameModel{
		machine:   machine,
		clock:     clk,
		tiers:     machine.Generator().Tiers(),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if idx, ok := m.keyMapper.MapTierKey(msg); ok {
		if idx < len(m.tiers) {
			m.machine.SelectDifficulty(m.tiers[idx].Difficulty)
			m.cursor = 0
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp:
		m.moveCursor(0, -1)
	case core.ActionDown:
		m.moveCursor(0, 1)
	case core.ActionLeft:
		m.moveCursor(-1, 0)
	case core.ActionRight:
		m.moveCursor(1, 0)
	case core.ActionFlip:
		m.machine.SelectCard(m.cursor)
	case core.ActionRestart:
		m.machine.Restart()
	case core.ActionScoreboard:
		m.wantsScoreboard = true
	case core.ActionBack:
		m.backToMenu = true
	}

	return m, nil
}

// moveCursor steps the cursor on the grid, stopping at the edges.
func (m *GameModel) moveCursor(dx, dy int) {
	snap := m.machine.Snapshot()
	if snap.BoardSize == 0 {
		return
	}
	cols := max(snap.Columns, 1)
	rows := (snap.BoardSize + cols - 1) / cols

	col := core.Clamp(m.cursor%cols+dx, 0, cols-1)
	row := core.Clamp(m.cursor/cols+dy, 0, rows-1)
	m.cursor = core.Clamp(row*cols+col, 0, snap.BoardSize-1)
}

// handleTick advances the board clock by the wall time since the last tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		if elapsed := now.Sub(m.lastTick); elapsed > 0 {
			m.clock.Advance(elapsed)
		}
	}
	m.lastTick = now
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	drawBoard(m.screen, m.machine.Snapshot(), m.tiers, m.cursor)
	return RenderScreen(m.screen)
}

// Cursor returns the board position under the cursor.
func (m GameModel) Cursor() int {
	return m.cursor
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the picker.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// WantsScoreboard returns true if user pressed Tab.
func (m GameModel) WantsScoreboard() bool {
	return m.wantsScoreboard
}
