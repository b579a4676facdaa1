package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KIM-17/matching-card-game/internal/deck"
	"github.com/KIM-17/matching-card-game/internal/scores"
	"github.com/KIM-17/matching-card-game/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show tier list sidebar
	sidebarWidth       = 20 // Width of tier list sidebar
	maxRounds          = 50 // Max rounds to load per tier
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextTier key.Binding
	PrevTier key.Binding
	Session  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTier, k.PrevTier, k.Session, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTier, k.PrevTier},
		{k.Session, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev size"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next size"),
		),
		NextTier: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next size"),
		),
		PrevTier: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev size"),
		),
		Session: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "this session"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists the logged rounds per tier together with the
// player's own best for the session. The session view lists the player's
// own rounds across all tiers instead.
type ScoreboardModel struct {
	tiers       []deck.Tier
	tierCursor  int
	store       *storage.Store // Round log, may be nil
	tracker     *scores.Tracker
	sessionID   string
	sessionView bool
	rounds      []storage.RoundRecord
	stats       map[string]*storage.DifficultyStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard opened on the current tier.
// sessionID selects the rounds shown by the session view.
func NewScoreboardModel(store *storage.Store, tracker *scores.Tracker, sessionID string, tiers []deck.Tier, current deck.Difficulty, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		tiers:       tiers,
		store:       store,
		tracker:     tracker,
		sessionID:   sessionID,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, t := range tiers {
		if t.Difficulty == current {
			m.tierCursor = i
		}
	}

	m.table = m.createTable()
	if len(m.tiers) > 0 {
		m.loadRounds()
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	second := table.Column{Title: "Player", Width: 12}
	if m.sessionView {
		second = table.Column{Title: "Board", Width: 12}
	}
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		second,
		{Title: "Moves", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "When", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("205")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRounds loads the logged rounds of the selected tier, or of the
// session in the session view, along with the per-tier aggregates.
func (m *ScoreboardModel) loadRounds() {
	m.rounds = nil
	m.stats = nil
	m.loadErr = nil
	if m.store != nil {
		if m.sessionView {
			m.rounds, m.loadErr = m.store.SessionRounds(m.sessionID, maxRounds)
		} else {
			d := string(m.tiers[m.tierCursor].Difficulty)
			m.rounds, m.loadErr = m.store.TopRounds(d, maxRounds)
		}
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.AllStats()
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current rounds.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		second := r.Player
		if second == "" {
			second = "you"
		}
		if m.sessionView {
			second = r.Difficulty
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			second,
			fmt.Sprintf("%d", r.Moves),
			r.Duration.Round(time.Second).String(),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Session):
			m.sessionView = !m.sessionView
			m.table = m.createTable()
			if len(m.tiers) > 0 {
				m.loadRounds()
			}
			return m, nil

		case key.Matches(msg, m.keys.NextTier), key.Matches(msg, m.keys.Right):
			if len(m.tiers) > 0 {
				m.tierCursor = (m.tierCursor + 1) % len(m.tiers)
				m.loadRounds()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevTier), key.Matches(msg, m.keys.Left):
			if len(m.tiers) > 0 {
				m.tierCursor--
				if m.tierCursor < 0 {
					m.tierCursor = len(m.tiers) - 1
				}
				m.loadRounds()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		MarginBottom(1)

	title := "BEST ROUNDS"
	switch {
	case m.sessionView:
		title = "THIS SESSION"
	case len(m.tiers) > 0:
		title = fmt.Sprintf("BEST ROUNDS - %s", m.currentTier().Difficulty)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.personalBest(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) currentTier() deck.Tier {
	return m.tiers[m.tierCursor]
}

// personalBest renders the session best of the selected tier.
func (m ScoreboardModel) personalBest() string {
	if len(m.tiers) == 0 || m.tracker == nil {
		return ""
	}
	best, ok := m.tracker.Best(m.currentTier().Difficulty)
	if !ok {
		return "Your best: Challenge it!"
	}
	return fmt.Sprintf("Your best: %d moves", best)
}

// statsLine renders the logged aggregates of the selected tier.
func (m ScoreboardModel) statsLine() string {
	if len(m.tiers) == 0 || m.store == nil || m.loadErr != nil {
		return ""
	}
	st, ok := m.stats[string(m.currentTier().Difficulty)]
	if !ok {
		return "No rounds logged on this board"
	}
	return fmt.Sprintf("played %d  avg %.1f moves  lobby best %d  last %s",
		st.Rounds, st.AvgMoves, st.BestMoves, st.LastPlayed.Local().Format("Jan 02 15:04"))
}

// renderWideLayout renders the scoreboard with a tier sidebar.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Boards\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, t := range m.tiers {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.tierCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(fmt.Sprintf("%s%s %s", cursor, t.Difficulty, t.Alias)))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout renders tier tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("205")).
		Padding(0, 1)

	tabs := make([]string, len(m.tiers))
	for i, t := range m.tiers {
		if i == m.tierCursor {
			tabs[i] = activeTabStyle.Render(string(t.Difficulty))
		} else {
			tabs[i] = tabStyle.Render(" " + string(t.Difficulty) + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Scores unavailable.")
	case len(m.rounds) == 0 && m.sessionView:
		return emptyStyle.Render("No rounds finished this session.")
	case len(m.rounds) == 0:
		return emptyStyle.Render("No rounds finished yet.\nClear a board to get on the list!")
	}
	return m.table.View()
}

// Rounds returns the rounds shown for the selected tier, or for the
// session in the session view.
func (m ScoreboardModel) Rounds() []storage.RoundRecord {
	return m.rounds
}

// IsGoingBack returns true if user wants to leave the scoreboard.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
