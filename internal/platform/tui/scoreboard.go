package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/canvas-snake/internal/games/snake"
	"github.com/vovakirdan/canvas-snake/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinWidth = 50  // Minimum table width
	maxRuns       = 100 // Max runs to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	All   key.Binding
	Clear key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.All, k.Clear, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.All, k.Clear},
		{k.Back, k.Quit},
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
		All: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "session/all"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear session"),
		),
		Back: key.NewBinding(
			key.WithKeys("tab", "esc", "b"),
			key.WithHelp("tab/esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Scoreboard lists the runs of the current session, or the best runs of
// every session sharing the store.
type Scoreboard struct {
	store   *storage.Store
	session string
	all     bool
	runs    []storage.RunEntry
	stats   *storage.Stats
	table   table.Model
	help    help.Model
	keys    ScoreboardKeyMap
	width   int
	height  int
	closed  bool
	quit    bool
}

// NewScoreboard creates a scoreboard for a session and loads its runs.
func NewScoreboard(store *storage.Store, session string, width, height int) Scoreboard {
	h := help.New()
	h.ShowAll = false

	m := Scoreboard{
		store:   store,
		session: session,
		keys:    DefaultScoreboardKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *Scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Result", Width: 16},
		{Title: "Length", Width: 8},
		{Title: "Time", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, stats and help
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the visible runs and the session's stats from the store.
func (m *Scoreboard) load() {
	m.runs, m.stats = nil, nil
	if m.store != nil {
		var runs []storage.RunEntry
		var err error
		if m.all {
			runs, err = m.store.TopRuns(maxRuns)
		} else {
			runs, err = m.store.SessionRuns(m.session, maxRuns)
		}
		if err == nil {
			m.runs = runs
		}
		if stats, err := m.store.SessionStats(m.session, snake.OutcomeWin.String()); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *Scoreboard) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			strings.ReplaceAll(r.Outcome, "_", " "),
			fmt.Sprintf("%d", r.Length),
			fmt.Sprintf("%.1fs", r.Duration.Seconds()),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Update handles messages for the scoreboard.
func (m Scoreboard) Update(msg tea.Msg) (Scoreboard, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.closed = true
			return m, nil

		case key.Matches(msg, m.keys.All):
			m.all = !m.all
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			// Other sessions' runs are not ours to clear
			if m.store != nil && !m.all {
				if err := m.store.ClearSession(m.session); err == nil {
					m.load()
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m Scoreboard) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "SESSION SCORES"
	if m.all {
		title = "TOP SCORES"
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	if m.stats != nil {
		line := fmt.Sprintf("Runs %d   Wins %d   Best %d", m.stats.Runs, m.stats.Wins, m.stats.BestScore)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Width(tableMinWidth).
			Padding(2, 4)
		content = emptyStyle.Render("No runs recorded yet.")
	} else {
		content = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(content)))

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Runs returns the loaded runs, best first.
func (m Scoreboard) Runs() []storage.RunEntry {
	return m.runs
}

// ShowingAll reports whether the board lists every session's runs.
func (m Scoreboard) ShowingAll() bool {
	return m.all
}

// Closed reports whether the user asked to go back to the game.
func (m Scoreboard) Closed() bool {
	return m.closed
}

// Quitting reports whether the user asked to quit entirely.
func (m Scoreboard) Quitting() bool {
	return m.quit
}

// centerText pads text on the left so it sits in the middle of width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
