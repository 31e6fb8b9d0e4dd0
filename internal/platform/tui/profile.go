package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sumfall/internal/storage"
)

// Profile screen layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the detail panel beside the table
	sidebarWidth       = 30
	topScoresShown     = 5
)

// ProfileKeyMap defines the key bindings for the profile screen.
type ProfileKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ProfileKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ProfileKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultProfileKeyMap returns default key bindings.
func DefaultProfileKeyMap() ProfileKeyMap {
	return ProfileKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev difficulty"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next difficulty"),
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

// ProfileModel shows best points, achievements and score history.
type ProfileModel struct {
	env         Env
	tags        []string
	games       map[string]storage.DifficultyStats
	table       table.Model
	help        help.Model
	keys        ProfileKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewProfileModel creates a new profile screen.
func NewProfileModel(env Env, width, height int) ProfileModel {
	h := help.New()
	h.ShowAll = false

	m := ProfileModel{
		env:         env,
		tags:        env.Config.Tags(),
		keys:        DefaultProfileKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.loadStats()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *ProfileModel) loadStats() {
	if m.env.Scores == nil {
		return
	}
	stats, err := m.env.Scores.Stats()
	if err != nil {
		m.env.Logger.Warn("could not load score stats", "error", err)
		return
	}
	m.games = stats
}

func (m *ProfileModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Difficulty", Width: 14},
		{Title: "Best", Width: 8},
		{Title: "Achievements", Width: 13},
		{Title: "Games", Width: 6},
	}

	height := len(m.tags) + 1
	if avail := m.height - 10; avail > 2 && avail < height {
		height = avail
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

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

func (m *ProfileModel) updateTableRows() {
	profile := m.env.Tracker.Profile()
	catalog := m.env.Tracker.Catalog()

	rows := make([]table.Row, len(m.tags))
	for i, tag := range m.tags {
		achievements := catalog.ForDifficulty(tag)
		unlocked := 0
		for _, a := range achievements {
			if profile.Has(a.ID) {
				unlocked++
			}
		}
		rows[i] = table.Row{
			m.label(tag),
			fmt.Sprintf("%d", profile.Best(tag)),
			fmt.Sprintf("%d/%d", unlocked, len(achievements)),
			fmt.Sprintf("%d", m.games[tag].GamesCount),
		}
	}
	m.table.SetRows(rows)
}

func (m ProfileModel) label(tag string) string {
	if d, ok := m.env.Config.Difficulty(tag); ok && d.Label != "" {
		return d.Label
	}
	return tag
}

// Selected returns the difficulty tag under the cursor.
func (m ProfileModel) Selected() string {
	if i := m.table.Cursor(); i >= 0 && i < len(m.tags) {
		return m.tags[i]
	}
	return ""
}

// Init initializes the profile model.
func (m ProfileModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the profile screen.
func (m ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the profile screen.
func (m ProfileModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	stats := m.env.Tracker.Stats()
	title := fmt.Sprintf("PROFILE - %d/%d achievements", stats.Unlocked, stats.Total)
	if m.env.User != "" {
		title = fmt.Sprintf("%s - %s", m.env.User, title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableRendered := boxStyle.Render(m.table.View())
	detail := boxStyle.Width(sidebarWidth).Render(m.renderDetail())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", detail))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, tableRendered, detail))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderDetail lists the selected difficulty's achievements and top scores.
func (m ProfileModel) renderDetail() string {
	tag := m.Selected()
	if tag == "" {
		return ""
	}

	var b strings.Builder
	profile := m.env.Tracker.Profile()

	b.WriteString(m.label(tag))
	b.WriteString("\n\n")
	for _, a := range m.env.Tracker.Catalog().ForDifficulty(tag) {
		mark := "[ ]"
		if profile.Has(a.ID) {
			mark = "[x]"
		}
		fmt.Fprintf(&b, "%s %5d %s\n", mark, a.Points, a.Title)
	}

	b.WriteString("\nTop scores\n")
	scores := m.topScores(tag)
	if len(scores) == 0 {
		b.WriteString(dimStyle.Render("No games recorded yet."))
		return b.String()
	}
	for i, s := range scores {
		fmt.Fprintf(&b, "#%d %6d  %-8s %s\n", i+1, s.Points, s.Mode, s.CreatedAt.Format("Jan 02 15:04"))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m ProfileModel) topScores(tag string) []storage.ScoreEntry {
	if m.env.Scores == nil {
		return nil
	}
	scores, err := m.env.Scores.TopScores(tag, topScoresShown)
	if err != nil {
		m.env.Logger.Warn("could not load top scores", "difficulty", tag, "error", err)
		return nil
	}
	return scores
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ProfileModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ProfileModel) IsQuitting() bool {
	return m.quitting
}
