package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sumfall/internal/config"
	"github.com/vovakirdan/sumfall/internal/core"
	"github.com/vovakirdan/sumfall/internal/games/sumfall"
)

// MenuChoice is what the player picked in the menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceContinue
	ChoiceNewGame
	ChoiceProfile
	ChoiceQuit
)

type menuItem int

const (
	itemContinue menuItem = iota
	itemDifficulty
	itemMode
	itemStart
	itemProfile
	itemQuit
)

var modes = []sumfall.Mode{sumfall.ModeFixed, sumfall.ModeChanging}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cfg        config.Config
	items      []menuItem
	cursor     int
	difficulty int // index into cfg.Difficulties
	mode       int // index into modes
	width      int
	height     int
	keyMapper  *KeyMapper
	choice     MenuChoice
	message    string
}

// NewMenuModel creates a menu. hasSave adds the continue entry; difficulty
// and mode preselect the new-game settings.
func NewMenuModel(cfg config.Config, hasSave bool, difficulty string, mode sumfall.Mode, width, height int) MenuModel {
	items := []menuItem{itemDifficulty, itemMode, itemStart, itemProfile, itemQuit}
	if hasSave {
		items = append([]menuItem{itemContinue}, items...)
	}

	m := MenuModel{
		cfg:       cfg,
		items:     items,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for i, d := range cfg.Difficulties {
		if d.Tag == difficulty {
			m.difficulty = i
		}
	}
	for i, md := range modes {
		if md == mode {
			m.mode = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = ChoiceQuit

	case MenuActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, len(m.items)-1)

	case MenuActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(m.items)-1)

	case MenuActionLeft:
		m.cycle(-1)

	case MenuActionRight:
		m.cycle(1)

	case MenuActionSelect:
		switch m.items[m.cursor] {
		case itemContinue:
			m.choice = ChoiceContinue
		case itemDifficulty, itemMode:
			m.cycle(1)
		case itemStart:
			m.choice = ChoiceNewGame
		case itemProfile:
			m.choice = ChoiceProfile
		case itemQuit:
			m.choice = ChoiceQuit
		}
	}

	return m, nil
}

func (m *MenuModel) cycle(delta int) {
	switch m.items[m.cursor] {
	case itemDifficulty:
		if n := len(m.cfg.Difficulties); n > 0 {
			m.difficulty = (m.difficulty + delta + n) % n
		}
	case itemMode:
		m.mode = (m.mode + delta + len(modes)) % len(modes)
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S U M F A L L"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Stack numbers. Make the target sum."), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+m.itemLabel(item), m.width))
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.message, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) itemLabel(item menuItem) string {
	switch item {
	case itemContinue:
		return "Continue saved game"
	case itemDifficulty:
		label := m.Difficulty()
		if d, ok := m.cfg.Difficulty(label); ok && d.Label != "" {
			label = d.Label
		}
		return fmt.Sprintf("Difficulty: < %s >", label)
	case itemMode:
		return fmt.Sprintf("Mode: < %s >", m.Mode())
	case itemStart:
		return "New game"
	case itemProfile:
		return "Profile"
	case itemQuit:
		return "Quit"
	}
	return ""
}

// Choice returns what the player picked, or ChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Difficulty returns the selected difficulty tag.
func (m MenuModel) Difficulty() string {
	if m.difficulty < len(m.cfg.Difficulties) {
		return m.cfg.Difficulties[m.difficulty].Tag
	}
	return m.cfg.DefaultDifficulty
}

// Mode returns the selected target mode.
func (m MenuModel) Mode() sumfall.Mode {
	return modes[m.mode]
}

// WithMessage returns the menu showing a one-line message.
func (m MenuModel) WithMessage(msg string) MenuModel {
	m.message = msg
	return m
}
