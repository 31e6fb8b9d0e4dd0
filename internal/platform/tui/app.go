package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sumfall/internal/games/sumfall"
)

type screenKind int

const (
	screenMenu screenKind = iota
	screenPlay
	screenProfile
)

// AppModel manages the full session flow: menu -> game or profile -> menu.
// It is the top-level model for both local and SSH sessions.
type AppModel struct {
	env     Env
	width   int
	height  int
	screen  screenKind
	menu    MenuModel
	play    PlayModel
	profile ProfileModel
	pending tea.Cmd

	difficulty string
	mode       sumfall.Mode
	quitting   bool
}

// NewAppModel creates the top-level model. A non-nil start skips the menu
// and opens a game right away.
func NewAppModel(env Env, start *PlayOptions, width, height int) AppModel {
	m := AppModel{
		env:        env,
		width:      width,
		height:     height,
		difficulty: env.Config.DefaultDifficulty,
		mode:       sumfall.Mode(env.Config.DefaultMode),
	}

	if start != nil {
		if start.Difficulty != "" {
			m.difficulty = start.Difficulty
		}
		if start.Mode != "" {
			m.mode = start.Mode
		}
		m.pending = m.startGame(*start)
		return m
	}

	m.showMenu("")
	return m
}

// Init hands the first screen's commands to Bubble Tea.
func (m AppModel) Init() tea.Cmd {
	return m.pending
}

// Update routes messages to the active screen and switches screens.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenPlay:
		return m.updatePlay(msg)
	case screenProfile:
		return m.updateProfile(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	m.difficulty = m.menu.Difficulty()
	m.mode = m.menu.Mode()

	switch m.menu.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceContinue:
		snap, ok := m.env.Slot.Load()
		if !ok {
			m.showMenu("Saved game could not be loaded")
			return m, nil
		}
		return m, m.startGame(PlayOptions{Resume: &snap})

	case ChoiceNewGame:
		return m, m.startGame(PlayOptions{Difficulty: m.difficulty, Mode: m.mode})

	case ChoiceProfile:
		m.profile = NewProfileModel(m.env, m.width, m.height)
		m.screen = screenProfile
		return m, m.profile.Init()
	}

	return m, cmd
}

func (m AppModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.play.Update(msg)
	if play, ok := next.(PlayModel); ok {
		m.play = play
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.play.BackToMenu() {
		m.showMenu("")
		return m, nil
	}
	return m, cmd
}

func (m AppModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.profile.Update(msg)
	if profile, ok := next.(ProfileModel); ok {
		m.profile = profile
	}

	if m.profile.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.profile.IsGoingBack() {
		m.showMenu("")
		return m, nil
	}
	return m, cmd
}

// startGame switches to the play screen. Failures land back in the menu.
func (m *AppModel) startGame(opts PlayOptions) tea.Cmd {
	play, err := NewPlayModel(m.env, opts, m.width, m.height)
	if err != nil {
		m.env.Logger.Error("could not start game", "error", err)
		m.showMenu("Could not start game")
		return nil
	}
	m.play = play
	m.screen = screenPlay
	return m.play.Init()
}

func (m *AppModel) showMenu(message string) {
	m.menu = NewMenuModel(m.env.Config, m.env.Slot.Has(), m.difficulty, m.mode, m.width, m.height).
		WithMessage(message)
	m.screen = screenMenu
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenPlay:
		return m.play.View()
	case screenProfile:
		return m.profile.View()
	default:
		return m.menu.View()
	}
}

// Run runs the app in the local terminal until the player quits.
func Run(env Env, start *PlayOptions, width, height int) error {
	p := tea.NewProgram(
		NewAppModel(env, start, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
