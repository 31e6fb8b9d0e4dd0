package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sumfall/internal/core"
	"github.com/vovakirdan/sumfall/internal/games/sumfall"
	"github.com/vovakirdan/sumfall/internal/storage"
)

// PlayOptions selects what a play screen starts with.
type PlayOptions struct {
	Difficulty string
	Mode       sumfall.Mode
	Seed       int64 // 0 picks a time-based seed

	// Resume restores a saved game instead of starting a new one. Its
	// difficulty and mode win over the fields above.
	Resume *sumfall.Snapshot
}

type banner struct {
	text string
	seq  int
}

// PlayModel drives one sumfall session.
type PlayModel struct {
	env     Env
	opts    PlayOptions
	session *sumfall.Session
	clock   *teaClock
	state   sumfall.State
	screen  *core.Screen
	keys    *KeyMapper

	banners    [bannerSlots]banner
	scoreSaved bool
	backToMenu bool
	quitting   bool
}

// NewPlayModel starts or restores a session.
func NewPlayModel(env Env, opts PlayOptions, width, height int) (PlayModel, error) {
	m := PlayModel{
		env:    env,
		opts:   opts,
		screen: core.NewScreen(width, height),
		keys:   NewKeyMapper(),
	}
	if err := m.start(); err != nil {
		return PlayModel{}, err
	}
	return m, nil
}

func (m *PlayModel) start() error {
	if r := m.opts.Resume; r != nil {
		m.opts.Difficulty = string(r.Session.Difficulty)
		m.opts.Mode = r.Session.Mode
	}
	tag := m.opts.Difficulty
	tick, err := m.env.Config.TickInterval(tag)
	if err != nil {
		return err
	}

	seed := m.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m.clock = newTeaClock()
	so := sumfall.Options{
		Difficulty:    sumfall.Difficulty(tag),
		Mode:          m.opts.Mode,
		TickInterval:  tick,
		ResolveWindow: m.env.Config.ResolveWindow(),
		Seed:          seed,
		Clock:         m.clock,
	}
	if m.env.Tracker != nil {
		so.Listener = m.env.Tracker
	}

	if m.opts.Resume != nil {
		s, err := sumfall.Restore(*m.opts.Resume, so)
		if err != nil {
			return fmt.Errorf("tui: restore saved game: %w", err)
		}
		m.session = s
		m.opts.Resume = nil
	} else {
		m.session = sumfall.New(so)
	}

	m.state = m.session.State()
	m.scoreSaved = false
	m.env.Logger.Debug("session started",
		"session", m.session.ID(),
		"difficulty", tag,
		"mode", m.state.Mode,
		"user", m.env.User,
	)
	return nil
}

// Init hands the timers armed at start to Bubble Tea.
func (m PlayModel) Init() tea.Cmd {
	return m.clock.Drain()
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TimerMsg:
		if msg.Clock != m.clock.id {
			return m, nil
		}
		return m.apply(m.session.Fire(msg.Timer))

	case bannerMsg:
		if m.banners[msg.slot].seq == msg.seq {
			m.banners[msg.slot].text = ""
		}
		return m, nil
	}

	return m, nil
}

func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.session.Close()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.session.Close()
		m.backToMenu = true
		return m, nil

	case core.ActionSave:
		return m.save()

	case core.ActionRestart:
		if m.state.Status != sumfall.StatusGameOver {
			return m, nil
		}
		m.session.Close()
		m.env.Slot.Clear()
		m.opts.Seed = 0
		if err := m.start(); err != nil {
			m.env.Logger.Error("restart failed", "error", err)
			m.backToMenu = true
			return m, nil
		}
		return m, m.clock.Drain()
	}

	if cmd, ok := SessionCommand(action); ok {
		return m.apply(m.session.Apply(cmd))
	}
	return m, nil
}

func (m PlayModel) save() (tea.Model, tea.Cmd) {
	if m.state.Status == sumfall.StatusGameOver {
		return m, nil
	}
	text := "Game saved"
	if err := m.env.Slot.Save(m.session); err != nil {
		m.env.Logger.Warn("save failed", "session", m.session.ID(), "error", err)
		text = "Save failed"
	}
	cmd := m.showBanner(bannerNotice, text, m.env.Config.TargetBanner())
	return m, cmd
}

// apply folds a transition result into the model.
func (m PlayModel) apply(r sumfall.Result) (tea.Model, tea.Cmd) {
	m.state = r.State
	cmds := []tea.Cmd{m.clock.Drain()}

	for _, e := range r.Effects {
		switch e := e.(type) {
		case sumfall.TargetChangedEffect:
			text := fmt.Sprintf("New target: %d", e.To)
			cmds = append(cmds, m.showBanner(bannerTarget, text, m.env.Config.TargetBanner()))
		case sumfall.ClearedEffect:
			if e.Cascade {
				text := fmt.Sprintf("Cascade! +%d", e.Points)
				cmds = append(cmds, m.showBanner(bannerNotice, text, m.env.Config.ResolveWindow()))
			}
		case sumfall.GameOverEffect:
			m.recordScore()
		}
	}

	if m.env.Tracker != nil {
		for _, a := range m.env.Tracker.Unlocked() {
			text := fmt.Sprintf("Achievement unlocked: %s", a.Title)
			cmds = append(cmds, m.showBanner(bannerAchievement, text, m.env.Config.AchievementBanner()))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *PlayModel) showBanner(slot bannerSlot, text string, d time.Duration) tea.Cmd {
	b := &m.banners[slot]
	b.seq++
	b.text = text
	return bannerCmd(slot, b.seq, d)
}

// recordScore writes the finished game to the score history once.
func (m *PlayModel) recordScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	m.env.Logger.Info("game over",
		"session", m.state.ID,
		"difficulty", m.state.Difficulty,
		"points", m.state.Points,
		"combinations", m.state.Score,
	)
	if m.env.Scores == nil || m.state.Points == 0 {
		return
	}
	_, err := m.env.Scores.SaveScore(storage.ScoreEntry{
		SessionID:    m.state.ID,
		Difficulty:   string(m.state.Difficulty),
		Mode:         string(m.state.Mode),
		Points:       m.state.Points,
		Combinations: m.state.Score,
	})
	if err != nil {
		m.env.Logger.Warn("failed to save score", "error", err)
	}
}

// View renders the board and HUD.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}
	best := 0
	if m.env.Tracker != nil {
		best = m.env.Tracker.Profile().Best(string(m.state.Difficulty))
	}
	drawPlay(m.screen, playView{
		state:   m.state,
		label:   m.difficultyLabel(),
		best:    best,
		banners: m.bannerTexts(),
	})
	return RenderScreen(m.screen)
}

func (m PlayModel) difficultyLabel() string {
	if d, ok := m.env.Config.Difficulty(string(m.state.Difficulty)); ok && d.Label != "" {
		return d.Label
	}
	return string(m.state.Difficulty)
}

func (m PlayModel) bannerTexts() []string {
	var out []string
	for _, b := range m.banners {
		if b.text != "" {
			out = append(out, b.text)
		}
	}
	return out
}

// State returns the latest session state.
func (m PlayModel) State() sumfall.State {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m PlayModel) BackToMenu() bool {
	return m.backToMenu
}
