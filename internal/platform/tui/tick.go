// Package tui provides the Bubble Tea integration for sumfall.
// It handles the terminal UI loop, input mapping and timer delivery.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/sumfall/internal/games/sumfall"
)

// TimerMsg delivers a session timer expiry.
type TimerMsg struct {
	Clock string
	Timer sumfall.Timer
}

// teaClock implements sumfall.Clock on top of tea.Tick. Scheduled timers are
// collected as commands and handed to Bubble Tea by Drain. A tea.Tick cannot
// be cancelled, so Stop does nothing and the session drops the stale expiry.
type teaClock struct {
	id   string
	cmds []tea.Cmd
}

var _ sumfall.Clock = (*teaClock)(nil)

func newTeaClock() *teaClock {
	return &teaClock{id: uuid.NewString()}
}

func (c *teaClock) Schedule(t sumfall.Timer, after time.Duration) {
	id := c.id
	c.cmds = append(c.cmds, tea.Tick(after, func(time.Time) tea.Msg {
		return TimerMsg{Clock: id, Timer: t}
	}))
}

func (c *teaClock) Stop(sumfall.Timer) {}

// Drain returns the pending timer commands as one batch.
func (c *teaClock) Drain() tea.Cmd {
	cmds := c.cmds
	c.cmds = nil
	return tea.Batch(cmds...)
}

// bannerMsg expires a banner unless a newer one replaced it.
type bannerMsg struct {
	slot bannerSlot
	seq  int
}

type bannerSlot int

const (
	bannerTarget bannerSlot = iota
	bannerAchievement
	bannerNotice
	bannerSlots
)

func bannerCmd(slot bannerSlot, seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return bannerMsg{slot: slot, seq: seq}
	})
}
