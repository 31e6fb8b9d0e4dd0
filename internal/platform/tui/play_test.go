package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sumfall/internal/config"
	"github.com/vovakirdan/sumfall/internal/games/sumfall"
)

func newTestEnv() Env {
	return NewEnv(config.DefaultConfig(), nil, "", log.New(io.Discard))
}

func newTestPlay(t *testing.T, env Env) PlayModel {
	t.Helper()
	m, err := NewPlayModel(env, PlayOptions{Difficulty: "medium", Mode: sumfall.ModeFixed, Seed: 1}, 80, 24)
	if err != nil {
		t.Fatalf("NewPlayModel: %v", err)
	}
	return m
}

func send(t *testing.T, m PlayModel, msg tea.Msg) PlayModel {
	t.Helper()
	next, _ := m.Update(msg)
	pm, ok := next.(PlayModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return pm
}

// blockedSnapshot returns a game one move from game over: the piece sits at
// the spawn cell on top of a full column that cannot match target 10.
func blockedSnapshot(t *testing.T, env Env) sumfall.Snapshot {
	t.Helper()
	m := newTestPlay(t, env)
	snap := m.session.Snapshot(time.Now())
	m.session.Close()

	st := &snap.Session
	st.Target = 10
	st.Board = sumfall.Board{}
	for y := 1; y < sumfall.Height; y++ {
		st.Board[y][sumfall.SpawnPos.X] = 9
	}
	st.Piece = &sumfall.Piece{Value: 9, Pos: sumfall.SpawnPos}
	return snap
}

func TestPlayStartsActive(t *testing.T) {
	m := newTestPlay(t, newTestEnv())

	st := m.State()
	if st.Status != sumfall.StatusActive {
		t.Fatalf("Status = %v, expected active", st.Status)
	}
	if st.Piece == nil || st.Piece.Pos != sumfall.SpawnPos {
		t.Fatalf("Piece = %+v, expected at spawn", st.Piece)
	}
	if _, ok := m.session.Armed(sumfall.TimerGravity); !ok {
		t.Error("gravity timer not armed")
	}
	if m.Init() == nil {
		t.Error("Init should return the armed timer commands")
	}
}

func TestPlayMovesPiece(t *testing.T) {
	m := newTestPlay(t, newTestEnv())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.State().Piece.Pos.X; got != sumfall.SpawnPos.X-1 {
		t.Errorf("after left X = %d, expected %d", got, sumfall.SpawnPos.X-1)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.State().Piece.Pos.Y; got != 1 {
		t.Errorf("after down Y = %d, expected 1", got)
	}
}

func TestPlayGravityTimer(t *testing.T) {
	m := newTestPlay(t, newTestEnv())
	timer, _ := m.session.Armed(sumfall.TimerGravity)

	m = send(t, m, TimerMsg{Clock: "another-session", Timer: timer})
	if got := m.State().Piece.Pos.Y; got != 0 {
		t.Fatalf("foreign clock moved the piece to Y = %d", got)
	}

	m = send(t, m, TimerMsg{Clock: m.clock.id, Timer: timer})
	if got := m.State().Piece.Pos.Y; got != 1 {
		t.Errorf("after gravity Y = %d, expected 1", got)
	}

	// the same expiry again is stale
	m = send(t, m, TimerMsg{Clock: m.clock.id, Timer: timer})
	if got := m.State().Piece.Pos.Y; got != 1 {
		t.Errorf("stale timer moved the piece to Y = %d", got)
	}
}

func TestPlayPauseKey(t *testing.T) {
	m := newTestPlay(t, newTestEnv())

	m = send(t, m, runeKey('p'))
	if m.State().Status != sumfall.StatusPaused {
		t.Fatalf("Status = %v, expected paused", m.State().Status)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.State().Piece.Pos != sumfall.SpawnPos {
		t.Error("piece moved while paused")
	}

	m = send(t, m, runeKey('p'))
	if m.State().Status != sumfall.StatusActive {
		t.Errorf("Status = %v, expected active", m.State().Status)
	}
}

func TestPlaySaveShowsBanner(t *testing.T) {
	env := newTestEnv()
	m := newTestPlay(t, env)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !env.Slot.Has() {
		t.Fatal("save slot empty after ctrl+s")
	}
	if texts := m.bannerTexts(); len(texts) != 1 || texts[0] != "Game saved" {
		t.Errorf("banners = %v, expected [Game saved]", texts)
	}

	seq := m.banners[bannerNotice].seq
	m = send(t, m, bannerMsg{slot: bannerNotice, seq: seq})
	if texts := m.bannerTexts(); len(texts) != 0 {
		t.Errorf("banners = %v after expiry, expected none", texts)
	}
}

func TestPlayBannerReplacedNotExpiredEarly(t *testing.T) {
	m := newTestPlay(t, newTestEnv())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	first := m.banners[bannerNotice].seq
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	m = send(t, m, bannerMsg{slot: bannerNotice, seq: first})
	if texts := m.bannerTexts(); len(texts) != 1 {
		t.Errorf("older expiry removed the newer banner: %v", texts)
	}
}

func TestPlayResume(t *testing.T) {
	env := newTestEnv()
	m := newTestPlay(t, env)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	snap := m.session.Snapshot(time.Now())

	resumed, err := NewPlayModel(env, PlayOptions{Resume: &snap}, 80, 24)
	if err != nil {
		t.Fatalf("NewPlayModel: %v", err)
	}
	st := resumed.State()
	if st.ID != snap.Session.ID {
		t.Errorf("ID = %q, expected %q", st.ID, snap.Session.ID)
	}
	if st.Piece == nil || st.Piece.Pos.X != sumfall.SpawnPos.X+1 {
		t.Errorf("Piece = %+v, expected one step right of spawn", st.Piece)
	}
}

func TestPlayResumeRejectsUnknownDifficulty(t *testing.T) {
	env := newTestEnv()
	m := newTestPlay(t, env)
	snap := m.session.Snapshot(time.Now())
	snap.Session.Difficulty = "impossible"

	if _, err := NewPlayModel(env, PlayOptions{Resume: &snap}, 80, 24); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestPlayGameOverAndRestart(t *testing.T) {
	env := newTestEnv()
	snap := blockedSnapshot(t, env)
	m, err := NewPlayModel(env, PlayOptions{Resume: &snap}, 80, 24)
	if err != nil {
		t.Fatalf("NewPlayModel: %v", err)
	}

	// restart is ignored while playing
	m = send(t, m, runeKey('r'))
	if m.State().ID != snap.Session.ID {
		t.Fatal("restart replaced a running game")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.State().Status != sumfall.StatusGameOver {
		t.Fatalf("Status = %v, expected game over", m.State().Status)
	}
	if !m.scoreSaved {
		t.Error("game over not recorded")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if env.Slot.Has() {
		t.Error("finished game should not be saved")
	}

	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("view does not show GAME OVER")
	}

	old := m.clock.id
	m = send(t, m, runeKey('r'))
	if m.State().Status != sumfall.StatusActive {
		t.Fatalf("Status = %v after restart, expected active", m.State().Status)
	}
	if m.State().ID == snap.Session.ID || m.clock.id == old {
		t.Error("restart should start a fresh session and clock")
	}
}

func TestPlayBackAndQuit(t *testing.T) {
	m := newTestPlay(t, newTestEnv())
	session := m.session

	back := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.BackToMenu() || back.IsQuitting() {
		t.Error("esc should go back to the menu")
	}
	if !session.Closed() {
		t.Error("session not closed on back")
	}

	m = newTestPlay(t, newTestEnv())
	next, cmd := m.Update(runeKey('q'))
	if !next.(PlayModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestPlayViewShowsHUD(t *testing.T) {
	m := newTestPlay(t, newTestEnv())
	view := m.View()

	for _, want := range []string{"S U M F A L L", "TARGET", "NEXT", "POINTS", "Medium / fixed"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
