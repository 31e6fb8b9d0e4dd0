package sumfall

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Default timings.
const (
	DefaultTickInterval  = time.Second
	DefaultResolveWindow = 2 * time.Second
)

// Command is a player input.
type Command int

const (
	CmdLeft Command = iota
	CmdRight
	CmdDown
	CmdTogglePause
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdDown:
		return "down"
	case CmdTogglePause:
		return "toggle-pause"
	default:
		return "unknown"
	}
}

// ProgressListener receives every point-total update.
type ProgressListener interface {
	PointsChanged(difficulty Difficulty, points int)
}

// ProgressFunc adapts a function to ProgressListener.
type ProgressFunc func(difficulty Difficulty, points int)

// PointsChanged calls f.
func (f ProgressFunc) PointsChanged(difficulty Difficulty, points int) {
	f(difficulty, points)
}

// Options configures a session.
type Options struct {
	Difficulty    Difficulty
	Mode          Mode
	TickInterval  time.Duration // gravity tick period
	ResolveWindow time.Duration // visual lock after a clear

	// Generator overrides the random draws. When nil a RandomGenerator seeded
	// with Seed is used.
	Generator Generator
	Seed      int64

	// Clock schedules timers. When nil a ManualClock is used and the caller
	// drives time through Fire.
	Clock    Clock
	Listener ProgressListener
}

func (o Options) withDefaults() Options {
	if o.Mode == "" {
		o.Mode = ModeFixed
	}
	if o.TickInterval <= 0 {
		o.TickInterval = DefaultTickInterval
	}
	if o.ResolveWindow <= 0 {
		o.ResolveWindow = DefaultResolveWindow
	}
	if o.Generator == nil {
		o.Generator = NewRandomGenerator(rand.New(rand.NewSource(o.Seed)))
	}
	if o.Clock == nil {
		o.Clock = NewManualClock()
	}
	return o
}

// Result is what every transition returns: the new state and its effects.
type Result struct {
	State   State
	Effects []Effect
}

// Session is the game state machine. It is not safe for concurrent use; all
// commands and timer expiries must arrive on one goroutine.
type Session struct {
	opts   Options
	state  State
	armed  [timerKinds]uint64
	tokens uint64
	closed bool

	effects []Effect
}

// New starts a session with an empty board, a fresh target and two piece
// values. Draw order is target, current value, next value.
func New(opts Options) *Session {
	opts = opts.withDefaults()
	s := &Session{opts: opts}

	target := opts.Generator.NextTarget()
	current := opts.Generator.NextValue()
	next := opts.Generator.NextValue()

	var board Board
	piece, _ := Spawn(board, current)

	s.state = State{
		ID:         uuid.NewString(),
		Difficulty: opts.Difficulty,
		Mode:       opts.Mode,
		Status:     StatusActive,
		Board:      board,
		Piece:      &piece,
		Next:       next,
		Target:     target,
	}
	s.arm(TimerGravity)
	return s
}

// Restore rebuilds a live session from a snapshot. The snapshot's difficulty
// and mode win over opts. The timer matching the restored status is re-armed;
// a resolution window restarts from its full length.
func Restore(snap Snapshot, opts Options) (*Session, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	st := snap.Session.Clone()
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	opts.Difficulty = st.Difficulty
	opts.Mode = st.Mode
	opts = opts.withDefaults()

	s := &Session{opts: opts, state: st}
	switch st.Status {
	case StatusActive:
		s.arm(TimerGravity)
	case StatusResolving:
		s.arm(TimerResolve)
	}
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.state.ID
}

// State returns a copy of the current state.
func (s *Session) State() State {
	return s.state.Clone()
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	return s.closed
}

// Close cancels every outstanding timer. Later commands and expiries are ignored.
func (s *Session) Close() {
	s.cancelAll()
	s.closed = true
}

// Apply handles a player command.
func (s *Session) Apply(cmd Command) Result {
	if s.closed || s.state.Status == StatusGameOver {
		return s.result()
	}

	switch cmd {
	case CmdTogglePause:
		s.togglePause()
	case CmdLeft:
		s.move(DirLeft)
	case CmdRight:
		s.move(DirRight)
	case CmdDown:
		s.move(DirDown)
	}
	return s.result()
}

// Fire handles a timer expiry. Expiries whose token is not the one currently
// armed for that kind are stale and ignored.
func (s *Session) Fire(t Timer) Result {
	if s.closed || t.Kind < 0 || t.Kind >= timerKinds || t.Token == 0 || s.armed[t.Kind] != t.Token {
		return s.result()
	}
	s.armed[t.Kind] = 0

	switch t.Kind {
	case TimerGravity:
		if s.state.Status == StatusActive {
			s.move(DirDown)
		}
		if s.state.Status == StatusActive && s.armed[TimerGravity] == 0 {
			s.arm(TimerGravity)
		}
	case TimerResolve:
		if s.state.Status == StatusResolving {
			s.finishResolution()
		}
	}
	return s.result()
}

// Armed returns the armed timer of the given kind, if any.
func (s *Session) Armed(kind TimerKind) (Timer, bool) {
	if kind < 0 || kind >= timerKinds || s.armed[kind] == 0 {
		return Timer{}, false
	}
	return Timer{Kind: kind, Token: s.armed[kind]}, true
}

func (s *Session) togglePause() {
	if s.state.Status == StatusPaused {
		s.state.Status = s.state.Resume
		s.state.Resume = ""
		switch s.state.Status {
		case StatusActive:
			s.arm(TimerGravity)
		case StatusResolving:
			s.arm(TimerResolve)
		}
		s.emit(PauseToggledEffect{Paused: false})
		return
	}

	s.state.Resume = s.state.Status
	s.state.Status = StatusPaused
	s.cancelAll()
	s.emit(PauseToggledEffect{Paused: true})
}

func (s *Session) move(dir Direction) {
	if s.state.Status != StatusActive || s.state.Piece == nil {
		return
	}

	piece, outcome := TryMove(*s.state.Piece, s.state.Board, dir)
	switch outcome {
	case Moved:
		s.state.Piece = &piece
	case Locked:
		s.lock(piece)
	}
}

// lock turns the piece into a board cell and runs the resolver once.
func (s *Session) lock(p Piece) {
	board := s.state.Board.WithValueAt(p.Pos.X, p.Pos.Y, p.Value)
	s.state.Piece = nil
	s.state.TargetChanged = false
	s.emit(LockedEffect{At: p.Pos, Value: p.Value})

	res := Resolve(board, s.state.Target)
	if !res.Found() {
		s.state.Board = board
		s.spawnNext()
		return
	}
	s.beginResolution(board, res, false)
}

// beginResolution shows the pre-clear board with the matched cells
// highlighted and keeps the compacted result in Settled until the window ends.
func (s *Session) beginResolution(shown Board, res Resolution, cascade bool) {
	s.state.Board = shown
	s.state.Settled = Compact(res.Board)
	s.state.Clearing = res.Cleared
	s.state.Score += res.Combinations()
	s.state.Points += res.Points
	s.state.Status = StatusResolving

	s.cancel(TimerGravity)
	s.arm(TimerResolve)

	s.emit(ClearedEffect{Combinations: res.Combinations(), Points: res.Points, Cascade: cascade})
	s.emit(HighlightEffect{Cells: append([]Pos(nil), res.Cleared...), Duration: s.opts.ResolveWindow})

	if s.opts.Listener != nil {
		s.opts.Listener.PointsChanged(s.state.Difficulty, s.state.Points)
	}
}

// finishResolution settles the board, re-rolls the target in changing mode
// and either cascades or spawns the next piece.
func (s *Session) finishResolution() {
	board := s.state.Settled
	s.state.Board = board
	s.state.Settled = Board{}
	s.state.Clearing = nil

	if s.state.Mode == ModeChanging {
		prev := s.state.Target
		next := s.opts.Generator.NextTargetExcept(prev)
		s.state.Target = next

		if next != prev {
			s.emit(TargetChangedEffect{From: prev, To: next})

			res := Resolve(board, next)
			if res.Found() {
				s.beginResolution(board, res, true)
				return
			}
			s.state.TargetChanged = true
		}
	}

	s.spawnNext()
}

// spawnNext promotes the next value to the falling piece, or ends the game
// when the spawn cell is taken.
func (s *Session) spawnNext() {
	piece, ok := Spawn(s.state.Board, s.state.Next)
	if !ok {
		s.state.Status = StatusGameOver
		s.state.Piece = nil
		s.cancelAll()
		s.emit(GameOverEffect{Score: s.state.Score, Points: s.state.Points})
		return
	}

	s.state.Piece = &piece
	s.state.Next = s.opts.Generator.NextValue()
	s.state.Status = StatusActive
	if s.armed[TimerGravity] == 0 {
		s.arm(TimerGravity)
	}
}

func (s *Session) arm(kind TimerKind) {
	s.cancel(kind)

	s.tokens++
	t := Timer{Kind: kind, Token: s.tokens}
	s.armed[kind] = t.Token

	delay := s.opts.TickInterval
	if kind == TimerResolve {
		delay = s.opts.ResolveWindow
	}
	s.opts.Clock.Schedule(t, delay)
}

func (s *Session) cancel(kind TimerKind) {
	if s.armed[kind] == 0 {
		return
	}
	s.opts.Clock.Stop(Timer{Kind: kind, Token: s.armed[kind]})
	s.armed[kind] = 0
}

func (s *Session) cancelAll() {
	for k := range timerKinds {
		s.cancel(k)
	}
}

func (s *Session) emit(e Effect) {
	s.effects = append(s.effects, e)
}

func (s *Session) result() Result {
	r := Result{State: s.state.Clone(), Effects: s.effects}
	s.effects = nil
	return r
}
