package sumfall

import (
	"fmt"
	"slices"
	"time"
)

// Status is the session's state-machine state.
type Status string

const (
	StatusActive    Status = "active"
	StatusResolving Status = "resolving"
	StatusPaused    Status = "paused"
	StatusGameOver  Status = "game_over"
)

// Mode is the target-sum lifecycle policy.
type Mode string

const (
	// ModeFixed keeps the starting target for the whole session.
	ModeFixed Mode = "fixed"
	// ModeChanging re-rolls the target after every successful clear.
	ModeChanging Mode = "changing"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFixed, ModeChanging:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("sumfall: unknown mode %q", s)
	}
}

// Difficulty is an opaque tag. The engine only carries it into progression
// events; the tick interval it stands for is decided elsewhere.
type Difficulty string

// State is the complete, serializable session state.
type State struct {
	ID         string     `json:"id"`
	Difficulty Difficulty `json:"difficulty"`
	Mode       Mode       `json:"mode"`
	Status     Status     `json:"status"`
	// Resume is the status a paused session returns to.
	Resume Status `json:"resume,omitempty"`

	Board Board  `json:"board"`
	Piece *Piece `json:"piece,omitempty"`
	Next  int    `json:"next"`

	Target int `json:"target"`
	Score  int `json:"score"`  // combinations cleared
	Points int `json:"points"` // 10 per cleared cell

	// Settled is the gravity-compacted board that replaces Board when the
	// resolution window ends. Only meaningful while resolving.
	Settled       Board `json:"settled"`
	Clearing      []Pos `json:"clearing,omitempty"`
	TargetChanged bool  `json:"target_changed,omitempty"`
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	if s.Piece != nil {
		p := *s.Piece
		s.Piece = &p
	}
	s.Clearing = slices.Clone(s.Clearing)
	return s
}

// Current returns the falling piece's value, or 0 when no piece is active.
func (s State) Current() int {
	if s.Piece == nil {
		return 0
	}
	return s.Piece.Value
}

// IsClearing reports whether (x, y) is part of the runs being cleared.
func (s State) IsClearing(x, y int) bool {
	return slices.Contains(s.Clearing, Pos{X: x, Y: y})
}

// EffectiveStatus returns the underlying status, looking through a pause.
func (s State) EffectiveStatus() Status {
	if s.Status == StatusPaused && s.Resume != "" {
		return s.Resume
	}
	return s.Status
}

// Snapshot is a saved game: a pure copy of the state plus capture time.
type Snapshot struct {
	Session    State     `json:"session"`
	CapturedAt time.Time `json:"captured_at"`
}

// Snapshot captures the current session state.
func (s *Session) Snapshot(now time.Time) Snapshot {
	return Snapshot{
		Session:    s.state.Clone(),
		CapturedAt: now,
	}
}

// Validate checks that a snapshot describes a playable session.
func (snap Snapshot) Validate() error {
	st := snap.Session
	switch st.Status {
	case StatusActive, StatusResolving, StatusPaused, StatusGameOver:
	default:
		return fmt.Errorf("sumfall: snapshot has unknown status %q", st.Status)
	}
	if st.Status == StatusPaused && st.Resume != StatusActive && st.Resume != StatusResolving {
		return fmt.Errorf("sumfall: paused snapshot cannot resume to %q", st.Resume)
	}
	if _, err := ParseMode(string(st.Mode)); err != nil {
		return err
	}
	if st.Target < MinTarget || st.Target > MaxTarget {
		return fmt.Errorf("sumfall: snapshot target %d out of range", st.Target)
	}
	if st.Score < 0 || st.Points < 0 {
		return fmt.Errorf("sumfall: snapshot has negative score %d or points %d", st.Score, st.Points)
	}
	if !validValue(st.Next) {
		return fmt.Errorf("sumfall: snapshot next value %d out of range", st.Next)
	}
	if st.Piece != nil && !validValue(st.Piece.Value) {
		return fmt.Errorf("sumfall: snapshot piece value %d out of range", st.Piece.Value)
	}
	if err := validateCells("cell", st.Board); err != nil {
		return err
	}
	if err := validateCells("settled cell", st.Settled); err != nil {
		return err
	}
	if st.EffectiveStatus() == StatusActive {
		if st.Piece == nil {
			return fmt.Errorf("sumfall: active snapshot without a piece")
		}
		if !st.Board.IsPlaceable(st.Piece.Pos.X, st.Piece.Pos.Y) {
			return fmt.Errorf("sumfall: snapshot piece at (%d, %d) overlaps the board", st.Piece.Pos.X, st.Piece.Pos.Y)
		}
	}
	return nil
}

func validValue(v int) bool {
	return v >= MinValue && v <= MaxValue
}

func validateCells(what string, b Board) error {
	for y := range Height {
		for x := range Width {
			if v := b[y][x]; v != Empty && !validValue(v) {
				return fmt.Errorf("sumfall: snapshot %s (%d, %d) holds %d", what, x, y, v)
			}
		}
	}
	return nil
}
