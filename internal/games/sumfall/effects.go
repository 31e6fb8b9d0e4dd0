package sumfall

import "time"

// Effect is a side note emitted by a transition for the presentation layer.
type Effect interface {
	effect()
}

// LockedEffect is emitted when the falling piece becomes a board cell.
type LockedEffect struct {
	At    Pos
	Value int
}

func (LockedEffect) effect() {}

// ClearedEffect is emitted when a resolver pass matched at least one run.
type ClearedEffect struct {
	Combinations int
	Points       int
	Cascade      bool // true for the secondary pass after a target change
}

func (ClearedEffect) effect() {}

// HighlightEffect asks the presentation to highlight cells for a duration.
type HighlightEffect struct {
	Cells    []Pos
	Duration time.Duration
}

func (HighlightEffect) effect() {}

// TargetChangedEffect is emitted when the target sum re-rolls.
type TargetChangedEffect struct {
	From int
	To   int
}

func (TargetChangedEffect) effect() {}

// PauseToggledEffect is emitted when the session enters or leaves pause.
type PauseToggledEffect struct {
	Paused bool
}

func (PauseToggledEffect) effect() {}

// GameOverEffect is emitted once when the session ends.
type GameOverEffect struct {
	Score  int
	Points int
}

func (GameOverEffect) effect() {}
