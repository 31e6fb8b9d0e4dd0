package sumfall

// Direction is a movement command for the falling piece.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirDown
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// MoveOutcome describes what TryMove did.
type MoveOutcome int

const (
	// Moved means the piece now occupies the candidate cell.
	Moved MoveOutcome = iota
	// Rejected means a sideways move was blocked; the piece is unchanged.
	Rejected
	// Locked means a downward move was blocked and the piece has come to rest.
	Locked
)

// Piece is the currently falling tile.
type Piece struct {
	Value int `json:"value"`
	Pos   Pos `json:"pos"`
}

// SpawnPos is where every new piece appears.
var SpawnPos = Pos{X: Width / 2, Y: 0}

// Spawn places a piece with the given value at SpawnPos.
// It returns false when the spawn cell is occupied, which ends the game.
func Spawn(b Board, value int) (Piece, bool) {
	if !b.IsPlaceable(SpawnPos.X, SpawnPos.Y) {
		return Piece{}, false
	}
	return Piece{Value: value, Pos: SpawnPos}, true
}

// TryMove attempts to move p one cell in dir.
func TryMove(p Piece, b Board, dir Direction) (Piece, MoveOutcome) {
	next := p.Pos
	switch dir {
	case DirLeft:
		next.X--
	case DirRight:
		next.X++
	case DirDown:
		next.Y++
	}

	if b.IsPlaceable(next.X, next.Y) {
		p.Pos = next
		return p, Moved
	}
	if dir == DirDown {
		return p, Locked
	}
	return p, Rejected
}
