// Package sumfall implements the falling-number puzzle engine: tiles descend
// onto a 6x6 grid and contiguous runs that add up to the target sum are cleared.
// The package has no rendering or storage dependencies.
package sumfall

import (
	"fmt"
	"strings"
)

// Board dimensions.
const (
	Width  = 6
	Height = 6
)

// Empty marks a cell without a value.
const Empty = 0

// Pos is a cell coordinate. X is the column, Y is the row (0 at the top).
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Board is a Width x Height grid indexed as [y][x].
// It is a value type: every "modification" returns a new board.
type Board [Height][Width]int

// InBounds returns true if (x, y) lies on the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// IsPlaceable returns true if (x, y) is on the board and empty.
func (b Board) IsPlaceable(x, y int) bool {
	return InBounds(x, y) && b[y][x] == Empty
}

// At returns the value at (x, y), or Empty when out of bounds.
func (b Board) At(x, y int) int {
	if !InBounds(x, y) {
		return Empty
	}
	return b[y][x]
}

// WithValueAt returns a copy of the board with (x, y) set to v.
// The caller must have checked IsPlaceable; violating that is a bug.
func (b Board) WithValueAt(x, y, v int) Board {
	if !b.IsPlaceable(x, y) {
		panic(fmt.Sprintf("sumfall: cell (%d, %d) is not placeable", x, y))
	}
	if v < MinValue || v > MaxValue {
		panic(fmt.Sprintf("sumfall: value %d out of range", v))
	}
	b[y][x] = v
	return b
}

// Without returns a copy of the board with the given cells emptied.
func (b Board) Without(cells []Pos) Board {
	for _, c := range cells {
		if InBounds(c.X, c.Y) {
			b[c.Y][c.X] = Empty
		}
	}
	return b
}

// Occupied returns the number of non-empty cells.
func (b Board) Occupied() int {
	n := 0
	for y := range Height {
		for x := range Width {
			if b[y][x] != Empty {
				n++
			}
		}
	}
	return n
}

// Column returns column x from top to bottom.
func (b Board) Column(x int) [Height]int {
	var col [Height]int
	for y := range Height {
		col[y] = b[y][x]
	}
	return col
}

// String renders the board as rows of digits with '.' for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for y := range Height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range Width {
			if b[y][x] == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte('0' + b[y][x]))
			}
		}
	}
	return sb.String()
}

// ParseBoard builds a board from rows of digits and '.', top row first.
// Missing rows are padded at the top so short layouts sit on the floor.
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	if len(rows) > Height {
		return b, fmt.Errorf("sumfall: %d rows exceed board height %d", len(rows), Height)
	}
	offset := Height - len(rows)
	for i, row := range rows {
		if len(row) != Width {
			return b, fmt.Errorf("sumfall: row %d has %d cells, want %d", i, len(row), Width)
		}
		for x, ch := range row {
			switch {
			case ch == '.':
			case ch >= '1' && ch <= '9':
				b[offset+i][x] = int(ch - '0')
			default:
				return b, fmt.Errorf("sumfall: invalid cell %q at row %d", ch, i)
			}
		}
	}
	return b, nil
}
