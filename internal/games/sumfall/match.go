package sumfall

// PointsPerCell is awarded for every cleared cell.
const PointsPerCell = 10

// Run is one cleared combination, in scan order.
type Run []Pos

// Sum returns the total of the run's values on board b.
func (r Run) Sum(b Board) int {
	total := 0
	for _, p := range r {
		total += b.At(p.X, p.Y)
	}
	return total
}

// Resolution is the outcome of one Resolve call.
type Resolution struct {
	Board   Board // board with every matched run removed
	Runs    []Run // matched runs, rows first then columns
	Cleared []Pos // all cleared cells, in clearing order
	Points  int
}

// Combinations returns the number of matched runs.
func (r Resolution) Combinations() int {
	return len(r.Runs)
}

// Found returns true if at least one run matched.
func (r Resolution) Found() bool {
	return len(r.Runs) > 0
}

// Resolve clears every run of two or more contiguous cells summing to target.
//
// Rows are scanned first, then columns against the board the row pass left
// behind. Within a line each start index walks forward accumulating values; it
// stops at a gap, stops when the sum overshoots, and clears immediately on an
// exact hit. Cleared cells read as gaps for later start indices, so the result
// is greedy rather than the partition that clears the most cells.
func Resolve(b Board, target int) Resolution {
	res := Resolution{Board: b}

	for y := range Height {
		res.scanLine(target, Width, func(i int) Pos { return Pos{X: i, Y: y} })
	}
	for x := range Width {
		res.scanLine(target, Height, func(i int) Pos { return Pos{X: x, Y: i} })
	}

	return res
}

// scanLine runs the greedy walk over one row or column of the given length.
func (r *Resolution) scanLine(target, length int, at func(i int) Pos) {
	for start := 0; start <= length-2; start++ {
		sum := 0
		var run Run

		for i := start; i < length; i++ {
			p := at(i)
			v := r.Board[p.Y][p.X]
			if v == Empty {
				break
			}

			sum += v
			run = append(run, p)

			if sum == target && len(run) >= 2 {
				r.clear(run)
				break
			}
			if sum > target {
				break
			}
		}
	}
}

func (r *Resolution) clear(run Run) {
	r.Board = r.Board.Without(run)
	r.Runs = append(r.Runs, run)
	r.Cleared = append(r.Cleared, run...)
	r.Points += len(run) * PointsPerCell
}
