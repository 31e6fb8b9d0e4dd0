package sumfall

// Compact drops every value in each column to the bottom, keeping the
// top-to-bottom order. Columns never exchange values.
func Compact(b Board) Board {
	var out Board
	for x := range Width {
		write := Height - 1
		for y := Height - 1; y >= 0; y-- {
			if b[y][x] == Empty {
				continue
			}
			out[write][x] = b[y][x]
			write--
		}
	}
	return out
}
