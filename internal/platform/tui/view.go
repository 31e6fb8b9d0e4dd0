package tui

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/sumfall/internal/core"
	"github.com/vovakirdan/sumfall/internal/games/sumfall"
)

// Play screen layout, in characters.
const (
	cellWidth   = 3
	boardWidth  = sumfall.Width*cellWidth + 2
	boardHeight = sumfall.Height + 2
	panelGap    = 3
	panelWidth  = 14
	playWidth   = boardWidth + panelGap + panelWidth
	playHeight  = boardHeight + 10
)

type playView struct {
	state   sumfall.State
	label   string
	best    int
	banners []string
}

func drawPlay(s *core.Screen, v playView) {
	s.Clear()
	area := core.NewRect(0, 0, s.Width(), s.Height()).Centered(playWidth, playHeight)
	st := v.state

	s.DrawTextColored(area.X, area.Y, "S U M F A L L", core.ColorBrightYellow)
	s.DrawTextColored(area.X, area.Y+1, fmt.Sprintf("%s / %s", v.label, st.Mode), core.ColorGray)

	board := core.NewRect(area.X, area.Y+3, boardWidth, boardHeight)
	frame := core.ColorGray
	if st.Status == sumfall.StatusResolving {
		frame = core.ColorBrightWhite
	}
	s.DrawBox(board, frame)
	drawBoard(s, board, st)

	px := board.Right() + panelGap
	py := board.Y
	targetColor := core.ColorBrightCyan
	if st.TargetChanged {
		targetColor = core.ColorBrightYellow
	}
	drawStat(s, px, py, "TARGET", strconv.Itoa(st.Target), targetColor)
	next := "-"
	if st.Next > 0 {
		next = strconv.Itoa(st.Next)
	}
	drawStat(s, px, py+2, "NEXT", next, core.ValueColor(st.Next))
	drawStat(s, px, py+4, "SCORE", strconv.Itoa(st.Score), core.ColorWhite)
	drawStat(s, px, py+5, "POINTS", strconv.Itoa(st.Points), core.ColorWhite)
	drawStat(s, px, py+7, "BEST", strconv.Itoa(max(v.best, st.Points)), core.ColorGray)

	y := board.Bottom() + 1
	switch st.Status {
	case sumfall.StatusPaused:
		s.DrawTextColored(area.X, y, "PAUSED", core.ColorBrightYellow)
		y++
	case sumfall.StatusGameOver:
		s.DrawTextColored(area.X, y, "GAME OVER", core.ColorBrightRed)
		s.DrawTextColored(area.X, y+1, "r: new game  esc: menu", core.ColorGray)
		y += 2
	}
	for _, b := range v.banners {
		s.DrawTextColored(area.X, y, b, core.ColorBrightGreen)
		y++
	}

	s.DrawTextColored(area.X, area.Bottom()-1, "←→↓ move  space pause  ^S save  esc menu  q quit", core.ColorGray)
}

func drawBoard(s *core.Screen, box core.Rect, st sumfall.State) {
	for y := range sumfall.Height {
		for x := range sumfall.Width {
			cx := box.X + 1 + x*cellWidth
			cy := box.Y + 1 + y
			v := st.Board.At(x, y)

			switch {
			case st.Piece != nil && st.Piece.Pos == (sumfall.Pos{X: x, Y: y}):
				drawCell(s, cx, cy, '[', st.Piece.Value, ']', core.ColorBrightWhite, core.ValueColor(st.Piece.Value))
			case st.IsClearing(x, y):
				drawCell(s, cx, cy, '*', v, '*', core.ColorBrightWhite, core.ColorBrightWhite)
			case v != sumfall.Empty:
				drawCell(s, cx, cy, ' ', v, ' ', core.ColorDefault, core.ValueColor(v))
			default:
				s.SetCell(cx+1, cy, core.Cell{Rune: '·', Color: core.ColorGray})
			}
		}
	}
}

func drawCell(s *core.Screen, x, y int, open rune, v int, closing rune, frame, digit core.Color) {
	s.SetCell(x, y, core.Cell{Rune: open, Color: frame})
	s.SetCell(x+1, y, core.Cell{Rune: rune('0' + v), Color: digit})
	s.SetCell(x+2, y, core.Cell{Rune: closing, Color: frame})
}

func drawStat(s *core.Screen, x, y int, label, value string, c core.Color) {
	s.DrawTextColored(x, y, label, core.ColorGray)
	s.DrawTextColored(x+8, y, value, c)
}
