package game

// Placement is a board position and the color found there.
type Placement struct {
	Index int
	Color Cell
}

// WinLine is four contiguous same-colored placements on one straight line.
type WinLine [toWin]Placement

// Color returns the color of the winning player.
func (wl WinLine) Color() Cell {
	return wl[0].Color
}

// Contains reports whether the position is part of the line.
func (wl WinLine) Contains(index int) bool {
	for _, p := range wl {
		if p.Index == index {
			return true
		}
	}

	return false
}

// =============================================================================

// direction is a line step as row and column deltas. As a board position
// increment it is row*Cols + col.
type direction struct {
	row int
	col int
}

// Search order for the four line directions.
var directions = [...]direction{
	{row: 1, col: 0},  // vertical, step 7
	{row: 0, col: 1},  // horizontal, step 1
	{row: 1, col: 1},  // diagonal up-right, step 8
	{row: 1, col: -1}, // diagonal up-left, step 6
}

// FindWinningLine reports the line through the last placed piece that
// completes four in a row, if any.
func FindWinningLine(s State) (WinLine, bool) {
	if s.LastIndex < 0 || s.LastIndex >= Cells || s.Board[s.LastIndex] == Empty {
		return WinLine{}, false
	}

	row, col := Row(s.LastIndex), Column(s.LastIndex)

	// Every 4-window holding the last piece starts 1, 2 or 3 slots away
	// from it on one side and walks back through it.
	for _, d := range directions {
		for offset := 1; offset < toWin; offset++ {
			for _, sign := range [...]int{-1, 1} {
				startRow := row + d.row*offset*sign
				startCol := col + d.col*offset*sign

				if line, ok := walk(s.Board, startRow, startCol, -d.row*sign, -d.col*sign); ok {
					return line, true
				}
			}
		}
	}

	return WinLine{}, false
}

// walk collects same-colored pieces starting at the specified cell and
// moving by the row and column deltas. It stops at the board edge, at an
// empty cell, or at a color change.
func walk(b Board, row int, col int, dRow int, dCol int) (WinLine, bool) {
	var line WinLine

	for n := 0; n < toWin; n++ {
		if row < 0 || row >= Rows || col < 0 || col >= Cols {
			return WinLine{}, false
		}

		idx := Index(row, col)
		color := b[idx]
		if color == Empty || (n > 0 && color != line[0].Color) {
			return WinLine{}, false
		}

		line[n] = Placement{Index: idx, Color: color}

		row += dRow
		col += dCol
	}

	return line, true
}
