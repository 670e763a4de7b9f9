// Package game provides the connect 4 engine. All operations are pure
// functions over immutable State values.
package game

// Board dimensions.
const (
	Rows  = 6
	Cols  = 7
	Cells = Rows * Cols
	toWin = 4
)

// Cell represents the content of a single board position.
type Cell uint8

// Set of cell values.
const (
	Empty Cell = iota
	PlayerA
	PlayerB
)

// String returns the color name of the cell.
func (c Cell) String() string {
	switch c {
	case PlayerA:
		return "red"
	case PlayerB:
		return "yellow"
	}

	return "empty"
}

// Other returns the opposing player. Empty has no opponent.
func (c Cell) Other() Cell {
	switch c {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	}

	return Empty
}

// =============================================================================

// Board holds the cells in row-major order with row 0 at the bottom.
type Board [Cells]Cell

// Index returns the board position for the specified row and column.
func Index(row int, col int) int {
	return row*Cols + col
}

// Column returns the column of the specified position.
func Column(index int) int {
	return index % Cols
}

// Row returns the row of the specified position, counted from the bottom.
func Row(index int) int {
	return index / Cols
}

// At returns the cell at the specified row and column.
func (b Board) At(row int, col int) Cell {
	return b[Index(row, col)]
}

// Full reports whether every cell holds a piece.
func (b Board) Full() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}

	return true
}

// ColumnFull reports whether the top cell of the column is taken.
func (b Board) ColumnFull(col int) bool {
	return b[Index(Rows-1, col)] != Empty
}
