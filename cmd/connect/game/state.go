package game

// State is an immutable snapshot of a game. Every transition produces a
// new value and leaves the old one untouched.
type State struct {
	Board     Board
	LastIndex int
	Turn      Cell
}

// InitialState returns an empty board with the red player to move.
func InitialState() State {
	return State{
		LastIndex: -1,
		Turn:      PlayerA,
	}
}

// Resume constructs a state when only the last played column is known. The
// last placed piece is the topmost piece in that column.
func Resume(board Board, lastColumn int, turn Cell) State {
	s := State{
		Board:     board,
		LastIndex: -1,
		Turn:      turn,
	}

	if lastColumn < 0 || lastColumn >= Cols {
		return s
	}

	for i := Cells - 1; i >= 0; i-- {
		if Column(i) == lastColumn && board[i] != Empty {
			s.LastIndex = i
			break
		}
	}

	return s
}

// LastColumn returns the column of the last move or -1 when no move has
// been played.
func (s State) LastColumn() int {
	if s.LastIndex < 0 {
		return -1
	}

	return Column(s.LastIndex)
}

// Moves returns the number of pieces on the board.
func (s State) Moves() int {
	var n int
	for _, c := range s.Board {
		if c != Empty {
			n++
		}
	}

	return n
}

// Move drops a piece for the player to move into the specified column. An
// out of range or full column leaves the state unchanged.
func Move(s State, column int) State {
	if column < 0 || column >= Cols {
		return s
	}

	// Ascending order visits the column bottom row first, so the first
	// empty hit is the lowest free row.
	for i := range s.Board {
		if Column(i) != column || s.Board[i] != Empty {
			continue
		}

		next := s
		next.Board[i] = s.Turn
		next.LastIndex = i
		next.Turn = s.Turn.Other()

		return next
	}

	return s
}
