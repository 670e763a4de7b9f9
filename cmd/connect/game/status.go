package game

// Phase represents where a game is in its lifecycle.
type Phase uint8

// Set of phases. Won and Draw are terminal.
const (
	InProgress Phase = iota
	Won
	Draw
)

// String returns the name of the phase.
func (p Phase) String() string {
	switch p {
	case Won:
		return "won"
	case Draw:
		return "draw"
	}

	return "in-progress"
}

// Outcome describes the result of evaluating a state.
type Outcome struct {
	Phase  Phase
	Winner Cell
	Line   WinLine
}

// Over reports whether the game has reached a terminal phase.
func (o Outcome) Over() bool {
	return o.Phase != InProgress
}

// Status evaluates the state. A win is checked before a full board so the
// last piece filling the board can still win.
func Status(s State) Outcome {
	if line, ok := FindWinningLine(s); ok {
		return Outcome{
			Phase:  Won,
			Winner: line.Color(),
			Line:   line,
		}
	}

	if s.Board.Full() {
		return Outcome{Phase: Draw}
	}

	return Outcome{Phase: InProgress}
}

// Playable reports whether a piece can be dropped into the column.
func Playable(s State, column int) bool {
	if column < 0 || column >= Cols {
		return false
	}

	if s.Board.ColumnFull(column) {
		return false
	}

	return !Status(s).Over()
}

// LegalMoves returns the playable columns in ascending order.
func LegalMoves(s State) []int {
	if Status(s).Over() {
		return nil
	}

	var moves []int
	for col := range Cols {
		if !s.Board.ColumnFull(col) {
			moves = append(moves, col)
		}
	}

	return moves
}
