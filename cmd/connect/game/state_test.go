package game_test

import (
	"testing"

	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/google/go-cmp/cmp"
)

func Test_InitialState(t *testing.T) {
	exp := game.State{
		LastIndex: -1,
		Turn:      game.PlayerA,
	}

	got := game.InitialState()
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Fatalf("initial state mismatch (-exp +got):\n%s", diff)
	}

	if got.LastColumn() != -1 {
		t.Fatalf("expected last column -1, got %d", got.LastColumn())
	}

	if got.Moves() != 0 {
		t.Fatalf("expected 0 moves, got %d", got.Moves())
	}
}

func Test_MoveStacks(t *testing.T) {
	for col := range game.Cols {
		s := game.InitialState()

		for k := 1; k <= game.Rows; k++ {
			turn := s.Turn
			s = game.Move(s, col)

			idx := game.Index(k-1, col)
			if s.LastIndex != idx {
				t.Fatalf("col %d move %d: expected index %d, got %d", col, k, idx, s.LastIndex)
			}

			if s.Board[idx] != turn {
				t.Fatalf("col %d move %d: expected %s at %d, got %s", col, k, turn, idx, s.Board[idx])
			}

			if s.Turn != turn.Other() {
				t.Fatalf("col %d move %d: expected turn to flip to %s, got %s", col, k, turn.Other(), s.Turn)
			}

			if s.LastColumn() != col {
				t.Fatalf("col %d move %d: expected last column %d, got %d", col, k, col, s.LastColumn())
			}
		}

		if s.Moves() != game.Rows {
			t.Fatalf("col %d: expected %d moves, got %d", col, game.Rows, s.Moves())
		}
	}
}

func Test_MoveFullColumn(t *testing.T) {
	s := game.InitialState()
	for range game.Rows {
		s = game.Move(s, 3)
	}

	got := game.Move(s, 3)
	if diff := cmp.Diff(s, got); diff != "" {
		t.Fatalf("full column should be a no-op (-exp +got):\n%s", diff)
	}
}

func Test_MoveOutOfRange(t *testing.T) {
	s := game.Move(game.InitialState(), 2)

	for _, col := range []int{-5, -1, game.Cols, 100} {
		got := game.Move(s, col)
		if diff := cmp.Diff(s, got); diff != "" {
			t.Fatalf("column %d should be a no-op (-exp +got):\n%s", col, diff)
		}
	}
}

func Test_MoveIsPure(t *testing.T) {
	before := game.Move(game.InitialState(), 0)
	saved := before

	after := game.Move(before, 0)

	if diff := cmp.Diff(saved, before); diff != "" {
		t.Fatalf("input state changed (-exp +got):\n%s", diff)
	}

	if after.Board[game.Index(1, 0)] != game.PlayerB {
		t.Fatalf("expected yellow on row 1, got %s", after.Board[game.Index(1, 0)])
	}

	if before.Board[game.Index(1, 0)] != game.Empty {
		t.Fatalf("expected row 1 to stay empty in the input, got %s", before.Board[game.Index(1, 0)])
	}
}

func Test_Resume(t *testing.T) {
	var board game.Board
	board[0] = game.PlayerA
	board[7] = game.PlayerB
	board[14] = game.PlayerA
	board[3] = game.PlayerB

	tt := []struct {
		name   string
		column int
		exp    int
	}{
		{name: "no-move", column: -1, exp: -1},
		{name: "topmost", column: 0, exp: 14},
		{name: "single", column: 3, exp: 3},
		{name: "empty-column", column: 5, exp: -1},
		{name: "out-of-range", column: 9, exp: -1},
	}

	for _, test := range tt {
		t.Run(test.name, func(t *testing.T) {
			s := game.Resume(board, test.column, game.PlayerA)

			if s.LastIndex != test.exp {
				t.Fatalf("expected last index %d, got %d", test.exp, s.LastIndex)
			}

			if s.Board != board {
				t.Fatal("expected board to be carried over")
			}
		})
	}
}

func Test_CellOther(t *testing.T) {
	if game.PlayerA.Other() != game.PlayerB {
		t.Fatalf("expected yellow, got %s", game.PlayerA.Other())
	}

	if game.PlayerB.Other() != game.PlayerA {
		t.Fatalf("expected red, got %s", game.PlayerB.Other())
	}

	if game.Empty.Other() != game.Empty {
		t.Fatalf("expected empty, got %s", game.Empty.Other())
	}
}
