package game_test

import (
	"testing"

	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/google/go-cmp/cmp"
)

// play applies the columns in order starting from the initial state.
func play(t *testing.T, columns ...int) game.State {
	t.Helper()

	s := game.InitialState()
	for i, col := range columns {
		next := game.Move(s, col)
		if next == s {
			t.Fatalf("move %d into column %d was rejected", i, col)
		}
		s = next
	}

	return s
}

// place puts the color on the positions, ignoring turn order.
func place(board *game.Board, color game.Cell, positions ...int) {
	for _, p := range positions {
		board[p] = color
	}
}

func line(color game.Cell, positions ...int) game.WinLine {
	var wl game.WinLine
	for i, p := range positions {
		wl[i] = game.Placement{Index: p, Color: color}
	}

	return wl
}

// =============================================================================

func Test_FindWinningLineNoMove(t *testing.T) {
	if _, ok := game.FindWinningLine(game.InitialState()); ok {
		t.Fatal("initial state should have no winning line")
	}

	var board game.Board
	place(&board, game.PlayerA, 0, 1, 2, 3)

	if _, ok := game.FindWinningLine(game.Resume(board, -1, game.PlayerB)); ok {
		t.Fatal("state without a last column should have no winning line")
	}
}

func Test_FindWinningLine(t *testing.T) {
	tt := []struct {
		name      string
		positions []int
		column    int
		exp       game.WinLine
	}{
		{
			name:      "horizontal",
			positions: []int{0, 1, 2, 3},
			column:    3,
			exp:       line(game.PlayerA, 0, 1, 2, 3),
		},
		{
			name:      "horizontal-middle",
			positions: []int{0, 1, 2, 3},
			column:    1,
			exp:       line(game.PlayerA, 0, 1, 2, 3),
		},
		{
			name:      "vertical",
			positions: []int{0, 7, 14, 21},
			column:    0,
			exp:       line(game.PlayerA, 0, 7, 14, 21),
		},
		{
			name:      "diagonal-up-right",
			positions: []int{0, 8, 16, 24},
			column:    3,
			exp:       line(game.PlayerA, 0, 8, 16, 24),
		},
		{
			name:      "diagonal-up-left",
			positions: []int{6, 12, 18, 24},
			column:    3,
			exp:       line(game.PlayerA, 6, 12, 18, 24),
		},
		{
			name:      "diagonal-up-left-middle",
			positions: []int{6, 12, 18, 24},
			column:    5,
			exp:       line(game.PlayerA, 6, 12, 18, 24),
		},
	}

	for _, test := range tt {
		t.Run(test.name, func(t *testing.T) {
			var board game.Board
			place(&board, game.PlayerA, test.positions...)

			got, ok := game.FindWinningLine(game.Resume(board, test.column, game.PlayerB))
			if !ok {
				t.Fatal("expected a winning line")
			}

			if diff := cmp.Diff(test.exp, got); diff != "" {
				t.Fatalf("line mismatch (-exp +got):\n%s", diff)
			}

			if got.Color() != game.PlayerA {
				t.Fatalf("expected red, got %s", got.Color())
			}

			for _, p := range test.positions {
				if !got.Contains(p) {
					t.Fatalf("expected line to contain %d", p)
				}
			}
		})
	}
}

func Test_FindWinningLineMixedColors(t *testing.T) {
	var board game.Board
	place(&board, game.PlayerA, 0, 1, 3)
	place(&board, game.PlayerB, 2)

	if _, ok := game.FindWinningLine(game.Resume(board, 3, game.PlayerB)); ok {
		t.Fatal("a broken run should not win")
	}
}

func Test_FindWinningLineNoWrap(t *testing.T) {
	var board game.Board
	place(&board, game.PlayerB, 0, 1)
	place(&board, game.PlayerA, 5, 6, 7, 8)

	for _, col := range []int{1, 5, 6} {
		if wl, ok := game.FindWinningLine(game.Resume(board, col, game.PlayerB)); ok {
			t.Fatalf("column %d: pieces wrapping the board edge should not win: %v", col, wl)
		}
	}
}

func Test_FindWinningLineScenario(t *testing.T) {
	// Yellow answers in columns 1 and 2 so column 0 stays red.
	s := play(t, 0, 1, 0, 2, 0, 1)

	if _, ok := game.FindWinningLine(s); ok {
		t.Fatal("three in a column should not win")
	}

	s = game.Move(s, 0)

	got, ok := game.FindWinningLine(s)
	if !ok {
		t.Fatal("expected the fourth red piece in column 0 to win")
	}

	if diff := cmp.Diff(line(game.PlayerA, 0, 7, 14, 21), got); diff != "" {
		t.Fatalf("line mismatch (-exp +got):\n%s", diff)
	}
}

func Test_FindWinningLineAlternatingSequence(t *testing.T) {
	// Strict alternation over [0,0,1,0,2,0,3] stacks yellow in column 0
	// and completes red along the bottom row.
	s := play(t, 0, 0, 1, 0, 2, 0, 3)

	got, ok := game.FindWinningLine(s)
	if !ok {
		t.Fatal("expected a winning line")
	}

	if diff := cmp.Diff(line(game.PlayerA, 0, 1, 2, 3), got); diff != "" {
		t.Fatalf("line mismatch (-exp +got):\n%s", diff)
	}
}
