package render

import (
	"strings"

	"github.com/ardanlabs/connect4/cmd/connect/game"
)

// Text converts the board into a text grid with the top row first.
func Text(s game.State) string {
	var data strings.Builder

	for row := game.Rows - 1; row >= 0; row-- {
		data.WriteString("|")
		for col := range game.Cols {
			switch s.Board.At(row, col) {
			case game.PlayerA:
				data.WriteString("R|")
			case game.PlayerB:
				data.WriteString("Y|")
			default:
				data.WriteString(".|")
			}
		}
		data.WriteString("\n")
	}

	return data.String()
}
