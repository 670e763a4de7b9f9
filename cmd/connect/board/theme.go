package board

import (
	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var title = cases.Title(language.English)

// colorName returns the display name of the player for the cell.
func colorName(c game.Cell) string {
	return title.String(c.String())
}

// discStyle returns the style used to draw a piece of the cell's color.
func discStyle(base tcell.Style, c game.Cell) tcell.Style {
	switch c {
	case game.PlayerA:
		return base.Foreground(tcell.NewHexColor(0xf73d1f))
	case game.PlayerB:
		return base.Foreground(tcell.NewHexColor(0xfbdf23))
	}

	return base
}
