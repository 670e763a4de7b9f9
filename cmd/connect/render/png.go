// Package render produces static images of a game state.
package render

import (
	"bytes"
	"fmt"

	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/fogleman/gg"
)

// Layout of the image in pixels.
const (
	Radius  = 50
	Gap     = 30
	Padding = 30
	Width   = 2*Padding + game.Cols*2*Radius + (game.Cols-1)*Gap
	Height  = 2*Padding + game.Rows*2*Radius + (game.Rows-1)*Gap
)

// Set of colors used to draw the board.
const (
	colorActive   = "#0075e1"
	colorInactive = "#999999"
	colorEmpty    = "#ffffff"
	colorRed      = "#f73d1f"
	colorYellow   = "#fbdf23"
)

// Center returns the pixel center of the disc for the specified position.
// Row 0 is drawn at the bottom of the image.
func Center(index int) (x float64, y float64) {
	row, col := game.Row(index), game.Column(index)

	x = float64(Padding + Radius + col*(2*Radius+Gap))
	y = float64(Padding + Radius + (game.Rows-1-row)*(2*Radius+Gap))

	return x, y
}

// PNG draws the state as a PNG image. Once the game is over the board turns
// grey, and on a win only the winning discs keep their color.
func PNG(s game.State) ([]byte, error) {
	outcome := game.Status(s)

	dc := gg.NewContext(Width, Height)

	switch outcome.Over() {
	case true:
		dc.SetHexColor(colorInactive)
	default:
		dc.SetHexColor(colorActive)
	}
	dc.Clear()

	for i, cell := range s.Board {
		if outcome.Phase == game.Won && !outcome.Line.Contains(i) {
			cell = game.Empty
		}

		x, y := Center(i)

		dc.SetHexColor(hexColor(cell))
		dc.DrawCircle(x, y, Radius)
		dc.FillPreserve()

		dc.SetRGBA(0, 0, 0, 0.2)
		dc.SetLineWidth(4)
		dc.Stroke()
	}

	var b bytes.Buffer
	if err := dc.EncodePNG(&b); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	return b.Bytes(), nil
}

func hexColor(c game.Cell) string {
	switch c {
	case game.PlayerA:
		return colorRed
	case game.PlayerB:
		return colorYellow
	}

	return colorEmpty
}
