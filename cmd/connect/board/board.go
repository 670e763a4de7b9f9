// Package board handles the game board and all interactions.
package board

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/ardanlabs/connect4/cmd/connect/render"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
)

const (
	rows        = game.Rows
	cols        = game.Cols
	cellWidth   = 5
	cellHeight  = 2
	boardWidth  = cols*cellWidth + 1
	boardHeight = rows * cellHeight
	padTop      = 4
	padLeft     = 1
	startCol    = 3
)

const (
	hozTopRune = '━'
	hozBotRune = '▅'
	verRune    = '┃'
	discRune   = '●'
	space      = ' '
)

const (
	dirLeft  = "left"
	dirRight = "right"
)

// Config holds the settings for a board.
type Config struct {
	Log         zerolog.Logger
	SnapshotDir string
	Sound       bool
	Animate     bool
}

// Board represents the terminal display and owns the current game state.
type Board struct {
	log           zerolog.Logger
	baseLog       zerolog.Logger
	screen        tcell.Screen
	style         tcell.Style
	state         game.State
	outcome       game.Outcome
	gameID        string
	inputCol      int
	lastWinnerMsg string
	snapshotDir   string
	sound         bool
	animate       bool
	modalUp       bool
	mouseDown     bool
}

// New contructs a game board and renders the board.
func New(cfg Config) (*Board, error) {
	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}

	return newBoard(screen, cfg), nil
}

func newBoard(screen tcell.Screen, cfg Config) *Board {
	screen.EnableMouse()

	style := tcell.StyleDefault
	style = style.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

	board := Board{
		baseLog:     cfg.Log,
		screen:      screen,
		style:       style,
		snapshotDir: cfg.SnapshotDir,
		sound:       cfg.Sound,
		animate:     cfg.Animate,
	}

	board.newGame()

	return &board
}

// Shutdown tears down the game board.
func (b *Board) Shutdown() {
	b.screen.Fini()
}

// Run starts a goroutine to handle terminal events. The returned channel
// is closed when the user quits.
func (b *Board) Run() chan struct{} {
	return b.pollEvents()
}

// =============================================================================

func (b *Board) newGame() {
	b.state = game.InitialState()
	b.outcome = game.Status(b.state)
	b.gameID = uuid.NewString()
	b.inputCol = startCol
	b.modalUp = false

	b.log = b.baseLog.With().Str("game", b.gameID).Logger()
	b.log.Info().Msg("new game")

	b.drawInit()
}

// play applies a move into the specified column. It reports false when
// the move was rejected.
func (b *Board) play(column int) bool {
	if !game.Playable(b.state, column) {
		b.screen.Beep()
		b.log.Debug().Int("column", column).Msg("move rejected")
		return false
	}

	next := game.Move(b.state, column)

	b.dropPiece(next.LastIndex, b.state.Turn)

	b.state = next
	b.outcome = game.Status(next)

	b.log.Debug().
		Int("column", column).
		Int("index", next.LastIndex).
		Stringer("color", next.Board[next.LastIndex]).
		Msg("move")

	if b.outcome.Over() {
		b.log.Info().
			Stringer("phase", b.outcome.Phase).
			Stringer("winner", b.outcome.Winner).
			Int("moves", next.Moves()).
			Msg("game over")
		b.log.Debug().Msg("final board\n" + render.Text(next))

		b.showWinner()
		return true
	}

	b.applyBoardState()

	return true
}

// snapshot writes the current board as a PNG file and returns its path.
func (b *Board) snapshot() (string, error) {
	data, err := render.PNG(b.state)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	if err := os.MkdirAll(b.snapshotDir, 0755); err != nil {
		return "", fmt.Errorf("snapshot dir: %w", err)
	}

	name := fmt.Sprintf("%s-%02d.png", b.gameID, b.state.Moves())
	path := filepath.Join(b.snapshotDir, name)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}

func (b *Board) toggleSound() {
	b.sound = !b.sound
	b.log.Info().Bool("sound", b.sound).Msg("sound toggled")

	b.printStatus()
}

// =============================================================================

func (b *Board) drawInit() {
	b.drawEmptyGameBoard()
	b.applyBoardState()
}

func (b *Board) drawEmptyGameBoard() {
	b.screen.Clear()

	width := boardWidth
	height := boardHeight

	style := b.style
	style = style.Background(tcell.ColorBlack).Foreground(tcell.ColorGrey)

	for h := 0; h <= height; h++ {
		for w := 0; w < width; w++ {

			// Clear the entire line.
			b.screen.SetContent(w+padLeft, h+padTop, space, nil, style)

			if h%cellHeight == 0 {

				// These are the '━' characters creating each row.
				b.screen.SetContent(w+padLeft, h+padTop, hozTopRune, nil, style)

				if h == height {

					// These are the '▅' characters creating the bottom row.
					b.screen.SetContent(w+padLeft, h+padTop, hozBotRune, nil, style)
				}
			}

			if w%cellWidth == 0 {

				// These are the '┃' characters creating each column.
				b.screen.SetContent(w+padLeft, h+padTop, verRune, nil, style)
			}
		}
	}

	b.print(12, 1, "Connect 4")
	b.print(0, boardHeight+padTop+1, "   1    2    3    4    5    6    7")

	b.print(boardWidth+3, padTop-1, "<n> new game   <s> snapshot")
	b.print(boardWidth+3, padTop, "<m> sound      <q> quit game")
}

// applyBoardState redraws every cell, the input marker and the side panel
// from the current state.
func (b *Board) applyBoardState() {
	for i, cell := range b.state.Board {

		// Once a line is complete only its pieces keep their color.
		if b.outcome.Phase == game.Won && !b.outcome.Line.Contains(i) {
			cell = game.Empty
		}

		x, y := cellPosition(i)
		b.drawDisc(x, y, cell)
	}

	b.drawMarker()
	b.printStatus()

	b.screen.Show()
}

// drawMarker shows the piece about to be played above the selected column.
// It is hidden when the column can't be played.
func (b *Board) drawMarker() {
	for col := range cols {
		b.printStyle(markerColumn(col), padTop-1, " ", b.style)
	}

	if !game.Playable(b.state, b.inputCol) {
		return
	}

	b.drawDisc(markerColumn(b.inputCol), padTop-1, b.state.Turn)
}

func (b *Board) printStatus() {
	turn := "Turn: " + colorName(b.state.Turn)
	if b.outcome.Over() {
		turn = "Game over"
	}

	sound := "Sound: off"
	if b.sound {
		sound = "Sound: on "
	}

	b.print(boardWidth+3, padTop+2, fmt.Sprintf("%-28s", turn))
	b.print(boardWidth+3, padTop+3, fmt.Sprintf("%-28s", "Last Winner: "+b.lastWinnerMsg))
	b.print(boardWidth+3, padTop+4, fmt.Sprintf("%-28s", fmt.Sprintf("Moves: %d", b.state.Moves())))
	b.print(boardWidth+3, padTop+5, sound)
	b.print(boardWidth+3, padTop+7, "Game: "+b.gameID[:8])
}

func (b *Board) movePlayerPiece(direction string) {
	if b.outcome.Over() {
		return
	}

	switch {
	case direction == dirLeft && b.inputCol == 0:
		return
	case direction == dirRight && b.inputCol == cols-1:
		return
	}

	switch direction {
	case dirLeft:
		b.inputCol--
	case dirRight:
		b.inputCol++
	}

	b.drawMarker()
	b.screen.Show()
}

func (b *Board) selectColumn(column int) {
	if b.outcome.Over() || column == b.inputCol {
		return
	}

	b.inputCol = column

	b.drawMarker()
	b.screen.Show()
}

// dropPiece animates a piece falling from the top of the board into the
// specified position.
func (b *Board) dropPiece(index int, color game.Cell) {
	if !b.animate {
		return
	}

	b.printStyle(markerColumn(b.inputCol), padTop-1, " ", b.style)

	x, stopY := cellPosition(index)
	for y := padTop + 1; y < stopY; y += cellHeight {
		b.drawDisc(x, y, color)
		b.screen.Show()

		time.Sleep(100 * time.Millisecond)

		b.drawDisc(x, y, game.Empty)
	}
}

// =============================================================================

// showWinner displays a modal dialog box.
func (b *Board) showWinner() {
	switch b.outcome.Phase {
	case game.Won:
		b.lastWinnerMsg = colorName(b.outcome.Winner)
	default:
		b.lastWinnerMsg = "Tie Game"
	}

	b.modalUp = true
	b.applyBoardState()

	b.screen.HideCursor()
	b.drawBox(5, 8, 33, 13)

	msg := b.lastWinnerMsg + " Wins"
	if b.outcome.Phase != game.Won {
		msg = "Draw"
	}

	x := 19 - (len(msg) / 2)
	b.print(x, 10, msg)

	b.speak(msg)
}

// closeModal closes the modal dialog box.
func (b *Board) closeModal() {
	b.modalUp = false

	b.drawInit()
}

// drawBox draws an empty box on the screen.
func (b *Board) drawBox(x int, y int, width int, height int) {
	style := b.style
	style = style.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)

	for h := y; h < height; h++ {
		for w := x; w < width; w++ {
			b.screen.SetContent(w, h, ' ', nil, b.style)
		}
	}

	for h := y; h < height; h++ {
		for w := x; w < width; w++ {
			if h == y {
				b.screen.SetContent(w, h, '▀', nil, style)
			}
			if h == height-1 {
				b.screen.SetContent(w, h, '▄', nil, style)
			}
			if w == x || w == width-1 {
				b.screen.SetContent(w, h, '█', nil, style)
			}
		}
	}

	b.screen.Show()
}

func (b *Board) drawDisc(x int, y int, cell game.Cell) {
	if cell == game.Empty {
		b.screen.SetContent(x, y, space, nil, b.style)
		return
	}

	b.screen.SetContent(x, y, discRune, nil, discStyle(b.style, cell))
}

func (b *Board) print(x, y int, str string) {
	b.printStyle(x, y, str, b.style)
	b.screen.Show()
}

func (b *Board) printStyle(x, y int, str string, style tcell.Style) {
	for _, c := range str {
		var comb []rune
		w := runewidth.RuneWidth(c)
		if w == 0 {
			comb = []rune{c}
			c = ' '
			w = 1
		}
		b.screen.SetContent(x, y, c, comb, style)
		x += w
	}
}

// =============================================================================

// cellPosition returns the screen location of a board position. Row 0 is
// drawn at the bottom of the grid.
func cellPosition(index int) (x int, y int) {
	row, col := game.Row(index), game.Column(index)

	x = markerColumn(col)
	y = padTop + 1 + cellHeight*(rows-1-row)

	return x, y
}

func markerColumn(col int) int {
	return padLeft + 2 + cellWidth*col
}

// screenColumn maps a screen x coordinate to a board column.
func screenColumn(x int) (int, bool) {
	if x <= padLeft || x >= padLeft+boardWidth-1 {
		return 0, false
	}

	return (x - padLeft) / cellWidth, true
}
