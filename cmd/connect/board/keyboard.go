package board

import (
	"fmt"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// pollEvents starts a goroutine to handle terminal events.
func (b *Board) pollEvents() chan struct{} {
	quit := make(chan struct{})

	go func() {
		defer func() {
			if r := recover(); r != nil {
				b.screen.Clear()
				b.log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("event loop")
				fmt.Println(r)
				debug.PrintStack()
				close(quit)
			}
		}()

		for {
			event := b.screen.PollEvent()

			// The screen was finalized.
			if event == nil {
				close(quit)
				return
			}

			if !b.handleEvent(event) {
				close(quit)
				return
			}
		}
	}()

	return quit
}

// handleEvent processes a single terminal event. It returns false when the
// user asked to quit.
func (b *Board) handleEvent(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventResize:
		b.drawInit()
		b.screen.Sync()

	case *tcell.EventMouse:
		b.handleMouse(ev)

	case *tcell.EventKey:
		return b.handleKey(ev)
	}

	return true
}

func (b *Board) handleKey(ev *tcell.EventKey) bool {
	keyType := ev.Key()

	// Allow the user to quit the game at any time.
	if keyType == tcell.KeyRune && ev.Rune() == 'q' {
		return false
	}

	if keyType == tcell.KeyCtrlC {
		return false
	}

	if keyType == tcell.KeyRune {
		switch r := ev.Rune(); {
		case r == 'n':
			b.newGame()
			return true

		case r == 's':
			path, err := b.snapshot()
			if err != nil {
				b.log.Error().Err(err).Msg("snapshot")
				b.screen.Beep()
				return true
			}
			b.log.Info().Str("path", path).Msg("snapshot saved")
			return true

		case r == 'm':
			b.toggleSound()
			return true
		}
	}

	// Any other key dismisses the winner dialog and leaves the final
	// board on display.
	if b.modalUp {
		b.closeModal()
		return true
	}

	// Input is frozen once the game is over.
	if b.outcome.Over() {
		b.screen.Beep()
		return true
	}

	switch keyType {
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == ' ':
			b.play(b.inputCol)

		case r >= '1' && r <= '7':
			b.selectColumn(int(r - '1'))
			b.play(b.inputCol)
		}

	case tcell.KeyLeft:
		b.movePlayerPiece(dirLeft)

	case tcell.KeyRight:
		b.movePlayerPiece(dirRight)

	case tcell.KeyEnter, tcell.KeyDown:
		b.play(b.inputCol)
	}

	return true
}

// handleMouse moves the input marker with the pointer and drops a piece on
// a primary button press.
func (b *Board) handleMouse(ev *tcell.EventMouse) {
	x, _ := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	defer func() {
		b.mouseDown = pressed
	}()

	if b.modalUp {
		if pressed && !b.mouseDown {
			b.closeModal()
		}
		return
	}

	col, ok := screenColumn(x)
	if !ok || b.outcome.Over() {
		return
	}

	b.selectColumn(col)

	if pressed && !b.mouseDown {
		b.play(col)
	}
}
