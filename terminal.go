package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

const startPrompt = "Press any key to start (w/a/s/d move, y/x rise/sink, q quits)"

// screenWriter adapts a tcell screen to the cellWriter interface used by the
// diff presenter.
type screenWriter struct {
	screen tcell.Screen
	style  tcell.Style
}

func (w *screenWriter) SetCell(x, y int, glyph byte) {
	w.screen.SetContent(x, y, rune(glyph), nil, w.style)
}

// runTerminal owns the terminal session: it clears the screen, shows the
// start prompt, then runs the demand-driven loop of one keystroke, one
// camera update, one render, one diff present. Esc, Ctrl+C and q exit.
func runTerminal(camera Vec3, fb *frameBuffer, render frameRenderer) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Fini()

	style := tcell.StyleDefault
	screen.SetStyle(style)
	screen.Clear()
	drawText(screen, style, 0, 0, startPrompt)
	screen.Show()

	writer := &screenWriter{screen: screen, style: style}
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			if ev.Key() == tcell.KeyRune {
				if ev.Rune() == 'q' {
					return nil
				}
				applyKey(&camera, ev.Rune())
			}
			if err := render(camera, fb); err != nil {
				return err
			}
			presentDiff(fb, writer, *fullRampFlag)
			screen.Show()
		}
	}
}

// drawText writes a single line of text starting at the given cell.
func drawText(screen tcell.Screen, style tcell.Style, x, y int, msg string) {
	for i, r := range msg {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
