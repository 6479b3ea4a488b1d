package main

// cellWriter receives positioned single-glyph writes. The terminal frontend
// implements it over a tcell screen; tests implement it with a recorder.
type cellWriter interface {
	SetCell(x, y int, glyph byte)
}

// presentDiff redraws exactly the cells whose dirty flag is set and returns
// how many writes it emitted. By default every glyph except the densest one
// is collapsed to a blank; fullRamp passes the ramp glyphs through.
func presentDiff(fb *frameBuffer, w cellWriter, fullRamp bool) int {
	writes := 0
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			if !fb.dirty[y*fb.width+x] {
				continue
			}
			glyph := fb.cells[y*fb.width+x]
			if !fullRamp && glyph != denseGlyph {
				glyph = blankGlyph
			}
			w.SetCell(x, y, glyph)
			writes++
		}
	}
	return writes
}
