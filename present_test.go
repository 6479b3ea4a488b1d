package main

import "testing"

type cellWrite struct {
	x, y  int
	glyph byte
}

// recordingWriter captures presenter output for inspection.
type recordingWriter struct {
	writes []cellWrite
}

func (w *recordingWriter) SetCell(x, y int, glyph byte) {
	w.writes = append(w.writes, cellWrite{x, y, glyph})
}

func TestPresentDiffWritesOnlyDirtyCells(t *testing.T) {
	fb := newFrameBuffer(gridWidth, gridHeight)
	renderScene(defaultCamera(), fb)

	w := &recordingWriter{}
	n := presentDiff(fb, w, false)
	if n != len(w.writes) {
		t.Fatalf("presentDiff returned %d but emitted %d writes", n, len(w.writes))
	}
	if n != fb.dirtyCount() {
		t.Errorf("presentDiff emitted %d writes, want one per dirty cell (%d)", n, fb.dirtyCount())
	}
	for _, wr := range w.writes {
		if !fb.isDirty(wr.x, wr.y) {
			t.Fatalf("presenter wrote clean cell (%d, %d)", wr.x, wr.y)
		}
	}
}

func TestPresentDiffCollapsesRampByDefault(t *testing.T) {
	fb := newFrameBuffer(gridWidth, gridHeight)
	renderScene(defaultCamera(), fb)

	w := &recordingWriter{}
	presentDiff(fb, w, false)
	for _, wr := range w.writes {
		if wr.glyph != denseGlyph && wr.glyph != blankGlyph {
			t.Fatalf("collapsed output contains %q at (%d, %d)", wr.glyph, wr.x, wr.y)
		}
	}
}

func TestPresentDiffFullRampPassesGlyphsThrough(t *testing.T) {
	fb := newFrameBuffer(gridWidth, gridHeight)
	renderScene(defaultCamera(), fb)

	w := &recordingWriter{}
	presentDiff(fb, w, true)
	for _, wr := range w.writes {
		if wr.glyph != fb.glyphAt(wr.x, wr.y) {
			t.Fatalf("full-ramp output %q differs from buffer %q at (%d, %d)",
				wr.glyph, fb.glyphAt(wr.x, wr.y), wr.x, wr.y)
		}
	}
}

func TestPresentDiffNothingDirtyEmitsNothing(t *testing.T) {
	fb := newFrameBuffer(gridWidth, gridHeight)
	camera := defaultCamera()
	renderScene(camera, fb)
	renderScene(camera, fb)

	w := &recordingWriter{}
	if n := presentDiff(fb, w, false); n != 0 {
		t.Errorf("presentDiff after an identical frame emitted %d writes, want 0", n)
	}
}
