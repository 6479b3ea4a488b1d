package main

// frameBuffer stores the last-displayed glyph for every grid cell in
// row-major order, together with a parallel dirty flag per cell. The buffer
// lives for the whole process; the renderer mutates it and the presenter
// reads it.
type frameBuffer struct {
	width, height int
	cells         []byte
	dirty         []bool
}

// newFrameBuffer allocates a clean buffer. Cells start zeroed, which no
// render pass ever produces, so the first pass marks the whole viewport
// dirty and fully paints the display.
func newFrameBuffer(width, height int) *frameBuffer {
	return &frameBuffer{
		width:  width,
		height: height,
		cells:  make([]byte, width*height),
		dirty:  make([]bool, width*height),
	}
}

// store writes a glyph into a cell, setting the dirty flag only when the
// value actually changed. Identical values leave both untouched.
func (f *frameBuffer) store(x, y int, glyph byte) {
	i := y*f.width + x
	if f.cells[i] != glyph {
		f.cells[i] = glyph
		f.dirty[i] = true
	}
}

// glyphAt returns the stored glyph for a cell.
func (f *frameBuffer) glyphAt(x, y int) byte {
	return f.cells[y*f.width+x]
}

// isDirty reports whether a cell changed during the last render pass.
func (f *frameBuffer) isDirty(x, y int) bool {
	return f.dirty[y*f.width+x]
}

// clearDirty resets every dirty flag; called at the start of a render pass.
func (f *frameBuffer) clearDirty() {
	for i := range f.dirty {
		f.dirty[i] = false
	}
}

// dirtyCount returns how many cells changed during the last render pass.
func (f *frameBuffer) dirtyCount() int {
	n := 0
	for _, d := range f.dirty {
		if d {
			n++
		}
	}
	return n
}

// adjustedViewport fits the target aspect ratio inside the requested grid
// and returns the dimensions of the sub-rectangle that gets rendered.
func adjustedViewport(width, height int) (int, int) {
	adjWidth := width
	adjHeight := int(float64(width) / targetAspect)
	if adjHeight > height {
		adjHeight = height
		adjWidth = int(float64(height) * targetAspect)
	}
	return adjWidth, adjHeight
}
