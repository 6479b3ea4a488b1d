package main

import "testing"

func TestAdjustedViewport(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"default grid is height-limited by aspect", gridWidth, gridHeight, 200, 112},
		{"short grid is width-limited", 200, 50, 88, 50},
		{"exact 16:9 grid keeps both dimensions", 160, 90, 160, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := adjustedViewport(tt.width, tt.height)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("adjustedViewport(%d, %d) = (%d, %d), want (%d, %d)",
					tt.width, tt.height, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFrameBufferStoreTracksChanges(t *testing.T) {
	fb := newFrameBuffer(4, 3)

	fb.store(1, 2, '*')
	if !fb.isDirty(1, 2) || fb.glyphAt(1, 2) != '*' {
		t.Fatal("store of a new glyph should set the cell and its dirty flag")
	}

	fb.clearDirty()
	fb.store(1, 2, '*')
	if fb.isDirty(1, 2) {
		t.Error("storing an identical glyph must not mark the cell dirty")
	}

	fb.store(1, 2, '.')
	if !fb.isDirty(1, 2) || fb.glyphAt(1, 2) != '.' {
		t.Error("storing a different glyph should overwrite and mark dirty")
	}
	if fb.dirtyCount() != 1 {
		t.Errorf("dirtyCount = %d, want 1", fb.dirtyCount())
	}
}
