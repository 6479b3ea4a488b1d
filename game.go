package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// windowKeys maps Ebiten keys to the camera keystrokes the core understands.
var windowKeys = []struct {
	key ebiten.Key
	ch  rune
}{
	{ebiten.KeyW, 'w'},
	{ebiten.KeyS, 's'},
	{ebiten.KeyA, 'a'},
	{ebiten.KeyD, 'd'},
	{ebiten.KeyY, 'y'},
	{ebiten.KeyX, 'x'},
}

// Game drives the windowed preview. It owns the camera and frame buffer and
// blits the glyph grid as gray pixels, one pixel per cell, using the full
// shading ramp.
type Game struct {
	camera   Vec3
	fb       *frameBuffer
	render   frameRenderer
	pixels   []byte
	rendered bool
}

func newGame(camera Vec3, fb *frameBuffer, render frameRenderer) *Game {
	return &Game{camera: camera, fb: fb, render: render}
}

// Update applies one camera step per keystroke and re-renders only when the
// camera moved, matching the demand-driven terminal loop.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	moved := false
	for _, k := range windowKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			applyKey(&g.camera, k.ch)
			moved = true
		}
	}
	if moved || !g.rendered {
		g.rendered = true
		if err := g.render(g.camera, g.fb); err != nil {
			return err
		}
	}
	return nil
}

// Draw maps every glyph to a gray level by its ramp position and writes the
// grid as pixels. Cells outside the aspect-corrected viewport stay black.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.pixels == nil {
		g.pixels = make([]byte, g.fb.width*g.fb.height*4)
	}
	for i, glyph := range g.fb.cells {
		intensity := byte(rampIndex(glyph) * 255 / (len(shadeRamp) - 1))
		g.pixels[i*4] = intensity
		g.pixels[i*4+1] = intensity
		g.pixels[i*4+2] = intensity
		g.pixels[i*4+3] = 255
	}
	screen.WritePixels(g.pixels)

	if *debugFlag {
		msg := fmt.Sprintf("FPS: %.1f\ncamera: (%.1f, %.1f, %.1f)",
			ebiten.ActualFPS(), g.camera.X, g.camera.Y, g.camera.Z)
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return g.fb.width, g.fb.height }

// runWindow opens the preview window and blocks until it closes.
func runWindow(camera Vec3, fb *frameBuffer, render frameRenderer) error {
	ebiten.SetWindowSize(gridWidth*windowScale, gridHeight*windowScale)
	ebiten.SetWindowTitle(windowTitle)
	if err := ebiten.RunGame(newGame(camera, fb, render)); err != nil {
		return err
	}
	return nil
}
