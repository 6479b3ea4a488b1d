package main

// Scene and grid configuration constants used throughout the application.
// These values define the character grid, the camera, and the single sphere
// that makes up the scene; they are fixed at build time.
const (
	gridWidth  = 200
	gridHeight = 250

	// targetAspect is the width/height ratio of the sub-rectangle that is
	// actually rendered. Cells outside of it are never touched.
	targetAspect = 16.0 / 9.0

	cameraStartX = 0.0
	cameraStartY = 1.0
	cameraStartZ = -6.0

	sphereCenterX = 0.0
	sphereCenterY = 2.0
	sphereCenterZ = 3.0
	sphereRadius  = 1.0

	// moveStep is the camera displacement applied per recognized keystroke.
	moveStep = 0.2

	windowScale = 3
	windowTitle = "AsciiRayTracer"
)

// shadeRamp orders the output glyphs from emptiest to densest. Shading
// intensity in [0,1] indexes into it.
const shadeRamp = " .:-=+*"

const (
	blankGlyph = byte(' ')
	denseGlyph = byte('*')
)
