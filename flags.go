package main

import "flag"

// Command-line flags that control optional rendering and runtime behavior.
// The scene itself is fixed; flags only select frontends and diagnostics.
var (
	// windowFlag opens an Ebiten window instead of rendering to the terminal.
	windowFlag = flag.Bool("window", false, "render into a graphical window instead of the terminal")

	// openCLFlag traces frames on an OpenCL device (requires -tags opencl).
	openCLFlag = flag.Bool("opencl", false, "trace frames with OpenCL instead of CPU workers")

	// fullRampFlag presents all seven shading glyphs instead of collapsing
	// everything but the densest glyph to a blank.
	fullRampFlag = flag.Bool("full-ramp", false, "display the full shading ramp in the terminal")

	// debugFlag enables the FPS overlay in window mode.
	debugFlag = flag.Bool("debug", false, "show FPS overlay in window mode")

	// cpuProfileFlag writes a pprof CPU profile for the session.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to the given path")
)
