package main

import (
	"flag"
	"log"
)

// frameRenderer recomputes the frame buffer for a camera position. The CPU
// worker path and the OpenCL tracer both satisfy it.
type frameRenderer func(camera Vec3, fb *frameBuffer) error

func main() {
	flag.Parse()

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("CPU profile: %v", err)
		}
		defer stop()
	}

	camera := Vec3{cameraStartX, cameraStartY, cameraStartZ}
	fb := newFrameBuffer(gridWidth, gridHeight)

	render := frameRenderer(func(camera Vec3, fb *frameBuffer) error {
		renderScene(camera, fb)
		return nil
	})
	if *openCLFlag {
		tracer, err := newOpenCLTracer(gridWidth, gridHeight)
		if err != nil {
			log.Fatalf("OpenCL initialization failed: %v", err)
		}
		log.Printf("OpenCL tracer enabled (device: %s)", tracer.DeviceName())
		defer tracer.Close()
		render = tracer.Render
	}

	if *windowFlag {
		if err := runWindow(camera, fb, render); err != nil {
			log.Fatalf("window session failed: %v", err)
		}
		return
	}
	if err := runTerminal(camera, fb, render); err != nil {
		log.Fatalf("terminal session failed: %v", err)
	}
}
