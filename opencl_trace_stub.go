//go:build !opencl

package main

import "errors"

type openCLTracer struct{}

func newOpenCLTracer(width, height int) (*openCLTracer, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (t *openCLTracer) Render(camera Vec3, fb *frameBuffer) error {
	return errors.New("OpenCL tracer unavailable")
}

func (t *openCLTracer) Close() {}

func (t *openCLTracer) DeviceName() string { return "" }
