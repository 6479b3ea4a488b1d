//go:build opencl

package main

import (
	"errors"
	"fmt"

	"github.com/jgillich/go-opencl/cl"
)

// openCLTracer renders frames on an OpenCL device. One work item traces one
// viewport cell and writes its glyph; the host reads the grid back and runs
// the same change-tracking pass as the CPU path.
type openCLTracer struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	cameraBuf  *cl.MemObject
	glyphBuf   *cl.MemObject
	cameraHost []float32
	scratch    []float32
	adjWidth   int
	adjHeight  int
	deviceName string
}

const traceKernelSource = `
int is_checker(float px, float pz)
{
    int cx = (int)floor(px);
    int cz = (int)floor(pz);
    return (cx + cz) % 2 == 0;
}

char get_shade(float t, int reflective)
{
    const char ramp[7] = {' ', '.', ':', '-', '=', '+', '*'};
    if (t < 0.0f) t = 0.0f;
    if (t > 1.0f) t = 1.0f;
    int index = (int)(t * 6.0f);
    if (index > 6) index = 6;
    if (reflective) {
        return ramp[index];
    }
    return is_checker(t, 0.0f) ? '*' : ' ';
}

__kernel void trace_scene(
    const int adj_width,
    const int adj_height,
    const float aspect,
    const float center_x,
    const float center_y,
    const float center_z,
    const float radius,
    __global const float* camera,
    __global float* glyphs)
{
    int idx = get_global_id(0);
    if (idx >= adj_width * adj_height) {
        return;
    }
    int x = idx % adj_width;
    int y = idx / adj_width;

    float u = ((float)x - adj_width / 2.0f) / adj_width * aspect;
    float v = (adj_height / 2.0f - (float)y) / adj_height;

    float3 origin = (float3)(camera[0], camera[1], camera[2]);
    float3 dir = normalize((float3)(u, v, 1.0f));
    float3 center = (float3)(center_x, center_y, center_z);

    float3 oc = origin - center;
    float a = dot(dir, dir);
    float b = 2.0f * dot(oc, dir);
    float c = dot(oc, oc) - radius * radius;
    float disc = b * b - 4.0f * a * c;

    if (disc >= 0.0f) {
        float t = (-b - sqrt(disc)) / (2.0f * a);
        if (t > 0.0f) {
            float3 hit = origin + dir * t;
            float3 n = normalize(hit - center);
            float3 refl = normalize(dir - n * (2.0f * dot(dir, n)));
            float floor_dist = -hit.y / refl.y;
            if (floor_dist > 0.0f) {
                float3 fp = hit + refl * floor_dist;
                glyphs[idx] = (float)get_shade(1.0f, is_checker(fp.x, fp.z));
            } else {
                glyphs[idx] = (float)get_shade(t, 1);
            }
            return;
        }
    }

    if (dir.y < 0.0f) {
        float floor_dist = -origin.y / dir.y;
        float3 fp = origin + dir * floor_dist;
        glyphs[idx] = (float)get_shade(1.0f, is_checker(fp.x, fp.z));
        return;
    }

    glyphs[idx] = (float)' ';
}`

func newOpenCLTracer(width, height int) (*openCLTracer, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		return nil, fmt.Errorf("querying OpenCL platforms: %w", err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available")
	}
	var device *cl.Device
	for _, p := range platforms {
		devices, derr := p.GetDevices(cl.DeviceTypeGPU)
		if derr != nil && derr != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			device = devices[0]
			break
		}
	}
	if device == nil {
		for _, p := range platforms {
			devices, derr := p.GetDevices(cl.DeviceTypeCPU)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				device = devices[0]
				break
			}
		}
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	context, err := cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	queue, err := context.CreateCommandQueue(device, 0)
	if err != nil {
		context.Release()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	program, err := context.CreateProgramWithSource([]string{traceKernelSource})
	if err != nil {
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		program.Release()
		queue.Release()
		context.Release()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	kernel, err := program.CreateKernel("trace_scene")
	if err != nil {
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}

	adjWidth, adjHeight := adjustedViewport(width, height)
	cameraBuf, err := context.CreateEmptyBuffer(cl.MemReadOnly, 3*4)
	if err != nil {
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("allocating camera buffer: %w", err)
	}
	glyphBuf, err := context.CreateEmptyBuffer(cl.MemWriteOnly, adjWidth*adjHeight*4)
	if err != nil {
		cameraBuf.Release()
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("allocating glyph buffer: %w", err)
	}

	tracer := &openCLTracer{
		context:    context,
		queue:      queue,
		program:    program,
		kernel:     kernel,
		cameraBuf:  cameraBuf,
		glyphBuf:   glyphBuf,
		cameraHost: make([]float32, 3),
		scratch:    make([]float32, adjWidth*adjHeight),
		adjWidth:   adjWidth,
		adjHeight:  adjHeight,
		deviceName: device.Name(),
	}

	aspect := float32(width) / float32(height)
	if err := tracer.kernel.SetArgs(
		int32(adjWidth),
		int32(adjHeight),
		aspect,
		float32(sphereCenterX),
		float32(sphereCenterY),
		float32(sphereCenterZ),
		float32(sphereRadius),
		tracer.cameraBuf,
		tracer.glyphBuf,
	); err != nil {
		tracer.Close()
		return nil, fmt.Errorf("setting kernel arguments: %w", err)
	}

	return tracer, nil
}

// Render traces the viewport on the device and merges the glyphs into the
// frame buffer with the usual dirty-flag bookkeeping.
func (t *openCLTracer) Render(camera Vec3, fb *frameBuffer) error {
	fb.clearDirty()
	t.cameraHost[0] = float32(camera.X)
	t.cameraHost[1] = float32(camera.Y)
	t.cameraHost[2] = float32(camera.Z)
	if _, err := t.queue.EnqueueWriteBufferFloat32(t.cameraBuf, false, 0, t.cameraHost, nil); err != nil {
		return fmt.Errorf("writing camera buffer: %w", err)
	}
	global := []int{t.adjWidth * t.adjHeight}
	if _, err := t.queue.EnqueueNDRangeKernel(t.kernel, nil, global, nil, nil); err != nil {
		return fmt.Errorf("enqueueing kernel: %w", err)
	}
	if _, err := t.queue.EnqueueReadBufferFloat32(t.glyphBuf, true, 0, t.scratch, nil); err != nil {
		return fmt.Errorf("reading glyph buffer: %w", err)
	}
	for y := 0; y < t.adjHeight; y++ {
		for x := 0; x < t.adjWidth; x++ {
			fb.store(x, y, byte(t.scratch[y*t.adjWidth+x]))
		}
	}
	return nil
}

func (t *openCLTracer) Close() {
	if t.glyphBuf != nil {
		t.glyphBuf.Release()
		t.glyphBuf = nil
	}
	if t.cameraBuf != nil {
		t.cameraBuf.Release()
		t.cameraBuf = nil
	}
	if t.kernel != nil {
		t.kernel.Release()
		t.kernel = nil
	}
	if t.program != nil {
		t.program.Release()
		t.program = nil
	}
	if t.queue != nil {
		t.queue.Release()
		t.queue = nil
	}
	if t.context != nil {
		t.context.Release()
		t.context = nil
	}
}

func (t *openCLTracer) DeviceName() string {
	return t.deviceName
}
