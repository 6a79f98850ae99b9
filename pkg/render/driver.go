package render

import (
	"time"

	"rt/internal/util"
	"rt/pkg/tracer"
)

// timingWindow is the number of frames averaged by FrameTime
const timingWindow = 60

// Driver advances simulation time and traces one frame per step
type Driver struct {
	Scene    *tracer.Scene
	Camera   *tracer.Camera
	Renderer *Renderer

	elapsed float64
	frames  int
	timing  util.RollingAverage
}

// NewDriver creates a driver starting at time zero
func NewDriver(scene *tracer.Scene, camera *tracer.Camera, renderer *Renderer) *Driver {
	return &Driver{
		Scene:    scene,
		Camera:   camera,
		Renderer: renderer,
		timing:   util.RollingAverage{Window: timingWindow},
	}
}

// Step advances time by dt seconds, moves the light, then traces frame.
// The light update is finished before any pixel is traced. It returns how
// long tracing took.
func (d *Driver) Step(frame *Frame, dt float64) time.Duration {
	d.elapsed += dt
	d.Scene.Animate(d.elapsed)

	start := time.Now()
	d.Renderer.Render(frame, d.Scene, d.Camera)
	took := time.Since(start)

	d.frames++
	d.timing.Add(took)
	return took
}

// Elapsed returns the accumulated simulation time in seconds
func (d *Driver) Elapsed() float64 {
	return d.elapsed
}

// Frames returns the number of frames traced so far
func (d *Driver) Frames() int {
	return d.frames
}

// FrameTime returns the average trace time over recent frames
func (d *Driver) FrameTime() time.Duration {
	return d.timing.Average()
}
