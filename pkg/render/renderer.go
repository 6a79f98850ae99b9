package render

import (
	"sync"

	"rt/internal/util"
	"rt/pkg/tracer"
)

// Renderer traces whole frames in parallel
type Renderer struct {
	workers    int
	maxDepth   int
	integrator *tracer.Integrator
}

// NewRenderer creates a renderer. A non-positive workers count uses one
// goroutine per CPU.
func NewRenderer(workers int, integrator *tracer.Integrator) *Renderer {
	return &Renderer{
		workers:    util.Workers(workers),
		maxDepth:   tracer.MaxDepth,
		integrator: integrator,
	}
}

// Workers returns the number of goroutines used per frame
func (r *Renderer) Workers() int {
	return r.workers
}

// Render traces every pixel of frame. Rows are split into disjoint bands,
// one goroutine per band, and Render returns once all bands are done.
// The scene and camera must not change until Render returns.
func (r *Renderer) Render(frame *Frame, scene *tracer.Scene, camera *tracer.Camera) {
	if frame.Width == 0 || frame.Height == 0 {
		return
	}

	invView := camera.InverseView()
	position := camera.Position

	var wg sync.WaitGroup
	for _, band := range util.Bands(frame.Height, r.workers) {
		wg.Add(1)

		go func(startRow, endRow int) {
			defer wg.Done()

			for y := startRow; y < endRow; y++ {
				for x := 0; x < frame.Width; x++ {
					ray := tracer.GenerateRay(x, y, frame.Width, frame.Height, invView, position)
					frame.Set(x, y, r.integrator.Shade(ray, scene, r.maxDepth))
				}
			}
		}(band[0], band[1])
	}

	wg.Wait()
}
