package engine

import "rt/pkg/render"

// Presenter defines the interface for everything that shows traced frames
type Presenter interface {
	// Present displays the frame
	Present(frame *render.Frame)

	// Resize updates the output size in pixels
	Resize(width, height int)

	// Close releases resources
	Close()
}
