package render

import (
	"context"
	"fmt"
)

// Sink receives each traced frame of a sequence
type Sink func(index int, frame *Frame) error

// RunSequence steps driver with a fixed time step and hands every frame to
// sink. A non-positive frames count runs until ctx is done. Cancellation is
// checked between frames and is not reported as an error.
func RunSequence(ctx context.Context, driver *Driver, frame *Frame, frames int, timeStep float64, sink Sink) error {
	for i := 0; frames <= 0 || i < frames; i++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		driver.Step(frame, timeStep)
		if err := sink(i, frame); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}
