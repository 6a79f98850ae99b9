package render

import "rt/pkg/tracer"

// Channels is the number of floats stored per pixel (RGBA)
const Channels = 4

// Frame holds one traced image. Pixels are linear, unclamped RGBA floats
// stored row by row with row 0 at the top; alpha is always 1.
type Frame struct {
	Width  int
	Height int
	Pixels []float32
}

// NewFrame allocates a frame of the given size
func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.Resize(width, height)
	return f
}

// Resize changes the frame dimensions, reusing the pixel buffer when it
// is large enough. Pixel contents are undefined afterwards.
func (f *Frame) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	size := width * height * Channels
	if cap(f.Pixels) >= size {
		f.Pixels = f.Pixels[:size]
	} else {
		f.Pixels = make([]float32, size)
	}
	f.Width = width
	f.Height = height
}

// Set stores the color of pixel (x, y)
func (f *Frame) Set(x, y int, c tracer.Color) {
	i := (y*f.Width + x) * Channels
	f.Pixels[i] = float32(c.X)
	f.Pixels[i+1] = float32(c.Y)
	f.Pixels[i+2] = float32(c.Z)
	f.Pixels[i+3] = 1
}

// At returns the color of pixel (x, y)
func (f *Frame) At(x, y int) tracer.Color {
	i := (y*f.Width + x) * Channels
	return tracer.Color{
		X: float64(f.Pixels[i]),
		Y: float64(f.Pixels[i+1]),
		Z: float64(f.Pixels[i+2]),
	}
}

// Luminance returns the Rec. 709 luminance of pixel (x, y)
func (f *Frame) Luminance(x, y int) float64 {
	c := f.At(x, y)
	return 0.2126*c.X + 0.7152*c.Y + 0.0722*c.Z
}
