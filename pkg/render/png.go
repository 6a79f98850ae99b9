package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
)

// Image converts frame into an 8-bit image. Colors are clamped to [0,1]
// without tone mapping, matching what the interactive view shows.
func (f *Frame) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))

	for y := 0; y < f.Height; y++ {
		row := y * img.Stride
		for x := 0; x < f.Width; x++ {
			src := (y*f.Width + x) * Channels
			dst := row + x*4
			img.Pix[dst+0] = toByte(f.Pixels[src+0])
			img.Pix[dst+1] = toByte(f.Pixels[src+1])
			img.Pix[dst+2] = toByte(f.Pixels[src+2])
			img.Pix[dst+3] = toByte(f.Pixels[src+3])
		}
	}

	return img
}

// EncodePNG writes frame to w as a PNG image
func EncodePNG(w io.Writer, frame *Frame) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(w, frame.Image()); err != nil {
		return fmt.Errorf("failed to encode png: %v", err)
	}
	return nil
}

// WritePNG writes frame to path, creating parent directories as needed
func WritePNG(path string, frame *Frame) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %v", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", path, err)
	}

	if err := EncodePNG(f, frame); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SequencePath returns the numbered file name for frame index i of a
// sequence of count frames, e.g. out/frame_007.png.
func SequencePath(prefix string, i, count int) string {
	width := 1
	if count > 1 {
		width = int(math.Log10(float64(count-1))) + 1
	}
	return fmt.Sprintf("%s_%0*d.png", prefix, width, i)
}

func toByte(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(float64(v) * 255))
}
