package render

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"rt/internal/util"
)

// DefaultCharset orders characters from dark to light
const DefaultCharset = " .'`,:;\"-+=*#%@$"

// asciiGamma brightens mid tones so dim surfaces stay readable
const asciiGamma = 1.2

// ASCIIRenderer converts frames into character grids for terminal output
type ASCIIRenderer struct {
	columns  int
	rows     int
	gradient []rune
}

// NewASCIIRenderer creates a converter producing columns×rows characters.
// An empty charset selects DefaultCharset.
func NewASCIIRenderer(columns, rows int, charset string) (*ASCIIRenderer, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("invalid ascii size %dx%d", columns, rows)
	}
	if charset == "" {
		charset = DefaultCharset
	}

	return &ASCIIRenderer{
		columns:  columns,
		rows:     rows,
		gradient: []rune(charset),
	}, nil
}

// Size returns the grid dimensions
func (r *ASCIIRenderer) Size() (columns, rows int) {
	return r.columns, r.rows
}

// Convert samples frame onto the character grid, one string per row
func (r *ASCIIRenderer) Convert(frame *Frame) []string {
	lines := make([]string, r.rows)
	line := make([]rune, r.columns)

	if frame == nil || frame.Width == 0 || frame.Height == 0 {
		for x := range line {
			line[x] = r.gradient[0]
		}
		for y := range lines {
			lines[y] = string(line)
		}
		return lines
	}

	scaleX := float64(frame.Width) / float64(r.columns)
	scaleY := float64(frame.Height) / float64(r.rows)

	for y := 0; y < r.rows; y++ {
		for x := 0; x < r.columns; x++ {
			intensity := sampleLuminance(frame, float64(x)*scaleX, float64(y)*scaleY)
			line[x] = r.glyph(toneMap(intensity))
		}
		lines[y] = string(line)
	}

	return lines
}

// Write converts frame and writes it to w, one line per row
func (r *ASCIIRenderer) Write(w io.Writer, frame *Frame) error {
	bw := bufio.NewWriter(w)
	for _, line := range r.Convert(frame) {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("failed to write ascii frame: %v", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write ascii frame: %v", err)
		}
	}
	return bw.Flush()
}

// glyph maps an intensity in [0,1] to a character
func (r *ASCIIRenderer) glyph(intensity float64) rune {
	last := len(r.gradient) - 1
	i := int(math.Round(intensity * float64(last)))
	if i < 0 {
		i = 0
	}
	if i > last {
		i = last
	}
	return r.gradient[i]
}

// sampleLuminance bilinearly interpolates frame luminance at (fx, fy)
func sampleLuminance(frame *Frame, fx, fy float64) float64 {
	x0, y0 := int(fx), int(fy)
	x0 = min(x0, frame.Width-1)
	y0 = min(y0, frame.Height-1)
	x1, y1 := min(x0+1, frame.Width-1), min(y0+1, frame.Height-1)

	wx := fx - float64(x0)
	wy := fy - float64(y0)

	l00 := frame.Luminance(x0, y0)
	l10 := frame.Luminance(x1, y0)
	l01 := frame.Luminance(x0, y1)
	l11 := frame.Luminance(x1, y1)

	top := util.Lerp(l00, l10, wx)
	bottom := util.Lerp(l01, l11, wx)
	return util.Lerp(top, bottom, wy)
}

// toneMap clamps intensity to [0,1] and applies the display gamma
func toneMap(intensity float64) float64 {
	if !(intensity > 0) {
		return 0
	}
	return math.Pow(util.Clamp(intensity, 0, 1), 1.0/asciiGamma)
}
