package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Display modes
const (
	ModeOpenGL = "opengl"
	ModeASCII  = "ascii"
	ModePNG    = "png"
)

// Config represents the main configuration
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Tracer  TracerConfig  `yaml:"tracer"`
	Camera  CameraConfig  `yaml:"camera"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// WindowConfig contains window-related configuration
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	VSync     bool   `yaml:"vsync"`
	FrameRate int    `yaml:"framerate"` // 0 disables the frame cap
}

// TracerConfig contains frame tracing configuration
type TracerConfig struct {
	Workers int `yaml:"workers"` // 0 means one per CPU
	Scale   int `yaml:"scale"`   // window size divisor for the traced frame
}

// CameraConfig contains the initial camera pose and controls
type CameraConfig struct {
	Position         []float64 `yaml:"position,flow"` // x, y, z
	Pitch            float64   `yaml:"pitch"`
	Yaw              float64   `yaml:"yaw"`
	MoveSpeed        float64   `yaml:"move_speed"`        // units per second
	MouseSensitivity float64   `yaml:"mouse_sensitivity"` // radians per cursor unit
}

// DisplayConfig selects where frames go
type DisplayConfig struct {
	Mode  string      `yaml:"mode"` // opengl, ascii, png
	ASCII ASCIIConfig `yaml:"ascii"`
	PNG   PNGConfig   `yaml:"png"`
}

// ASCIIConfig contains terminal output configuration
type ASCIIConfig struct {
	Columns  int     `yaml:"columns"`
	Rows     int     `yaml:"rows"`
	CharSet  string  `yaml:"charset"` // characters from dark to light
	Frames   int     `yaml:"frames"`  // 0 runs until interrupted
	TimeStep float64 `yaml:"time_step"`
}

// PNGConfig contains snapshot export configuration
type PNGConfig struct {
	Output   string  `yaml:"output"` // file prefix, frames are numbered
	Frames   int     `yaml:"frames"`
	TimeStep float64 `yaml:"time_step"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // optional, logs to console and file
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     768,
			Height:    480,
			Title:     "RT",
			VSync:     true,
			FrameRate: 60,
		},
		Tracer: TracerConfig{
			Workers: 0,
			Scale:   1,
		},
		Camera: CameraConfig{
			Position:         []float64{0, 6, 20},
			Pitch:            -0.15,
			Yaw:              0,
			MoveSpeed:        4,
			MouseSensitivity: 0.001,
		},
		Display: DisplayConfig{
			Mode: ModeOpenGL,
			ASCII: ASCIIConfig{
				Columns:  120,
				Rows:     40,
				CharSet:  " .'`,:;\"-+=*#%@$",
				Frames:   0,
				TimeStep: 1.0 / 30.0,
			},
			PNG: PNGConfig{
				Output:   "out/frame",
				Frames:   1,
				TimeStep: 1.0 / 30.0,
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks the configuration for values the renderer cannot use
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FrameRate < 0 {
		return fmt.Errorf("invalid frame rate %d", c.Window.FrameRate)
	}
	if c.Tracer.Workers < 0 {
		return fmt.Errorf("invalid worker count %d", c.Tracer.Workers)
	}
	if c.Tracer.Scale < 1 {
		return fmt.Errorf("invalid tracer scale %d, must be at least 1", c.Tracer.Scale)
	}
	if len(c.Camera.Position) != 3 {
		return fmt.Errorf("camera position needs 3 components, got %d", len(c.Camera.Position))
	}
	if c.Camera.MoveSpeed < 0 {
		return fmt.Errorf("invalid move speed %f", c.Camera.MoveSpeed)
	}

	switch c.Display.Mode {
	case ModeOpenGL:
	case ModeASCII:
		if c.Display.ASCII.Columns <= 0 || c.Display.ASCII.Rows <= 0 {
			return fmt.Errorf("invalid ascii size %dx%d", c.Display.ASCII.Columns, c.Display.ASCII.Rows)
		}
		if c.Display.ASCII.Frames < 0 {
			return fmt.Errorf("invalid ascii frame count %d", c.Display.ASCII.Frames)
		}
	case ModePNG:
		if c.Display.PNG.Output == "" {
			return fmt.Errorf("png output prefix is empty")
		}
		if c.Display.PNG.Frames < 1 {
			return fmt.Errorf("invalid png frame count %d", c.Display.PNG.Frames)
		}
	default:
		return fmt.Errorf("unknown display mode %q", c.Display.Mode)
	}

	return nil
}

// TraceSize returns the traced frame size for a window of the given size
func (c *Config) TraceSize(width, height int) (int, int) {
	scale := c.Tracer.Scale
	if scale < 1 {
		scale = 1
	}
	return max(width/scale, 1), max(height/scale, 1)
}

// LoadConfig loads the configuration from a file
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %v", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("error parsing config: %v", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %v", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}

	return nil
}
