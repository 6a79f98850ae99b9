package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"rt/internal/logger"
	"rt/pkg/config"
	"rt/pkg/engine"
	"rt/pkg/render"
	"rt/pkg/tracer"
)

func init() {
	// GLFW requires the program to be running on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	mode := flag.String("mode", "", "Display mode override: opengl, ascii or png")
	flag.Parse()

	log := logger.NewLogger("info")

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Warnf("%v", err)
	}
	if *mode != "" {
		cfg.Display.Mode = *mode
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if cfg.Log.File != "" {
		fileLog, err := logger.NewMultiLogger(cfg.Log.Level, cfg.Log.File)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		log = fileLog
		defer log.Close()
	}
	log.SetLevel(cfg.Log.Level)

	driver := newDriver(cfg)
	log.Infof("Starting in %s mode with %d primitives", cfg.Display.Mode, driver.Scene.Len())

	var runErr error
	switch cfg.Display.Mode {
	case config.ModeOpenGL:
		e, err := engine.NewEngine(cfg, log, driver)
		if err != nil {
			log.Fatalf("Failed to initialize engine: %v", err)
		}
		e.Run()
	case config.ModeASCII:
		runErr = runASCII(cfg, driver)
	case config.ModePNG:
		runErr = runPNG(cfg, log, driver)
	}
	if runErr != nil {
		log.Fatalf("Rendering failed: %v", runErr)
	}

	log.Info("Done")
}

func newDriver(cfg *config.Config) *render.Driver {
	pos := cfg.Camera.Position
	camera := tracer.NewCamera(tracer.NewVector3(pos[0], pos[1], pos[2]), cfg.Camera.Pitch, cfg.Camera.Yaw)
	renderer := render.NewRenderer(cfg.Tracer.Workers, tracer.NewIntegrator(tracer.DefaultParams()))
	return render.NewDriver(tracer.DefaultScene(), camera, renderer)
}

// runASCII prints frames to the terminal until the frame count is reached
// or the process is interrupted.
func runASCII(cfg *config.Config, driver *render.Driver) error {
	ac := cfg.Display.ASCII
	ascii, err := render.NewASCIIRenderer(ac.Columns, ac.Rows, ac.CharSet)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Terminal cells are about twice as tall as they are wide
	columns, rows := ascii.Size()
	frame := render.NewFrame(columns, rows*2)

	return render.RunSequence(ctx, driver, frame, ac.Frames, ac.TimeStep, func(_ int, f *render.Frame) error {
		fmt.Print("\033[H\033[2J")
		return ascii.Write(os.Stdout, f)
	})
}

// runPNG writes a numbered PNG sequence
func runPNG(cfg *config.Config, log *logger.Logger, driver *render.Driver) error {
	pc := cfg.Display.PNG
	width, height := cfg.TraceSize(cfg.Window.Width, cfg.Window.Height)
	frame := render.NewFrame(width, height)

	return render.RunSequence(context.Background(), driver, frame, pc.Frames, pc.TimeStep, func(i int, f *render.Frame) error {
		path := render.SequencePath(pc.Output, i, pc.Frames)
		if err := render.WritePNG(path, f); err != nil {
			return err
		}
		log.Infof("Wrote %s (%dx%d, trace %v)", path, f.Width, f.Height, driver.FrameTime())
		return nil
	})
}
