package engine

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"rt/internal/logger"
	"rt/pkg/config"
	"rt/pkg/render"
	"rt/pkg/tracer"
)

// statsInterval is how often frame timings are logged
const statsInterval = 2.0

// Engine runs the interactive window: it polls input, steps the driver
// and presents each traced frame.
type Engine struct {
	window    *glfw.Window
	config    *config.Config
	logger    *logger.Logger
	driver    *render.Driver
	frame     *render.Frame
	presenter Presenter
	input     *InputHandler
	isRunning bool
	frameRate int

	lastUpdate float64
	lastStats  float64
}

// NewEngine creates the window and GL resources. It must be called from
// the main OS thread.
func NewEngine(cfg *config.Config, log *logger.Logger, driver *render.Driver) (*Engine, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %v", err)
	}

	window.MakeContextCurrent()
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %v", err)
	}
	log.Infof("OpenGL %s, %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		window.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	presenter, err := NewGLPresenter(fbWidth, fbHeight)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize presenter: %v", err)
	}

	traceWidth, traceHeight := cfg.TraceSize(cfg.Window.Width, cfg.Window.Height)

	engine := &Engine{
		window:    window,
		config:    cfg,
		logger:    log,
		driver:    driver,
		frame:     render.NewFrame(traceWidth, traceHeight),
		presenter: presenter,
		input:     NewInputHandler(window),
		frameRate: cfg.Window.FrameRate,
	}

	window.SetFramebufferSizeCallback(engine.resizeCallback)

	log.Infof("Window %dx%d, tracing %dx%d on %d workers",
		cfg.Window.Width, cfg.Window.Height, traceWidth, traceHeight, driver.Renderer.Workers())

	return engine, nil
}

// Run starts the main loop and returns when the window is closed
func (e *Engine) Run() {
	e.isRunning = true
	e.lastUpdate = glfw.GetTime()
	e.lastStats = e.lastUpdate

	for e.isRunning && !e.window.ShouldClose() {
		frameStart := time.Now()
		now := glfw.GetTime()
		deltaTime := now - e.lastUpdate
		e.lastUpdate = now

		e.processInput(deltaTime)

		e.driver.Step(e.frame, deltaTime)
		e.presenter.Present(e.frame)

		e.window.SwapBuffers()
		glfw.PollEvents()

		if now-e.lastStats >= statsInterval {
			e.lastStats = now
			e.logger.Debugf("frame %d: trace %v avg, t=%.2fs", e.driver.Frames(), e.driver.FrameTime(), e.driver.Elapsed())
		}

		// Cap the frame rate
		if e.frameRate > 0 {
			frameTime := time.Since(frameStart)
			targetFrameTime := time.Second / time.Duration(e.frameRate)
			if frameTime < targetFrameTime {
				time.Sleep(targetFrameTime - frameTime)
			}
		}
	}

	e.cleanup()
}

// processInput moves and turns the camera from the keyboard and cursor
func (e *Engine) processInput(deltaTime float64) {
	e.input.Update()

	if !steerCamera(e.driver.Camera, e.input, e.config.Camera, deltaTime) {
		e.isRunning = false
	}
}

// steerCamera applies one frame of input to camera. It returns false once
// Escape is pressed.
func steerCamera(camera *tracer.Camera, input *InputHandler, cfg config.CameraConfig, deltaTime float64) bool {
	if input.IsKeyPressed(glfw.KeyEscape) {
		return false
	}

	forward, right, up := input.Movement()
	step := cfg.MoveSpeed * deltaTime
	if forward != 0 || right != 0 || up != 0 {
		camera.Move(forward*step, right*step, up*step)
	}

	// Cursor right lowers yaw, cursor down lowers pitch
	d := input.GetMouseDelta()
	if d[0] != 0 || d[1] != 0 {
		camera.Rotate(-d[0]*cfg.MouseSensitivity, -d[1]*cfg.MouseSensitivity)
	}
	return true
}

// resizeCallback follows framebuffer size changes
func (e *Engine) resizeCallback(_ *glfw.Window, width int, height int) {
	if width == 0 || height == 0 {
		// Minimized
		return
	}

	winWidth, winHeight := e.window.GetSize()
	traceWidth, traceHeight := e.config.TraceSize(winWidth, winHeight)

	e.logger.Infof("Window resized to %dx%d, tracing %dx%d", width, height, traceWidth, traceHeight)

	e.presenter.Resize(width, height)
	e.frame.Resize(traceWidth, traceHeight)
}

// cleanup performs necessary cleanup before exiting
func (e *Engine) cleanup() {
	e.logger.Infof("Shutting down engine after %d frames", e.driver.Frames())
	e.presenter.Close()
	e.window.Destroy()
	glfw.Terminate()
}
