package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// watchedKeys are the keys polled every frame
var watchedKeys = []glfw.Key{
	glfw.KeyW, glfw.KeyA, glfw.KeyS, glfw.KeyD,
	glfw.KeySpace, glfw.KeyLeftControl,
	glfw.KeyEscape,
}

// InputHandler tracks keyboard and cursor state between frames
type InputHandler struct {
	window           *glfw.Window
	currentKeys      map[glfw.Key]bool
	previousKeys     map[glfw.Key]bool
	currentMousePos  [2]float64
	previousMousePos [2]float64
	mouseDelta       [2]float64
}

// NewInputHandler creates an input handler for window
func NewInputHandler(window *glfw.Window) *InputHandler {
	x, y := window.GetCursorPos()
	handler := newInputHandler(x, y)
	handler.window = window
	return handler
}

func newInputHandler(x, y float64) *InputHandler {
	return &InputHandler{
		currentKeys:      make(map[glfw.Key]bool, len(watchedKeys)),
		previousKeys:     make(map[glfw.Key]bool, len(watchedKeys)),
		currentMousePos:  [2]float64{x, y},
		previousMousePos: [2]float64{x, y},
	}
}

// Update polls the window for the current key and cursor state
func (ih *InputHandler) Update() {
	x, y := ih.window.GetCursorPos()
	ih.advance(func(key glfw.Key) bool {
		return ih.window.GetKey(key) == glfw.Press
	}, x, y)
}

// advance moves the current state to previous and records a new sample
func (ih *InputHandler) advance(isDown func(glfw.Key) bool, x, y float64) {
	for k, v := range ih.currentKeys {
		ih.previousKeys[k] = v
	}

	ih.previousMousePos = ih.currentMousePos
	ih.currentMousePos = [2]float64{x, y}

	ih.mouseDelta[0] = ih.currentMousePos[0] - ih.previousMousePos[0]
	ih.mouseDelta[1] = ih.currentMousePos[1] - ih.previousMousePos[1]

	for _, key := range watchedKeys {
		ih.currentKeys[key] = isDown(key)
	}
}

// IsKeyDown reports whether key is held
func (ih *InputHandler) IsKeyDown(key glfw.Key) bool {
	return ih.currentKeys[key]
}

// IsKeyPressed reports whether key went down this frame
func (ih *InputHandler) IsKeyPressed(key glfw.Key) bool {
	return ih.currentKeys[key] && !ih.previousKeys[key]
}

// GetMouseDelta returns how far the cursor moved since the last frame
func (ih *InputHandler) GetMouseDelta() [2]float64 {
	return ih.mouseDelta
}

// Movement returns the held movement directions as forward, right and up
// axes, each in [-1, 1].
func (ih *InputHandler) Movement() (forward, right, up float64) {
	return axis(ih.IsKeyDown(glfw.KeyW), ih.IsKeyDown(glfw.KeyS)),
		axis(ih.IsKeyDown(glfw.KeyD), ih.IsKeyDown(glfw.KeyA)),
		axis(ih.IsKeyDown(glfw.KeySpace), ih.IsKeyDown(glfw.KeyLeftControl))
}

// axis combines two opposing keys into -1, 0 or 1
func axis(positive, negative bool) float64 {
	v := 0.0
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}
