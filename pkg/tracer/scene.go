package tracer

import "math"

// Scene is an ordered set of primitives with exactly one light. The light
// is always the last primitive, so first-hit shadow queries meet every
// occluder before they meet the light.
type Scene struct {
	primitives []Primitive
	light      int
}

// NewScene creates a scene from the given primitives, lit by light
func NewScene(light Primitive, primitives ...Primitive) *Scene {
	s := &Scene{
		primitives: make([]Primitive, 0, len(primitives)+1),
	}
	s.primitives = append(s.primitives, primitives...)
	s.primitives = append(s.primitives, light)
	s.light = len(s.primitives) - 1
	return s
}

// Add inserts a primitive after the existing ones and before the light.
// It must not be called while a frame is being traced.
func (s *Scene) Add(p Primitive) int {
	light := s.primitives[s.light]
	s.primitives[s.light] = p
	s.primitives = append(s.primitives, light)
	index := s.light
	s.light++
	return index
}

// Len returns the number of primitives including the light
func (s *Scene) Len() int {
	return len(s.primitives)
}

// Primitive returns the primitive at index i
func (s *Scene) Primitive(i int) *Primitive {
	return &s.primitives[i]
}

// Primitives returns the primitives in scene order. The slice must be
// treated as read-only.
func (s *Scene) Primitives() []Primitive {
	return s.primitives
}

// LightIndex returns the index used to recognize hits on the light
func (s *Scene) LightIndex() int {
	return s.light
}

// Light returns the scene light
func (s *Scene) Light() *Primitive {
	return &s.primitives[s.light]
}

// MoveLight sets the light position
func (s *Scene) MoveLight(center Vector3) {
	s.primitives[s.light].Center = center
}

// Light orbit constants used by Animate
const (
	lightOrbitRadius = 16.0
	lightBaseHeight  = 12.0
	lightHeightSwing = 4.0
)

// LightPositionAt returns the animated light position at time t (seconds)
func LightPositionAt(t float64) Vector3 {
	return Vector3{
		X: math.Sin(t*0.7) * lightOrbitRadius,
		Y: math.Cos(t*0.03)*lightHeightSwing + lightBaseHeight,
		Z: math.Cos(t*1.1) * lightOrbitRadius,
	}
}

// Animate advances the scene to time t. It is the only mutation made
// per frame and must complete before any pixel of that frame is traced.
func (s *Scene) Animate(t float64) {
	s.MoveLight(LightPositionAt(t))
}

// DefaultScene builds the demo scene: three colored spheres, a white
// floor, two dark walls and a white light.
func DefaultScene() *Scene {
	return NewScene(
		NewLight(Vector3{}, Color{X: 1, Y: 1, Z: 1}),
		NewSphere(Vector3{X: -4, Y: 4, Z: 2}, 2, Color{X: 0.5, Y: 0.01, Z: 0.01}),
		NewSphere(Vector3{X: 0, Y: 6, Z: 0}, 1, Color{X: 0.01, Y: 0.5, Z: 0.01}),
		NewSphere(Vector3{X: 4, Y: 4, Z: -2}, 2, Color{X: 0.01, Y: 0.01, Z: 0.5}),
		NewBox(Vector3{X: 0, Y: -2, Z: 0}, Vector3{X: 100, Y: 1, Z: 100}, Color{X: 1, Y: 1, Z: 1}),
		NewBox(Vector3{X: -2, Y: 2, Z: -12}, Vector3{X: 4, Y: 2, Z: 4}, Color{X: 0.01, Y: 0.01, Z: 0.01}),
		NewBox(Vector3{X: 2, Y: 2, Z: 12}, Vector3{X: 4, Y: 2, Z: 4}, Color{X: 0.01, Y: 0.01, Z: 0.01}),
	)
}
