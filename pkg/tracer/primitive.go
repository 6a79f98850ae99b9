package tracer

import "fmt"

// Kind selects the shape of a Primitive
type Kind uint8

const (
	KindSphere Kind = iota
	KindBox
)

// String returns the name of the shape
func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindBox:
		return "box"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// LightRadius is the radius of the sphere that stands in for the point
// light during intersection tests.
const LightRadius = 0.1

// Primitive is a sphere or an axis-aligned box. Only the fields for its
// Kind are used: Radius for spheres, HalfExtents for boxes.
type Primitive struct {
	Kind        Kind
	Center      Vector3
	Radius      float64
	HalfExtents Vector3
	Color       Color // albedo, or emission for the light
}

// NewSphere creates a sphere primitive
func NewSphere(center Vector3, radius float64, color Color) Primitive {
	return Primitive{
		Kind:   KindSphere,
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// NewBox creates an axis-aligned box from its center and half extents
func NewBox(center, halfExtents Vector3, color Color) Primitive {
	return Primitive{
		Kind:        KindBox,
		Center:      center,
		HalfExtents: halfExtents,
		Color:       color,
	}
}

// NewLight creates the small emissive sphere used as the scene light
func NewLight(center Vector3, color Color) Primitive {
	return NewSphere(center, LightRadius, color)
}
