package tracer

// Ray represents a ray in 3D space
type Ray struct {
	Origin    Vector3
	Direction Vector3 // unit length when passed to intersection routines

	// Intensity is the energy left for this path segment, in [0,1]
	Intensity float64

	// Color is scratch space used by the shadow pass
	Color Color
}

// NewRay creates a full-intensity ray. The direction is normalized.
func NewRay(origin, direction Vector3) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction.Normalize(),
		Intensity: 1,
	}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.FMA(t, r.Direction)
}

// Hit contains information about a ray hit. It is only meaningful when
// paired with a found flag.
type Hit struct {
	Time      float64 // distance along the ray, never negative
	Position  Vector3
	Normal    Vector3 // unit, pointing away from the surface
	Primitive int     // index of the primitive in its scene
}
