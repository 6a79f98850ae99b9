package tracer

import "math"

// Vector3 represents a 3D vector
type Vector3 struct {
	X, Y, Z float64
}

// Color is an RGB triple in linear, unclamped space
type Color = Vector3

// NewVector3 creates a vector from its components
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add adds two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub subtracts a vector from another
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Mul multiplies a vector by a scalar
func (v Vector3) Mul(scalar float64) Vector3 {
	return Vector3{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

// MulVec multiplies two vectors component-wise
func (v Vector3) MulVec(other Vector3) Vector3 {
	return Vector3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Dot calculates the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross calculates the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared length of the vector
func (v Vector3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the length of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns a normalized (unit) vector. The zero vector is
// returned unchanged.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector3{
		X: v.X / l,
		Y: v.Y / l,
		Z: v.Z / l,
	}
}

// Reflect mirrors v about the given unit normal
func (v Vector3) Reflect(normal Vector3) Vector3 {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}

// Inverse returns the component-wise reciprocal. Zero components become
// signed infinities.
func (v Vector3) Inverse() Vector3 {
	return Vector3{
		X: 1 / v.X,
		Y: 1 / v.Y,
		Z: 1 / v.Z,
	}
}

// FMA returns v + dir*t
func (v Vector3) FMA(t float64, dir Vector3) Vector3 {
	return Vector3{
		X: v.X + dir.X*t,
		Y: v.Y + dir.Y*t,
		Z: v.Z + dir.Z*t,
	}
}
