package tracer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"rt/internal/util"
)

// ImagePlaneDepth is the view-space distance of the image plane
const ImagePlaneDepth = 0.5

// MaxPitch keeps the camera from flipping over the vertical
const MaxPitch = math.Pi/2.0 - 0.1

// Camera is a free-flying viewpoint looking down its local -Z axis
type Camera struct {
	Position Vector3
	Pitch    float64 // rotation about X in radians, positive looks up
	Yaw      float64 // rotation about Y in radians, positive turns left
}

// NewCamera creates a camera at position with the given orientation
func NewCamera(position Vector3, pitch, yaw float64) *Camera {
	c := &Camera{Position: position}
	c.SetRotation(yaw, pitch)
	return c
}

// View returns the world-to-view transform
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.HomogRotate3DX(-c.Pitch).
		Mul4(mgl64.HomogRotate3DY(-c.Yaw)).
		Mul4(mgl64.Translate3D(-c.Position.X, -c.Position.Y, -c.Position.Z))
}

// InverseView returns the view-to-world transform
func (c *Camera) InverseView() mgl64.Mat4 {
	return c.View().Inv()
}

// Basis returns the world-space forward, right and up vectors
func (c *Camera) Basis() (forward, right, up Vector3) {
	inv := c.InverseView()
	return fromVec3(inv.Col(2).Vec3().Mul(-1)), fromVec3(inv.Col(0).Vec3()), fromVec3(inv.Col(1).Vec3())
}

// Move translates the camera along its own axes
func (c *Camera) Move(forward, right, up float64) {
	f, r, u := c.Basis()
	c.Position = c.Position.FMA(forward, f).FMA(right, r).FMA(up, u)
}

// Rotate adds to the current yaw and pitch
func (c *Camera) Rotate(yawDelta, pitchDelta float64) {
	c.SetRotation(c.Yaw+yawDelta, c.Pitch+pitchDelta)
}

// SetRotation sets yaw and pitch, clamping pitch to ±MaxPitch
func (c *Camera) SetRotation(yaw, pitch float64) {
	c.Yaw = yaw
	c.Pitch = util.Clamp(pitch, -MaxPitch, MaxPitch)
}

// GenerateRay builds the primary ray through pixel (x, y) of a
// width×height viewport. Row 0 is the top of the image. Only the
// rotation of invView is applied to the direction.
func GenerateRay(x, y, width, height int, invView mgl64.Mat4, position Vector3) Ray {
	aspect := float64(width) / float64(height)
	ax := (float64(x)/float64(width) - 0.5) * aspect
	ay := 0.5 - float64(y)/float64(height)

	dir := invView.Mul4x1(mgl64.Vec4{ax, ay, -ImagePlaneDepth, 0}).Vec3()

	return Ray{
		Origin:    position,
		Direction: fromVec3(dir).Normalize(),
		Intensity: 1,
	}
}

func fromVec3(v mgl64.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}
