package tracer

import (
	"math"
	"testing"
)

func TestGenerateRay_Directions(t *testing.T) {
	tests := []struct {
		name          string
		pitch, yaw    float64
		x, y          int
		width, height int
		expected      Vector3
	}{
		{"center, zero pose", 0, 0, 50, 50, 100, 100, NewVector3(0, 0, -1)},
		{"center, yawed left", 0, math.Pi / 2, 50, 50, 100, 100, NewVector3(-1, 0, 0)},
		{"center, pitched up", math.Pi / 4, 0, 50, 50, 100, 100, NewVector3(0, 1, -1)},
		{"left edge, wide viewport", 0, 0, 0, 50, 200, 100, NewVector3(-1, 0, -0.5)},
		{"top row", 0, 0, 50, 0, 100, 100, NewVector3(0, 0.5, -0.5)},
		{"bottom-right corner", 0, 0, 100, 100, 100, 100, NewVector3(0.5, -0.5, -0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(Vector3{}, tt.pitch, tt.yaw)
			ray := GenerateRay(tt.x, tt.y, tt.width, tt.height, camera.InverseView(), camera.Position)

			expected := tt.expected.Normalize()
			if !vecApproxEqual(ray.Direction, expected, 1e-9) {
				t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
			}
			if ray.Intensity != 1 {
				t.Errorf("Expected full intensity, got %f", ray.Intensity)
			}
		})
	}
}

func TestGenerateRay_OriginIsCameraPosition(t *testing.T) {
	position := NewVector3(5, -3, 12)
	moved := NewCamera(position, 0.3, -1.2)
	still := NewCamera(Vector3{}, 0.3, -1.2)

	for _, px := range [][2]int{{0, 0}, {17, 9}, {63, 39}} {
		a := GenerateRay(px[0], px[1], 64, 40, moved.InverseView(), moved.Position)
		b := GenerateRay(px[0], px[1], 64, 40, still.InverseView(), still.Position)

		if a.Origin != position {
			t.Errorf("pixel %v: expected origin %v, got %v", px, position, a.Origin)
		}
		if !vecApproxEqual(a.Direction, b.Direction, 1e-9) {
			t.Errorf("pixel %v: translation changed direction %v -> %v", px, b.Direction, a.Direction)
		}
	}
}

func TestGenerateRay_UnitLength(t *testing.T) {
	camera := NewCamera(NewVector3(1, 2, 3), -0.4, 2.1)
	inv := camera.InverseView()

	const width, height = 48, 30
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ray := GenerateRay(x, y, width, height, inv, camera.Position)
			if !approxEqual(ray.Direction.Length(), 1, 1e-9) {
				t.Fatalf("pixel (%d,%d): direction length %f", x, y, ray.Direction.Length())
			}
		}
	}
}

func TestCamera_PitchClamp(t *testing.T) {
	camera := NewCamera(Vector3{}, 3, 0)
	if camera.Pitch != MaxPitch {
		t.Errorf("Expected pitch clamped to %f, got %f", MaxPitch, camera.Pitch)
	}

	camera.Rotate(0.5, -10)
	if camera.Pitch != -MaxPitch {
		t.Errorf("Expected pitch clamped to %f, got %f", -MaxPitch, camera.Pitch)
	}
	if camera.Yaw != 0.5 {
		t.Errorf("Expected yaw 0.5, got %f", camera.Yaw)
	}
}

func TestCamera_Move(t *testing.T) {
	tests := []struct {
		name               string
		yaw                float64
		forward, right, up float64
		expected           Vector3
	}{
		{"forward", 0, 2, 0, 0, NewVector3(0, 0, -2)},
		{"right", 0, 0, 1, 0, NewVector3(1, 0, 0)},
		{"up", 0, 0, 0, 3, NewVector3(0, 3, 0)},
		{"forward after turning left", math.Pi / 2, 1, 0, 0, NewVector3(-1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(Vector3{}, 0, tt.yaw)
			camera.Move(tt.forward, tt.right, tt.up)
			if !vecApproxEqual(camera.Position, tt.expected, 1e-9) {
				t.Errorf("Expected position %v, got %v", tt.expected, camera.Position)
			}
		})
	}
}

func TestCamera_BasisIsOrthonormal(t *testing.T) {
	camera := NewCamera(NewVector3(4, 5, 6), 0.7, -2.3)
	f, r, u := camera.Basis()

	for name, v := range map[string]Vector3{"forward": f, "right": r, "up": u} {
		if !approxEqual(v.Length(), 1, 1e-9) {
			t.Errorf("%s: expected unit length, got %f", name, v.Length())
		}
	}
	if !approxEqual(f.Dot(r), 0, 1e-9) || !approxEqual(f.Dot(u), 0, 1e-9) || !approxEqual(r.Dot(u), 0, 1e-9) {
		t.Errorf("Expected orthogonal basis, got f=%v r=%v u=%v", f, r, u)
	}
	// Right-handed: right × up points backwards
	if !vecApproxEqual(r.Cross(u), f.Mul(-1), 1e-9) {
		t.Errorf("Expected right × up = -forward, got %v", r.Cross(u))
	}
}
