package tracer

import (
	"math"
	"testing"
)

var (
	white = Color{X: 1, Y: 1, Z: 1}
	grey  = Color{X: 0.5, Y: 0.5, Z: 0.5}
)

// litSphere is a sphere in front of the origin with the light above and
// between them.
func litSphere() *Scene {
	return NewScene(
		NewLight(NewVector3(0, 3, -1), white),
		NewSphere(NewVector3(0, 0, -5), 1, grey),
	)
}

func forward() Ray {
	return NewRay(Vector3{}, NewVector3(0, 0, -1))
}

func TestIntegrator_Miss(t *testing.T) {
	scene := NewScene(NewLight(NewVector3(0, 10, 0), white))
	in := NewIntegrator(DefaultParams())

	result := in.Trace(NewRay(Vector3{}, NewVector3(0, -1, 0)), scene, MaxDepth)
	if result.Color != (Color{}) {
		t.Errorf("Expected black, got %v", result.Color)
	}
	if result.Bounces != 0 {
		t.Errorf("Expected no bounces, got %d", result.Bounces)
	}
}

func TestIntegrator_LitAboveAmbient(t *testing.T) {
	in := NewIntegrator(DefaultParams())

	color := in.Shade(forward(), litSphere(), MaxDepth)
	ambient := grey.Mul(AmbientFactor)
	if color.X <= ambient.X || color.Y <= ambient.Y || color.Z <= ambient.Z {
		t.Errorf("Expected lit color above ambient %v, got %v", ambient, color)
	}
	if math.IsNaN(color.X) || math.IsInf(color.X, 0) {
		t.Errorf("Expected finite color, got %v", color)
	}
}

func TestIntegrator_OccludedIsAmbient(t *testing.T) {
	scene := litSphere()
	scene.Add(NewBox(NewVector3(0, 1.5, -2.5), NewVector3(0.5, 0.2, 0.5), white))
	in := NewIntegrator(DefaultParams())

	color := in.Shade(forward(), scene, MaxDepth)
	expected := grey.Mul(AmbientFactor)
	if color != expected {
		t.Errorf("Expected ambient only %v, got %v", expected, color)
	}
}

func TestIntegrator_SelfShadowed(t *testing.T) {
	// The light sits behind the sphere, which shadows its own visible side
	scene := NewScene(
		NewLight(NewVector3(0, 0, -20), white),
		NewSphere(NewVector3(0, 0, -5), 1, grey),
	)
	in := NewIntegrator(DefaultParams())

	color := in.Shade(forward(), scene, MaxDepth)
	expected := grey.Mul(AmbientFactor)
	if color != expected {
		t.Errorf("Expected ambient only %v, got %v", expected, color)
	}
}

func TestIntegrator_Specular(t *testing.T) {
	// Eye and light nearly coincide, so the half vector lines up with the
	// surface normal and the highlight is strong.
	scene := NewScene(
		NewLight(NewVector3(0, 0.5, 0), white),
		NewSphere(NewVector3(0, 0, -5), 1, grey),
	)

	params := DefaultParams()
	with := NewIntegrator(params).Shade(forward(), scene, MaxDepth)

	params.Specular = false
	without := NewIntegrator(params).Shade(forward(), scene, MaxDepth)

	if with.X-without.X < 0.05 {
		t.Errorf("Expected a visible highlight, got %v with and %v without specular", with, without)
	}
}

func TestIntegrator_MirrorsTerminate(t *testing.T) {
	scene := NewScene(
		NewLight(NewVector3(3, 3, 0), white),
		NewBox(NewVector3(0, 0, -5), NewVector3(10, 10, 1), grey),
		NewBox(NewVector3(0, 0, 5), NewVector3(10, 10, 1), grey),
	)
	in := NewIntegrator(DefaultParams())

	for depth := 0; depth <= 6; depth++ {
		result := in.Trace(forward(), scene, depth)
		if result.Bounces != depth {
			t.Errorf("depth %d: expected %d bounces, got %d", depth, depth, result.Bounces)
		}
		expected := math.Pow(ReflectionDecay, float64(depth))
		if !approxEqual(result.Intensity, expected, 1e-12) {
			t.Errorf("depth %d: expected final intensity %f, got %f", depth, expected, result.Intensity)
		}
	}
}

func TestIntegrator_IntensityDecreases(t *testing.T) {
	scene := NewScene(
		NewLight(NewVector3(3, 3, 0), white),
		NewBox(NewVector3(0, 0, -5), NewVector3(10, 10, 1), grey),
		NewBox(NewVector3(0, 0, 5), NewVector3(10, 10, 1), grey),
	)
	in := NewIntegrator(DefaultParams())

	// Every extra bounce adds strictly less ambient than the one before
	var prev Color
	prevStep := math.Inf(1)
	for depth := 0; depth <= MaxDepth; depth++ {
		color := in.Shade(forward(), scene, depth)
		step := color.X - prev.X
		if step <= 0 || step >= prevStep {
			t.Errorf("depth %d: expected contribution in (0, %f), got %f", depth, prevStep, step)
		}
		prev, prevStep = color, step
	}
}

func TestIntegrator_ZeroDepthIsSingleHit(t *testing.T) {
	in := NewIntegrator(DefaultParams())
	result := in.Trace(forward(), litSphere(), 0)

	if result.Bounces != 0 {
		t.Errorf("Expected no bounces, got %d", result.Bounces)
	}
	if result.Intensity != 1 {
		t.Errorf("Expected full intensity, got %f", result.Intensity)
	}
	if result.Color == (Color{}) {
		t.Error("Expected the first hit to be shaded")
	}
}

func TestIntegrator_Deterministic(t *testing.T) {
	scene := DefaultScene()
	scene.Animate(1.5)
	camera := NewCamera(NewVector3(0, 6, 20), -0.2, 0.1)
	inv := camera.InverseView()
	in := NewIntegrator(DefaultParams())

	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			ray := GenerateRay(x, y, 16, 12, inv, camera.Position)
			a := in.Shade(ray, scene, MaxDepth)
			b := in.Shade(ray, scene, MaxDepth)
			if a != b {
				t.Fatalf("pixel (%d,%d): %v != %v", x, y, a, b)
			}
			if a.X < 0 || a.Y < 0 || a.Z < 0 {
				t.Fatalf("pixel (%d,%d): negative color %v", x, y, a)
			}
		}
	}
}
