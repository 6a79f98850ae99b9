package render

import (
	"testing"

	"rt/pkg/tracer"
)

func testCamera() *tracer.Camera {
	return tracer.NewCamera(tracer.NewVector3(0, 6, 20), -0.15, 0)
}

func TestRenderer_ParallelMatchesSerial(t *testing.T) {
	scene := tracer.DefaultScene()
	scene.Animate(3)
	camera := testCamera()
	integrator := tracer.NewIntegrator(tracer.DefaultParams())

	serial := NewFrame(40, 25)
	NewRenderer(1, integrator).Render(serial, scene, camera)

	for _, workers := range []int{2, 3, 7, 64} {
		parallel := NewFrame(40, 25)
		NewRenderer(workers, integrator).Render(parallel, scene, camera)

		for i := range serial.Pixels {
			if serial.Pixels[i] != parallel.Pixels[i] {
				t.Fatalf("workers=%d: pixel float %d differs: %f != %f", workers, i, serial.Pixels[i], parallel.Pixels[i])
			}
		}
	}
}

func TestRenderer_MatchesKernel(t *testing.T) {
	scene := tracer.DefaultScene()
	scene.Animate(0.5)
	camera := testCamera()
	integrator := tracer.NewIntegrator(tracer.DefaultParams())

	frame := NewFrame(16, 10)
	NewRenderer(4, integrator).Render(frame, scene, camera)

	inv := camera.InverseView()
	for _, px := range [][2]int{{0, 0}, {8, 5}, {15, 9}, {3, 7}} {
		ray := tracer.GenerateRay(px[0], px[1], 16, 10, inv, camera.Position)
		want := integrator.Shade(ray, scene, tracer.MaxDepth)
		got := frame.At(px[0], px[1])
		if float32(want.X) != float32(got.X) || float32(want.Y) != float32(got.Y) || float32(want.Z) != float32(got.Z) {
			t.Errorf("pixel %v: expected %v, got %v", px, want, got)
		}
	}
}

func TestRenderer_AlphaIsOne(t *testing.T) {
	frame := NewFrame(12, 8)
	NewRenderer(3, tracer.NewIntegrator(tracer.DefaultParams())).Render(frame, tracer.DefaultScene(), testCamera())

	for i := Channels - 1; i < len(frame.Pixels); i += Channels {
		if frame.Pixels[i] != 1 {
			t.Fatalf("pixel %d: expected alpha 1, got %f", i/Channels, frame.Pixels[i])
		}
	}
}

func TestRenderer_DefaultWorkers(t *testing.T) {
	r := NewRenderer(0, tracer.NewIntegrator(tracer.DefaultParams()))
	if r.Workers() < 1 {
		t.Errorf("Expected at least one worker, got %d", r.Workers())
	}
}

func TestRenderer_EmptyFrame(t *testing.T) {
	frame := NewFrame(0, 0)
	NewRenderer(2, tracer.NewIntegrator(tracer.DefaultParams())).Render(frame, tracer.DefaultScene(), testCamera())
	if len(frame.Pixels) != 0 {
		t.Errorf("Expected no pixels, got %d", len(frame.Pixels))
	}
}

func TestFrame_Resize(t *testing.T) {
	frame := NewFrame(10, 10)
	if len(frame.Pixels) != 10*10*Channels {
		t.Fatalf("Expected %d floats, got %d", 10*10*Channels, len(frame.Pixels))
	}

	frame.Resize(4, 5)
	if frame.Width != 4 || frame.Height != 5 || len(frame.Pixels) != 4*5*Channels {
		t.Errorf("Expected 4x5 frame, got %dx%d with %d floats", frame.Width, frame.Height, len(frame.Pixels))
	}

	frame.Resize(20, 20)
	if len(frame.Pixels) != 20*20*Channels {
		t.Errorf("Expected %d floats, got %d", 20*20*Channels, len(frame.Pixels))
	}
}

func TestFrame_SetAt(t *testing.T) {
	frame := NewFrame(3, 2)
	c := tracer.Color{X: 0.25, Y: 1.5, Z: 0}
	frame.Set(2, 1, c)

	if got := frame.At(2, 1); got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
	if frame.Pixels[len(frame.Pixels)-1] != 1 {
		t.Errorf("Expected alpha 1, got %f", frame.Pixels[len(frame.Pixels)-1])
	}
	if got := frame.At(0, 0); got != (tracer.Color{}) {
		t.Errorf("Expected untouched pixel to be black, got %v", got)
	}
}
