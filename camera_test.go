package parallax

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(4)
	if cam.ScrollSpeed != 4 {
		t.Errorf("ScrollSpeed = %f, want 4", cam.ScrollSpeed)
	}
	if cam.Ramping() {
		t.Error("Ramping = true, want false")
	}
}

func TestCameraConstantWithoutRamp(t *testing.T) {
	cam := NewCamera(5)
	for i := 0; i < 100; i++ {
		cam.update(1.0 / 60)
	}
	if cam.ScrollSpeed != 5 {
		t.Errorf("ScrollSpeed = %f, want 5", cam.ScrollSpeed)
	}
}

func TestCameraRampLinear(t *testing.T) {
	cam := NewCamera(0)
	cam.RampTo(8, 1, ease.Linear)
	if !cam.Ramping() {
		t.Fatal("Ramping = false after RampTo")
	}

	cam.update(0.5)
	if !approxEqual(cam.ScrollSpeed, 4, 1e-4) {
		t.Errorf("halfway ScrollSpeed = %f, want 4", cam.ScrollSpeed)
	}

	cam.update(0.5)
	if !approxEqual(cam.ScrollSpeed, 8, 1e-4) {
		t.Errorf("final ScrollSpeed = %f, want 8", cam.ScrollSpeed)
	}
	if cam.Ramping() {
		t.Error("Ramping = true after the ramp finished")
	}

	cam.update(1)
	if !approxEqual(cam.ScrollSpeed, 8, 1e-4) {
		t.Errorf("ScrollSpeed after ramp = %f, want 8", cam.ScrollSpeed)
	}
}

func TestCameraRampNilEaseIsLinear(t *testing.T) {
	cam := NewCamera(2)
	cam.RampTo(6, 2, nil)
	cam.update(1)
	if !approxEqual(cam.ScrollSpeed, 4, 1e-4) {
		t.Errorf("ScrollSpeed = %f, want 4", cam.ScrollSpeed)
	}
}

func TestCameraRampZeroDuration(t *testing.T) {
	cam := NewCamera(1)
	cam.RampTo(9, 0, ease.OutCubic)
	if cam.ScrollSpeed != 9 {
		t.Errorf("ScrollSpeed = %f, want 9", cam.ScrollSpeed)
	}
	if cam.Ramping() {
		t.Error("Ramping = true for a zero-length ramp")
	}
}

func TestCameraRampDown(t *testing.T) {
	cam := NewCamera(4)
	cam.RampTo(-4, 1, ease.InOutQuad)
	for cam.Ramping() {
		cam.update(0.1)
	}
	if !approxEqual(cam.ScrollSpeed, -4, 1e-4) {
		t.Errorf("ScrollSpeed = %f, want -4", cam.ScrollSpeed)
	}
}

func TestEaseFunc(t *testing.T) {
	for _, name := range []string{"", "linear", "inOutQuad", "outCubic", "inOutSine"} {
		if _, ok := EaseFunc(name); !ok {
			t.Errorf("EaseFunc(%q) not found", name)
		}
	}
	if _, ok := EaseFunc("wobble"); ok {
		t.Error("EaseFunc(\"wobble\") found, want missing")
	}
}
