package parallax

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"credits-in", "credits-in"},
		{"frame 01.v2", "frame_01.v2"},
		{"../etc/passwd", ".._etc_passwd"},
		{"  ", "unlabeled"},
		{"", "unlabeled"},
		{"ünï", "_n_"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueues(t *testing.T) {
	s, _ := newTestScene(t, DefaultConfig())
	if s.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want screenshots", s.ScreenshotDir)
	}
	s.Screenshot("a")
	s.Screenshot("b")
	if len(s.screenshotQueue) != 2 || s.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", s.screenshotQueue)
	}
}

func TestScreenshotPath(t *testing.T) {
	s, _ := newTestScene(t, DefaultConfig())
	s.ScreenshotDir = "out"
	s.Update()
	s.Update()
	if got, want := s.screenshotPath("credits in"), filepath.Join("out", "000002_credits_in.png"); got != want {
		t.Errorf("screenshotPath = %q, want %q", got, want)
	}
}

func TestUnpremultiply(t *testing.T) {
	pix := []byte{
		40, 20, 10, 51, // half-transparent
		8, 169, 252, 255, // opaque, unchanged
		0, 0, 0, 0, // transparent, unchanged
	}
	unpremultiply(pix)
	want := []byte{200, 100, 50, 51, 8, 169, 252, 255, 0, 0, 0, 0}
	for i := range want {
		if pix[i] != want[i] {
			t.Fatalf("pix = %v, want %v", pix, want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(1, 1, color.NRGBA{R: 8, G: 169, B: 252, A: 255})
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", got.Bounds(), img.Bounds())
	}
	if r, g, b, a := got.At(1, 1).RGBA(); r>>8 != 8 || g>>8 != 169 || b>>8 != 252 || a>>8 != 255 {
		t.Errorf("pixel (1,1) = %d,%d,%d,%d", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestWritePNGBadDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "frame.png")
	if err := writePNG(path, image.NewNRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}
