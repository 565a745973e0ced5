package parallax

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestGameQuitsOnInjectedQuit(t *testing.T) {
	s, clock := newTestScene(t, DefaultConfig())
	g := &game{scene: s}

	clock.Advance(16 * time.Millisecond)
	if err := g.Update(); err != nil {
		t.Fatalf("Update = %v, want nil", err)
	}
	if s.Ticks() != 1 {
		t.Fatalf("Ticks = %d, want 1", s.Ticks())
	}

	s.InjectQuit()
	if !s.QuitPending() {
		t.Fatal("QuitPending = false after InjectQuit")
	}
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update = %v, want ebiten.Termination", err)
	}
	if s.Ticks() != 1 {
		t.Errorf("scene ticked after quit: Ticks = %d", s.Ticks())
	}
}

func TestGameLayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Frame = Size{Width: 640, Height: 360}
	cfg.Atlas.Regions = map[string]TextureRegion{"sky": {Width: 320, Height: 180}}
	cfg.Layers = []LayerConfig{{Region: "sky"}}
	s, _ := newTestScene(t, cfg)

	g := &game{scene: s}
	w, h := g.Layout(1920, 1080)
	if w != 640 || h != 360 {
		t.Errorf("Layout = %dx%d, want 640x360", w, h)
	}
}

func TestGameDraw(t *testing.T) {
	s, _ := newTestScene(t, DefaultConfig())
	g := &game{scene: s}
	screen := ebiten.NewImage(768, 432)
	defer screen.Deallocate()
	g.Draw(screen)
	if s.DrawCalls() != 9 {
		t.Errorf("DrawCalls = %d, want 9", s.DrawCalls())
	}
}

func TestRunRejectsEmptyFrame(t *testing.T) {
	err := Run(&Scene{}, RunConfig{})
	var se *SurfaceCreationError
	if !errors.As(err, &se) {
		t.Fatalf("Run = %v, want *SurfaceCreationError", err)
	}
	if se.Width != 0 || se.Height != 0 {
		t.Errorf("SurfaceCreationError = %dx%d, want 0x0", se.Width, se.Height)
	}
}
