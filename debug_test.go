package parallax

import (
	"strings"
	"testing"
	"time"
)

func TestHUDText(t *testing.T) {
	s, clock := newTestScene(t, DefaultConfig())
	clock.Advance(16 * time.Millisecond)
	s.Update()

	text := s.hudText(59.94, 60)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 2+len(s.Layers()) {
		t.Fatalf("hud has %d lines, want %d:\n%s", len(lines), 2+len(s.Layers()), text)
	}
	if lines[0] != "FPS: 59.9" || lines[1] != "TPS: 60.0" {
		t.Errorf("rate lines = %q, %q", lines[0], lines[1])
	}
	if lines[2] != "bg_clouds x=-0.6 y=0.0" {
		t.Errorf("bg_clouds line = %q", lines[2])
	}
	if lines[4] != "credits x=0.0 y=432.0 initial" {
		t.Errorf("credits line = %q", lines[4])
	}
}

func TestDrawCallsZeroBeforeDraw(t *testing.T) {
	s, _ := newTestScene(t, DefaultConfig())
	if s.DrawCalls() != 0 {
		t.Errorf("DrawCalls = %d before any Draw", s.DrawCalls())
	}
}
