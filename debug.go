package parallax

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugStats holds per-frame timing and draw-call metrics.
// Timings are only populated when Scene.debug is true.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	drawCalls  int
}

// DrawCalls returns the number of DrawImage calls issued by the last Draw.
func (s *Scene) DrawCalls() int {
	return s.stats.drawCalls
}

// debugLog prints timing and draw-call stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[parallax] tick %d | update: %v | draw: %v | draw calls: %d | camera speed: %.2f\n",
		s.ticks, stats.updateTime, stats.drawTime, stats.drawCalls, s.camera.ScrollSpeed)
}

// hudText renders the readout shown by drawHUD: frame rates followed by one
// line per layer.
func (s *Scene) hudText(fps, tps float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f\nTPS: %.1f\n", fps, tps)
	for _, l := range s.layers {
		fmt.Fprintf(&b, "%s x=%.1f y=%.1f", l.Name, l.X(), l.Y())
		if l.Overlay != nil {
			fmt.Fprintf(&b, " %s", l.Overlay.Phase())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// drawHUD prints the readout in the top-left corner of the frame.
func (s *Scene) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, s.hudText(ebiten.ActualFPS(), ebiten.ActualTPS()))
}
