package parallax

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the next drawn frame. The PNG is
// written to ScreenshotDir as <tick>_<label>.png. Safe to call from Update
// or Draw.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// flushScreenshots writes every queued capture. Called at the end of
// Scene.Draw. Failures are reported on stderr and never stop the frame loop.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	labels := s.screenshotQueue
	s.screenshotQueue = s.screenshotQueue[:0]

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		log.Printf("[parallax] screenshot: %v", err)
		return
	}
	frame := frameToNRGBA(screen)
	for _, label := range labels {
		if err := writePNG(s.screenshotPath(label), frame); err != nil {
			log.Printf("[parallax] screenshot %q: %v", label, err)
		}
	}
}

// screenshotPath names a capture after the current tick and its label.
func (s *Scene) screenshotPath(label string) string {
	return filepath.Join(s.ScreenshotDir, fmt.Sprintf("%06d_%s.png", s.ticks, sanitizeLabel(label)))
}

// frameToNRGBA reads the frame back and converts premultiplied RGBA to
// straight alpha.
func frameToNRGBA(screen *ebiten.Image) *image.NRGBA {
	img := image.NewNRGBA(image.Rectangle{Max: screen.Bounds().Size()})
	screen.ReadPixels(img.Pix)
	unpremultiply(img.Pix)
	return img
}

// unpremultiply converts RGBA pixels in place from premultiplied to straight
// alpha.
func unpremultiply(pix []byte) {
	for p := pix; len(p) >= 4; p = p[4:] {
		a := uint16(p[3])
		if a == 0 || a == 0xff {
			continue
		}
		for c := 0; c < 3; c++ {
			p[c] = uint8(min(uint16(p[c])*0xff/a, 0xff))
		}
	}
}

// writePNG encodes img to path. Captures favor speed over file size.
func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, f.Close()) }()
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(f, img)
}

// unsafeLabelChars matches every rune not allowed in a capture file name.
var unsafeLabelChars = regexp.MustCompile(`[^A-Za-z0-9.-]`)

// sanitizeLabel makes label safe for a file name, falling back to
// "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return unsafeLabelChars.ReplaceAllLiteralString(label, "_")
}
