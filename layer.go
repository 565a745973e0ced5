package parallax

import (
	"math"
	"time"
)

// ScrollState is the horizontal parallax capability of a layer.
type ScrollState struct {
	// SpeedRatio is the fraction of camera speed this layer scrolls at.
	// 0 keeps it in place, 1 moves it at full camera speed.
	SpeedRatio float64
	// X is the current horizontal screen offset. Kept in (-frameWidth, frameWidth].
	X float64

	wraps int
}

// Wraps returns how many times X has been wrapped back by one frame width.
func (s *ScrollState) Wraps() int {
	return s.wraps
}

// advance moves X by the camera's per-tick speed scaled by SpeedRatio and
// wraps it back into (-frameWidth, frameWidth] by as few whole frame widths
// as needed. A single tick may cross several frame widths; each one removed
// counts as a wrap.
func (s *ScrollState) advance(cam *Camera, frameWidth float64) {
	s.X -= cam.ScrollSpeed * s.SpeedRatio
	var n float64
	switch {
	case s.X <= -frameWidth:
		n = math.Floor(-s.X / frameWidth)
		s.X += n * frameWidth
		if s.X <= -frameWidth { // rounding in the division
			s.X += frameWidth
			n++
		}
	case s.X > frameWidth:
		n = math.Ceil(s.X/frameWidth) - 1
		s.X -= n * frameWidth
		if s.X > frameWidth {
			s.X -= frameWidth
			n++
		}
	}
	s.wraps += int(n)
}

// Layer is one strip of the background: a region of the shared atlas drawn
// stretched to the frame size, optionally scrolling horizontally and
// optionally carrying a timed vertical overlay. The two capabilities are
// independent; a layer with neither is static.
type Layer struct {
	Name   string
	Region TextureRegion

	// Scroll is nil for layers that do not move horizontally.
	Scroll *ScrollState
	// Overlay is nil for layers without a vertical animation.
	Overlay *Overlay
	// BaselineY is the vertical placement used when Overlay is nil.
	BaselineY float64
}

// X returns the layer's horizontal offset, 0 for non-scrolling layers.
func (l *Layer) X() float64 {
	if l.Scroll == nil {
		return 0
	}
	return l.Scroll.X
}

// Y returns the layer's vertical placement.
func (l *Layer) Y() float64 {
	if l.Overlay != nil {
		return l.Overlay.Y
	}
	return l.BaselineY
}

// tileCount is the number of frame-wide copies drawn for a scrolling layer.
// The first copy starts in (-frameWidth, 0], so two copies always reach past
// the right edge.
const tileCount = 2

// Tiles returns the destination rectangles the layer is drawn into for a
// frame of the given size. Scrolling layers yield tileCount copies spaced one
// frame width apart whose union covers [0, frame.Width); static layers yield
// a single copy.
func (l *Layer) Tiles(frame Size) []Rect {
	return l.appendTiles(nil, frame)
}

func (l *Layer) appendTiles(dst []Rect, frame Size) []Rect {
	w, h := float64(frame.Width), float64(frame.Height)
	y := l.Y()
	if l.Scroll == nil {
		return append(dst, Rect{X: 0, Y: y, Width: w, Height: h})
	}
	x := l.Scroll.X
	if x > 0 {
		x -= w
	}
	for i := 0; i < tileCount; i++ {
		dst = append(dst, Rect{X: x + float64(i)*w, Y: y, Width: w, Height: h})
	}
	return dst
}

// update advances the layer by one tick and reports whether its overlay
// changed phase.
func (l *Layer) update(cam *Camera, frame Size, now time.Duration) bool {
	if l.Scroll != nil {
		l.Scroll.advance(cam, float64(frame.Width))
	}
	if l.Overlay != nil {
		return l.Overlay.step(now, float64(frame.Height))
	}
	return false
}
