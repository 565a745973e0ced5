package parallax

import "time"

// OverlayPhase is a state of the overlay show/hide cycle.
type OverlayPhase uint8

const (
	PhaseInitial       OverlayPhase = iota // off-screen, waiting for EnterDelay
	PhaseScrollingIn                       // moving toward Y = 0
	PhaseAtDestination                     // on-screen, waiting for Dwell
	PhaseScrollingOut                      // moving toward the far off-screen bound
)

func (p OverlayPhase) String() string {
	switch p {
	case PhaseInitial:
		return "initial"
	case PhaseScrollingIn:
		return "scrolling-in"
	case PhaseAtDestination:
		return "at-destination"
	case PhaseScrollingOut:
		return "scrolling-out"
	default:
		return "unknown"
	}
}

// Overlay animates a layer vertically on a perpetual timed cycle: wait
// off-screen for EnterDelay, slide to Y = 0, dwell for Dwell, slide off the
// opposite edge, then reappear off-screen on the starting side and repeat.
//
// A negative VerticalSpeed enters from below and leaves through the top; a
// positive one enters from above and leaves through the bottom.
type Overlay struct {
	// VerticalSpeed is the signed per-tick movement while scrolling. Never 0.
	VerticalSpeed float64
	// Y is the current vertical screen offset.
	Y float64
	// EnterDelay is how long the overlay rests off-screen before entering.
	EnterDelay time.Duration
	// Dwell is how long the overlay rests on-screen before leaving.
	Dwell time.Duration
	// Hold keeps the overlay on-screen once it arrives instead of cycling.
	Hold bool

	phase      OverlayPhase
	phaseStart time.Duration
}

// NewOverlay creates an overlay in PhaseInitial at startY whose phase clock
// starts at now.
func NewOverlay(speed, startY float64, enterDelay, dwell time.Duration, now time.Duration) *Overlay {
	return &Overlay{
		VerticalSpeed: speed,
		Y:             startY,
		EnterDelay:    enterDelay,
		Dwell:         dwell,
		phaseStart:    now,
	}
}

// Phase returns the current phase.
func (o *Overlay) Phase() OverlayPhase {
	return o.phase
}

// PhaseStartedAt returns the clock reading at which the phase clock was
// last reset.
func (o *Overlay) PhaseStartedAt() time.Duration {
	return o.phaseStart
}

// reachedDestination reports whether y is at or past 0 in the direction of
// travel.
func (o *Overlay) reachedDestination(y float64) bool {
	return o.VerticalSpeed < 0 && y <= 0 ||
		o.VerticalSpeed > 0 && y >= 0
}

// wentOffScreen reports whether y is at or past the far off-screen bound in
// the direction of travel.
func (o *Overlay) wentOffScreen(y, frameHeight float64) bool {
	return o.VerticalSpeed < 0 && y <= -frameHeight ||
		o.VerticalSpeed > 0 && y >= frameHeight
}

// restY is the off-screen position on the entering side.
func (o *Overlay) restY(frameHeight float64) float64 {
	if o.VerticalSpeed < 0 {
		return frameHeight
	}
	return -frameHeight
}

// step advances the cycle by one tick and reports whether the phase changed.
func (o *Overlay) step(now time.Duration, frameHeight float64) bool {
	elapsed := now - o.phaseStart
	switch o.phase {
	case PhaseInitial:
		if elapsed >= o.EnterDelay {
			o.enter(PhaseScrollingIn, now)
			return true
		}
	case PhaseScrollingIn:
		y := o.Y + o.VerticalSpeed
		if o.reachedDestination(y) {
			o.Y = 0
			o.enter(PhaseAtDestination, now)
			return true
		}
		o.Y = y
	case PhaseAtDestination:
		if !o.Hold && elapsed >= o.Dwell {
			o.phase = PhaseScrollingOut
			return true
		}
	case PhaseScrollingOut:
		y := o.Y + o.VerticalSpeed
		if o.wentOffScreen(y, frameHeight) {
			o.Y = o.restY(frameHeight)
			o.enter(PhaseInitial, now)
			return true
		}
		o.Y = y
	}
	return false
}

func (o *Overlay) enter(p OverlayPhase, now time.Duration) {
	o.phase = p
	o.phaseStart = now
}
