package parallax

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera drives horizontal scrolling. Every tick each scrolling layer moves
// left by ScrollSpeed times its speed ratio.
type Camera struct {
	// ScrollSpeed is the camera advance per tick, in layer position units.
	ScrollSpeed float64

	ramp *gween.Tween
}

// NewCamera creates a camera that advances by speed every tick.
func NewCamera(speed float64) *Camera {
	return &Camera{ScrollSpeed: speed}
}

// RampTo eases ScrollSpeed from its current value to speed over the given
// number of seconds. A non-positive duration sets the speed immediately.
// A nil easing function means linear.
func (c *Camera) RampTo(speed float64, seconds float32, fn ease.TweenFunc) {
	if seconds <= 0 {
		c.ScrollSpeed = speed
		c.ramp = nil
		return
	}
	if fn == nil {
		fn = ease.Linear
	}
	c.ramp = gween.New(float32(c.ScrollSpeed), float32(speed), seconds, fn)
}

// Ramping reports whether a speed ramp is in progress.
func (c *Camera) Ramping() bool {
	return c.ramp != nil
}

// update advances an active ramp by dt seconds. Called once per tick from
// Scene.Update before layers move.
func (c *Camera) update(dt float32) {
	if c.ramp == nil {
		return
	}
	v, done := c.ramp.Update(dt)
	c.ScrollSpeed = float64(v)
	if done {
		c.ramp = nil
	}
}

// easeFuncs maps configuration names to gween easing functions.
var easeFuncs = map[string]ease.TweenFunc{
	"":           ease.Linear,
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
}

// EaseFunc returns the easing function registered under name.
func EaseFunc(name string) (ease.TweenFunc, bool) {
	fn, ok := easeFuncs[name]
	return fn, ok
}
