package parallax

import "image/color"

// Color is an 8-bit RGBA color. Not premultiplied.
type Color struct {
	R, G, B, A uint8
}

// DefaultClearColor is the sky blue painted behind every layer.
var DefaultClearColor = Color{R: 0x08, G: 0xa9, B: 0xfc, A: 0xff}

// toRGBA converts to the premultiplied form ebiten's Fill expects.
func (c Color) toRGBA() color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 0xff),
		G: uint8(uint16(c.G) * a / 0xff),
		B: uint8(uint16(c.B) * a / 0xff),
		A: c.A,
	}
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns the X coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.Width }
