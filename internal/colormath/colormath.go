// Package colormath converts between HSV and packed 24-bit RGB colors.
package colormath

import "math"

// RGB is a packed 0xRRGGBB color.
type RGB uint32

// Pack builds an RGB from its channels.
func Pack(r, g, b uint8) RGB {
	return RGB(r)<<16 | RGB(g)<<8 | RGB(b)
}

// R returns the red channel.
func (c RGB) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c RGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c RGB) B() uint8 { return uint8(c) }

// RGBA implements color.Color. The color is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xFFFF
}

// HSV is a hue in degrees plus saturation and value in [0,1].
type HSV struct {
	H float64
	S float64
	V float64
}

// HSVToRGB converts c to RGB. Hues outside [0,360) are wrapped first.
// S and V are expected in [0,1]; out of range values are not guarded beyond
// the final channel clamp.
func HSVToRGB(c HSV) RGB {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}

	chroma := c.V * c.S
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := c.V - chroma

	var r, g, b float64
	switch {
	case h < 60:
		r, g = chroma, x
	case h < 120:
		r, g = x, chroma
	case h < 180:
		g, b = chroma, x
	case h < 240:
		g, b = x, chroma
	case h < 300:
		r, b = x, chroma
	default:
		r, b = chroma, x
	}

	return Pack(channel(r+m), channel(g+m), channel(b+m))
}

// RGBToHSV converts 8-bit channels to HSV with H in [0,360).
func RGBToHSV(r, g, b uint8) HSV {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	hi := max(rf, gf, bf)
	lo := min(rf, gf, bf)
	delta := hi - lo

	var h float64
	if delta != 0 {
		switch hi {
		case rf:
			h = 60 * math.Mod((gf-bf)/delta, 6)
		case gf:
			h = 60 * ((bf-rf)/delta + 2)
		default:
			h = 60 * ((rf-gf)/delta + 4)
		}
	}
	if h < 0 {
		h += 360
	}

	var s float64
	if hi != 0 {
		s = delta / hi
	}
	return HSV{H: h, S: s, V: hi}
}

// Lerp blends a and b per channel. t is expected in [0,1].
func Lerp(a, b RGB, t float64) RGB {
	mix := func(x, y uint8) uint8 {
		return clamp255(math.Round(float64(x)*(1-t) + float64(y)*t))
	}
	return Pack(mix(a.R(), b.R()), mix(a.G(), b.G()), mix(a.B(), b.B()))
}

func channel(v float64) uint8 {
	return clamp255(math.Round(v * 255))
}

func clamp255(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
