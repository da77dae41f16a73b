package app

import (
	"spiro/hal"
	"spiro/internal/colormath"
	"spiro/internal/raster"
)

// screen plots straight into an RGBA8888 framebuffer.
type screen struct {
	fb hal.Framebuffer
}

func (s screen) Plot(x, y int, c colormath.RGB) {
	buf := s.fb.Buffer()
	if x < 0 || y < 0 || x >= s.fb.Width() || y >= s.fb.Height() {
		return
	}
	off := y*s.fb.StrideBytes() + x*4
	if off < 0 || off+3 >= len(buf) {
		return
	}
	buf[off+0] = c.R()
	buf[off+1] = c.G()
	buf[off+2] = c.B()
	buf[off+3] = 0xFF
}

// WriteRGBRow copies packed RGB triplets into row y starting at column x,
// clipped to the framebuffer.
func (s screen) WriteRGBRow(x, y int, rgb []byte) {
	w := s.fb.Width()
	if y < 0 || y >= s.fb.Height() {
		return
	}
	if x < 0 {
		rgb = rgb[min(-x*3, len(rgb)):]
		x = 0
	}
	n := min(len(rgb)/3, w-x)
	if n <= 0 {
		return
	}

	buf := s.fb.Buffer()
	off := y*s.fb.StrideBytes() + x*4
	if off+n*4 > len(buf) {
		return
	}
	for i := 0; i < n; i++ {
		buf[off+0] = rgb[i*3+0]
		buf[off+1] = rgb[i*3+1]
		buf[off+2] = rgb[i*3+2]
		buf[off+3] = 0xFF
		off += 4
	}
}

// offset shifts every plot by (dx, dy); it maps playfield coordinates onto
// the screen when the playfield is smaller than the framebuffer.
type offset struct {
	p      raster.Plotter
	dx, dy int
}

func (o offset) Plot(x, y int, c colormath.RGB) {
	o.p.Plot(x+o.dx, y+o.dy, c)
}
