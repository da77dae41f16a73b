package raster

import (
	"image/color"

	"spiro/internal/colormath"

	"tinygo.org/x/drivers"
)

type plotDisplay struct {
	p    Plotter
	w, h int16
}

// Displayer exposes p as a drivers.Displayer of the given size, so tinyfont
// and other TinyGo drawing code can render through any Plotter.
func Displayer(p Plotter, width, height int) drivers.Displayer {
	return &plotDisplay{p: p, w: int16(width), h: int16(height)}
}

func (d *plotDisplay) Size() (x, y int16) { return d.w, d.h }

func (d *plotDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return
	}
	d.p.Plot(int(x), int(y), colormath.Pack(c.R, c.G, c.B))
}

func (d *plotDisplay) Display() error { return nil }
