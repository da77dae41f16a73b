// Package raster draws points, lines, circles, triangles and polygons
// through a single-pixel Plotter, so the same code can target the screen,
// an off-screen buffer or anything else that can set one pixel.
package raster

import (
	"image"

	"spiro/internal/colormath"
)

// Plotter sets one pixel. Implementations drop out-of-bounds writes.
type Plotter interface {
	Plot(x, y int, c colormath.RGB)
}

// PlotFunc adapts a function to Plotter.
type PlotFunc func(x, y int, c colormath.RGB)

func (f PlotFunc) Plot(x, y int, c colormath.RGB) { f(x, y, c) }

// Point writes a single pixel.
func Point(p Plotter, x, y int, c colormath.RGB) {
	p.Plot(x, y, c)
}

// Line draws from (x1,y1) to (x2,y2) inclusive with Bresenham's algorithm.
// Endpoints are ordered left to right first, so a line and its reverse
// cover the same pixels.
func Line(p Plotter, x1, y1, x2, y2 int, c colormath.RGB) {
	if x1 > x2 || (x1 == x2 && y1 > y2) {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := -dy / 2
	if dx > dy {
		err = dx / 2
	}

	for {
		p.Plot(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := err
		if e2 > -dx {
			err -= dy
			x1 += sx
		}
		if e2 < dy {
			err += dx
			y1 += sy
		}
	}
}

// Circle draws the outline of a circle using the midpoint algorithm.
// Radius 0 plots the center only; negative radii draw nothing.
func Circle(p Plotter, cx, cy, radius int, c colormath.RGB) {
	if radius < 0 {
		return
	}
	if radius == 0 {
		p.Plot(cx, cy, c)
		return
	}

	x, y := 0, radius
	d := 3 - 2*radius
	for y >= x {
		p.Plot(cx+x, cy-y, c)
		p.Plot(cx+y, cy-x, c)
		p.Plot(cx+y, cy+x, c)
		p.Plot(cx+x, cy+y, c)
		p.Plot(cx-x, cy+y, c)
		p.Plot(cx-y, cy+x, c)
		p.Plot(cx-y, cy-x, c)
		p.Plot(cx-x, cy-y, c)
		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
}

// FillTriangle paints every pixel of the bounding box of a, b, c whose three
// edge functions agree in sign. Either winding order works.
func FillTriangle(p Plotter, a, b, c image.Point, col colormath.RGB) {
	minX, maxX := min(a.X, b.X, c.X), max(a.X, b.X, c.X)
	minY, maxY := min(a.Y, b.Y, c.Y), max(a.Y, b.Y, c.Y)

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			w0 := edge(a, b, x, y)
			w1 := edge(b, c, x, y)
			w2 := edge(c, a, x, y)
			if (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0) {
				p.Plot(x, y, col)
			}
		}
	}
}

// FillPolygon fills vertices as a triangle fan around vertex 0, then closes
// the fan with (0, n-1, 1). Non-convex input may over- or under-paint.
// Fewer than three vertices draw nothing.
func FillPolygon(p Plotter, vertices []image.Point, c colormath.RGB) {
	n := len(vertices)
	if n < 3 {
		return
	}
	for i := 0; i < n-2; i++ {
		FillTriangle(p, vertices[0], vertices[i+1], vertices[i+2], c)
	}
	FillTriangle(p, vertices[0], vertices[n-1], vertices[1], c)
}

// OutlinePolygon connects consecutive vertices and closes the shape back to
// the first vertex. Fewer than two vertices draw nothing.
func OutlinePolygon(p Plotter, vertices []image.Point, c colormath.RGB) {
	n := len(vertices)
	if n < 2 {
		return
	}
	for i := 0; i < n-1; i++ {
		Line(p, vertices[i].X, vertices[i].Y, vertices[i+1].X, vertices[i+1].Y, c)
	}
	Line(p, vertices[n-1].X, vertices[n-1].Y, vertices[0].X, vertices[0].Y, c)
}

func edge(a, b image.Point, x, y int) int {
	return (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
