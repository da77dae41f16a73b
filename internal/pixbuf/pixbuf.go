// Package pixbuf holds the off-screen RGB pixel buffer the fan can be drawn
// into, and persists it as a raw PPM dump or, by extension, as a regular
// image file.
package pixbuf

import (
	"image"
	"image/color"
	"image/draw"

	"spiro/internal/colormath"
	"spiro/internal/raster"
)

// Buffer is a W x H grid of RGB triplets, row-major, top to bottom.
type Buffer struct {
	w, h int
	pix  []byte
}

// New returns a black buffer. Non-positive sizes yield an empty buffer.
func New(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{w: width, h: height, pix: make([]byte, width*height*3)}
}

// FromImage copies img into a new buffer.
func FromImage(img image.Image) *Buffer {
	r := img.Bounds()
	b := New(r.Dx(), r.Dy())
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			c := color.RGBAModel.Convert(img.At(r.Min.X+x, r.Min.Y+y)).(color.RGBA)
			b.Plot(x, y, colormath.Pack(c.R, c.G, c.B))
		}
	}
	return b
}

func (b *Buffer) Width() int  { return b.w }
func (b *Buffer) Height() int { return b.h }

// Pix returns the raw RGB bytes.
func (b *Buffer) Pix() []byte { return b.pix }

// Plot sets one pixel; writes outside the buffer are dropped.
func (b *Buffer) Plot(x, y int, c colormath.RGB) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	i := (y*b.w + x) * 3
	b.pix[i+0] = c.R()
	b.pix[i+1] = c.G()
	b.pix[i+2] = c.B()
}

// RGBAt returns the pixel at (x, y), or black outside the buffer.
func (b *Buffer) RGBAt(x, y int) colormath.RGB {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return 0
	}
	i := (y*b.w + x) * 3
	return colormath.Pack(b.pix[i], b.pix[i+1], b.pix[i+2])
}

// Clear resets every pixel to black.
func (b *Buffer) Clear() {
	clear(b.pix)
}

// RowWriter is implemented by destinations that can take a whole row of RGB
// triplets at once. Blit uses it instead of per-pixel Plot calls.
type RowWriter interface {
	WriteRGBRow(x, y int, rgb []byte)
}

// Blit copies b onto dst with its top-left corner at (ox, oy).
// Black pixels are copied too.
func (b *Buffer) Blit(dst raster.Plotter, ox, oy int) {
	if rw, ok := dst.(RowWriter); ok {
		for y := 0; y < b.h; y++ {
			row := y * b.w * 3
			rw.WriteRGBRow(ox, oy+y, b.pix[row:row+b.w*3])
		}
		return
	}
	for y := 0; y < b.h; y++ {
		row := y * b.w * 3
		for x := 0; x < b.w; x++ {
			i := row + x*3
			dst.Plot(ox+x, oy+y, colormath.Pack(b.pix[i], b.pix[i+1], b.pix[i+2]))
		}
	}
}

// ColorModel, Bounds and At make Buffer an image.Image.
func (b *Buffer) ColorModel() color.Model { return color.RGBAModel }
func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.w, b.h) }
func (b *Buffer) At(x, y int) color.Color { return b.RGBAt(x, y) }

// RGBA copies the buffer into an opaque *image.RGBA.
func (b *Buffer) RGBA() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	draw.Draw(img, img.Bounds(), b, image.Point{}, draw.Src)
	return img
}
