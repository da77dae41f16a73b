// Package fan generates the per-frame spirograph fan: a chain of connected
// segments that shrink by a decay ratio and sweep around the cursor.
package fan

import (
	"image"
	"iter"
	"math"

	"spiro/internal/colormath"
)

// DefaultLines is the number of segments drawn per frame.
const DefaultLines = 200

// Point is a position in playfield coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// FromImage converts an integer point.
func FromImage(p image.Point) Point { return Point{X: float64(p.X), Y: float64(p.Y)} }

// Image truncates p toward zero.
func (p Point) Image() image.Point { return image.Pt(int(p.X), int(p.Y)) }

// Params describes one frame of the fan.
type Params struct {
	Anchor Point
	Cursor Point
	// Decay scales the segment length after every step, in (0,1].
	Decay float64
	Lines int
	// Phase is the hue phase in [0,1).
	Phase float64
}

// Segment is one step of the fan. Start, End and PrevEnd form the
// triangle that gets outlined.
type Segment struct {
	Step    int
	Start   Point
	End     Point
	PrevEnd Point
	Length  float64
	// Color is the hue at +Phase; Alt is the mirrored hue at -Phase.
	Color colormath.RGB
	Alt   colormath.RGB
}

// Triangle returns the segment's outline vertices in raster coordinates.
func (s Segment) Triangle() []image.Point {
	return []image.Point{s.Start.Image(), s.End.Image(), s.PrevEnd.Image()}
}

// Segments yields p.Lines segments lazily. Each call starts over from the
// cursor, so the sequence can be ranged once per frame.
//
// The absolute angle of step i is base*(i+1), where base is the direction
// from anchor to cursor. The multiplied sweep is what gives the fan its
// shape; an additive sweep draws a plain spiral.
func Segments(p Params) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		dx := p.Cursor.X - p.Anchor.X
		dy := p.Cursor.Y - p.Anchor.Y
		length := math.Hypot(dx, dy)

		var base float64
		if dx != 0 || dy != 0 {
			base = math.Atan2(dx, -dy)
		}

		col := colormath.HSVToRGB(colormath.HSV{H: p.Phase * 360, S: 1, V: 1})
		alt := colormath.HSVToRGB(colormath.HSV{H: -p.Phase * 360, S: 1, V: 1})

		start := p.Cursor
		prevEnd := start
		for i := 1; i <= p.Lines; i++ {
			a := base * float64(i+1)
			end := Point{
				X: length*math.Sin(a) + start.X,
				Y: -length*math.Cos(a) + start.Y,
			}
			seg := Segment{
				Step:    i,
				Start:   start,
				End:     end,
				PrevEnd: prevEnd,
				Length:  length,
				Color:   col,
				Alt:     alt,
			}
			if !yield(seg) {
				return
			}
			prevEnd = start
			start = end
			length *= p.Decay
		}
	}
}

// Sweep returns a point on a circle of the given radius around center.
// Phase 0 is straight up and the sweep runs clockwise in screen space.
func Sweep(phase float64, center Point, radius float64) Point {
	a := phase*2*math.Pi - math.Pi/2
	return Point{
		X: center.X + radius*math.Cos(a),
		Y: center.Y + radius*math.Sin(a),
	}
}
