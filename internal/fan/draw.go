package fan

import (
	"math"

	"spiro/internal/raster"
)

const (
	// DefaultDecay is the starting decay ratio.
	DefaultDecay = 0.9
	// DefaultPhaseStep is how far the hue phase advances each frame.
	DefaultPhaseStep = 1.0 / 10000
)

// AdvancePhase returns phase moved forward by step, wrapped into [0,1).
func AdvancePhase(phase, step float64) float64 {
	phase = math.Mod(phase+step, 1)
	if phase < 0 {
		phase += 1
	}
	return phase
}

// Draw outlines every segment triangle of the fan described by p. With
// dual set each segment's spine is also drawn in the mirrored hue.
func Draw(dst raster.Plotter, p Params, dual bool) {
	for seg := range Segments(p) {
		raster.OutlinePolygon(dst, seg.Triangle(), seg.Color)
		if dual {
			a, b := seg.Start.Image(), seg.End.Image()
			raster.Line(dst, a.X, a.Y, b.X, b.Y, seg.Alt)
		}
	}
}
