package fan

import (
	"image"
	"math"
	"testing"

	"spiro/internal/colormath"
	"spiro/internal/raster"
)

func TestAdvancePhase(t *testing.T) {
	tests := []struct {
		phase, step, want float64
	}{
		{0, DefaultPhaseStep, DefaultPhaseStep},
		{0.99995, DefaultPhaseStep, 0.00005},
		{0.5, 0.75, 0.25},
		{0.1, -0.3, 0.8},
	}
	for _, tt := range tests {
		got := AdvancePhase(tt.phase, tt.step)
		if got < 0 || got >= 1 || math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("AdvancePhase(%v, %v) = %v; want %v", tt.phase, tt.step, got, tt.want)
		}
	}
}

func TestDraw_Dual(t *testing.T) {
	p := Params{Anchor: Pt(0, 0), Cursor: Pt(10, 0), Decay: 0.9, Lines: 1, Phase: 0.25}
	seg := collect(p)[0]
	a, b := seg.Start.Image(), seg.End.Image()

	hits := func(dual bool) map[image.Point]colormath.RGB {
		got := make(map[image.Point]colormath.RGB)
		Draw(raster.PlotFunc(func(x, y int, c colormath.RGB) { got[image.Pt(x, y)] = c }), p, dual)
		return got
	}

	single := hits(false)
	for pt, c := range single {
		if c != seg.Color {
			t.Fatalf("single: %v drawn in %#06x; want %#06x", pt, uint32(c), uint32(seg.Color))
		}
	}

	dual := hits(true)
	for _, pt := range []image.Point{a, b} {
		if dual[pt] != seg.Alt {
			t.Fatalf("dual: spine end %v = %#06x; want alt %#06x", pt, uint32(dual[pt]), uint32(seg.Alt))
		}
	}
}
