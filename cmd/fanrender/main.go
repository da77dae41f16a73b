// Command fanrender draws the fan into an image file without opening a
// window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/term"

	"spiro/internal/colormath"
	"spiro/internal/fan"
	"spiro/internal/pixbuf"
)

// pipeName sends the dump to stdout.
const pipeName = "-"

type renderConfig struct {
	width, height int
	frames        int
	lines         int
	decay         float64
	phase         float64
	phaseStep     float64
	anchor        image.Point
	cursor        image.Point
	// sweep drives the cursor around the center when no -cursor is given.
	sweep   bool
	radius  float64
	trace   bool
	dual    bool
	markers bool
	scale   float64
	out     string
}

func (c renderConfig) withDefaults() renderConfig {
	if c.width <= 0 {
		c.width = 1920
	}
	if c.height <= 0 {
		c.height = 1080
	}
	if c.frames <= 0 {
		c.frames = 1
	}
	if c.lines <= 0 {
		c.lines = fan.DefaultLines
	}
	if c.decay <= 0 || c.decay > 1 {
		c.decay = fan.DefaultDecay
	}
	if c.phaseStep <= 0 {
		c.phaseStep = fan.DefaultPhaseStep
	}
	if c.radius <= 0 {
		c.radius = float64(min(c.width, c.height)) / 3
	}
	if c.scale <= 0 {
		c.scale = 1
	}
	if c.out == "" {
		c.out = "fan.png"
	}
	return c
}

// ggPlotter plots single pixels into a gg context.
type ggPlotter struct {
	dc *gg.Context
}

func (p ggPlotter) Plot(x, y int, c colormath.RGB) {
	p.dc.SetColor(c)
	p.dc.SetPixel(x, y)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, stdoutIsTerminal); err != nil {
		fmt.Fprintln(os.Stderr, "fanrender:", err)
		os.Exit(1)
	}
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func run(args []string, stdout io.Writer, isTerminal func() bool) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}
	if cfg.out == pipeName && isTerminal() {
		return errors.New("`-` should be used with a pipe for stdout")
	}

	img := render(cfg)
	if cfg.scale != 1 {
		w := int(float64(cfg.width) * cfg.scale)
		h := int(float64(cfg.height) * cfg.scale)
		if w <= 0 || h <= 0 {
			return fmt.Errorf("scale %v gives an empty image", cfg.scale)
		}
		img = imaging.Resize(img, w, h, imaging.NearestNeighbor)
	}

	buf := pixbuf.FromImage(img)
	if cfg.out == pipeName {
		return buf.WritePPM(stdout)
	}
	return buf.Save(cfg.out)
}

func parseFlags(args []string) (renderConfig, error) {
	var (
		cfg            renderConfig
		anchor, cursor string
	)
	fs := flag.NewFlagSet("fanrender", flag.ContinueOnError)
	fs.IntVar(&cfg.width, "w", 1920, "Image width.")
	fs.IntVar(&cfg.height, "h", 1080, "Image height.")
	fs.IntVar(&cfg.frames, "frames", 1, "Frames to draw.")
	fs.IntVar(&cfg.lines, "lines", fan.DefaultLines, "Segments per fan.")
	fs.Float64Var(&cfg.decay, "decay", fan.DefaultDecay, "Decay ratio in (0,1].")
	fs.Float64Var(&cfg.phase, "phase", 0, "Starting hue phase in [0,1).")
	fs.Float64Var(&cfg.phaseStep, "phase-step", fan.DefaultPhaseStep, "Hue phase advance per frame.")
	fs.StringVar(&anchor, "anchor", "", "Anchor as x,y (default: width/2,height/4).")
	fs.StringVar(&cursor, "cursor", "", "Fixed cursor as x,y (default: sweep around the center).")
	fs.Float64Var(&cfg.radius, "radius", 0, "Sweep radius (default: a third of the shorter side).")
	fs.BoolVar(&cfg.trace, "trace", true, "Keep every frame instead of only the last.")
	fs.BoolVar(&cfg.dual, "dual", false, "Also draw each segment's spine in the mirrored hue.")
	fs.BoolVar(&cfg.markers, "markers", false, "Circle the anchor and the final cursor.")
	fs.Float64Var(&cfg.scale, "scale", 1, "Resize the result by this factor.")
	fs.StringVar(&cfg.out, "out", "fan.png", "Output file; .ppm writes a raw dump, - writes PPM to stdout.")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg = cfg.withDefaults()

	cfg.anchor = image.Pt(cfg.width/2, cfg.height/4)
	if anchor != "" {
		p, err := parsePoint(anchor)
		if err != nil {
			return cfg, fmt.Errorf("-anchor: %w", err)
		}
		cfg.anchor = p
	}
	cfg.sweep = cursor == ""
	if !cfg.sweep {
		p, err := parsePoint(cursor)
		if err != nil {
			return cfg, fmt.Errorf("-cursor: %w", err)
		}
		cfg.cursor = p
	}
	return cfg, nil
}

func parsePoint(s string) (image.Point, error) {
	var p image.Point
	var rest string
	n, _ := fmt.Sscanf(s, "%d,%d%s", &p.X, &p.Y, &rest)
	if n != 2 {
		return p, fmt.Errorf("invalid point %q, want x,y", s)
	}
	return p, nil
}

// render draws cfg.frames frames. The phase advances before each frame,
// as in the interactive loop.
func render(cfg renderConfig) image.Image {
	dc := gg.NewContext(cfg.width, cfg.height)
	dc.SetColor(color.Black)
	dc.Clear()
	dst := ggPlotter{dc: dc}

	phase := cfg.phase
	center := fan.Pt(float64(cfg.width/2), float64(cfg.height/2))
	cursor := cfg.cursor
	for i := 0; i < cfg.frames; i++ {
		phase = fan.AdvancePhase(phase, cfg.phaseStep)

		if !cfg.trace {
			dc.SetColor(color.Black)
			dc.Clear()
		}
		if cfg.sweep {
			cursor = fan.Sweep(phase, center, cfg.radius).Image()
		}
		fan.Draw(dst, fan.Params{
			Anchor: fan.FromImage(cfg.anchor),
			Cursor: fan.FromImage(cursor),
			Decay:  cfg.decay,
			Lines:  cfg.lines,
			Phase:  phase,
		}, cfg.dual)
	}

	if cfg.markers {
		dc.SetLineWidth(2)
		dc.SetColor(color.White)
		dc.DrawCircle(float64(cfg.anchor.X), float64(cfg.anchor.Y), 10)
		dc.Stroke()
		dc.SetRGB(0, 1, 0)
		dc.DrawCircle(float64(cursor.X), float64(cursor.Y), 10)
		dc.Stroke()
	}
	return dc.Image()
}
