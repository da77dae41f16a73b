package app

import (
	"errors"
	"fmt"
	"image"
	"unicode"

	"spiro/hal"
	"spiro/internal/buildinfo"
	"spiro/internal/colormath"
	"spiro/internal/fan"
	"spiro/internal/pixbuf"
	"spiro/internal/raster"
)

// Config tunes the frame loop. Zero values pick the defaults.
type Config struct {
	// MapWidth and MapHeight size the off-screen texture. It is centered on
	// the framebuffer and defaults to the framebuffer size.
	MapWidth  int
	MapHeight int

	Lines int
	// Decay outside [0.1,1] falls back to DefaultDecay.
	Decay     float64
	PhaseStep float64

	SavePath     string
	AutoSavePath string
	// LoadPath seeds the texture from a previous dump.
	LoadPath string

	// DualColor also draws each segment's spine in the mirrored hue.
	DualColor bool
	HUD       bool
	// HoldOnPanic keeps showing the panic screen until Escape instead of
	// returning the error right away. Without a keyboard the loop stays
	// parked for good.
	HoldOnPanic bool
}

func (c Config) withDefaults(fbW, fbH int) Config {
	if c.MapWidth <= 0 {
		c.MapWidth = fbW
	}
	if c.MapHeight <= 0 {
		c.MapHeight = fbH
	}
	if c.Lines <= 0 {
		c.Lines = fan.DefaultLines
	}
	if c.Decay < decayFloor || c.Decay > decayCeil {
		c.Decay = DefaultDecay
	}
	if c.PhaseStep <= 0 {
		c.PhaseStep = DefaultPhaseStep
	}
	if c.SavePath == "" {
		c.SavePath = "test.ppm"
	}
	if c.AutoSavePath == "" {
		c.AutoSavePath = "buffer.ppm"
	}
	return c
}

const (
	sweepRadius  = 500
	markerRadius = 10

	markerDragging colormath.RGB = 0x00FF00
	markerIdle     colormath.RGB = 0xFFFFFF
)

type loop struct {
	cfg Config
	log hal.Logger

	fb  hal.Framebuffer
	scr screen
	kbd hal.Keyboard
	ptr hal.Pointer
	clk hal.Time

	tex *pixbuf.Buffer
	// Top-left corner of the texture on the screen.
	ox, oy int

	state *State
	hud   hud

	halted error
}

// New builds the frame loop with the default config.
func New(h hal.HAL) (func() error, error) {
	return NewWithConfig(h, Config{})
}

// NewWithConfig builds the frame loop and returns its step function. Each
// call of the step draws one frame; it returns hal.ErrQuit when the user
// asks to exit.
func NewWithConfig(h hal.HAL, cfg Config) (func() error, error) {
	l, err := newLoop(h, cfg)
	if err != nil {
		return nil, err
	}
	return l.step, nil
}

func newLoop(h hal.HAL, cfg Config) (*loop, error) {
	if h == nil {
		return nil, errors.New("app: nil HAL")
	}
	disp := h.Display()
	if disp == nil {
		return nil, errors.New("app: no display")
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return nil, errors.New("app: no framebuffer")
	}
	if fb.Format() != hal.PixelFormatRGBA8888 {
		return nil, fmt.Errorf("app: unsupported framebuffer format %d", fb.Format())
	}
	if fb.Width() <= 0 || fb.Height() <= 0 {
		return nil, fmt.Errorf("app: invalid framebuffer geometry %dx%d", fb.Width(), fb.Height())
	}

	cfg = cfg.withDefaults(fb.Width(), fb.Height())
	l := &loop{
		cfg:   cfg,
		log:   h.Logger(),
		fb:    fb,
		scr:   screen{fb: fb},
		clk:   h.Time(),
		tex:   pixbuf.New(cfg.MapWidth, cfg.MapHeight),
		ox:    (fb.Width() - cfg.MapWidth) / 2,
		oy:    (fb.Height() - cfg.MapHeight) / 2,
		state: NewState(cfg.MapWidth, cfg.MapHeight, cfg.Decay),
	}
	if in := h.Input(); in != nil {
		l.kbd = in.Keyboard()
		l.ptr = in.Pointer()
	}

	if cfg.LoadPath != "" {
		seed, err := pixbuf.Load(cfg.LoadPath)
		if err != nil {
			return nil, err
		}
		seed.Blit(l.tex, 0, 0)
		l.state.Trace = true
		l.logf("loaded %s (%dx%d), trace on", cfg.LoadPath, seed.Width(), seed.Height())
	}

	l.logf("spiro %s: screen %dx%d, map %dx%d, %d lines, decay %.3f",
		buildinfo.Short(), fb.Width(), fb.Height(), cfg.MapWidth, cfg.MapHeight, cfg.Lines, cfg.Decay)
	return l, nil
}

func (l *loop) logf(format string, args ...any) {
	if l.log == nil {
		return
	}
	l.log.WriteLineString(fmt.Sprintf(format, args...))
}

func (l *loop) step() (err error) {
	if l.halted != nil {
		return l.waitForEscape()
	}
	defer func() {
		if r := recover(); r != nil {
			err = l.panicked(r)
		}
	}()
	return l.frame()
}

func (l *loop) frame() error {
	s := l.state
	s.AdvancePhase(l.cfg.PhaseStep)

	var raw image.Point
	if l.ptr != nil {
		raw.X, raw.Y = l.ptr.Position()
	}
	pos := raw.Sub(image.Pt(l.ox, l.oy))

	if err := l.handleKeys(); err != nil {
		return err
	}
	l.handlePointer(pos)

	s.DragTo(pos)

	cursor := pos
	if raw == (image.Point{}) {
		center := fan.Pt(float64(l.cfg.MapWidth/2), float64(l.cfg.MapHeight/2))
		cursor = fan.Sweep(s.Phase, center, sweepRadius).Image()
	}

	if s.AutoSave {
		l.save(l.cfg.AutoSavePath, false)
	}

	l.fb.ClearRGB(0, 0, 0)
	onScreen := offset{p: l.scr, dx: l.ox, dy: l.oy}
	params := fan.Params{
		Anchor: fan.FromImage(s.Anchor),
		Cursor: fan.FromImage(cursor),
		Decay:  s.Decay,
		Lines:  l.cfg.Lines,
		Phase:  s.Phase,
	}
	if s.DrawToScreen {
		l.tex.Blit(l.scr, l.ox, l.oy)
		l.drawFan(onScreen, params)
	} else {
		l.drawFan(l.tex, params)
		l.tex.Blit(l.scr, l.ox, l.oy)
	}

	if !s.Trace {
		l.tex.Clear()
	}

	marker := markerIdle
	if s.Dragging {
		marker = markerDragging
	}
	raster.Circle(onScreen, cursor.X, cursor.Y, markerRadius, marker)

	if l.cfg.HUD {
		l.hud.draw(l)
	}
	return l.fb.Present()
}

func (l *loop) drawFan(dst raster.Plotter, p fan.Params) {
	fan.Draw(dst, p, l.cfg.DualColor)
}

// handleKeys drains queued key events. Escape stops immediately, leaving
// the rest of the queue and the frame unprocessed.
func (l *loop) handleKeys() error {
	if l.kbd == nil {
		return nil
	}
	ch := l.kbd.Events()
	for {
		select {
		case ev := <-ch:
			if !ev.Press {
				continue
			}
			if ev.Code == hal.KeyEscape {
				return hal.ErrQuit
			}
			l.handleRune(unicode.ToLower(ev.Rune))
		default:
			return nil
		}
	}
}

func (l *loop) handleRune(r rune) {
	s := l.state
	switch r {
	case 's':
		l.save(l.cfg.SavePath, true)
	case 'r':
		l.tex.Clear()
	case ' ':
		s.DrawToScreen = !s.DrawToScreen
		l.logf("draw to %s", destName(s.DrawToScreen))
	case 'm':
		s.AutoSave = !s.AutoSave
		l.logf("autosave %s", onOff(s.AutoSave))
	case 't':
		s.Trace = !s.Trace
		l.logf("trace %s", onOff(s.Trace))
	}
}

// handlePointer applies queued button and wheel events. Drags start from
// the pointer position read at the top of the frame.
func (l *loop) handlePointer(pos image.Point) {
	if l.ptr == nil {
		return
	}
	ch := l.ptr.Events()
	for {
		select {
		case ev := <-ch:
			switch ev.Kind {
			case hal.PointerDown:
				if ev.Button == hal.ButtonLeft {
					l.state.BeginDrag(pos)
				}
			case hal.PointerUp:
				if ev.Button == hal.ButtonLeft {
					l.state.EndDrag()
				}
			case hal.PointerWheel:
				l.state.Scroll(ev.Wheel)
			}
		default:
			return
		}
	}
}

// save writes the texture. Failures are logged and never stop the loop.
func (l *loop) save(path string, verbose bool) {
	if err := l.tex.Save(path); err != nil {
		l.logf("save failed: %v", err)
		return
	}
	if verbose {
		l.logf("saved %s", path)
	}
}

func destName(screen bool) string {
	if screen {
		return "screen"
	}
	return "texture"
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
