package app

import (
	"fmt"
	"image/color"

	"spiro/internal/buildinfo"
	"spiro/internal/raster"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var hudColor = color.RGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}

// hud draws one status line in the top-left corner of the screen.
type hud struct {
	frames    int
	lastMilli uint64
	fps       int
}

func (h *hud) tick(now uint64) {
	h.frames++
	if h.lastMilli == 0 {
		h.lastMilli = now
		return
	}
	if d := now - h.lastMilli; d >= 1000 {
		h.fps = int(uint64(h.frames) * 1000 / d)
		h.frames = 0
		h.lastMilli = now
	}
}

func (h *hud) line(l *loop) string {
	s := l.state
	return fmt.Sprintf("spiro %s  decay %.3f  lines %d  %s  trace %s  autosave %s  %d fps",
		buildinfo.Short(), s.Decay, l.cfg.Lines, destName(s.DrawToScreen), onOff(s.Trace), onOff(s.AutoSave), h.fps)
}

func (h *hud) draw(l *loop) {
	if l.clk != nil {
		h.tick(l.clk.Millis())
	}
	d := raster.Displayer(l.scr, l.fb.Width(), l.fb.Height())
	tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, 4, 12, h.line(l), hudColor)
}
