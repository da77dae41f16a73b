package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"

	"spiro/hal"
	"spiro/internal/raster"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const panicLineHeight = 12

// panicked logs a recovered frame panic, paints it on the screen and
// returns it as an error. With HoldOnPanic the error is parked until the
// user presses Escape so the screen stays readable.
func (l *loop) panicked(v any) error {
	stack := debug.Stack()
	err := fmt.Errorf("frame panic: %v", v)

	l.logf("spiro panic: %v", v)
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		l.logf("%s", line)
	}

	l.drawPanic(v, stack)

	if l.cfg.HoldOnPanic {
		l.halted = err
		return nil
	}
	return err
}

func (l *loop) drawPanic(v any, stack []byte) {
	l.fb.ClearRGB(0xFF, 0xFF, 0xFF)
	d := raster.Displayer(l.scr, l.fb.Width(), l.fb.Height())
	fg := color.RGBA{A: 0xFF}

	lines := []string{"spiro panic:", fmt.Sprintf("%v", v), "stack:"}
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			lines = append(lines, strings.ReplaceAll(line, "\t", "    "))
		}
	}

	y := int16(panicLineHeight)
	for _, line := range lines {
		if int(y) > l.fb.Height() {
			break
		}
		tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, 4, y, line, fg)
		y += panicLineHeight
	}
	_ = l.fb.Present()
}

// waitForEscape keeps the panic screen up and returns the parked error
// once Escape is pressed.
func (l *loop) waitForEscape() error {
	if l.kbd == nil {
		return nil
	}
	for {
		select {
		case ev := <-l.kbd.Events():
			if ev.Press && ev.Code == hal.KeyEscape {
				return l.halted
			}
		default:
			return nil
		}
	}
}
