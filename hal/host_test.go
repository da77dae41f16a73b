package hal

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
)

func TestHostFramebuffer_ClearRGB(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 5}, {17, 9}} {
		fb := newHostFramebuffer(size[0], size[1])
		fb.ClearRGB(0x11, 0x22, 0x33)

		buf := fb.Buffer()
		if len(buf) != size[0]*size[1]*4 {
			t.Fatalf("%v: len(buf) = %d", size, len(buf))
		}
		for i := 0; i < len(buf); i += 4 {
			if buf[i] != 0x11 || buf[i+1] != 0x22 || buf[i+2] != 0x33 || buf[i+3] != 0xFF {
				t.Fatalf("%v: pixel %d = %v", size, i/4, buf[i:i+4])
			}
		}
	}
}

func TestHostLogger(t *testing.T) {
	var out bytes.Buffer
	h := New(HostConfig{Width: 4, Height: 4, Log: &out})
	h.Logger().WriteLineString("hello")
	h.Logger().WriteLineBytes([]byte("world"))
	if got := out.String(); got != "hello\nworld\n" {
		t.Fatalf("log output = %q", got)
	}
}

func TestNew_Defaults(t *testing.T) {
	h := New(HostConfig{Log: &bytes.Buffer{}})
	fb := h.Display().Framebuffer()
	if fb.Width() != 1920 || fb.Height() != 1080 || fb.StrideBytes() != 1920*4 {
		t.Fatalf("default framebuffer %dx%d stride %d", fb.Width(), fb.Height(), fb.StrideBytes())
	}
	if x, y := h.Input().Pointer().Position(); x != 0 || y != 0 {
		t.Fatalf("pointer starts at %d,%d; want origin", x, y)
	}
}

func TestRunHeadless_Ticks(t *testing.T) {
	h := New(HostConfig{Width: 4, Height: 4, Log: &bytes.Buffer{}})
	var steps int
	err := RunHeadless(context.Background(), h, func() error {
		steps++
		return nil
	}, HeadlessConfig{Hz: 1000, Ticks: 5})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps = %d; want 5", steps)
	}
}

func TestRunHeadless_Quit(t *testing.T) {
	h := New(HostConfig{Width: 4, Height: 4, Log: &bytes.Buffer{}})
	var steps int
	err := RunHeadless(context.Background(), h, func() error {
		steps++
		if steps == 2 {
			return ErrQuit
		}
		return nil
	}, HeadlessConfig{Hz: 1000})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 2 {
		t.Fatalf("steps = %d; want 2", steps)
	}
}

func TestRunHeadless_StepError(t *testing.T) {
	boom := errors.New("boom")
	h := New(HostConfig{Width: 4, Height: 4, Log: &bytes.Buffer{}})
	err := RunHeadless(context.Background(), h, func() error { return boom }, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless err = %v; want boom", err)
	}
}

func TestRunHeadless_Cancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	h := New(HostConfig{Width: 4, Height: 4, Log: &bytes.Buffer{}})
	err := RunHeadless(ctx, h, nil, HeadlessConfig{Hz: 100})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("RunHeadless err = %v; want deadline exceeded", err)
	}
}

func TestHostTime_Step(t *testing.T) {
	clk := newHostTime()
	clk.step()
	if clk.Millis() != 0 {
		t.Fatalf("first step advanced clock to %d", clk.Millis())
	}
	clk.last = clk.last.Add(-25 * time.Millisecond)
	clk.step()
	if got := clk.Millis(); got < 25 {
		t.Fatalf("Millis() = %d; want >= 25", got)
	}
}

func TestHostPointer_DropsWhenFull(t *testing.T) {
	p := newHostPointer()
	for i := 0; i < cap(p.ch)+10; i++ {
		p.emit(PointerEvent{Kind: PointerWheel, Wheel: 1})
	}
	if len(p.ch) != cap(p.ch) {
		t.Fatalf("queued %d events; want %d", len(p.ch), cap(p.ch))
	}
}
