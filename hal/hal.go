package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrNotImplemented is returned by runners the current build cannot provide.
var ErrNotImplemented = errors.New("not implemented")

// ErrQuit is returned by a frame step to stop the run loop without error.
var ErrQuit = errors.New("quit")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp, bytes in R, G, B, A order.
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode identifies keys that do not produce text.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
)

// KeyEvent is a keyboard event. Printable input arrives as Rune with
// KeyUnknown.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	ButtonLeft MouseButton = iota + 1
	ButtonRight
)

// PointerEventKind says what a PointerEvent reports.
type PointerEventKind uint8

const (
	PointerDown PointerEventKind = iota + 1
	PointerUp
	// PointerWheel carries one vertical notch in Wheel (+1 or -1).
	PointerWheel
)

// PointerEvent is a button or wheel event in framebuffer coordinates.
type PointerEvent struct {
	Kind   PointerEventKind
	Button MouseButton
	X, Y   int
	Wheel  int
}

// Pointer reports the cursor position and queues button/wheel events.
// Position is (0,0) when no pointer is attached.
type Pointer interface {
	Position() (x, y int)
	Events() <-chan PointerEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// Time is a monotonic millisecond clock advanced by the run loop.
type Time interface {
	Millis() uint64
}

// HAL provides the only contact point between the program and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
