//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (k *hostKeyboard) poll() {
	for _, r := range ebiten.AppendInputChars(nil) {
		k.emit(KeyEvent{Press: true, Rune: r})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		k.emit(KeyEvent{Code: KeyEscape, Press: true})
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) {
		k.emit(KeyEvent{Code: KeyEscape, Press: false})
	}
}

func (p *hostPointer) poll() {
	p.x, p.y = ebiten.CursorPosition()

	buttons := []struct {
		eb  ebiten.MouseButton
		btn MouseButton
	}{
		{ebiten.MouseButtonLeft, ButtonLeft},
		{ebiten.MouseButtonRight, ButtonRight},
	}
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			p.emit(PointerEvent{Kind: PointerDown, Button: b.btn, X: p.x, Y: p.y})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			p.emit(PointerEvent{Kind: PointerUp, Button: b.btn, X: p.x, Y: p.y})
		}
	}

	// Trackpads report fractional offsets; only the direction counts as a notch.
	_, dy := ebiten.Wheel()
	switch {
	case dy > 0:
		p.emit(PointerEvent{Kind: PointerWheel, X: p.x, Y: p.y, Wheel: 1})
	case dy < 0:
		p.emit(PointerEvent{Kind: PointerWheel, X: p.x, Y: p.y, Wheel: -1})
	}
}
