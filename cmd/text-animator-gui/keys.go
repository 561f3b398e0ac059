package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/text-animator/modes"
)

// translateKey maps a control key press, printable input arrives through input chars
func translateKey(k ebiten.Key, ctrl bool) (modes.Key, bool) {
	if ctrl {
		switch k {
		case ebiten.KeyC:
			return modes.Key{Code: modes.KeyCtrlC}, true
		case ebiten.KeyS:
			return modes.Key{Code: modes.KeyCtrlS}, true
		}
		return modes.Key{}, false
	}

	switch k {
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return modes.Key{Code: modes.KeyEnter}, true
	case ebiten.KeyBackspace:
		return modes.Key{Code: modes.KeyBackspace}, true
	case ebiten.KeyEscape:
		return modes.Key{Code: modes.KeyEscape}, true
	}
	return modes.Key{}, false
}

// keyReader collects the keys of one update tick
type keyReader struct {
	pressed []ebiten.Key
	chars   []rune
	out     []modes.Key
}

// Read returns this tick's keys, control keys first, the slice is reused
func (r *keyReader) Read() []modes.Key {
	r.out = r.out[:0]
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	r.pressed = inpututil.AppendJustPressedKeys(r.pressed[:0])
	for _, k := range r.pressed {
		if mk, ok := translateKey(k, ctrl); ok {
			r.out = append(r.out, mk)
		}
	}

	r.chars = ebiten.AppendInputChars(r.chars[:0])
	if !ctrl {
		for _, ch := range r.chars {
			r.out = append(r.out, modes.RuneKey(ch))
		}
	}
	return r.out
}
