package modes

import "github.com/gdamore/tcell/v2"

// KeyCode identifies the keys the animator reacts to, independent of the frontend
type KeyCode uint8

const (
	KeyNone KeyCode = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyCtrlC
	KeyCtrlS
)

// Key is one keypress, Rune is set for KeyRune
type Key struct {
	Code KeyCode
	Rune rune
}

// RuneKey builds a printable keypress
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// FromTcell translates a tcell key event
func FromTcell(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyRune:
		return RuneKey(ev.Rune())
	case tcell.KeyEnter:
		return Key{Code: KeyEnter}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Key{Code: KeyBackspace}
	case tcell.KeyEscape:
		return Key{Code: KeyEscape}
	case tcell.KeyCtrlC:
		return Key{Code: KeyCtrlC}
	case tcell.KeyCtrlS:
		return Key{Code: KeyCtrlS}
	default:
		return Key{Code: KeyNone}
	}
}
